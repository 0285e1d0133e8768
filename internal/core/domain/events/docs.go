// Package events defines the domain event envelope and the stable set of
// event type names published by the restaurant system.
//
// Aggregates record events while mutating state; the unit of work collects
// them from tracked aggregates and hands them to the notification publisher
// only after the surrounding transaction has committed. A rolled-back
// transaction therefore never produces notifications.
//
// The event type names are a published contract consumed by kitchen, delivery
// and general staff channels and must remain stable across releases.
package events
