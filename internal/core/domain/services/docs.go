// Package services holds domain logic that spans more than one aggregate.
//
// The order and delivery aggregates each own their status machine, but some
// rules only make sense looking at both at once: a delivery may be created
// only for an order that is ready to leave the kitchen, a delivered delivery
// forces its order to complete, and cancelling a delivery hands the order
// back to the ready state. DeliveryCoordinator enforces those coupling
// rules, along with driver eligibility at assignment time, without either
// aggregate knowing about the other's internals.
package services
