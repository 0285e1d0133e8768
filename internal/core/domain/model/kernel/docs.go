// Package kernel holds the value objects every aggregate in the restaurant
// domain is built from.
//
// UUID gives orders, products, staff members and deliveries their identity;
// Money carries prices and order totals as exact decimal amounts. Both are
// immutable, validate themselves, and refuse to exist in a half-constructed
// state: the zero value of either fails Validate, so an aggregate that
// skipped a constructor is caught at the first boundary it crosses.
package kernel
