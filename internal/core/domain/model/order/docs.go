// Package order provides domain entities and business logic for order management
// in the restaurant system. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, lines, payment, and lifecycle
//   - OrderItem: An order line with product name and price snapshotted at creation
//   - Status: A state machine that enforces valid order status transitions
//   - Type: The fulfilment kind (DINE_IN, PICKUP, DELIVERY) gating terminal branches
//   - PaymentMethod: How the order is settled
//
// Key business rules:
//   - Orders must have a valid unique identifier, type, customer name, and at least one line
//   - The total price is the sum of line totals and is fixed at creation
//   - Order status follows the transition table in status.go; unlisted pairs are rejected
//   - READY_FOR_DELIVERY is reachable only for DELIVERY orders, READY_FOR_PICKUP only for the rest
//   - Only PENDING and CANCELLED orders can be deleted
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
