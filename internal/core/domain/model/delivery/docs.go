// Package delivery provides the Delivery aggregate and its status state
// machine. A delivery is the one-to-one hand-off record between an order
// and a driver.
//
// Deliveries are born ASSIGNED: NewDelivery walks the PENDING to ASSIGNED
// edge before the aggregate is ever persisted, stamping dispatchedAt.
// DELIVERED stamps deliveredAt; both timestamps are set exactly once.
// CANCELLED is reachable only through the cancel operation, never through
// a plain status transition, and a cancelled delivery is removed from
// storage afterwards.
//
// The rules that couple delivery transitions to the owning order (advancing
// it to OUT_FOR_DELIVERY or COMPLETED, reverting it on cancellation) live in
// the services package.
package delivery
