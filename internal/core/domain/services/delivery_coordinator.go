package services

import (
	"strings"

	"restaurant/internal/core/domain/model/delivery"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/staff"
)

// DeliveryCoordinator is a domain service enforcing the rules that couple an
// order's lifecycle to its delivery's lifecycle. Neither aggregate can enforce
// these alone, because each owns only its own status:
//
//   - A delivery may be created only for a DELIVERY order in READY_FOR_DELIVERY,
//     and creating it advances the order to OUT_FOR_DELIVERY.
//   - A delivery reaching DELIVERED forces the order to COMPLETED.
//   - Cancelling a delivery reverts the order to READY_FOR_DELIVERY.
//   - Drivers must be active couriers, checked on assignment and reassignment.
//
// The coordinator mutates the aggregates it is handed and nothing else.
// Loading them with the proper locks, persisting both sides, and rolling the
// whole operation back when either side fails is the calling handler's
// responsibility: every method here must run inside a single transaction so
// the pair never persists in a state violating the coupling rules.
type DeliveryCoordinator struct{}

// NewDeliveryCoordinator creates a new DeliveryCoordinator instance.
func NewDeliveryCoordinator() DeliveryCoordinator {
	return DeliveryCoordinator{}
}

// Assign creates a delivery for the order and advances the order to
// OUT_FOR_DELIVERY as one logical unit.
//
// Parameters:
//   - o: The order to deliver (must be READY_FOR_DELIVERY)
//   - driver: The staff member to carry it (must be an active courier)
//   - deliveryID: Identifier for the new delivery
//   - address: Destination override; when blank the order's delivery address is used
//   - notes: Free-form driver instructions
//
// Returns:
//   - *delivery.Delivery: The created delivery in ASSIGNED state with dispatchedAt stamped
//   - error: InvalidState, InvalidDriver, or validation errors; on error neither aggregate
//     must be persisted
//
// Duplicate-delivery detection (AlreadyAssigned) is storage's concern and is
// handled by the caller before and while persisting.
func (c DeliveryCoordinator) Assign(
	o *order.Order,
	driver *staff.Staff,
	deliveryID kernel.UUID,
	address, notes string,
) (*delivery.Delivery, error) {
	if err := o.ValidateCanAssignDelivery(); err != nil {
		return nil, err
	}
	if err := driver.ValidateCanDeliver(); err != nil {
		return nil, err
	}

	if strings.TrimSpace(address) == "" {
		address = o.DeliveryAddress()
	}

	newDelivery, err := delivery.NewDelivery(deliveryID, o.ID(), driver.ID(), address, notes)
	if err != nil {
		return nil, err
	}

	if err := o.TransitionTo(order.OutForDelivery); err != nil {
		return nil, err
	}

	return newDelivery, nil
}

// CompleteDelivery moves the delivery to DELIVERED and forces the order to
// COMPLETED. Both transitions go through the regular tables; if the order
// side fails the caller must roll back the delivery side too.
func (c DeliveryCoordinator) CompleteDelivery(d *delivery.Delivery, o *order.Order) error {
	if err := c.validatePair(d, o); err != nil {
		return err
	}

	if err := d.TransitionTo(delivery.Delivered); err != nil {
		return err
	}

	return o.TransitionTo(order.Completed)
}

// CancelDelivery cancels the delivery and reverts the order from
// OUT_FOR_DELIVERY back to READY_FOR_DELIVERY. A DELIVERED delivery cannot
// be cancelled, and an order in any other status fails the reversion; either
// failure must abort the whole operation.
func (c DeliveryCoordinator) CancelDelivery(d *delivery.Delivery, o *order.Order) error {
	if err := c.validatePair(d, o); err != nil {
		return err
	}

	if err := d.Cancel(); err != nil {
		return err
	}

	return o.ReopenForDelivery()
}

// ReassignDriver replaces the delivery's driver after re-validating the new
// driver's eligibility. Only ASSIGNED deliveries qualify.
func (c DeliveryCoordinator) ReassignDriver(d *delivery.Delivery, newDriver *staff.Staff) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if err := newDriver.ValidateCanDeliver(); err != nil {
		return err
	}

	return d.ReassignDriver(newDriver.ID())
}

func (c DeliveryCoordinator) validatePair(d *delivery.Delivery, o *order.Order) error {
	if err := d.Validate(); err != nil {
		return err
	}
	return o.Validate()
}
