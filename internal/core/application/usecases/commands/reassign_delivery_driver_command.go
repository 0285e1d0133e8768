package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrReassignDeliveryDriverCommandIsNotConstructed = errors.New(
	"ReassignDeliveryDriverCommand must be created via NewReassignDeliveryDriverCommand constructor",
)

// ReassignDeliveryDriverCommand represents a request to hand a delivery to a
// different driver before it leaves the restaurant.
type ReassignDeliveryDriverCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	driverID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewReassignDeliveryDriverCommand creates a command to swap a delivery's driver.
func NewReassignDeliveryDriverCommand(deliveryID, driverID kernel.UUID) (ReassignDeliveryDriverCommand, error) {
	command := ReassignDeliveryDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDeliveryID(deliveryID),
		command.setDriverID(driverID),
	); err != nil {
		return ReassignDeliveryDriverCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReassignDeliveryDriverCommandIsNotConstructed if validation fails.
func (c ReassignDeliveryDriverCommand) Validate() error {
	return c.guard.Validate(ErrReassignDeliveryDriverCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery to reassign.
func (c ReassignDeliveryDriverCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// DriverID returns the identifier of the replacement driver.
func (c ReassignDeliveryDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *ReassignDeliveryDriverCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *ReassignDeliveryDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
