package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrAssignDeliveryCommandIsNotConstructed = errors.New(
	"AssignDeliveryCommand must be created via NewAssignDeliveryCommand constructor",
)

// AssignDeliveryCommand represents a request to put a driver on an order.
// Address and notes are optional; a blank address falls back to the order's
// delivery address.
type AssignDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	orderID    kernel.UUID
	driverID   kernel.UUID
	address    string
	notes      string

	guard guard.ConstructorGuard
}

// NewAssignDeliveryCommand creates a command to assign a driver to an order.
// Automatically generates a unique ID for the delivery.
func NewAssignDeliveryCommand(orderID, driverID kernel.UUID, address, notes string) (AssignDeliveryCommand, error) {
	command := AssignDeliveryCommand{
		address: address,
		notes:   notes,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDeliveryID(kernel.NewUUID()),
		command.setOrderID(orderID),
		command.setDriverID(driverID),
	); err != nil {
		return AssignDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignDeliveryCommandIsNotConstructed if validation fails.
func (c AssignDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the generated identifier of the delivery being created.
func (c AssignDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// OrderID returns the identifier of the order to deliver.
func (c AssignDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the identifier of the driver taking the delivery.
func (c AssignDeliveryCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Address returns the destination override, when given.
func (c AssignDeliveryCommand) Address() string {
	return c.address
}

// Notes returns free-form notes for the driver.
func (c AssignDeliveryCommand) Notes() string {
	return c.notes
}

func (c *AssignDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *AssignDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignDeliveryCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
