package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrUpdateDeliveryDetailsCommandIsNotConstructed = errors.New(
	"UpdateDeliveryDetailsCommand must be created via NewUpdateDeliveryDetailsCommand constructor",
)

// UpdateDeliveryDetailsCommand represents a request to correct the address or
// driver notes on a delivery that has not been handed over yet.
type UpdateDeliveryDetailsCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	address    string
	notes      string

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryDetailsCommand creates a command to update delivery details.
func NewUpdateDeliveryDetailsCommand(deliveryID kernel.UUID, address, notes string) (UpdateDeliveryDetailsCommand, error) {
	command := UpdateDeliveryDetailsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDeliveryID(deliveryID),
		command.setAddress(address),
		command.setNotes(notes),
	); err != nil {
		return UpdateDeliveryDetailsCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateDeliveryDetailsCommandIsNotConstructed if validation fails.
func (c UpdateDeliveryDetailsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryDetailsCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery to update.
func (c UpdateDeliveryDetailsCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Address returns the new destination address.
func (c UpdateDeliveryDetailsCommand) Address() string {
	return c.address
}

// Notes returns the new driver instructions.
func (c UpdateDeliveryDetailsCommand) Notes() string {
	return c.notes
}

func (c *UpdateDeliveryDetailsCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *UpdateDeliveryDetailsCommand) setAddress(address string) error {
	c.address = address
	return nil
}

func (c *UpdateDeliveryDetailsCommand) setNotes(notes string) error {
	c.notes = notes
	return nil
}
