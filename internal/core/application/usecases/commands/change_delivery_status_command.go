package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/delivery"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrChangeDeliveryStatusCommandIsNotConstructed = errors.New(
	"ChangeDeliveryStatusCommand must be created via NewChangeDeliveryStatusCommand constructor",
)

// ChangeDeliveryStatusCommand represents a request to move a delivery along
// its chain. Cancellation has its own command; requesting CANCELLED here is
// rejected by the transition table like any other unlisted move.
type ChangeDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	target     delivery.Status

	guard guard.ConstructorGuard
}

// NewChangeDeliveryStatusCommand creates a command to change a delivery's status.
func NewChangeDeliveryStatusCommand(
	deliveryID kernel.UUID, target delivery.Status,
) (ChangeDeliveryStatusCommand, error) {
	command := ChangeDeliveryStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDeliveryID(deliveryID),
		command.setTarget(target),
	); err != nil {
		return ChangeDeliveryStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeDeliveryStatusCommandIsNotConstructed if validation fails.
func (c ChangeDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeDeliveryStatusCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery to move.
func (c ChangeDeliveryStatusCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Target returns the requested status.
func (c ChangeDeliveryStatusCommand) Target() delivery.Status {
	return c.target
}

func (c *ChangeDeliveryStatusCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *ChangeDeliveryStatusCommand) setTarget(target delivery.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
