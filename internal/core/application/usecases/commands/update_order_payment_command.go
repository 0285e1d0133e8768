package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"
)

var ErrUpdateOrderPaymentCommandIsNotConstructed = errors.New(
	"UpdateOrderPaymentCommand must be created via NewUpdateOrderPaymentCommand constructor",
)

// UpdateOrderPaymentCommand represents a request to record how an order is
// paid. Payment never interacts with the status machine.
type UpdateOrderPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	isPaid  bool
	method  order.PaymentMethod

	guard guard.ConstructorGuard
}

// NewUpdateOrderPaymentCommand creates a command to update an order's payment.
func NewUpdateOrderPaymentCommand(
	orderID kernel.UUID, isPaid bool, method order.PaymentMethod,
) (UpdateOrderPaymentCommand, error) {
	command := UpdateOrderPaymentCommand{
		isPaid: isPaid,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setMethod(method),
	); err != nil {
		return UpdateOrderPaymentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderPaymentCommandIsNotConstructed if validation fails.
func (c UpdateOrderPaymentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderPaymentCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// IsPaid reports whether the order should be marked as settled.
func (c UpdateOrderPaymentCommand) IsPaid() bool {
	return c.isPaid
}

// Method returns the payment method to record.
func (c UpdateOrderPaymentCommand) Method() order.PaymentMethod {
	return c.method
}

func (c *UpdateOrderPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderPaymentCommand) setMethod(method order.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.method = method
	return nil
}
