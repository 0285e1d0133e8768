package commands

import (
	"context"
)

// UpdateOrderPaymentCommandHandler records payment details on orders.
type UpdateOrderPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderPaymentCommandHandler creates a handler for payment updates.
func NewUpdateOrderPaymentCommandHandler(uowFactory OrderUoWFactory) UpdateOrderPaymentCommandHandler {
	return UpdateOrderPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment update command.
func (h UpdateOrderPaymentCommandHandler) Handle(ctx context.Context, cmd UpdateOrderPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	target, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = target.MarkPayment(cmd.IsPaid(), cmd.Method()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
