package commands

import (
	"context"
	"errors"

	"restaurant/internal/pkg/errs"
)

// DeleteOrderCommandHandler removes orders that never went into preparation
// or were cancelled. The order's lines go with it, and so does a delivery
// left behind by a cancellation.
type DeleteOrderCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory DeliveryUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order deletion command. Orders outside PENDING or
// CANCELLED are refused with InvalidState.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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
	deliveryRepo := uow.DeliveryRepository()

	target, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = target.ValidateDelete(); err != nil {
		return err
	}

	attached, err := deliveryRepo.GetByOrderID(ctx, cmd.OrderID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		// Nothing to cascade.
	case err != nil:
		return err
	default:
		if err = deliveryRepo.Delete(ctx, attached); err != nil {
			return err
		}
	}

	if err = orderRepo.Delete(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
