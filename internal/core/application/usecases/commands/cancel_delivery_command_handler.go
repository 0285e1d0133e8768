package commands

import (
	"context"

	"restaurant/internal/core/domain/services"
)

// CancelDeliveryCommandHandler calls off a delivery: the delivery row is
// removed and its order reverts to READY_FOR_DELIVERY, freeing it for a new
// assignment. Order rows are always locked before delivery rows, so the
// handler peeks at the delivery without a lock to learn the order first.
type CancelDeliveryCommandHandler struct {
	uowFactory  DeliveryUoWFactory
	coordinator services.DeliveryCoordinator
}

// NewCancelDeliveryCommandHandler creates a handler for delivery cancellation.
func NewCancelDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CancelDeliveryCommandHandler {
	return CancelDeliveryCommandHandler{
		uowFactory:  uowFactory,
		coordinator: services.NewDeliveryCoordinator(),
	}
}

// Handle processes the cancellation command. DELIVERED deliveries cannot be
// cancelled, and the paired order must still be OUT_FOR_DELIVERY.
func (h CancelDeliveryCommandHandler) Handle(ctx context.Context, cmd CancelDeliveryCommand) error {
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

	// The order reference on a delivery never changes, so reading it
	// before taking any lock is safe.
	peek, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	targetOrder, err := orderRepo.GetForUpdate(ctx, peek.OrderID())
	if err != nil {
		return err
	}

	targetDelivery, err := deliveryRepo.GetForUpdate(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if err = h.coordinator.CancelDelivery(targetDelivery, targetOrder); err != nil {
		return err
	}

	if err = deliveryRepo.Delete(ctx, targetDelivery); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, targetOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
