package commands

import (
	"context"

	"restaurant/internal/core/domain/model/delivery"
	"restaurant/internal/core/domain/services"
)

// ChangeDeliveryStatusCommandHandler moves deliveries along their chain.
// Completing a delivery also completes its order, so that path locks both
// rows. Order rows are always locked before delivery rows; the delivery is
// first read without a lock just to learn which order it belongs to, which
// is safe because the order reference never changes.
type ChangeDeliveryStatusCommandHandler struct {
	uowFactory  DeliveryUoWFactory
	coordinator services.DeliveryCoordinator
}

// NewChangeDeliveryStatusCommandHandler creates a handler for delivery status changes.
func NewChangeDeliveryStatusCommandHandler(uowFactory DeliveryUoWFactory) ChangeDeliveryStatusCommandHandler {
	return ChangeDeliveryStatusCommandHandler{
		uowFactory:  uowFactory,
		coordinator: services.NewDeliveryCoordinator(),
	}
}

// Handle processes the delivery status change command. On DELIVERED the
// order is forced to COMPLETED in the same transaction; if the order cannot
// complete, nothing is written.
func (h ChangeDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd ChangeDeliveryStatusCommand) error {
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

	if cmd.Target() == delivery.Delivered {
		if err := h.complete(ctx, uow, cmd); err != nil {
			return err
		}
		return uow.Commit(ctx)
	}

	deliveryRepo := uow.DeliveryRepository()

	target, err := deliveryRepo.GetForUpdate(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if err = target.TransitionTo(cmd.Target()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h ChangeDeliveryStatusCommandHandler) complete(ctx context.Context, uow DeliveryUoW, cmd ChangeDeliveryStatusCommand) error {
	orderRepo := uow.OrderRepository()
	deliveryRepo := uow.DeliveryRepository()

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

	if err = h.coordinator.CompleteDelivery(targetDelivery, targetOrder); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, targetDelivery); err != nil {
		return err
	}

	return orderRepo.Update(ctx, targetOrder)
}
