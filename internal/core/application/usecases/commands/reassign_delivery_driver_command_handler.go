package commands

import (
	"context"

	"restaurant/internal/core/domain/services"
)

// ReassignDeliveryDriverCommandHandler swaps the driver on an ASSIGNED
// delivery. The order side is untouched, so only the delivery row is locked.
type ReassignDeliveryDriverCommandHandler struct {
	uowFactory  AssignmentUoWFactory
	coordinator services.DeliveryCoordinator
}

// NewReassignDeliveryDriverCommandHandler creates a handler for driver reassignment.
func NewReassignDeliveryDriverCommandHandler(uowFactory AssignmentUoWFactory) ReassignDeliveryDriverCommandHandler {
	return ReassignDeliveryDriverCommandHandler{
		uowFactory:  uowFactory,
		coordinator: services.NewDeliveryCoordinator(),
	}
}

// Handle processes the reassignment command. The replacement driver must be
// an active courier and the delivery must still be ASSIGNED.
func (h ReassignDeliveryDriverCommandHandler) Handle(ctx context.Context, cmd ReassignDeliveryDriverCommand) error {
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

	deliveryRepo := uow.DeliveryRepository()

	target, err := deliveryRepo.GetForUpdate(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	newDriver, err := uow.StaffRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	if err = h.coordinator.ReassignDriver(target, newDriver); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
