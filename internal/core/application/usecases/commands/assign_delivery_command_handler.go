package commands

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"
)

// AssignDeliveryCommandHandler orchestrates putting a driver on an order.
// The order row is locked first, then the driver is validated and the new
// delivery written, all within one transaction. The unique index on the
// delivery's order reference backstops the duplicate pre-check.
type AssignDeliveryCommandHandler struct {
	uowFactory  AssignmentUoWFactory
	coordinator services.DeliveryCoordinator
}

// NewAssignDeliveryCommandHandler creates a handler for delivery assignment.
func NewAssignDeliveryCommandHandler(uowFactory AssignmentUoWFactory) AssignDeliveryCommandHandler {
	return AssignDeliveryCommandHandler{
		uowFactory:  uowFactory,
		coordinator: services.NewDeliveryCoordinator(),
	}
}

// Handle processes the assignment command. The order must be waiting in
// READY_FOR_DELIVERY, the driver must be an active courier, and the order
// must not have a delivery yet.
func (h AssignDeliveryCommandHandler) Handle(ctx context.Context, cmd AssignDeliveryCommand) error {
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

	driver, err := uow.StaffRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	_, err = deliveryRepo.GetByOrderID(ctx, cmd.OrderID())
	if err == nil {
		return errs.NewAlreadyAssignedError(cmd.OrderID().String())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	newDelivery, err := h.coordinator.Assign(target, driver, cmd.DeliveryID(), cmd.Address(), cmd.Notes())
	if err != nil {
		return err
	}

	if err = deliveryRepo.Add(ctx, newDelivery); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
