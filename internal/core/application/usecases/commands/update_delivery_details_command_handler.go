package commands

import "context"

// UpdateDeliveryDetailsCommandHandler corrects the address or notes on a
// delivery that is still in flight.
type UpdateDeliveryDetailsCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewUpdateDeliveryDetailsCommandHandler creates a handler for delivery detail updates.
func NewUpdateDeliveryDetailsCommandHandler(uowFactory DeliveryUoWFactory) UpdateDeliveryDetailsCommandHandler {
	return UpdateDeliveryDetailsCommandHandler{uowFactory: uowFactory}
}

// Handle processes the update command. DELIVERED deliveries are immutable.
func (h UpdateDeliveryDetailsCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryDetailsCommand) error {
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

	if err = target.UpdateDetails(cmd.Address(), cmd.Notes()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
