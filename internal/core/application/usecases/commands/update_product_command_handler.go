package commands

import "context"

// UpdateProductCommandHandler changes menu products. Orders snapshot product
// data at creation time, so edits here never touch existing orders.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewUpdateProductCommandHandler creates a handler for product updates.
func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{uowFactory: uowFactory}
}

// Handle processes the product update command.
func (h UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) error {
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

	productRepo := uow.ProductRepository()

	target, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if err = target.Update(cmd.Name(), cmd.Description(), cmd.Price(), cmd.IsAvailable()); err != nil {
		return err
	}

	if err = productRepo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
