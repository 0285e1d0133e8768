package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/order"
)

// ExpirePendingOrdersCommandHandler cancels abandoned orders. All stale
// PENDING orders are locked and cancelled inside a single transaction, so a
// concurrent confirmation either wins before the sweep locks the row or
// observes the cancellation afterwards.
type ExpirePendingOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewExpirePendingOrdersCommandHandler creates a handler for the expiry sweep.
func NewExpirePendingOrdersCommandHandler(uowFactory OrderUoWFactory) ExpirePendingOrdersCommandHandler {
	return ExpirePendingOrdersCommandHandler{uowFactory: uowFactory}
}

// Handle processes the expiry command and reports how many orders it
// cancelled. A sweep that finds nothing to do returns (0, nil).
func (h ExpirePendingOrdersCommandHandler) Handle(ctx context.Context, cmd ExpirePendingOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	cutoff := time.Now().UTC().Add(-cmd.MaxAge())
	staleOrders, err := orderRepo.GetStalePendingForUpdate(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	for _, staleOrder := range staleOrders {
		if err = staleOrder.TransitionTo(order.Cancelled); err != nil {
			return 0, err
		}

		if err = orderRepo.Update(ctx, staleOrder); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(staleOrders), nil
}
