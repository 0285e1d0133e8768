package ports

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate with its lines.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order using an optimistic
	// version check. Losing a concurrent race yields ConcurrencyConflictError;
	// a missing row yields ObjectNotFoundError.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its lines by identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order like Get but takes a row lock so
	// concurrent mutations of the same order serialize. Must run inside
	// a transaction.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes the order and its lines. Status preconditions are the
	// caller's concern.
	Delete(ctx context.Context, aggregate *order.Order) error

	// GetStalePendingForUpdate retrieves PENDING orders created before the
	// cutoff, locking the returned rows. Used by the expiry job inside its
	// transaction.
	GetStalePendingForUpdate(ctx context.Context, olderThan time.Time) ([]*order.Order, error)
}
