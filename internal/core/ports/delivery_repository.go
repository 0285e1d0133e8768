// Package ports defines repository and collaborator interfaces for the
// restaurant core. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"restaurant/internal/core/domain/model/delivery"
	"restaurant/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
// Storage enforces at most one delivery per order with a unique index on the
// order reference.
type DeliveryRepository interface {
	// Add persists a new delivery. A duplicate delivery for the same order
	// yields AlreadyAssignedError.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery using an optimistic
	// version check. Losing a concurrent race yields ConcurrencyConflictError.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery by identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetForUpdate retrieves a delivery like Get but takes a row lock.
	// Must run inside a transaction.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetByOrderID retrieves the delivery owned by the given order, or
	// ObjectNotFoundError if the order has none.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error)

	// Delete removes the delivery. Used by cancellation and by order
	// deletion cascades.
	Delete(ctx context.Context, aggregate *delivery.Delivery) error
}
