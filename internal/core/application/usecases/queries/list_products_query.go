package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrListProductsQueryIsNotConstructed = errors.New(
		"ListProductsQuery must be created via NewListProductsQuery constructor",
	)
)

// ListProductsQuery retrieves the menu, sorted by name. When onlyAvailable
// is set, products currently flagged unavailable are skipped.
//
// Example:
//
//	query := NewListProductsQuery(true)
//	handler := NewListProductsQueryHandler(db)
//
//	menu, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list products: %w", err)
//	}
type ListProductsQuery struct {
	onlyAvailable bool

	guard guard.ConstructorGuard
}

// NewListProductsQuery creates a query to list menu products.
func NewListProductsQuery(onlyAvailable bool) ListProductsQuery {
	return ListProductsQuery{onlyAvailable: onlyAvailable, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrListProductsQueryIsNotConstructed if validation fails.
func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

// OnlyAvailable reports whether unavailable products are filtered out.
func (q ListProductsQuery) OnlyAvailable() bool {
	return q.onlyAvailable
}

// ListProductsQueryResponse represents one menu product in the read model.
type ListProductsQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	IsAvailable bool
	UpdatedAt   time.Time
}
