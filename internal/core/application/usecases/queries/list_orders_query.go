package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// ListOrdersQuery retrieves a page of orders, newest first. Status, type and
// payment filters are optional; an empty string or nil pointer means "all".
//
// Example:
//
//	query, _ := NewListOrdersQuery("PENDING", "", nil, 20, 0)
//	handler := NewListOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//
//	fmt.Printf("Found %d orders\n", len(orders))
type ListOrdersQuery struct {
	status    string
	orderType string
	isPaid    *bool
	limit     int
	offset    int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query to list orders. Non-empty status and
// orderType filters must name known values. A non-positive limit falls back
// to 20 and limits above 100 are clamped; a negative offset falls back to 0.
func NewListOrdersQuery(status, orderType string, isPaid *bool, limit, offset int) (ListOrdersQuery, error) {
	query := ListOrdersQuery{
		isPaid: isPaid,
		limit:  normalizeLimit(limit),
		offset: max(offset, 0),
		guard:  guard.NewConstructorGuard(),
	}

	if status != "" {
		parsed, err := order.StatusFromString(status)
		if err != nil {
			return ListOrdersQuery{}, err
		}
		query.status = parsed.String()
	}

	if orderType != "" {
		parsed, err := order.TypeFromString(orderType)
		if err != nil {
			return ListOrdersQuery{}, err
		}
		query.orderType = parsed.String()
	}

	return query, nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	return min(limit, maxListLimit)
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the status filter, empty for no filter.
func (q ListOrdersQuery) Status() string {
	return q.status
}

// OrderType returns the type filter, empty for no filter.
func (q ListOrdersQuery) OrderType() string {
	return q.orderType
}

// IsPaid returns the payment filter, nil for no filter.
func (q ListOrdersQuery) IsPaid() *bool {
	return q.isPaid
}

// Limit returns the page size.
func (q ListOrdersQuery) Limit() int {
	return q.limit
}

// Offset returns the number of rows to skip.
func (q ListOrdersQuery) Offset() int {
	return q.offset
}

// ListOrdersQueryResponse represents one order row in the listing.
type ListOrdersQueryResponse struct {
	ID            kernel.UUID
	Type          string
	Status        string
	CustomerName  string
	TotalPrice    decimal.Decimal
	IsPaid        bool
	PaymentMethod string
	ItemCount     int
	CreatedAt     time.Time
}
