package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/delivery"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var (
	ErrListDeliveriesQueryIsNotConstructed = errors.New(
		"ListDeliveriesQuery must be created via NewListDeliveriesQuery constructor",
	)
)

// ListDeliveriesQuery retrieves the delivery board, newest first, with the
// driver's name joined in. The status filter is optional.
//
// Example:
//
//	query, _ := NewListDeliveriesQuery("ASSIGNED")
//	handler := NewListDeliveriesQueryHandler(db)
//
//	board, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list deliveries: %w", err)
//	}
type ListDeliveriesQuery struct {
	status string

	guard guard.ConstructorGuard
}

// NewListDeliveriesQuery creates a query to list deliveries. A non-empty
// status filter must name a known delivery status.
func NewListDeliveriesQuery(status string) (ListDeliveriesQuery, error) {
	query := ListDeliveriesQuery{guard: guard.NewConstructorGuard()}

	if status != "" {
		parsed, err := delivery.StatusFromString(status)
		if err != nil {
			return ListDeliveriesQuery{}, err
		}
		query.status = parsed.String()
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListDeliveriesQueryIsNotConstructed if validation fails.
func (q ListDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrListDeliveriesQueryIsNotConstructed)
}

// Status returns the status filter, empty for no filter.
func (q ListDeliveriesQuery) Status() string {
	return q.status
}

// ListDeliveriesQueryResponse represents one delivery row on the board.
type ListDeliveriesQueryResponse struct {
	ID           kernel.UUID
	OrderID      kernel.UUID
	DriverID     kernel.UUID
	DriverName   string
	Status       string
	Address      string
	Notes        string
	DispatchedAt *time.Time
	DeliveredAt  *time.Time
	CreatedAt    time.Time
}
