// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves one order with its lines and, when the order is
// being delivered, its delivery.
//
// Example:
//
//	query, _ := NewGetOrderQuery(orderID)
//	handler := NewGetOrderQueryHandler(db)
//
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//
//	fmt.Printf("Order %s (%s): %s\n", view.ID, view.Status, view.TotalPrice)
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve a single order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to retrieve.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryItem represents one order line in the read model.
type GetOrderQueryItem struct {
	ID        kernel.UUID
	ProductID kernel.UUID
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

// GetOrderQueryDelivery represents the delivery attached to an order, when
// one exists.
type GetOrderQueryDelivery struct {
	ID           kernel.UUID
	DriverID     kernel.UUID
	Status       string
	Address      string
	Notes        string
	DispatchedAt *time.Time
	DeliveredAt  *time.Time
}

// GetOrderQueryResponse represents a full order in the read model.
type GetOrderQueryResponse struct {
	ID              kernel.UUID
	Type            string
	Status          string
	CustomerName    string
	CustomerPhone   string
	DeliveryAddress string
	Notes           string
	TotalPrice      decimal.Decimal
	IsPaid          bool
	PaymentMethod   string
	Version         int
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Items           []GetOrderQueryItem
	Delivery        *GetOrderQueryDelivery
}
