package queries

import (
	"context"
	"database/sql"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order with its lines and optional
// delivery. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order retrieval.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFoundError when no order with
// the given identifier exists.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	response, err := h.scanOrder(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	response.Items, err = h.scanItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	response.Delivery, err = h.scanDelivery(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return response, nil
}

func (h GetOrderQueryHandler) scanOrder(ctx context.Context, orderID kernel.UUID) (GetOrderQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			type,
			status,
			customer_name,
			customer_phone,
			delivery_address,
			notes,
			total_price,
			is_paid,
			payment_method,
			version,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderQueryResponse{}, err
		}
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", orderID)
	}

	var response GetOrderQueryResponse
	var id uuid.UUID

	err = rows.Scan(
		&id,
		&response.Type,
		&response.Status,
		&response.CustomerName,
		&response.CustomerPhone,
		&response.DeliveryAddress,
		&response.Notes,
		&response.TotalPrice,
		&response.IsPaid,
		&response.PaymentMethod,
		&response.Version,
		&response.CreatedAt,
		&response.UpdatedAt,
	)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	response.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return response, rows.Err()
}

func (h GetOrderQueryHandler) scanItems(ctx context.Context, orderID kernel.UUID) ([]GetOrderQueryItem, error) {
	items := make([]GetOrderQueryItem, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			name,
			unit_price,
			quantity
		FROM order_items
		WHERE order_id = ?
		ORDER BY position
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetOrderQueryItem
		var id, productID uuid.UUID

		err = rows.Scan(
			&id,
			&productID,
			&item.Name,
			&item.UnitPrice,
			&item.Quantity,
		)
		if err != nil {
			return nil, err
		}

		item.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		item.ProductID, err = kernel.UUIDFromBytes(productID[:])
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, rows.Err()
}

func (h GetOrderQueryHandler) scanDelivery(ctx context.Context, orderID kernel.UUID) (*GetOrderQueryDelivery, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			driver_id,
			status,
			address,
			notes,
			dispatched_at,
			delivered_at
		FROM deliveries
		WHERE order_id = ?
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	var view GetOrderQueryDelivery
	var id, driverID uuid.UUID
	var dispatchedAt, deliveredAt sql.NullTime

	err = rows.Scan(
		&id,
		&driverID,
		&view.Status,
		&view.Address,
		&view.Notes,
		&dispatchedAt,
		&deliveredAt,
	)
	if err != nil {
		return nil, err
	}

	view.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	view.DriverID, err = kernel.UUIDFromBytes(driverID[:])
	if err != nil {
		return nil, err
	}
	if dispatchedAt.Valid {
		view.DispatchedAt = &dispatchedAt.Time
	}
	if deliveredAt.Valid {
		view.DeliveredAt = &deliveredAt.Time
	}

	return &view, rows.Err()
}
