package queries

import (
	"context"
	"database/sql"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListDeliveriesQueryHandler retrieves the delivery board for dispatchers.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type ListDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewListDeliveriesQueryHandler creates a handler for delivery board queries.
// Requires a GORM database connection for query execution.
func NewListDeliveriesQueryHandler(db *gorm.DB) ListDeliveriesQueryHandler {
	return ListDeliveriesQueryHandler{db: db}
}

// Handle executes the query. Returns delivery rows newest first with the
// assigned driver's name resolved from the staff directory.
func (h ListDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query ListDeliveriesQuery,
) ([]ListDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := `
		SELECT
			d.id,
			d.order_id,
			d.driver_id,
			s.name AS driver_name,
			d.status,
			d.address,
			d.notes,
			d.dispatched_at,
			d.delivered_at,
			d.created_at
		FROM deliveries d
		JOIN staff s ON s.id = d.driver_id
	`

	args := make([]any, 0, 1)
	if query.Status() != "" {
		stmt += " WHERE d.status = ?"
		args = append(args, query.Status())
	}
	stmt += " ORDER BY d.created_at DESC"

	deliveries := make([]ListDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row ListDeliveriesQueryResponse
		var id, orderID, driverID uuid.UUID
		var dispatchedAt, deliveredAt sql.NullTime

		err = rows.Scan(
			&id,
			&orderID,
			&driverID,
			&row.DriverName,
			&row.Status,
			&row.Address,
			&row.Notes,
			&dispatchedAt,
			&deliveredAt,
			&row.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		row.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		row.OrderID, err = kernel.UUIDFromBytes(orderID[:])
		if err != nil {
			return nil, err
		}
		row.DriverID, err = kernel.UUIDFromBytes(driverID[:])
		if err != nil {
			return nil, err
		}
		if dispatchedAt.Valid {
			row.DispatchedAt = &dispatchedAt.Time
		}
		if deliveredAt.Valid {
			row.DeliveredAt = &deliveredAt.Time
		}

		deliveries = append(deliveries, row)
	}

	return deliveries, rows.Err()
}
