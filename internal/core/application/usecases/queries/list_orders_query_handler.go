package queries

import (
	"context"
	"strings"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves pages of orders for the admin board.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query. Returns order rows newest first with a line
// count per order; filters narrow the page before limit and offset apply.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := `
		SELECT
			o.id,
			o.type,
			o.status,
			o.customer_name,
			o.total_price,
			o.is_paid,
			o.payment_method,
			(SELECT COUNT(*) FROM order_items i WHERE i.order_id = o.id) AS item_count,
			o.created_at
		FROM orders o
	`

	conditions := make([]string, 0, 3)
	args := make([]any, 0, 5)
	if query.Status() != "" {
		conditions = append(conditions, "o.status = ?")
		args = append(args, query.Status())
	}
	if query.OrderType() != "" {
		conditions = append(conditions, "o.type = ?")
		args = append(args, query.OrderType())
	}
	if query.IsPaid() != nil {
		conditions = append(conditions, "o.is_paid = ?")
		args = append(args, *query.IsPaid())
	}
	if len(conditions) > 0 {
		stmt += " WHERE " + strings.Join(conditions, " AND ")
	}
	stmt += " ORDER BY o.created_at DESC LIMIT ? OFFSET ?"
	args = append(args, query.Limit(), query.Offset())

	orders := make([]ListOrdersQueryResponse, 0, query.Limit())

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row ListOrdersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&row.Type,
			&row.Status,
			&row.CustomerName,
			&row.TotalPrice,
			&row.IsPaid,
			&row.PaymentMethod,
			&row.ItemCount,
			&row.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		row.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		orders = append(orders, row)
	}

	return orders, rows.Err()
}
