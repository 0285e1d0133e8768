package queries

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListProductsQueryHandler retrieves the menu.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type ListProductsQueryHandler struct {
	db *gorm.DB
}

// NewListProductsQueryHandler creates a handler for menu queries.
// Requires a GORM database connection for query execution.
func NewListProductsQueryHandler(db *gorm.DB) ListProductsQueryHandler {
	return ListProductsQueryHandler{db: db}
}

// Handle executes the query and returns the menu sorted by name.
func (h ListProductsQueryHandler) Handle(
	ctx context.Context,
	query ListProductsQuery,
) ([]ListProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := `
		SELECT
			id,
			name,
			description,
			price,
			is_available,
			updated_at
		FROM products
	`
	if query.OnlyAvailable() {
		stmt += " WHERE is_available"
	}
	stmt += " ORDER BY name"

	products := make([]ListProductsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(stmt).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row ListProductsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&row.Name,
			&row.Description,
			&row.Price,
			&row.IsAvailable,
			&row.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		row.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		products = append(products, row)
	}

	return products, rows.Err()
}
