package queries

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListStaffQueryHandler retrieves the staff directory.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type ListStaffQueryHandler struct {
	db *gorm.DB
}

// NewListStaffQueryHandler creates a handler for staff directory queries.
// Requires a GORM database connection for query execution.
func NewListStaffQueryHandler(db *gorm.DB) ListStaffQueryHandler {
	return ListStaffQueryHandler{db: db}
}

// Handle executes the query and returns the directory sorted by name.
func (h ListStaffQueryHandler) Handle(
	ctx context.Context,
	query ListStaffQuery,
) ([]ListStaffQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := `
		SELECT
			id,
			name,
			login,
			role,
			is_active,
			created_at
		FROM staff
	`

	args := make([]any, 0, 1)
	if query.Role() != "" {
		stmt += " WHERE role = ?"
		args = append(args, query.Role())
	}
	stmt += " ORDER BY name"

	members := make([]ListStaffQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row ListStaffQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&row.Name,
			&row.Login,
			&row.Role,
			&row.IsActive,
			&row.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		row.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		members = append(members, row)
	}

	return members, rows.Err()
}
