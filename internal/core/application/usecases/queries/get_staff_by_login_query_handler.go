package queries

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStaffByLoginQueryHandler resolves login credentials for authentication.
type GetStaffByLoginQueryHandler struct {
	db *gorm.DB
}

// NewGetStaffByLoginQueryHandler creates a handler for credential lookups.
func NewGetStaffByLoginQueryHandler(db *gorm.DB) GetStaffByLoginQueryHandler {
	return GetStaffByLoginQueryHandler{db: db}
}

// Handle executes the lookup and returns the credential record.
func (h GetStaffByLoginQueryHandler) Handle(
	ctx context.Context,
	query GetStaffByLoginQuery,
) (GetStaffByLoginQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStaffByLoginQueryResponse{}, err
	}

	stmt := `
		SELECT
			id,
			name,
			login,
			password_hash,
			role,
			is_active
		FROM staff
		WHERE login = ?
	`

	rows, err := h.db.WithContext(ctx).Raw(stmt, query.Login()).Rows()
	if err != nil {
		return GetStaffByLoginQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return GetStaffByLoginQueryResponse{}, err
		}

		return GetStaffByLoginQueryResponse{}, errs.NewObjectNotFoundError("staff", query.Login())
	}

	var response GetStaffByLoginQueryResponse
	var id uuid.UUID

	err = rows.Scan(
		&id,
		&response.Name,
		&response.Login,
		&response.PasswordHash,
		&response.Role,
		&response.IsActive,
	)
	if err != nil {
		return GetStaffByLoginQueryResponse{}, err
	}

	response.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetStaffByLoginQueryResponse{}, err
	}

	return response, rows.Err()
}
