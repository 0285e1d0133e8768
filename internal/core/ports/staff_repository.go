package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/staff"
)

// StaffRepository defines the persistence contract for the staff directory.
// Storage enforces login uniqueness.
type StaffRepository interface {
	// Add persists a new staff member.
	Add(ctx context.Context, aggregate *staff.Staff) error

	// Get retrieves a staff member by identifier.
	Get(ctx context.Context, id kernel.UUID) (*staff.Staff, error)

	// GetByLogin retrieves a staff member by login for credential checks.
	GetByLogin(ctx context.Context, login string) (*staff.Staff, error)
}
