package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/staff"
	"restaurant/internal/pkg/guard"
)

var (
	ErrListStaffQueryIsNotConstructed = errors.New(
		"ListStaffQuery must be created via NewListStaffQuery constructor",
	)
)

// ListStaffQuery retrieves the staff directory, sorted by name. The role
// filter is optional. Password hashes never appear in this listing.
//
// Example:
//
//	query, _ := NewListStaffQuery("COURIER")
//	handler := NewListStaffQueryHandler(db)
//
//	drivers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list staff: %w", err)
//	}
type ListStaffQuery struct {
	role string

	guard guard.ConstructorGuard
}

// NewListStaffQuery creates a query to list staff members. A non-empty role
// filter must name a known role.
func NewListStaffQuery(role string) (ListStaffQuery, error) {
	query := ListStaffQuery{guard: guard.NewConstructorGuard()}

	if role != "" {
		parsed, err := staff.RoleFromString(role)
		if err != nil {
			return ListStaffQuery{}, err
		}
		query.role = parsed.String()
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListStaffQueryIsNotConstructed if validation fails.
func (q ListStaffQuery) Validate() error {
	return q.guard.Validate(ErrListStaffQueryIsNotConstructed)
}

// Role returns the role filter, empty for no filter.
func (q ListStaffQuery) Role() string {
	return q.role
}

// ListStaffQueryResponse represents one staff member in the directory
// listing.
type ListStaffQueryResponse struct {
	ID        kernel.UUID
	Name      string
	Login     string
	Role      string
	IsActive  bool
	CreatedAt time.Time
}
