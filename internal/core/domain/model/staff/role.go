package staff

import (
	"restaurant/internal/pkg/errs"
)

// Role determines what a staff member may do in the system.
type Role string

const (
	// Manager administers the catalog and the staff directory.
	Manager Role = "MANAGER"

	// Kitchen prepares orders.
	Kitchen Role = "KITCHEN"

	// Courier carries deliveries and is the only role eligible as a driver.
	Courier Role = "COURIER"
)

func validRoles() map[Role]struct{} {
	return map[Role]struct{}{
		Manager: {},
		Kitchen: {},
		Courier: {},
	}
}

// RoleFromString parses a raw role value.
func RoleFromString(raw string) (Role, error) {
	role := Role(raw)
	if err := role.Validate(); err != nil {
		return "", err
	}
	return role, nil
}

// Validate checks that the role is one of the known staff roles.
func (r Role) Validate() error {
	if _, ok := validRoles()[r]; !ok {
		return errs.NewValueIsInvalidError("staff role " + string(r))
	}
	return nil
}

func (r Role) String() string {
	return string(r)
}

// CanDeliver reports whether the role qualifies for driving deliveries.
func (r Role) CanDeliver() bool {
	return r == Courier
}

// IsManager reports whether the role administers catalog and staff.
func (r Role) IsManager() bool {
	return r == Manager
}
