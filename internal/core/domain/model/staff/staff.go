package staff

import (
	"errors"
	"strings"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	// ErrStaffIsNotConstructed is returned when using an improperly initialized Staff.
	ErrStaffIsNotConstructed = errors.New("Staff must be created via NewStaff constructor")
)

// Staff represents a member of the restaurant's staff directory.
// It is an aggregate root holding identity, credentials, and the role that
// gates what the member may do.
//
// Business rules:
//   - Staff must have a valid UUID, non-empty name and login, and a password hash
//   - The login is unique across the directory (enforced by storage)
//   - Only active COURIER members are eligible to drive deliveries
//
// The password hash is produced by the application layer (bcrypt); this
// aggregate only requires that some hash is present. Plain passwords never
// reach the domain.
type Staff struct {
	// id uniquely identifies the staff member
	id kernel.UUID
	// name is the human-readable name
	name string
	// login is the unique credential identifier
	login string
	// passwordHash is the bcrypt hash of the member's password
	passwordHash string
	// role gates permissions and delivery eligibility
	role Role
	// isActive disables the member without deleting directory history
	isActive bool

	createdAt time.Time
	updatedAt time.Time

	// guard ensures the staff member was properly constructed
	guard guard.ConstructorGuard
}

// NewStaff creates a new active Staff member.
//
// Parameters:
//   - id: Unique identifier (must be a valid UUID)
//   - name: Human-readable name (must be non-empty)
//   - login: Unique credential identifier (must be non-empty)
//   - passwordHash: bcrypt hash of the password (must be non-empty)
//   - role: MANAGER, KITCHEN or COURIER
//
// Returns:
//   - *Staff: The created member if all validations pass
//   - error: Aggregated validation errors, if any
func NewStaff(id kernel.UUID, name, login, passwordHash string, role Role) (*Staff, error) {
	now := time.Now().UTC()
	member := &Staff{
		isActive:  true,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		member.setID(id),
		member.setName(name),
		member.setLogin(login),
		member.setPasswordHash(passwordHash),
		member.setRole(role),
	); err != nil {
		return nil, err
	}

	return member, nil
}

// RestoreStaff reconstructs a Staff member from persistent storage,
// preserving the persisted active flag and timestamps.
func RestoreStaff(
	id kernel.UUID,
	name, login, passwordHash string,
	role Role,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*Staff, error) {
	member := &Staff{
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		member.setID(id),
		member.setName(name),
		member.setLogin(login),
		member.setPasswordHash(passwordHash),
		member.setRole(role),
	); err != nil {
		return nil, err
	}

	return member, nil
}

// Validate checks if the Staff was properly constructed using a constructor.
func (s *Staff) Validate() error {
	if s == nil {
		return ErrStaffIsNotConstructed
	}
	return s.guard.Validate(ErrStaffIsNotConstructed)
}

// IsEqual compares two staff members by their unique identifiers.
func (s *Staff) IsEqual(other *Staff) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the staff member's unique identifier.
func (s *Staff) ID() kernel.UUID {
	return s.id
}

// Name returns the human-readable name.
func (s *Staff) Name() string {
	return s.name
}

// Login returns the unique credential identifier.
func (s *Staff) Login() string {
	return s.login
}

// PasswordHash returns the stored bcrypt hash for credential verification.
func (s *Staff) PasswordHash() string {
	return s.passwordHash
}

// Role returns the member's role.
func (s *Staff) Role() Role {
	return s.role
}

// IsActive reports whether the member may act in the system.
func (s *Staff) IsActive() bool {
	return s.isActive
}

// CreatedAt returns when the member joined the directory.
func (s *Staff) CreatedAt() time.Time {
	return s.createdAt
}

// UpdatedAt returns when the member was last edited.
func (s *Staff) UpdatedAt() time.Time {
	return s.updatedAt
}

// ValidateCanDeliver checks that the member is eligible to drive a delivery:
// the role must be COURIER and the member must be active.
func (s *Staff) ValidateCanDeliver() error {
	if err := s.Validate(); err != nil {
		return err
	}
	if !s.role.CanDeliver() {
		return errs.NewInvalidDriverError(s.id.String(), "staff member is not delivery staff")
	}
	if !s.isActive {
		return errs.NewInvalidDriverError(s.id.String(), "staff member is disabled")
	}

	return nil
}

// setID sets the staff member's unique identifier with validation.
func (s *Staff) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

// setName validates and sets the human-readable name.
func (s *Staff) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}

// setLogin validates and sets the credential identifier.
func (s *Staff) setLogin(login string) error {
	if strings.TrimSpace(login) == "" {
		return errs.NewValueIsRequiredError("login")
	}
	s.login = login
	return nil
}

// setPasswordHash validates and sets the stored credential hash.
func (s *Staff) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	s.passwordHash = passwordHash
	return nil
}

// setRole validates and sets the member's role.
func (s *Staff) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	s.role = role
	return nil
}
