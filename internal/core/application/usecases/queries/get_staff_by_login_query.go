package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrGetStaffByLoginQueryIsNotConstructed = errors.New(
	"GetStaffByLoginQuery must be created via NewGetStaffByLoginQuery constructor",
)

// GetStaffByLoginQuery looks up a single staff member by login.
// The response carries the password hash, so it must stay inside the
// authentication flow and never leak into a public listing.
type GetStaffByLoginQuery struct {
	login string

	guard guard.ConstructorGuard
}

// NewGetStaffByLoginQuery creates a validated lookup query.
func NewGetStaffByLoginQuery(login string) (GetStaffByLoginQuery, error) {
	if login == "" {
		return GetStaffByLoginQuery{}, errs.NewValueIsRequiredError("login")
	}

	return GetStaffByLoginQuery{
		login: login,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Login returns the login being looked up.
func (q GetStaffByLoginQuery) Login() string {
	return q.login
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStaffByLoginQueryIsNotConstructed if validation fails.
func (q GetStaffByLoginQuery) Validate() error {
	return q.guard.Validate(ErrGetStaffByLoginQueryIsNotConstructed)
}

// GetStaffByLoginQueryResponse is the credential record for one staff member.
type GetStaffByLoginQueryResponse struct {
	ID           kernel.UUID
	Name         string
	Login        string
	PasswordHash string
	Role         string
	IsActive     bool
}
