package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/staff"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrCreateStaffCommandIsNotConstructed = errors.New(
	"CreateStaffCommand must be created via NewCreateStaffCommand constructor",
)

const minPasswordLength = 8

// CreateStaffCommand represents a request to register a staff member. The
// plaintext password lives only in this command; the handler stores a bcrypt
// hash and the plaintext is never persisted.
type CreateStaffCommand struct { //nolint:recvcheck //using for validation
	staffID  kernel.UUID
	name     string
	login    string
	password string
	role     staff.Role

	guard guard.ConstructorGuard
}

// NewCreateStaffCommand creates a command to register a staff member.
func NewCreateStaffCommand(name, login, password string, role staff.Role) (CreateStaffCommand, error) {
	command := CreateStaffCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setStaffID(kernel.NewUUID()),
		command.setName(name),
		command.setLogin(login),
		command.setPassword(password),
		command.setRole(role),
	); err != nil {
		return CreateStaffCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateStaffCommandIsNotConstructed if validation fails.
func (c CreateStaffCommand) Validate() error {
	return c.guard.Validate(ErrCreateStaffCommandIsNotConstructed)
}

// StaffID returns the generated identifier for the new staff member.
func (c CreateStaffCommand) StaffID() kernel.UUID {
	return c.staffID
}

// Name returns the staff member's display name.
func (c CreateStaffCommand) Name() string {
	return c.name
}

// Login returns the unique login.
func (c CreateStaffCommand) Login() string {
	return c.login
}

// Password returns the plaintext password to be hashed by the handler.
func (c CreateStaffCommand) Password() string {
	return c.password
}

// Role returns the staff member's role.
func (c CreateStaffCommand) Role() staff.Role {
	return c.role
}

func (c *CreateStaffCommand) setStaffID(staffID kernel.UUID) error {
	if err := staffID.Validate(); err != nil {
		return err
	}

	c.staffID = staffID
	return nil
}

func (c *CreateStaffCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateStaffCommand) setLogin(login string) error {
	if login == "" {
		return errs.NewValueIsRequiredError("login")
	}

	c.login = login
	return nil
}

func (c *CreateStaffCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	if len(password) < minPasswordLength {
		return errs.NewValueIsInvalidError("password")
	}

	c.password = password
	return nil
}

func (c *CreateStaffCommand) setRole(role staff.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
