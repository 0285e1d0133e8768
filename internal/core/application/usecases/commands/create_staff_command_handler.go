package commands

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"restaurant/internal/core/domain/model/staff"
)

// CreateStaffCommandHandler registers staff members. The password is bcrypt
// hashed here so nothing below the application layer ever sees plaintext.
type CreateStaffCommandHandler struct {
	uowFactory StaffUoWFactory
}

// NewCreateStaffCommandHandler creates a handler for staff registration.
func NewCreateStaffCommandHandler(uowFactory StaffUoWFactory) CreateStaffCommandHandler {
	return CreateStaffCommandHandler{uowFactory: uowFactory}
}

// Handle processes the staff registration command. A duplicate login is
// rejected by the unique index on the staff table.
func (h CreateStaffCommandHandler) Handle(ctx context.Context, cmd CreateStaffCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	member, err := staff.NewStaff(cmd.StaffID(), cmd.Name(), cmd.Login(), string(passwordHash), cmd.Role())
	if err != nil {
		return err
	}

	if err = uow.StaffRepository().Add(ctx, member); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
