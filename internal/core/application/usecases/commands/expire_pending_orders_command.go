package commands

import (
	"errors"
	"time"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrExpirePendingOrdersCommandIsNotConstructed = errors.New(
	"ExpirePendingOrdersCommand must be created via NewExpirePendingOrdersCommand constructor",
)

// ExpirePendingOrdersCommand triggers cancellation of PENDING orders that
// were never confirmed within the allowed window. Run periodically by the
// scheduler; each sweep cancels every order older than MaxAge in one
// transaction.
type ExpirePendingOrdersCommand struct { //nolint:recvcheck //using for validation
	maxAge time.Duration

	guard guard.ConstructorGuard
}

// NewExpirePendingOrdersCommand creates a command to expire stale pending orders.
func NewExpirePendingOrdersCommand(maxAge time.Duration) (ExpirePendingOrdersCommand, error) {
	command := ExpirePendingOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setMaxAge(maxAge); err != nil {
		return ExpirePendingOrdersCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrExpirePendingOrdersCommandIsNotConstructed if validation fails.
func (c ExpirePendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrExpirePendingOrdersCommandIsNotConstructed)
}

// MaxAge returns how long a PENDING order may wait before it is cancelled.
func (c ExpirePendingOrdersCommand) MaxAge() time.Duration {
	return c.maxAge
}

func (c *ExpirePendingOrdersCommand) setMaxAge(maxAge time.Duration) error {
	if maxAge <= 0 {
		return errs.NewValueIsInvalidError("maxAge")
	}

	c.maxAge = maxAge
	return nil
}
