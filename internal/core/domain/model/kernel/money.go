package kernel

import (
	"errors"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly initialized Money.
// Money must be created using NewMoney, NewMoneyFromString or ZeroMoney to ensure validity.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney, NewMoneyFromString or ZeroMoney constructors")

// Money represents a non-negative monetary amount with two decimal places.
// Money is an immutable value object backed by decimal arithmetic, so item
// totals never accumulate floating-point drift.
// The zero value of Money is invalid and will fail validation - use constructors to create instances.
//
// Example:
//
//	price, err := kernel.NewMoneyFromString("9.99")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Price: %s", price) // Output: Price: 9.99
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney creates a new Money from a decimal amount.
// The amount must not be negative and is rounded to two decimal places.
//
// Parameters:
//   - amount: The monetary amount (must be zero or positive)
//
// Returns:
//   - Money: A valid money instance
//   - error: Validation error if the amount is negative
//
// Example:
//
//	price, err := NewMoney(decimal.NewFromInt(10))
//	if err != nil {
//	    log.Fatal("Invalid amount:", err)
//	}
func NewMoney(amount decimal.Decimal) (Money, error) {
	m := Money{
		guard: guard.NewConstructorGuard(),
	}

	if err := m.setAmount(amount); err != nil {
		return Money{}, err
	}

	return m, nil
}

// NewMoneyFromString creates a new Money from its decimal string representation,
// for example "25.00" or "9.9". Returns an error if the string is not a valid
// decimal number or the amount is negative.
//
// Example:
//
//	price, err := NewMoneyFromString("19.90")
//	if err != nil {
//	    return fmt.Errorf("invalid price: %w", err)
//	}
func NewMoneyFromString(raw string) (Money, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}

	return NewMoney(amount)
}

// ZeroMoney creates a valid Money holding the amount 0.00.
// It is used as the starting value when accumulating totals.
func ZeroMoney() Money {
	return Money{
		amount: decimal.Zero,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate checks if the Money was properly constructed using a constructor.
// The zero value of Money is invalid and will fail this validation.
//
// Returns:
//   - error: ErrMoneyIsNotConstructed if the money was not properly initialized, nil otherwise
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the underlying decimal amount.
// The returned amount is guaranteed to be non-negative with two decimal places
// for properly constructed Money instances.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns a new Money holding the sum of both amounts.
// Both values must be properly constructed (pass validation) for the operation to succeed.
//
// Parameters:
//   - other: The Money to add
//
// Returns:
//   - Money: The sum of both amounts
//   - error: Validation error if either money is improperly constructed
//
// Example:
//
//	a, _ := NewMoneyFromString("20.00")
//	b, _ := NewMoneyFromString("5.00")
//	total, err := a.Add(b)
//	// total = 25.00, err = nil
func (m Money) Add(other Money) (Money, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return Money{}, err
	}

	return NewMoney(m.amount.Add(other.amount))
}

// MultiplyBy returns a new Money holding the amount multiplied by quantity.
// Quantity must not be negative.
//
// Parameters:
//   - quantity: The multiplier (must be zero or positive)
//
// Returns:
//   - Money: The multiplied amount
//   - error: Validation error if the money is improperly constructed or quantity is negative
//
// Example:
//
//	price, _ := NewMoneyFromString("10.00")
//	lineTotal, err := price.MultiplyBy(2)
//	// lineTotal = 20.00, err = nil
func (m Money) MultiplyBy(quantity int) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if quantity < 0 {
		return Money{}, errs.NewValueIsInvalidError("quantity")
	}

	return NewMoney(m.amount.Mul(decimal.NewFromInt(int64(quantity))))
}

// IsEqual compares two monetary amounts for equality.
// Both values must be properly constructed (pass validation) for the comparison to succeed.
//
// Parameters:
//   - other: The Money to compare with
//
// Returns:
//   - bool: true if the amounts are equal, false otherwise
//   - error: Validation error if either money is improperly constructed
func (m Money) IsEqual(other Money) (bool, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return m.amount.Equal(other.amount), nil
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// String returns the amount formatted with two decimal places, e.g. "25.00".
// This method implements the fmt.Stringer interface.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// setAmount sets the amount with validation.
// Note: We intentionally use a pointer receiver here while other methods use value
// receivers, so the private setter can self-encapsulate validation of business
// requirements during object construction.
func (m *Money) setAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidError("amount")
	}

	m.amount = amount.Round(2)
	return nil
}
