package order

import (
	"restaurant/internal/pkg/errs"
)

// PaymentMethod identifies how the customer settles the order. Payment state
// is orthogonal to the status machine and is mutated through its own
// operation.
type PaymentMethod string

const (
	// CashOnDelivery is settled in cash at hand-off.
	CashOnDelivery PaymentMethod = "CASH_ON_DELIVERY"

	// BankTransfer is settled by bank transfer.
	BankTransfer PaymentMethod = "BANK"

	// Card is settled by card.
	Card PaymentMethod = "CARD"
)

func validPaymentMethods() map[PaymentMethod]struct{} {
	return map[PaymentMethod]struct{}{
		CashOnDelivery: {},
		BankTransfer:   {},
		Card:           {},
	}
}

// PaymentMethodFromString parses a payment method received from the API or storage.
func PaymentMethodFromString(raw string) (PaymentMethod, error) {
	method := PaymentMethod(raw)
	if err := method.Validate(); err != nil {
		return "", err
	}
	return method, nil
}

// Validate checks if the PaymentMethod value is one of the defined methods.
func (m PaymentMethod) Validate() error {
	if _, ok := validPaymentMethods()[m]; !ok {
		return errs.NewValueIsInvalidError("payment method " + string(m))
	}
	return nil
}

// String returns the wire representation of the payment method.
func (m PaymentMethod) String() string {
	return string(m)
}
