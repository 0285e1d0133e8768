package order

import (
	"restaurant/internal/pkg/errs"
)

// Type distinguishes how an order leaves the restaurant. It constrains which
// terminal branch of the status machine is reachable: only DELIVERY orders may
// enter the delivery states, and only DINE_IN or PICKUP orders may enter
// READY_FOR_PICKUP.
type Type string

const (
	// DineIn orders are served at a table.
	DineIn Type = "DINE_IN"

	// Pickup orders are collected by the customer.
	Pickup Type = "PICKUP"

	// Delivery orders are brought to the customer by a driver.
	Delivery Type = "DELIVERY"
)

func validTypes() map[Type]struct{} {
	return map[Type]struct{}{
		DineIn:   {},
		Pickup:   {},
		Delivery: {},
	}
}

// TypeFromString parses an order type received from the API or storage.
func TypeFromString(raw string) (Type, error) {
	orderType := Type(raw)
	if err := orderType.Validate(); err != nil {
		return "", err
	}
	return orderType, nil
}

// Validate checks if the Type value is one of the defined order types.
func (t Type) Validate() error {
	if _, ok := validTypes()[t]; !ok {
		return errs.NewValueIsInvalidError("order type " + string(t))
	}
	return nil
}

// String returns the wire representation of the order type.
func (t Type) String() string {
	return string(t)
}

// IsDelivery reports whether the order is handed to a driver.
func (t Type) IsDelivery() bool {
	return t == Delivery
}
