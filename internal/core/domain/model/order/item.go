package order

import (
	"errors"
	"fmt"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

// ErrOrderItemIsNotConstructed indicates that an OrderItem was not properly
// initialized through the NewOrderItem or RestoreOrderItem constructors.
var ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem constructor")

// OrderItem is one line of an order. The product name and unit price are
// snapshotted from the catalog at creation time, so later catalog changes
// never affect an existing order.
type OrderItem struct {
	// id uniquely identifies the line within the order
	id kernel.UUID

	// productID references the catalog product the line was created from
	productID kernel.UUID

	// name is the product name at the time the order was placed
	name string

	// unitPrice is the product price at the time the order was placed
	unitPrice kernel.Money

	// quantity is the number of units ordered (always positive)
	quantity int

	// guard ensures the item was properly constructed
	guard guard.ConstructorGuard
}

// NewOrderItem creates an order line with a fresh identity, snapshotting the
// product's name and unit price.
//
// Parameters:
//   - productID: The catalog product being ordered (must be a valid UUID)
//   - name: The product name snapshot (must not be empty)
//   - unitPrice: The product price snapshot (must be constructed Money)
//   - quantity: Number of units (must be greater than 0)
//
// Returns:
//   - OrderItem: The created line if all validations pass
//   - error: Aggregated validation errors, if any
func NewOrderItem(productID kernel.UUID, name string, unitPrice kernel.Money, quantity int) (OrderItem, error) {
	return newOrderItem(kernel.NewUUID(), productID, name, unitPrice, quantity)
}

// RestoreOrderItem reconstructs an order line from persistent storage,
// preserving its original identity.
func RestoreOrderItem(id, productID kernel.UUID, name string, unitPrice kernel.Money, quantity int) (OrderItem, error) {
	return newOrderItem(id, productID, name, unitPrice, quantity)
}

func newOrderItem(id, productID kernel.UUID, name string, unitPrice kernel.Money, quantity int) (OrderItem, error) {
	item := OrderItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setName(name),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return OrderItem{}, err
	}

	return item, nil
}

// Validate ensures the OrderItem was properly constructed through a constructor.
func (i OrderItem) Validate() error {
	return i.guard.Validate(ErrOrderItemIsNotConstructed)
}

// ID returns the line's unique identifier.
func (i OrderItem) ID() kernel.UUID {
	return i.id
}

// ProductID returns the catalog product the line was created from.
func (i OrderItem) ProductID() kernel.UUID {
	return i.productID
}

// Name returns the product name snapshot.
func (i OrderItem) Name() string {
	return i.name
}

// UnitPrice returns the product price snapshot.
func (i OrderItem) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Quantity returns the number of units ordered.
func (i OrderItem) Quantity() int {
	return i.quantity
}

// LineTotal returns the unit price multiplied by the quantity.
func (i OrderItem) LineTotal() (kernel.Money, error) {
	if err := i.Validate(); err != nil {
		return kernel.Money{}, err
	}
	return i.unitPrice.MultiplyBy(i.quantity)
}

func (i *OrderItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *OrderItem) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *OrderItem) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *OrderItem) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	i.unitPrice = unitPrice
	return nil
}

func (i *OrderItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
