package product

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	// ErrProductIsNotConstructed is returned when using an improperly initialized Product.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Product represents a menu item that orders reference. Orders snapshot the
// product name and price at creation, so later edits here never rewrite
// history.
//
// Business rules:
//   - Product must have a valid UUID, a non-empty name, and a positive price
//   - An unavailable product cannot be added to new orders
type Product struct {
	// id uniquely identifies the product
	id kernel.UUID
	// name is shown on the menu and snapshotted into order lines
	name string
	// description is free-form menu text
	description string
	// price is the current unit price, snapshotted into order lines
	price kernel.Money
	// isAvailable gates whether new orders may reference the product
	isAvailable bool

	createdAt time.Time
	updatedAt time.Time

	// guard ensures the product was properly constructed
	guard guard.ConstructorGuard
}

// NewProduct creates a new Product with the specified parameters.
//
// Parameters:
//   - id: Unique identifier (must be a valid UUID)
//   - name: Menu name (must be non-empty)
//   - description: Free-form menu text (optional)
//   - price: Unit price (must be positive)
//   - isAvailable: Whether the product can be ordered right away
//
// Returns:
//   - *Product: The created product if all validations pass
//   - error: Aggregated validation errors, if any
func NewProduct(id kernel.UUID, name, description string, price kernel.Money, isAvailable bool) (*Product, error) {
	now := time.Now().UTC()
	product := &Product{
		description: description,
		isAvailable: isAvailable,
		createdAt:   now,
		updatedAt:   now,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		product.setID(id),
		product.setName(name),
		product.setPrice(price),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// RestoreProduct reconstructs a Product from persistent storage.
func RestoreProduct(
	id kernel.UUID,
	name, description string,
	price kernel.Money,
	isAvailable bool,
	createdAt, updatedAt time.Time,
) (*Product, error) {
	product := &Product{
		description: description,
		isAvailable: isAvailable,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		product.setID(id),
		product.setName(name),
		product.setPrice(price),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// Validate checks if the Product was properly constructed using a constructor.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the menu name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the free-form menu text.
func (p *Product) Description() string {
	return p.description
}

// Price returns the current unit price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// IsAvailable reports whether new orders may reference the product.
func (p *Product) IsAvailable() bool {
	return p.isAvailable
}

// CreatedAt returns when the product was added to the menu.
func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns when the product was last edited.
func (p *Product) UpdatedAt() time.Time {
	return p.updatedAt
}

// Update replaces the product's menu attributes. Existing order lines keep
// their snapshots; only future orders see the change.
func (p *Product) Update(name, description string, price kernel.Money, isAvailable bool) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if err := errors.Join(
		p.setName(name),
		p.setPrice(price),
	); err != nil {
		return err
	}

	p.description = description
	p.isAvailable = isAvailable
	p.updatedAt = time.Now().UTC()

	return nil
}

// ValidateAvailable checks that the product can be added to a new order.
func (p *Product) ValidateAvailable() error {
	if err := p.Validate(); err != nil {
		return err
	}
	if !p.isAvailable {
		return errs.NewProductUnavailableError(p.id.String(), p.name)
	}

	return nil
}

// setID sets the product's unique identifier with validation.
func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

// setName validates and sets the menu name.
func (p *Product) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

// setPrice validates and sets the unit price. Zero-priced items are not
// sold: free extras belong in the description.
func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is not greater than 0", price))
	}
	p.price = price
	return nil
}
