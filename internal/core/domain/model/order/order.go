package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"restaurant/internal/core/domain/events"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a restaurant order. It is the aggregate root that manages
// the order lifecycle from intake through kitchen preparation to hand-off or
// delivery.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and order type
//   - Carries one or more lines with snapshotted product name and price
//   - Total price is the sum of line totals, fixed at creation
//   - Status transitions follow the transition table in this package
//   - Delivery states are reachable only for DELIVERY orders, the pickup
//     state only for DINE_IN and PICKUP orders
//   - Payment state is orthogonal to the status machine
//   - Can only be created through NewOrder or RestoreOrder
//
// State mutations record domain events; the events are published by the
// surrounding unit of work only after its transaction commits.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// orderType selects the reachable terminal branch of the status machine
	orderType Type

	// status represents the current state in the order lifecycle
	status Status

	// customerName identifies who placed the order
	customerName string

	// customerPhone is the customer's callback number (optional)
	customerPhone string

	// deliveryAddress is required for DELIVERY orders
	deliveryAddress string

	// notes carries free-form instructions for the kitchen or driver
	notes string

	// items are the order lines with product snapshots
	items []OrderItem

	// totalPrice is the sum of all line totals, fixed at creation
	totalPrice kernel.Money

	// isPaid tracks whether the order has been settled
	isPaid bool

	// paymentMethod is how the customer settles the order
	paymentMethod PaymentMethod

	// version supports optimistic concurrency control in storage
	version int

	createdAt time.Time
	updatedAt time.Time

	// domainEvents are recorded during mutations and drained after commit
	domainEvents []events.DomainEvent

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in PENDING status and records the
// ORDER_CREATED and KITCHEN_NEW_ORDER events.
//
// Parameters:
//   - id: Unique identifier for the order (must be a valid UUID)
//   - orderType: DINE_IN, PICKUP or DELIVERY
//   - customerName: Who placed the order (must not be empty)
//   - customerPhone: Callback number (optional)
//   - deliveryAddress: Destination address (required for DELIVERY orders)
//   - notes: Free-form instructions (optional)
//   - paymentMethod: How the order is settled
//   - items: One or more validated order lines
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Aggregated validation errors, if any
//
// The total price is computed from the line snapshots during construction and
// never changes afterwards.
func NewOrder(
	id kernel.UUID,
	orderType Type,
	customerName, customerPhone, deliveryAddress, notes string,
	paymentMethod PaymentMethod,
	items []OrderItem,
) (*Order, error) {
	now := time.Now().UTC()
	order := &Order{
		status:        Pending,
		customerPhone: customerPhone,
		notes:         notes,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setType(orderType),
		order.setCustomerName(customerName),
		order.setDeliveryAddress(deliveryAddress),
		order.setPaymentMethod(paymentMethod),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	order.recordEvent(events.New(events.OrderCreated, order.id.String(),
		fmt.Sprintf("Order %s created for %s", order.id, order.customerName),
		map[string]any{
			"orderId":    order.id.String(),
			"orderType":  order.orderType.String(),
			"status":     order.status.String(),
			"totalPrice": order.totalPrice.String(),
			"items":      order.itemsPayload(),
		}))
	order.recordEvent(events.New(events.KitchenNewOrder, order.id.String(),
		fmt.Sprintf("New %s order %s for the kitchen", order.orderType, order.id),
		map[string]any{
			"orderId": order.id.String(),
			"notes":   order.notes,
			"items":   order.itemsPayload(),
		}))

	return order, nil
}

// RestoreOrderParams carries the persisted state needed to rehydrate an Order.
type RestoreOrderParams struct {
	ID              kernel.UUID
	Type            Type
	Status          Status
	CustomerName    string
	CustomerPhone   string
	DeliveryAddress string
	Notes           string
	Items           []OrderItem
	TotalPrice      kernel.Money
	IsPaid          bool
	PaymentMethod   PaymentMethod
	Version         int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// RestoreOrder reconstructs an Order from persistent storage. Unlike NewOrder
// it accepts any valid status, preserves the persisted total price and
// version, and records no events.
func RestoreOrder(params RestoreOrderParams) (*Order, error) {
	order := &Order{
		customerPhone: params.CustomerPhone,
		notes:         params.Notes,
		isPaid:        params.IsPaid,
		createdAt:     params.CreatedAt,
		updatedAt:     params.UpdatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(params.ID),
		order.setType(params.Type),
		order.setStatus(params.Status),
		order.setCustomerName(params.CustomerName),
		order.setDeliveryAddress(params.DeliveryAddress),
		order.setPaymentMethod(params.PaymentMethod),
		order.setRestoredItems(params.Items),
		order.setTotalPrice(params.TotalPrice),
		order.setVersion(params.Version),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a constructor.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Type returns the order type.
func (o *Order) Type() Type {
	return o.orderType
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CustomerName returns who placed the order.
func (o *Order) CustomerName() string {
	return o.customerName
}

// CustomerPhone returns the customer's callback number.
func (o *Order) CustomerPhone() string {
	return o.customerPhone
}

// DeliveryAddress returns the destination address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// Notes returns the free-form instructions attached to the order.
func (o *Order) Notes() string {
	return o.notes
}

// Items returns the order lines.
func (o *Order) Items() []OrderItem {
	return o.items
}

// TotalPrice returns the sum of all line totals, fixed at creation.
func (o *Order) TotalPrice() kernel.Money {
	return o.totalPrice
}

// IsPaid reports whether the order has been settled.
func (o *Order) IsPaid() bool {
	return o.isPaid
}

// PaymentMethod returns how the order is settled.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// Version returns the optimistic concurrency version of the order.
func (o *Order) Version() int {
	return o.version
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order was last mutated.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// TransitionTo moves the order to the requested status.
//
// The transition table is consulted first: pairs it does not list, including
// re-requesting the current status, fail with InvalidTransitionError. For
// pairs the table lists, the order type gate is applied next: a non-DELIVERY
// order cannot enter READY_FOR_DELIVERY and a DELIVERY order cannot enter
// READY_FOR_PICKUP, both failing with InvalidStateError.
//
// On success the order records ORDER_STATUS_CHANGED, plus DELIVERY_READY_ORDER
// when the new status is READY_FOR_DELIVERY.
func (o *Order) TransitionTo(target Status) error {
	if err := o.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	if newStatus == ReadyForDelivery && !o.orderType.IsDelivery() {
		return errs.NewInvalidStateErrorWithCause("transition", "order", o.id.String(), o.status.String(),
			fmt.Errorf("%s orders cannot enter %s", o.orderType, ReadyForDelivery))
	}
	if newStatus == ReadyForPickup && o.orderType.IsDelivery() {
		return errs.NewInvalidStateErrorWithCause("transition", "order", o.id.String(), o.status.String(),
			fmt.Errorf("%s orders cannot enter %s", o.orderType, ReadyForPickup))
	}

	previous := o.status
	o.status = newStatus
	o.touch()

	o.recordEvent(events.New(events.OrderStatusChanged, o.id.String(),
		fmt.Sprintf("Order %s moved from %s to %s", o.id, previous, newStatus),
		map[string]any{
			"orderId": o.id.String(),
			"from":    previous.String(),
			"to":      newStatus.String(),
		}))

	if newStatus == ReadyForDelivery {
		o.recordEvent(events.New(events.DeliveryReadyOrder, o.id.String(),
			fmt.Sprintf("Order %s is ready for delivery", o.id),
			map[string]any{
				"orderId": o.id.String(),
				"address": o.deliveryAddress,
			}))
	}

	return nil
}

// MarkPayment updates the payment state of the order and records ORDER_UPDATED.
// Payment is orthogonal to the status machine: it is legal in every status.
func (o *Order) MarkPayment(isPaid bool, method PaymentMethod) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := o.setPaymentMethod(method); err != nil {
		return err
	}

	o.isPaid = isPaid
	o.touch()

	o.recordEvent(events.New(events.OrderUpdated, o.id.String(),
		fmt.Sprintf("Order %s payment updated", o.id),
		map[string]any{
			"orderId":       o.id.String(),
			"isPaid":        o.isPaid,
			"paymentMethod": o.paymentMethod.String(),
		}))

	return nil
}

// ValidateCanAssignDelivery checks that a delivery may be created for this
// order: the order must be a DELIVERY order currently in READY_FOR_DELIVERY.
func (o *Order) ValidateCanAssignDelivery() error {
	if err := o.Validate(); err != nil {
		return err
	}
	if !o.orderType.IsDelivery() {
		return errs.NewInvalidStateErrorWithCause("assign delivery to", "order", o.id.String(), o.status.String(),
			fmt.Errorf("%s orders are not delivered", o.orderType))
	}
	if o.status != ReadyForDelivery {
		return errs.NewInvalidStateError("assign delivery to", "order", o.id.String(), o.status.String())
	}

	return nil
}

// ValidateDelete checks that the order may be removed. Only PENDING and
// CANCELLED orders qualify.
func (o *Order) ValidateDelete() error {
	if err := o.Validate(); err != nil {
		return err
	}
	if !o.status.CanBeDeleted() {
		return errs.NewInvalidStateError("delete", "order", o.id.String(), o.status.String())
	}

	return nil
}

// ReopenForDelivery reverts the order from OUT_FOR_DELIVERY back to
// READY_FOR_DELIVERY when its delivery is cancelled. This is the only
// reversion the status machine permits and it is reserved for the
// delivery coordinator; any other current status fails with
// InvalidStateError.
func (o *Order) ReopenForDelivery() error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.status != OutForDelivery {
		return errs.NewInvalidStateError("reopen for delivery", "order", o.id.String(), o.status.String())
	}

	o.status = ReadyForDelivery
	o.touch()

	o.recordEvent(events.New(events.OrderStatusChanged, o.id.String(),
		fmt.Sprintf("Order %s moved from %s to %s", o.id, OutForDelivery, ReadyForDelivery),
		map[string]any{
			"orderId": o.id.String(),
			"from":    OutForDelivery.String(),
			"to":      ReadyForDelivery.String(),
		}))

	return nil
}

// DomainEvents returns all events recorded since the last clear.
func (o *Order) DomainEvents() []events.DomainEvent {
	return o.domainEvents
}

// ClearDomainEvents discards all recorded events.
func (o *Order) ClearDomainEvents() {
	o.domainEvents = nil
}

func (o *Order) recordEvent(event events.DomainEvent) {
	o.domainEvents = append(o.domainEvents, event)
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) itemsPayload() []map[string]any {
	lines := make([]map[string]any, 0, len(o.items))
	for _, item := range o.items {
		lines = append(lines, map[string]any{
			"productId": item.ProductID().String(),
			"name":      item.Name(),
			"quantity":  item.Quantity(),
			"unitPrice": item.UnitPrice().String(),
		})
	}
	return lines
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setType validates and sets the order type.
func (o *Order) setType(orderType Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	o.orderType = orderType
	return nil
}

// setStatus validates and sets the status during restoration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setCustomerName validates and sets the customer name.
func (o *Order) setCustomerName(customerName string) error {
	if strings.TrimSpace(customerName) == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	o.customerName = customerName
	return nil
}

// setDeliveryAddress validates and sets the destination address.
// The address is mandatory only for DELIVERY orders.
func (o *Order) setDeliveryAddress(deliveryAddress string) error {
	if o.orderType.IsDelivery() && strings.TrimSpace(deliveryAddress) == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	o.deliveryAddress = deliveryAddress
	return nil
}

// setPaymentMethod validates and sets the payment method.
func (o *Order) setPaymentMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.paymentMethod = method
	return nil
}

// setItems validates the order lines and computes the total price.
func (o *Order) setItems(items []OrderItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	total := kernel.ZeroMoney()
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}

		lineTotal, err := item.LineTotal()
		if err != nil {
			return err
		}

		total, err = total.Add(lineTotal)
		if err != nil {
			return err
		}
	}

	o.items = items
	o.totalPrice = total
	return nil
}

// setRestoredItems validates the order lines without recomputing the total,
// which is restored from storage as persisted.
func (o *Order) setRestoredItems(items []OrderItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}

// setTotalPrice validates and sets the persisted total during restoration.
func (o *Order) setTotalPrice(totalPrice kernel.Money) error {
	if err := totalPrice.Validate(); err != nil {
		return err
	}
	o.totalPrice = totalPrice
	return nil
}

// setVersion validates and sets the optimistic concurrency version.
func (o *Order) setVersion(version int) error {
	if version < 1 {
		return errs.NewVersionIsInvalidError("version")
	}
	o.version = version
	return nil
}
