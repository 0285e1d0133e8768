package delivery

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"restaurant/internal/core/domain/events"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	// ErrDeliveryIsNotConstructed is returned when using an improperly initialized Delivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")
)

// Delivery represents the hand-off of a single order to a driver.
// It is an aggregate root owned one-to-one by its order: at most one
// delivery may exist per order.
//
// Business rules:
//   - Delivery must reference a valid order and driver
//   - Status follows the transition table in status.go
//   - dispatchedAt is stamped exactly once, when the delivery becomes ASSIGNED
//   - deliveredAt is stamped exactly once, when the delivery becomes DELIVERED
//   - Driver reassignment is allowed only while ASSIGNED
//   - A DELIVERED delivery can no longer be cancelled or edited
//
// Cross-entity consequences of delivery transitions (advancing or reverting
// the owning order) belong to the coordinator service, not to this aggregate.
type Delivery struct {
	// id uniquely identifies the delivery
	id kernel.UUID
	// orderID references the owning order
	orderID kernel.UUID
	// driverID references the staff member carrying the order
	driverID kernel.UUID
	// status is the current lifecycle state
	status Status
	// address is the destination
	address string
	// notes carries free-form instructions for the driver
	notes string
	// dispatchedAt records when the delivery was assigned, set exactly once
	dispatchedAt *time.Time
	// deliveredAt records when the order reached the customer, set exactly once
	deliveredAt *time.Time
	// version supports optimistic concurrency control in storage
	version int

	createdAt time.Time
	updatedAt time.Time

	domainEvents []events.DomainEvent

	// guard ensures the delivery was properly constructed
	guard guard.ConstructorGuard
}

// NewDelivery creates a Delivery for the given order and immediately walks it
// from PENDING to ASSIGNED, stamping dispatchedAt. The result is what storage
// sees first: no PENDING delivery is ever persisted.
//
// It records the DELIVERY_ASSIGNED and DELIVERY_STAFF_NEW_ASSIGNMENT events.
// Order-side preconditions (the order being READY_FOR_DELIVERY) and driver
// eligibility are the coordinator's responsibility.
func NewDelivery(id, orderID, driverID kernel.UUID, address, notes string) (*Delivery, error) {
	now := time.Now().UTC()
	delivery := &Delivery{
		status:    Pending,
		notes:     notes,
		version:   1,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		delivery.setID(id),
		delivery.setOrderID(orderID),
		delivery.setDriverID(driverID),
		delivery.setAddress(address),
	); err != nil {
		return nil, err
	}

	newStatus, err := delivery.status.TransitionTo(Assigned)
	if err != nil {
		return nil, err
	}
	delivery.status = newStatus
	delivery.dispatchedAt = &now

	delivery.recordEvent(events.New(events.DeliveryAssigned, delivery.id.String(),
		fmt.Sprintf("Delivery %s assigned to driver %s for order %s", delivery.id, delivery.driverID, delivery.orderID),
		map[string]any{
			"deliveryId": delivery.id.String(),
			"orderId":    delivery.orderID.String(),
			"driverId":   delivery.driverID.String(),
			"address":    delivery.address,
		}))
	delivery.recordEvent(events.New(events.DeliveryStaffNewAssignment, delivery.id.String(),
		fmt.Sprintf("Driver %s has a new delivery assignment", delivery.driverID),
		map[string]any{
			"deliveryId": delivery.id.String(),
			"orderId":    delivery.orderID.String(),
			"driverId":   delivery.driverID.String(),
		}))

	return delivery, nil
}

// RestoreDeliveryParams carries the persisted state needed to rehydrate a Delivery.
type RestoreDeliveryParams struct {
	ID           kernel.UUID
	OrderID      kernel.UUID
	DriverID     kernel.UUID
	Status       Status
	Address      string
	Notes        string
	DispatchedAt *time.Time
	DeliveredAt  *time.Time
	Version      int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RestoreDelivery reconstructs a Delivery from persistent storage.
// It accepts any valid status and records no events.
func RestoreDelivery(params RestoreDeliveryParams) (*Delivery, error) {
	delivery := &Delivery{
		notes:        params.Notes,
		dispatchedAt: params.DispatchedAt,
		deliveredAt:  params.DeliveredAt,
		createdAt:    params.CreatedAt,
		updatedAt:    params.UpdatedAt,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		delivery.setID(params.ID),
		delivery.setOrderID(params.OrderID),
		delivery.setDriverID(params.DriverID),
		delivery.setStatus(params.Status),
		delivery.setAddress(params.Address),
		delivery.setVersion(params.Version),
	); err != nil {
		return nil, err
	}

	return delivery, nil
}

// Validate checks if the Delivery was properly constructed using a constructor.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// IsEqual compares two deliveries by their unique identifiers.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// OrderID returns the identifier of the owning order.
func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

// DriverID returns the identifier of the assigned driver.
func (d *Delivery) DriverID() kernel.UUID {
	return d.driverID
}

// Status returns the current lifecycle state.
func (d *Delivery) Status() Status {
	return d.status
}

// Address returns the destination address.
func (d *Delivery) Address() string {
	return d.address
}

// Notes returns the free-form instructions for the driver.
func (d *Delivery) Notes() string {
	return d.notes
}

// DispatchedAt returns when the delivery was assigned, or nil.
func (d *Delivery) DispatchedAt() *time.Time {
	return d.dispatchedAt
}

// DeliveredAt returns when the order reached the customer, or nil.
func (d *Delivery) DeliveredAt() *time.Time {
	return d.deliveredAt
}

// Version returns the optimistic concurrency version of the delivery.
func (d *Delivery) Version() int {
	return d.version
}

// CreatedAt returns when the delivery was created.
func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// UpdatedAt returns when the delivery was last mutated.
func (d *Delivery) UpdatedAt() time.Time {
	return d.updatedAt
}

// TransitionTo moves the delivery to the requested status following the
// transition table. Entering DELIVERED stamps deliveredAt, once.
// It records the DELIVERY_STATUS_CHANGED event.
func (d *Delivery) TransitionTo(target Status) error {
	if err := d.Validate(); err != nil {
		return err
	}

	newStatus, err := d.status.TransitionTo(target)
	if err != nil {
		return err
	}

	previous := d.status
	d.status = newStatus
	now := time.Now().UTC()
	if newStatus == Assigned && d.dispatchedAt == nil {
		d.dispatchedAt = &now
	}
	if newStatus == Delivered && d.deliveredAt == nil {
		d.deliveredAt = &now
	}
	d.touch()

	d.recordEvent(events.New(events.DeliveryStatusChanged, d.id.String(),
		fmt.Sprintf("Delivery %s moved from %s to %s", d.id, previous, newStatus),
		map[string]any{
			"deliveryId": d.id.String(),
			"orderId":    d.orderID.String(),
			"from":       previous.String(),
			"to":         newStatus.String(),
		}))

	return nil
}

// ReassignDriver replaces the assigned driver. Reassignment is allowed only
// while the delivery is ASSIGNED; once it leaves for the customer the driver
// is fixed. It records the DELIVERY_STAFF_NEW_ASSIGNMENT event for the new
// driver. Driver eligibility is re-checked by the coordinator, not here.
func (d *Delivery) ReassignDriver(newDriverID kernel.UUID) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if d.status != Assigned {
		return errs.NewInvalidStateError("reassign driver for", "delivery", d.id.String(), d.status.String())
	}
	if err := d.setDriverID(newDriverID); err != nil {
		return err
	}
	d.touch()

	d.recordEvent(events.New(events.DeliveryStaffNewAssignment, d.id.String(),
		fmt.Sprintf("Driver %s has a new delivery assignment", d.driverID),
		map[string]any{
			"deliveryId": d.id.String(),
			"orderId":    d.orderID.String(),
			"driverId":   d.driverID.String(),
		}))

	return nil
}

// Cancel marks the delivery CANCELLED. A DELIVERED delivery cannot be
// cancelled. The cancelled delivery is subsequently removed from storage;
// the status change exists so the DELIVERY_STATUS_CHANGED event it records
// carries the terminal state.
func (d *Delivery) Cancel() error {
	if err := d.Validate(); err != nil {
		return err
	}
	if d.status == Delivered {
		return errs.NewInvalidStateError("cancel", "delivery", d.id.String(), d.status.String())
	}

	previous := d.status
	d.status = Cancelled
	d.touch()

	d.recordEvent(events.New(events.DeliveryStatusChanged, d.id.String(),
		fmt.Sprintf("Delivery %s moved from %s to %s", d.id, previous, Cancelled),
		map[string]any{
			"deliveryId": d.id.String(),
			"orderId":    d.orderID.String(),
			"from":       previous.String(),
			"to":         Cancelled.String(),
		}))

	return nil
}

// UpdateDetails changes the destination address and driver notes.
// A DELIVERED delivery can no longer be edited.
func (d *Delivery) UpdateDetails(address, notes string) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if d.status == Delivered {
		return errs.NewInvalidStateError("update details of", "delivery", d.id.String(), d.status.String())
	}
	if err := d.setAddress(address); err != nil {
		return err
	}
	d.notes = notes
	d.touch()

	return nil
}

// DomainEvents returns all events recorded since the last clear.
func (d *Delivery) DomainEvents() []events.DomainEvent {
	return d.domainEvents
}

// ClearDomainEvents discards all recorded events.
func (d *Delivery) ClearDomainEvents() {
	d.domainEvents = nil
}

func (d *Delivery) recordEvent(event events.DomainEvent) {
	d.domainEvents = append(d.domainEvents, event)
}

func (d *Delivery) touch() {
	d.updatedAt = time.Now().UTC()
}

// setID sets the delivery's unique identifier with validation.
func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

// setOrderID sets the owning order reference with validation.
func (d *Delivery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	d.orderID = orderID
	return nil
}

// setDriverID sets the driver reference with validation.
func (d *Delivery) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	d.driverID = driverID
	return nil
}

// setStatus validates and sets the status during restoration.
func (d *Delivery) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

// setAddress validates and sets the destination address.
func (d *Delivery) setAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("address")
	}
	d.address = address
	return nil
}

// setVersion validates and sets the optimistic concurrency version.
func (d *Delivery) setVersion(version int) error {
	if version < 1 {
		return errs.NewVersionIsInvalidError("version")
	}
	d.version = version
	return nil
}
