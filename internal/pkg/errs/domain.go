package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition is the sentinel error for status transitions rejected by the transition table.
	ErrInvalidTransition = errors.New("status transition is not allowed")
	// ErrInvalidState is the sentinel error for operations whose state preconditions are not met.
	ErrInvalidState = errors.New("operation is not allowed in current state")
	// ErrInvalidDriver is the sentinel error for drivers that violate role or activity constraints.
	ErrInvalidDriver = errors.New("driver is not eligible")
	// ErrAlreadyAssigned is the sentinel error for duplicate delivery assignments.
	ErrAlreadyAssigned = errors.New("delivery is already assigned")
	// ErrProductUnavailable is the sentinel error for ordering a product that is not available.
	ErrProductUnavailable = errors.New("product is unavailable")
	// ErrConcurrencyConflict is the sentinel error for lost concurrent-modification races.
	ErrConcurrencyConflict = errors.New("concurrent modification conflict")
)

// InvalidTransitionError reports a status transition rejected by the
// transition table of the named entity.
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
	Cause  error
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given entity and status pair.
func NewInvalidTransitionError(entity, from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{
		Entity: entity,
		From:   from,
		To:     to,
	}
}

// NewInvalidTransitionErrorWithCause creates an InvalidTransitionError carrying the underlying cause.
func NewInvalidTransitionErrorWithCause(entity, from, to string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{
		Entity: entity,
		From:   from,
		To:     to,
		Cause:  cause,
	}
}

func (e *InvalidTransitionError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s cannot move from %s to %s (cause: %s)",
			ErrInvalidTransition, e.Entity, e.From, e.To, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s cannot move from %s to %s",
		ErrInvalidTransition, e.Entity, e.From, e.To))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// InvalidStateError reports an operation attempted while the named entity is
// in a status that does not permit it.
type InvalidStateError struct {
	Operation string
	Entity    string
	ID        any
	State     string
	Cause     error
}

// NewInvalidStateError creates an InvalidStateError for the given operation, entity and status.
func NewInvalidStateError(operation, entity string, id any, state string) *InvalidStateError {
	return &InvalidStateError{
		Operation: operation,
		Entity:    entity,
		ID:        id,
		State:     state,
	}
}

// NewInvalidStateErrorWithCause creates an InvalidStateError carrying the underlying cause.
func NewInvalidStateErrorWithCause(operation, entity string, id any, state string, cause error) *InvalidStateError {
	return &InvalidStateError{
		Operation: operation,
		Entity:    entity,
		ID:        id,
		State:     state,
		Cause:     cause,
	}
}

func (e *InvalidStateError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: cannot %s %s %v in status %s (cause: %s)",
			ErrInvalidState, e.Operation, e.Entity, e.ID, e.State, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: cannot %s %s %v in status %s",
		ErrInvalidState, e.Operation, e.Entity, e.ID, e.State))
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// InvalidDriverError reports a delivery assignment to a staff member who is
// not an active courier.
type InvalidDriverError struct {
	DriverID any
	Reason   string
	Cause    error
}

// NewInvalidDriverError creates an InvalidDriverError for the given driver and reason.
func NewInvalidDriverError(driverID any, reason string) *InvalidDriverError {
	return &InvalidDriverError{
		DriverID: driverID,
		Reason:   reason,
	}
}

// NewInvalidDriverErrorWithCause creates an InvalidDriverError carrying the underlying cause.
func NewInvalidDriverErrorWithCause(driverID any, reason string, cause error) *InvalidDriverError {
	return &InvalidDriverError{
		DriverID: driverID,
		Reason:   reason,
		Cause:    cause,
	}
}

func (e *InvalidDriverError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %v (%s) (cause: %s)", ErrInvalidDriver, e.DriverID, e.Reason, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v (%s)", ErrInvalidDriver, e.DriverID, e.Reason))
}

func (e *InvalidDriverError) Unwrap() error {
	return ErrInvalidDriver
}

// AlreadyAssignedError reports an attempt to create a second delivery for the
// same order.
type AlreadyAssignedError struct {
	OrderID any
	Cause   error
}

// NewAlreadyAssignedError creates an AlreadyAssignedError for the given order.
func NewAlreadyAssignedError(orderID any) *AlreadyAssignedError {
	return &AlreadyAssignedError{
		OrderID: orderID,
	}
}

// NewAlreadyAssignedErrorWithCause creates an AlreadyAssignedError carrying the underlying cause.
func NewAlreadyAssignedErrorWithCause(orderID any, cause error) *AlreadyAssignedError {
	return &AlreadyAssignedError{
		OrderID: orderID,
		Cause:   cause,
	}
}

func (e *AlreadyAssignedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: order %v (cause: %s)", ErrAlreadyAssigned, e.OrderID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: order %v", ErrAlreadyAssigned, e.OrderID))
}

func (e *AlreadyAssignedError) Unwrap() error {
	return ErrAlreadyAssigned
}

// ProductUnavailableError reports an order line referencing a product that is
// not currently offered.
type ProductUnavailableError struct {
	ProductID any
	Name      string
	Cause     error
}

// NewProductUnavailableError creates a ProductUnavailableError for the given product.
func NewProductUnavailableError(productID any, name string) *ProductUnavailableError {
	return &ProductUnavailableError{
		ProductID: productID,
		Name:      name,
	}
}

// NewProductUnavailableErrorWithCause creates a ProductUnavailableError carrying the underlying cause.
func NewProductUnavailableErrorWithCause(productID any, name string, cause error) *ProductUnavailableError {
	return &ProductUnavailableError{
		ProductID: productID,
		Name:      name,
		Cause:     cause,
	}
}

func (e *ProductUnavailableError) Error() string {
	subject := fmt.Sprintf("%v", e.ProductID)
	if e.Name != "" {
		subject = e.Name
	}
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrProductUnavailable, subject, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrProductUnavailable, subject))
}

func (e *ProductUnavailableError) Unwrap() error {
	return ErrProductUnavailable
}

// ConcurrencyConflictError reports a write that lost a concurrent-modification
// race and should be retried by the caller.
type ConcurrencyConflictError struct {
	Entity  string
	ID      any
	Version int
	Cause   error
}

// NewConcurrencyConflictError creates a ConcurrencyConflictError for the given entity and stale version.
func NewConcurrencyConflictError(entity string, id any, version int) *ConcurrencyConflictError {
	return &ConcurrencyConflictError{
		Entity:  entity,
		ID:      id,
		Version: version,
	}
}

// NewConcurrencyConflictErrorWithCause creates a ConcurrencyConflictError carrying the underlying cause.
func NewConcurrencyConflictErrorWithCause(entity string, id any, version int, cause error) *ConcurrencyConflictError {
	return &ConcurrencyConflictError{
		Entity:  entity,
		ID:      id,
		Version: version,
		Cause:   cause,
	}
}

func (e *ConcurrencyConflictError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s %v version %d (cause: %s)",
			ErrConcurrencyConflict, e.Entity, e.ID, e.Version, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s %v version %d", ErrConcurrencyConflict, e.Entity, e.ID, e.Version))
}

func (e *ConcurrencyConflictError) Unwrap() error {
	return ErrConcurrencyConflict
}
