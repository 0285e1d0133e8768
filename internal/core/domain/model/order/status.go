package order

import (
	"restaurant/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with a deny-by-default transition table so
// orders follow the kitchen and hand-off workflow exactly.
//
// State transitions:
//
//	PENDING ──> CONFIRMED ──> PREPARING ──┬──> READY_FOR_PICKUP ─────────────────────> COMPLETED
//	                                      └──> READY_FOR_DELIVERY ──> OUT_FOR_DELIVERY ──> COMPLETED
//
// Every non-terminal status may also move to CANCELLED. COMPLETED and
// CANCELLED are terminal. Requesting the current status again is rejected
// like any other unlisted pair.
//
// The string values are persisted and exposed over the API, so they are a
// stable contract and must not be renamed.
type Status string

const (
	// Pending is the initial status of every new order.
	Pending Status = "PENDING"

	// Confirmed indicates the order was accepted and queued for the kitchen.
	Confirmed Status = "CONFIRMED"

	// Preparing indicates the kitchen is working on the order.
	Preparing Status = "PREPARING"

	// ReadyForPickup indicates a dine-in or pickup order is ready for hand-off.
	ReadyForPickup Status = "READY_FOR_PICKUP"

	// ReadyForDelivery indicates a delivery order is ready to be assigned to a driver.
	ReadyForDelivery Status = "READY_FOR_DELIVERY"

	// OutForDelivery indicates the order left the restaurant with a driver.
	OutForDelivery Status = "OUT_FOR_DELIVERY"

	// Completed indicates the order reached the customer. Terminal.
	Completed Status = "COMPLETED"

	// Cancelled indicates the order was aborted. Terminal.
	Cancelled Status = "CANCELLED"
)

// statusTransitions is the order transition table. A requested status is legal
// only if it appears in the slice keyed by the current status; everything
// else, including re-requesting the current status, is rejected.
func statusTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:          {Confirmed, Cancelled},
		Confirmed:        {Preparing, Cancelled},
		Preparing:        {ReadyForPickup, ReadyForDelivery, Cancelled},
		ReadyForPickup:   {Completed, Cancelled},
		ReadyForDelivery: {OutForDelivery, Cancelled},
		OutForDelivery:   {Completed, Cancelled},
		Completed:        {},
		Cancelled:        {},
	}
}

// StatusFromString parses a status received from the API or storage.
// Returns an error if the value is not one of the defined statuses.
func StatusFromString(raw string) (Status, error) {
	status := Status(raw)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks if the Status value is one of the defined statuses.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
func (s Status) Validate() error {
	if _, ok := statusTransitions()[s]; !ok {
		return errs.NewValueIsInvalidError("order status " + string(s))
	}
	return nil
}

// String returns the wire representation of the status.
// This method implements the fmt.Stringer interface.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	targets, ok := statusTransitions()[s]
	return ok && len(targets) == 0
}

// CanTransitionTo reports whether the transition table permits moving from
// this status to target. Unknown statuses and self-transitions yield false.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range statusTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo performs the table check and returns the new status.
//
// Returns:
//   - (target, nil) when the transition table lists the pair
//   - ("", InvalidTransitionError) otherwise
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return "", err
	}
	if !s.CanTransitionTo(target) {
		return "", errs.NewInvalidTransitionError("order", s.String(), target.String())
	}
	return target, nil
}

// CanBeDeleted reports whether an order in this status may be removed.
// Only orders that never reached the kitchen, or were cancelled, qualify.
func (s Status) CanBeDeleted() bool {
	return s == Pending || s == Cancelled
}
