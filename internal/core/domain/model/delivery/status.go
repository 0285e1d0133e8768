package delivery

import (
	"restaurant/internal/pkg/errs"
)

// Status represents the delivery lifecycle state.
type Status string

const (
	// Pending is the implicit initial state. It never reaches storage:
	// deliveries are persisted only after moving to Assigned.
	Pending Status = "PENDING"

	// Assigned means a driver has been attached and dispatchedAt is stamped.
	Assigned Status = "ASSIGNED"

	// OutForDelivery means the driver has left with the order.
	OutForDelivery Status = "OUT_FOR_DELIVERY"

	// Delivered is terminal and stamps deliveredAt.
	Delivered Status = "DELIVERED"

	// Cancelled is terminal. It is never a transition target: it is reached
	// only through the cancel operation, which removes the delivery.
	Cancelled Status = "CANCELLED"
)

func statusTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:        {Assigned},
		Assigned:       {OutForDelivery},
		OutForDelivery: {Delivered},
		Delivered:      {},
		Cancelled:      {},
	}
}

// StatusFromString parses a raw status value.
func StatusFromString(raw string) (Status, error) {
	status := Status(raw)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks that the status is one of the known delivery states.
func (s Status) Validate() error {
	if _, ok := statusTransitions()[s]; !ok {
		return errs.NewValueIsInvalidError("delivery status " + string(s))
	}
	return nil
}

func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further transitions exist from this status.
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
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return "", err
	}
	if !s.CanTransitionTo(target) {
		return "", errs.NewInvalidTransitionError("delivery", s.String(), target.String())
	}
	return target, nil
}
