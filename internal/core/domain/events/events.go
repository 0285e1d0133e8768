package events

import (
	"time"

	"github.com/google/uuid"
)

// Event type names form the published notification contract. Consumers route
// on these exact strings, so they must never be renamed.
const (
	OrderCreated               = "ORDER_CREATED"
	OrderUpdated               = "ORDER_UPDATED"
	OrderStatusChanged         = "ORDER_STATUS_CHANGED"
	KitchenNewOrder            = "KITCHEN_NEW_ORDER"
	DeliveryReadyOrder         = "DELIVERY_READY_ORDER"
	DeliveryAssigned           = "DELIVERY_ASSIGNED"
	DeliveryStatusChanged      = "DELIVERY_STATUS_CHANGED"
	DeliveryStaffNewAssignment = "DELIVERY_STAFF_NEW_ASSIGNMENT"
)

// DomainEvent is the envelope recorded by aggregates and published to
// interested staff channels after the owning transaction commits.
type DomainEvent struct {
	ID          string         `json:"id"`
	Type        string         `json:"type"`
	AggregateID string         `json:"aggregateId"`
	Message     string         `json:"message"`
	Payload     map[string]any `json:"payload,omitempty"`
	OccurredAt  time.Time      `json:"occurredAt"`
}

// New creates a DomainEvent with a fresh identity and the current UTC timestamp.
func New(eventType, aggregateID, message string, payload map[string]any) DomainEvent {
	return DomainEvent{
		ID:          uuid.New().String(),
		Type:        eventType,
		AggregateID: aggregateID,
		Message:     message,
		Payload:     payload,
		OccurredAt:  time.Now().UTC(),
	}
}

// Source is implemented by aggregates that record domain events during state
// mutations. The unit of work drains sources after a successful commit.
type Source interface {
	// DomainEvents returns all events recorded since the last clear.
	DomainEvents() []DomainEvent

	// ClearDomainEvents discards all recorded events.
	ClearDomainEvents()
}
