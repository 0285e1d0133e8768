package ports

import (
	"context"

	"restaurant/internal/core/domain/events"
)

// EventPublisher delivers domain events to the notification transport.
//
// Publication is fire-and-forget: implementations must never block the caller
// on delivery and must swallow (log-only) transport failures, because
// notifications are best-effort side information, not a correctness
// dependency. There is no error return on purpose.
type EventPublisher interface {
	Publish(ctx context.Context, domainEvents ...events.DomainEvent)
}
