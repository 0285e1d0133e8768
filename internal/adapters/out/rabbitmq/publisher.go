// Package rabbitmq delivers committed domain events to staff-facing
// notification channels through a RabbitMQ topic exchange.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"restaurant/internal/core/domain/events"

	amqp "github.com/rabbitmq/amqp091-go"
)

const contentTypeJSON = "application/json"

// Publisher implements the event publisher port on top of an amqp channel.
// Delivery is best-effort: events ride a detached goroutine and transport
// failures are logged, never returned, so a broker outage cannot fail a
// committed transaction after the fact.
type Publisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	logger   *slog.Logger

	// amqp channels are not safe for concurrent publication.
	mu sync.Mutex
}

// NewPublisher dials the broker and declares the durable topic exchange the
// restaurant publishes on.
func NewPublisher(url, exchange string, logger *slog.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %q: %w", exchange, err)
	}

	return &Publisher{
		conn:     conn,
		ch:       ch,
		exchange: exchange,
		logger:   logger.With("component", "rabbitmq_publisher"),
	}, nil
}

// Publish hands the events to the broker without waiting for delivery. The
// caller's context is not used: by the time events are published the owning
// transaction has committed, and an expiring request deadline must not
// suppress its notifications.
func (p *Publisher) Publish(_ context.Context, domainEvents ...events.DomainEvent) {
	if len(domainEvents) == 0 {
		return
	}

	go p.deliver(domainEvents)
}

func (p *Publisher) deliver(domainEvents []events.DomainEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, event := range domainEvents {
		body, err := json.Marshal(event)
		if err != nil {
			p.logger.Error("marshal domain event",
				"type", event.Type,
				"aggregate_id", event.AggregateID,
				"error", err,
			)
			continue
		}

		err = p.ch.PublishWithContext(context.Background(),
			p.exchange,
			routingKey(event.Type),
			false,
			false,
			amqp.Publishing{
				DeliveryMode: amqp.Persistent,
				ContentType:  contentTypeJSON,
				MessageId:    event.ID,
				Timestamp:    event.OccurredAt,
				Body:         body,
			},
		)
		if err != nil {
			p.logger.Error("publish domain event",
				"type", event.Type,
				"aggregate_id", event.AggregateID,
				"error", err,
			)
		}
	}
}

// Close shuts down the channel and the connection. In-flight deliveries on
// the detached goroutine finish first because Close waits for the channel
// mutex.
func (p *Publisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}

// routingKey turns an event type name into a topic routing key, so
// KITCHEN_NEW_ORDER travels as kitchen.new_order. Consumers bind kitchen.*,
// delivery.* or order.* to hear their side of the house.
func routingKey(eventType string) string {
	lowered := strings.ToLower(eventType)

	prefix, rest, found := strings.Cut(lowered, "_")
	if !found {
		return lowered
	}

	return prefix + "." + rest
}
