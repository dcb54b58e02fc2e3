// Package rabbitmq publishes order lifecycle events to external
// subscribers. Push/SMS senders and analytics each bind their own queue to
// the fanout exchange; delivery to them is the broker's concern, the
// service only guarantees the event reaches the exchange at least once.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"vendororders/internal/core/domain/model/order"
	"vendororders/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ExchangeName is the fanout exchange lifecycle events are published to.
const ExchangeName = "order_events"

// eventPayload is the wire format of one lifecycle event. A creation event
// carries an empty from_status.
type eventPayload struct {
	OrderID     string    `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	FromStatus  string    `json:"from_status,omitempty"`
	ToStatus    string    `json:"to_status"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// Publisher implements EventPublisher over a RabbitMQ connection.
type Publisher struct {
	conn *amqp.Connection
}

// NewPublisher creates a publisher and declares the durable fanout
// exchange.
func NewPublisher(conn *amqp.Connection) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(ExchangeName, "fanout", true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &Publisher{conn: conn}, nil
}

// Publish sends one lifecycle event to the exchange as a persistent JSON
// message. A subscriber that consumes the event twice must deduplicate on
// the event content; the outbox retries until publish succeeds.
func (p *Publisher) Publish(ctx context.Context, message ports.OutboxMessage) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	payload := eventPayload{
		OrderID:     message.OrderID.String(),
		OrderNumber: message.OrderNumber,
		ToStatus:    message.ToStatus.String(),
		OccurredAt:  message.OccurredAt,
	}
	if message.FromStatus != order.Unknown {
		payload.FromStatus = message.FromStatus.String()
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = ch.PublishWithContext(ctx, ExchangeName, "", false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}
