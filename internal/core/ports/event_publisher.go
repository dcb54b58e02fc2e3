package ports

import (
	"context"
)

// EventPublisher delivers lifecycle events to external subscribers (push
// notification senders, SMS gateways, analytics) through a message broker.
// Publishing is asynchronous relative to the originating transition call;
// failures are retried by the outbox dispatcher and never propagate back to
// the transition.
type EventPublisher interface {
	Publish(ctx context.Context, message OutboxMessage) error
}
