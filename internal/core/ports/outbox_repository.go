package ports

import (
	"context"
	"time"

	"vendororders/internal/core/domain/model/kernel"
	"vendororders/internal/core/domain/model/order"
)

// OutboxMessage is a lifecycle event persisted transactionally with the
// order state change that produced it, waiting to be published.
type OutboxMessage struct {
	ID          int64
	OrderID     kernel.UUID
	OrderNumber string
	FromStatus  order.Status
	ToStatus    order.Status
	OccurredAt  time.Time
}

// OutboxRepository provides access to unpublished lifecycle events. The
// dispatcher job drains it with at-least-once semantics: a message is only
// marked published after the broker accepted it, so a crash between publish
// and mark results in a duplicate, never a loss.
type OutboxRepository interface {
	// FetchUnpublished returns up to limit unpublished messages, oldest first.
	FetchUnpublished(ctx context.Context, limit int) ([]OutboxMessage, error)

	// MarkPublished marks the given messages as published.
	MarkPublished(ctx context.Context, ids []int64) error
}
