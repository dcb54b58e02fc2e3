package jobs

import (
	"context"
	"log/slog"

	"vendororders/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// OutboxDispatcherJob drains the transactional outbox. Runs every second:
// loads a batch of unpublished lifecycle events, publishes each to the
// broker and marks it published only after the broker accepted it. A crash
// between publish and mark replays the event next tick, which gives
// subscribers at-least-once delivery.
type OutboxDispatcherJob struct {
	outbox    ports.OutboxRepository
	publisher ports.EventPublisher
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOutboxDispatcherJob creates a dispatcher draining up to batchSize
// events per tick.
func NewOutboxDispatcherJob(
	outbox ports.OutboxRepository,
	publisher ports.EventPublisher,
	batchSize int,
	logger *slog.Logger,
) *OutboxDispatcherJob {
	return &OutboxDispatcherJob{
		outbox:    outbox,
		publisher: publisher,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "outbox_dispatcher_job"),
	}
}

// Start begins the dispatcher job to run every second.
func (j *OutboxDispatcherJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		j.dispatchOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox dispatcher job started (running every second)")
	return nil
}

// Stop stops the dispatcher job.
func (j *OutboxDispatcherJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Outbox dispatcher job stopped")
}

// dispatchOnce publishes one batch. Events are published oldest first and a
// publish failure stops the batch so the per-order event ordering survives
// the retry.
func (j *OutboxDispatcherJob) dispatchOnce(ctx context.Context) {
	messages, err := j.outbox.FetchUnpublished(ctx, j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to load unpublished events", "error", err)
		return
	}

	published := make([]int64, 0, len(messages))
	for _, message := range messages {
		if err = j.publisher.Publish(ctx, message); err != nil {
			j.logger.ErrorContext(ctx, "Failed to publish event, will retry next tick",
				"event_id", message.ID,
				"order_id", message.OrderID.String(),
				"error", err)
			break
		}
		published = append(published, message.ID)
	}

	if len(published) == 0 {
		return
	}

	if err = j.outbox.MarkPublished(ctx, published); err != nil {
		// The events go out again next tick; subscribers deduplicate.
		j.logger.ErrorContext(ctx, "Failed to mark events published", "error", err)
	}
}
