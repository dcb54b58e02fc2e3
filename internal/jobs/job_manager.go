// Package jobs provides the scheduled background tasks of the order
// lifecycle service, built on github.com/robfig/cron/v3. The only job today
// is the outbox dispatcher, which runs every second so lifecycle events
// reach subscribers with sub-second latency while staying fully decoupled
// from the transition calls that produced them.
package jobs

import (
	"fmt"
	"log/slog"

	"vendororders/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	outboxDispatcherJob *OutboxDispatcherJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	outbox ports.OutboxRepository,
	publisher ports.EventPublisher,
	outboxBatchSize int,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		outboxDispatcherJob: NewOutboxDispatcherJob(outbox, publisher, outboxBatchSize, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.outboxDispatcherJob.Start(); err != nil {
		return fmt.Errorf("failed to start outbox dispatcher job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.outboxDispatcherJob.Stop()
}
