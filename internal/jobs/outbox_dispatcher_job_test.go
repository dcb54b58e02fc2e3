package jobs

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"vendororders/internal/core/domain/model/kernel"
	"vendororders/internal/core/domain/model/order"
	"vendororders/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockOutboxRepository struct{ mock.Mock }

func (m *mockOutboxRepository) FetchUnpublished(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.OutboxMessage), args.Error(1)
}

func (m *mockOutboxRepository) MarkPublished(ctx context.Context, ids []int64) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

type mockEventPublisher struct{ mock.Mock }

func (m *mockEventPublisher) Publish(ctx context.Context, message ports.OutboxMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func testMessages(n int) []ports.OutboxMessage {
	messages := make([]ports.OutboxMessage, 0, n)
	for i := range n {
		messages = append(messages, ports.OutboxMessage{
			ID:          int64(i + 1),
			OrderID:     kernel.NewUUID(),
			OrderNumber: "ORD100",
			FromStatus:  order.New,
			ToStatus:    order.Preparing,
			OccurredAt:  time.Now().UTC(),
		})
	}
	return messages
}

func TestOutboxDispatcherJob_DispatchOnce_PublishesAndMarks(t *testing.T) {
	ctx := t.Context()
	messages := testMessages(3)

	outbox := new(mockOutboxRepository)
	publisher := new(mockEventPublisher)
	outbox.On("FetchUnpublished", ctx, 10).Return(messages, nil).Once()
	for _, message := range messages {
		publisher.On("Publish", ctx, message).Return(nil).Once()
	}
	outbox.On("MarkPublished", ctx, []int64{1, 2, 3}).Return(nil).Once()

	job := NewOutboxDispatcherJob(outbox, publisher, 10, slog.Default())
	job.dispatchOnce(ctx)

	outbox.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestOutboxDispatcherJob_DispatchOnce_StopsBatchOnPublishFailure(t *testing.T) {
	ctx := t.Context()
	messages := testMessages(3)

	outbox := new(mockOutboxRepository)
	publisher := new(mockEventPublisher)
	outbox.On("FetchUnpublished", ctx, 10).Return(messages, nil).Once()
	publisher.On("Publish", ctx, messages[0]).Return(nil).Once()
	publisher.On("Publish", ctx, messages[1]).Return(errors.New("broker unavailable")).Once()
	// message 3 is never attempted so per-order ordering survives the retry
	outbox.On("MarkPublished", ctx, []int64{1}).Return(nil).Once()

	job := NewOutboxDispatcherJob(outbox, publisher, 10, slog.Default())
	job.dispatchOnce(ctx)

	outbox.AssertExpectations(t)
	publisher.AssertExpectations(t)
	publisher.AssertNumberOfCalls(t, "Publish", 2)
}

func TestOutboxDispatcherJob_DispatchOnce_NothingToPublish(t *testing.T) {
	ctx := t.Context()

	outbox := new(mockOutboxRepository)
	publisher := new(mockEventPublisher)
	outbox.On("FetchUnpublished", ctx, 10).Return([]ports.OutboxMessage{}, nil).Once()

	job := NewOutboxDispatcherJob(outbox, publisher, 10, slog.Default())
	job.dispatchOnce(ctx)

	outbox.AssertExpectations(t)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	outbox.AssertNotCalled(t, "MarkPublished", mock.Anything, mock.Anything)
}

func TestOutboxDispatcherJob_DispatchOnce_FetchError(t *testing.T) {
	ctx := t.Context()

	outbox := new(mockOutboxRepository)
	publisher := new(mockEventPublisher)
	outbox.On("FetchUnpublished", ctx, 10).Return(nil, errors.New("db down")).Once()

	job := NewOutboxDispatcherJob(outbox, publisher, 10, slog.Default())
	require.NotPanics(t, func() { job.dispatchOnce(ctx) })

	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}
