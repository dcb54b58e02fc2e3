package outboxrepo

import (
	"context"

	"vendororders/internal/core/domain/model/kernel"
	"vendororders/internal/core/domain/model/order"
	"vendororders/internal/core/ports"

	"gorm.io/gorm"
)

// AppendEvents writes one outbox row per event using the given connection,
// which during a command is the open unit-of-work transaction.
func AppendEvents(db *gorm.DB, events []order.Event) error {
	if len(events) == 0 {
		return nil
	}

	dtos := make([]EventDTO, 0, len(events))
	for _, event := range events {
		dtos = append(dtos, fromEvent(event))
	}

	return db.Create(&dtos).Error
}

// GormOutboxRepository implements OutboxRepository using GORM. It runs on
// the main connection: the dispatcher reads and marks outside any command
// transaction.
type GormOutboxRepository struct {
	db *gorm.DB
}

// NewGormOutboxRepository creates a new GORM outbox repository.
func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// FetchUnpublished returns up to limit unpublished events, oldest first, so
// subscribers observe transitions for one order in the order they happened.
func (r *GormOutboxRepository) FetchUnpublished(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var dtos []EventDTO
	err := r.db.WithContext(ctx).
		Where("published = ?", false).
		Order("id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		orderID, idErr := kernel.UUIDFromBytes(dto.OrderID[:])
		if idErr != nil {
			return nil, idErr
		}

		messages = append(messages, ports.OutboxMessage{
			ID:          dto.ID,
			OrderID:     orderID,
			OrderNumber: dto.OrderNumber,
			FromStatus:  order.Status(dto.FromStatus),
			ToStatus:    order.Status(dto.ToStatus),
			OccurredAt:  dto.OccurredAt,
		})
	}

	return messages, nil
}

// MarkPublished marks the given events as published.
func (r *GormOutboxRepository) MarkPublished(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Model(&EventDTO{}).
		Where("id IN ?", ids).
		Update("published", true).Error
}
