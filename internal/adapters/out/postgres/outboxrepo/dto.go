// Package outboxrepo persists lifecycle events as transactional outbox
// rows. Rows are written in the same transaction as the order state change
// that produced them and drained by the dispatcher job afterwards.
package outboxrepo

import (
	"time"

	"vendororders/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// EventDTO is one outbox row. Published rows are kept for audit; the
// index on published keeps the unpublished scan cheap.
type EventDTO struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	OrderNumber string    `gorm:""`
	FromStatus  int       `gorm:""`
	ToStatus    int       `gorm:""`
	OccurredAt  time.Time `gorm:""`
	Published   bool      `gorm:"index"`
}

// TableName overrides GORM's default naming to use "order_events".
func (EventDTO) TableName() string {
	return "order_events"
}

func fromEvent(event order.Event) EventDTO {
	return EventDTO{
		OrderID:     event.OrderID.Bytes(),
		OrderNumber: event.OrderNumber,
		FromStatus:  int(event.From),
		ToStatus:    int(event.To),
		OccurredAt:  event.OccurredAt,
	}
}
