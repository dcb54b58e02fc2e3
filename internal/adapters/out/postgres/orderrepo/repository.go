package orderrepo

import (
	"context"
	"errors"

	"vendororders/internal/core/domain/model/kernel"
	"vendororders/internal/core/domain/model/order"
	"vendororders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker registers written aggregates with the unit of work so
// their lifecycle events reach the outbox on commit.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its line items. The unique index on
// order_number turns a collision into DuplicateOrder; requires a connection
// opened with TranslateError so gorm surfaces ErrDuplicatedKey.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewDuplicateOrderErrorWithCause(aggregate.OrderNumber(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order under an optimistic version check: the row
// is only written when its stored version still matches the version the
// aggregate was read at, and the version is bumped in the same statement.
// Zero affected rows on an existing order means a concurrent writer won the
// race, reported as Conflict. Line items are immutable and never updated.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	updates := map[string]any{
		"status":           dto.Status,
		"payment_status":   dto.PaymentStatus,
		"driver_id":        dto.DriverID,
		"driver_phone":     dto.DriverPhone,
		"estimated_time":   dto.EstimatedTime,
		"rejection_reason": dto.RejectionReason,
		"accepted_at":      dto.AcceptedAt,
		"ready_at":         dto.ReadyAt,
		"delivered_at":     dto.DeliveredAt,
		"version":          dto.Version + 1,
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
			Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("orderId", aggregate.ID().String())
		}
		return errs.NewConflictError(aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
