package ports

import (
	"context"

	"vendororders/internal/core/domain/model/kernel"
	"vendororders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order. Fails with DuplicateOrder when the order
	// number collides with an existing record. Lifecycle events recorded on
	// the aggregate are written to the outbox in the same transaction.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order under an optimistic
	// version check: it fails with Conflict when a concurrent writer
	// committed first, leaving the aggregate's stored state untouched.
	// Lifecycle events recorded on the aggregate are written to the outbox
	// in the same transaction.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id, reading the current persisted state.
	// Fails with ObjectNotFound when the id is unknown.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
