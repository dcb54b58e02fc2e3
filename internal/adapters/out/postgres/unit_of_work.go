// Package postgres provides the GORM-based Unit of Work tying together the
// order repository and the transactional outbox.
//
// Every command runs inside one unit of work: the order row, its version
// bump and the outbox rows for the lifecycle events recorded during the
// command are committed in a single database transaction. Commit drains the
// events of every aggregate touched by the transaction into the outbox
// before the transaction closes, so an event exists exactly when the state
// change that produced it does.
package postgres

import (
	"context"

	"vendororders/internal/adapters/out/postgres/orderrepo"
	"vendororders/internal/adapters/out/postgres/outboxrepo"
	"vendororders/internal/core/domain/model/kernel"
	"vendororders/internal/core/domain/model/order"
	"vendororders/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate modified during the unit of work. Orders
// among them have their recorded lifecycle events flushed to the outbox on
// commit.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances over a shared GORM
// connection. Each business operation gets a fresh instance with its own
// transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and tracks the
// aggregates modified within it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling Begin on an already started unit of
// work is a no-op rather than a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit writes the lifecycle events of every tracked order to the outbox
// and commits the transaction. Events are cleared from the aggregates only
// after the commit succeeded.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	orders := uow.trackedOrders()
	for _, aggregate := range orders {
		if err := outboxrepo.AppendEvents(uow.tx, aggregate.Events()); err != nil {
			return err
		}
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return err
	}

	for _, aggregate := range orders {
		aggregate.ClearEvents()
	}
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return nil
}

// Rollback discards the transaction. The recorded events stay on the
// aggregates; a retried command re-records them against fresh state.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// OrderRepository returns an order repository bound to the current
// transaction when one is active, or to the main connection otherwise.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return orderrepo.NewGormOrderRepository(db, uow)
}

// TrackAggregate registers a modified aggregate, called by the repositories
// on every successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// trackedOrders returns the distinct order aggregates touched by the
// transaction. An aggregate added and then updated within one unit of work
// is tracked twice but its events must be drained once.
func (uow *GormUnitOfWork) trackedOrders() []*order.Order {
	seen := make(map[kernel.UUID]struct{}, len(uow.trackedAggregates))
	orders := make([]*order.Order, 0, len(uow.trackedAggregates))
	for _, tracked := range uow.trackedAggregates {
		if _, ok := seen[tracked.ID]; ok {
			continue
		}
		if o, ok := tracked.Aggregate.(*order.Order); ok {
			seen[tracked.ID] = struct{}{}
			orders = append(orders, o)
		}
	}
	return orders
}
