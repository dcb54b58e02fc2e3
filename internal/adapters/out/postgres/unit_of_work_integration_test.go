package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "vendororders/internal/adapters/out/postgres"
	"vendororders/internal/adapters/out/postgres/orderrepo"
	"vendororders/internal/adapters/out/postgres/outboxrepo"
	"vendororders/internal/core/domain/model/kernel"
	"vendororders/internal/core/domain/model/order"
	"vendororders/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies that the GORM-based unit of work
// commits the order state change and its outbox rows atomically against a
// real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
	outbox    ports.OutboxRepository
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}, &outboxrepo.EventDTO{})
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
	suite.outbox = outboxrepo.NewGormOutboxRepository(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items, order_events").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder(orderNumber string) *order.Order {
	customer, err := order.NewCustomer(
		kernel.NewUUID(), "Priya Sharma", "+911112223334", "12 MG Road, Bengaluru")
	suite.Require().NoError(err)

	price, err := kernel.NewMoney(12500)
	suite.Require().NoError(err)
	item, err := order.NewItem(kernel.NewUUID(), "Paneer Tikka", 2, price, nil)
	suite.Require().NoError(err)

	total, err := kernel.NewMoney(25000)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), orderNumber, customer, []order.Item{item}, total, order.PaymentMethodOnline)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *UnitOfWorkIntegrationTestSuite) countRows(model any) int64 {
	var count int64
	suite.Require().NoError(suite.db.Model(model).Count(&count).Error)
	return count
}

// TestUnitOfWorkFactory_Create verifies the factory creates isolated unit
// of work instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow2.OrderRepository())
}

// TestUnitOfWork_TransactionLifecycle verifies begin, commit and rollback
// behave including repeated begin calls.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)
}

// TestUnitOfWork_CommitWithoutBegin verifies commit fails without an active
// transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitWithoutBegin() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err)

	err = uow.Rollback(ctx)
	suite.Require().Error(err)
}

// TestUnitOfWork_CommitWritesOrderAndOutboxTogether verifies that the
// creation event lands in order_events in the same commit as the order row,
// and that the aggregate's pending events are cleared afterwards.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitWritesOrderAndOutboxTogether() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("ORD001")

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	suite.Equal(int64(0), suite.countRows(&orderrepo.OrderDTO{}),
		"order row should not be visible before commit")

	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal(int64(1), suite.countRows(&orderrepo.OrderDTO{}))
	suite.Equal(int64(1), suite.countRows(&outboxrepo.EventDTO{}))
	suite.Empty(testOrder.Events(), "events should be cleared after commit")

	messages, err := suite.outbox.FetchUnpublished(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(messages, 1)
	suite.True(messages[0].OrderID.IsEqual(testOrder.ID()))
	suite.Equal("ORD001", messages[0].OrderNumber)
	suite.Equal(order.Unknown, messages[0].FromStatus)
	suite.Equal(order.New, messages[0].ToStatus)
}

// TestUnitOfWork_RollbackLeavesNothing verifies a rolled back transaction
// writes neither the order nor its outbox rows.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackLeavesNothing() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("ORD001")

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Equal(int64(0), suite.countRows(&orderrepo.OrderDTO{}))
	suite.Equal(int64(0), suite.countRows(&outboxrepo.EventDTO{}))
	suite.NotEmpty(testOrder.Events(), "events stay on the aggregate for a retry")
}

// TestUnitOfWork_TransitionAppendsOutboxRowInOrder verifies a later
// transition appends a second outbox row and that FetchUnpublished returns
// rows oldest first.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransitionAppendsOutboxRowInOrder() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("ORD001")

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Commit(ctx))

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	repo := uow.OrderRepository()
	loaded, err := repo.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	eta := 25
	suite.Require().NoError(loaded.Accept(&eta))
	suite.Require().NoError(repo.Update(ctx, loaded))
	suite.Require().NoError(uow.Commit(ctx))

	messages, err := suite.outbox.FetchUnpublished(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(messages, 2)
	suite.Equal(order.New, messages[0].ToStatus)
	suite.Equal(order.New, messages[1].FromStatus)
	suite.Equal(order.Preparing, messages[1].ToStatus)
	suite.True(messages[0].OccurredAt.Before(messages[1].OccurredAt.Add(time.Second)))
}

// TestOutboxRepository_MarkPublished verifies marked rows drop out of the
// unpublished scan while others remain.
func (suite *UnitOfWorkIntegrationTestSuite) TestOutboxRepository_MarkPublished() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("ORD001")

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	repo := uow.OrderRepository()
	suite.Require().NoError(repo.Add(ctx, testOrder))
	eta := 25
	suite.Require().NoError(testOrder.Accept(&eta))
	suite.Require().NoError(repo.Update(ctx, testOrder))
	suite.Require().NoError(uow.Commit(ctx))

	messages, err := suite.outbox.FetchUnpublished(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(messages, 2)

	err = suite.outbox.MarkPublished(ctx, []int64{messages[0].ID})
	suite.Require().NoError(err)

	remaining, err := suite.outbox.FetchUnpublished(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(remaining, 1)
	suite.Equal(messages[1].ID, remaining[0].ID)

	// Marking nothing is a no-op.
	suite.Require().NoError(suite.outbox.MarkPublished(ctx, nil))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
