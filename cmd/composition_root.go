package cmd

import (
	"log/slog"

	httpin "vendororders/internal/adapters/in/http"
	"vendororders/internal/adapters/out/postgres"
	"vendororders/internal/adapters/out/postgres/outboxrepo"
	"vendororders/internal/core/application/usecases/commands"
	"vendororders/internal/core/application/usecases/queries"
	"vendororders/internal/core/ports"
	"vendororders/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use-case handlers.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewCompositionRoot creates the composition root over the opened
// connections.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

// CreateHTTPHandlers builds the full handler set for the REST server.
func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	uowFactory := c.orderUoWFactory()

	return httpin.Handlers{
		CreateOrder:        commands.NewCreateOrderCommandHandler(uowFactory),
		AcceptOrder:        commands.NewAcceptOrderCommandHandler(uowFactory),
		RejectOrder:        commands.NewRejectOrderCommandHandler(uowFactory),
		MarkOrderReady:     commands.NewMarkOrderReadyCommandHandler(uowFactory),
		DispatchOrder:      commands.NewDispatchOrderCommandHandler(uowFactory),
		MarkOrderDelivered: commands.NewMarkOrderDeliveredCommandHandler(uowFactory, c.logger),
		CancelOrder:        commands.NewCancelOrderCommandHandler(uowFactory),
		ApplyTransition:    commands.NewApplyTransitionCommandHandler(uowFactory),
		AssignDriver:       commands.NewAssignDriverCommandHandler(uowFactory, c.config.AllowEarlyDriverAssignment),
		UnassignDriver:     commands.NewUnassignDriverCommandHandler(uowFactory),
		RecordPayment:      commands.NewRecordPaymentCommandHandler(uowFactory),

		ListOrdersByStatus:    queries.NewListOrdersByStatusQueryHandler(c.gormDB),
		SearchOrders:          queries.NewSearchOrdersQueryHandler(c.gormDB),
		ListOrdersByDateRange: queries.NewListOrdersByDateRangeQueryHandler(c.gormDB),
		GetOrder:              queries.NewGetOrderQueryHandler(c.gormDB),
		GetOrderByNumber:      queries.NewGetOrderByNumberQueryHandler(c.gormDB),
	}
}

// CreateJobManager builds the background job set.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	outbox := outboxrepo.NewGormOutboxRepository(c.gormDB)
	return jobs.NewJobManager(outbox, c.publisher, c.config.OutboxBatchSize, c.logger)
}

// FuncOrderUoWFactory adapts a closure to the OrderUoWFactory interface.
type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
