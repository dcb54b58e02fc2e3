// Package http is the REST boundary of the order lifecycle service. It
// parses and validates request shapes, translates them into commands and
// queries, and maps the error taxonomy onto stable status codes: 400 for
// validation failures, illegal transitions and assignment-window
// violations, 404 for unknown orders, 409 for duplicate order numbers and
// lost concurrent-write races, 500 otherwise.
package http

import (
	"errors"
	"net/http"

	"vendororders/internal/core/application/usecases/commands"
	"vendororders/internal/core/application/usecases/queries"
	"vendororders/internal/core/domain/model/kernel"
	"vendororders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler        commands.CreateOrderCommandHandler
	acceptOrderHandler        commands.AcceptOrderCommandHandler
	rejectOrderHandler        commands.RejectOrderCommandHandler
	markOrderReadyHandler     commands.MarkOrderReadyCommandHandler
	dispatchOrderHandler      commands.DispatchOrderCommandHandler
	markOrderDeliveredHandler commands.MarkOrderDeliveredCommandHandler
	cancelOrderHandler        commands.CancelOrderCommandHandler
	applyTransitionHandler    commands.ApplyTransitionCommandHandler
	assignDriverHandler       commands.AssignDriverCommandHandler
	unassignDriverHandler     commands.UnassignDriverCommandHandler
	recordPaymentHandler      commands.RecordPaymentCommandHandler

	listOrdersByStatusHandler    queries.ListOrdersByStatusQueryHandler
	searchOrdersHandler          queries.SearchOrdersQueryHandler
	listOrdersByDateRangeHandler queries.ListOrdersByDateRangeQueryHandler
	getOrderHandler              queries.GetOrderQueryHandler
	getOrderByNumberHandler      queries.GetOrderByNumberQueryHandler
}

// Handlers bundles the use-case handlers the server needs.
type Handlers struct {
	CreateOrder        commands.CreateOrderCommandHandler
	AcceptOrder        commands.AcceptOrderCommandHandler
	RejectOrder        commands.RejectOrderCommandHandler
	MarkOrderReady     commands.MarkOrderReadyCommandHandler
	DispatchOrder      commands.DispatchOrderCommandHandler
	MarkOrderDelivered commands.MarkOrderDeliveredCommandHandler
	CancelOrder        commands.CancelOrderCommandHandler
	ApplyTransition    commands.ApplyTransitionCommandHandler
	AssignDriver       commands.AssignDriverCommandHandler
	UnassignDriver     commands.UnassignDriverCommandHandler
	RecordPayment      commands.RecordPaymentCommandHandler

	ListOrdersByStatus    queries.ListOrdersByStatusQueryHandler
	SearchOrders          queries.SearchOrdersQueryHandler
	ListOrdersByDateRange queries.ListOrdersByDateRangeQueryHandler
	GetOrder              queries.GetOrderQueryHandler
	GetOrderByNumber      queries.GetOrderByNumberQueryHandler
}

// NewServer creates the HTTP server over the given use-case handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{
		createOrderHandler:           handlers.CreateOrder,
		acceptOrderHandler:           handlers.AcceptOrder,
		rejectOrderHandler:           handlers.RejectOrder,
		markOrderReadyHandler:        handlers.MarkOrderReady,
		dispatchOrderHandler:         handlers.DispatchOrder,
		markOrderDeliveredHandler:    handlers.MarkOrderDelivered,
		cancelOrderHandler:           handlers.CancelOrder,
		applyTransitionHandler:       handlers.ApplyTransition,
		assignDriverHandler:          handlers.AssignDriver,
		unassignDriverHandler:        handlers.UnassignDriver,
		recordPaymentHandler:         handlers.RecordPayment,
		listOrdersByStatusHandler:    handlers.ListOrdersByStatus,
		searchOrdersHandler:          handlers.SearchOrders,
		listOrdersByDateRangeHandler: handlers.ListOrdersByDateRange,
		getOrderHandler:              handlers.GetOrder,
		getOrderByNumberHandler:      handlers.GetOrderByNumber,
	}
}

// RegisterRoutes attaches all routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/number/:orderNumber", s.GetOrderByNumber)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/accept", s.AcceptOrder)
	api.POST("/orders/:id/reject", s.RejectOrder)
	api.POST("/orders/:id/ready", s.MarkOrderReady)
	api.POST("/orders/:id/dispatch", s.DispatchOrder)
	api.POST("/orders/:id/delivered", s.MarkOrderDelivered)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/status", s.ApplyTransition)
	api.POST("/orders/:id/driver", s.AssignDriver)
	api.DELETE("/orders/:id/driver", s.UnassignDriver)
	api.POST("/orders/:id/payment", s.RecordPayment)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// errorResponse is the JSON error body of every non-2xx response.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps the error taxonomy onto status codes.
func writeError(ctx echo.Context, err error) error {
	return ctx.JSON(statusCodeFor(err), errorResponse{
		Code:    statusCodeFor(err),
		Message: err.Error(),
	})
}

func statusCodeFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrDuplicateOrder),
		errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrInvalidAssignment),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func parseOrderID(ctx echo.Context) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return id, nil
}
