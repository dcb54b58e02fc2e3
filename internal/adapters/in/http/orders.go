package http

import (
	"net/http"

	"vendororders/internal/core/application/usecases/commands"
	"vendororders/internal/core/domain/model/kernel"
	"vendororders/internal/core/domain/model/order"
	"vendororders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type createOrderItemRequest struct {
	MenuItemID     string   `json:"menuItemId"`
	Name           string   `json:"name"`
	Quantity       int      `json:"quantity"`
	UnitPrice      int64    `json:"unitPrice"`
	Customizations []string `json:"customizations"`
}

type createOrderRequest struct {
	OrderNumber     string                   `json:"orderNumber"`
	CustomerID      string                   `json:"customerId"`
	CustomerName    string                   `json:"customerName"`
	CustomerPhone   string                   `json:"customerPhone"`
	DeliveryAddress string                   `json:"deliveryAddress"`
	Items           []createOrderItemRequest `json:"items"`
	TotalAmount     int64                    `json:"totalAmount"`
	PaymentMethod   string                   `json:"paymentMethod"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, orderID, err := buildCreateOrderCommand(req)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

func buildCreateOrderCommand(req createOrderRequest) (commands.CreateOrderCommand, kernel.UUID, error) {
	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return commands.CreateOrderCommand{}, kernel.UUID{},
			errs.NewValueIsInvalidErrorWithCause("customerId", err)
	}

	customer, err := order.NewCustomer(customerID, req.CustomerName, req.CustomerPhone, req.DeliveryAddress)
	if err != nil {
		return commands.CreateOrderCommand{}, kernel.UUID{}, err
	}

	items := make([]order.Item, 0, len(req.Items))
	for _, itemReq := range req.Items {
		menuItemID, itemErr := kernel.UUIDFromString(itemReq.MenuItemID)
		if itemErr != nil {
			return commands.CreateOrderCommand{}, kernel.UUID{},
				errs.NewValueIsInvalidErrorWithCause("menuItemId", itemErr)
		}

		unitPrice, itemErr := kernel.NewMoney(itemReq.UnitPrice)
		if itemErr != nil {
			return commands.CreateOrderCommand{}, kernel.UUID{}, itemErr
		}

		item, itemErr := order.NewItem(menuItemID, itemReq.Name, itemReq.Quantity, unitPrice, itemReq.Customizations)
		if itemErr != nil {
			return commands.CreateOrderCommand{}, kernel.UUID{}, itemErr
		}
		items = append(items, item)
	}

	totalAmount, err := kernel.NewMoney(req.TotalAmount)
	if err != nil {
		return commands.CreateOrderCommand{}, kernel.UUID{}, err
	}

	paymentMethod, err := order.PaymentMethodFromString(req.PaymentMethod)
	if err != nil {
		return commands.CreateOrderCommand{}, kernel.UUID{}, err
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, req.OrderNumber, customer, items, totalAmount, paymentMethod)
	if err != nil {
		return commands.CreateOrderCommand{}, kernel.UUID{}, err
	}

	return cmd, orderID, nil
}

type acceptOrderRequest struct {
	EstimatedTime *int `json:"estimatedTime"`
}

// AcceptOrder handles POST /api/v1/orders/:id/accept.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req acceptOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, req.EstimatedTime)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

type rejectOrderRequest struct {
	Reason string `json:"reason"`
}

// RejectOrder handles POST /api/v1/orders/:id/reject.
func (s *Server) RejectOrder(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req rejectOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewRejectOrderCommand(orderID, req.Reason)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.rejectOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// MarkOrderReady handles POST /api/v1/orders/:id/ready.
func (s *Server) MarkOrderReady(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewMarkOrderReadyCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.markOrderReadyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

type driverRequest struct {
	DriverID    string `json:"driverId"`
	DriverPhone string `json:"driverPhone"`
}

// DispatchOrder handles POST /api/v1/orders/:id/dispatch. The driver fields
// may be omitted when a driver was assigned beforehand.
func (s *Server) DispatchOrder(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req driverRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewDispatchOrderCommand(orderID, req.DriverID, req.DriverPhone)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.dispatchOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// MarkOrderDelivered handles POST /api/v1/orders/:id/delivered.
func (s *Server) MarkOrderDelivered(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewMarkOrderDeliveredCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.markOrderDeliveredHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

type applyTransitionRequest struct {
	Status        string `json:"status"`
	EstimatedTime *int   `json:"estimatedTime"`
	Reason        string `json:"reason"`
	DriverID      string `json:"driverId"`
	DriverPhone   string `json:"driverPhone"`
}

// ApplyTransition handles POST /api/v1/orders/:id/status, the generic form
// used by clients that name the target status directly.
func (s *Server) ApplyTransition(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req applyTransitionRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	meta := order.TransitionMetadata{
		EstimatedTime: req.EstimatedTime,
		Reason:        req.Reason,
	}
	if req.DriverID != "" || req.DriverPhone != "" {
		driver, driverErr := order.NewDriver(req.DriverID, req.DriverPhone)
		if driverErr != nil {
			return writeError(ctx, driverErr)
		}
		meta.Driver = &driver
	}

	cmd, err := commands.NewApplyTransitionCommand(orderID, target, meta)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.applyTransitionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// AssignDriver handles POST /api/v1/orders/:id/driver.
func (s *Server) AssignDriver(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req driverRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewAssignDriverCommand(orderID, req.DriverID, req.DriverPhone)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.assignDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// UnassignDriver handles DELETE /api/v1/orders/:id/driver.
func (s *Server) UnassignDriver(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUnassignDriverCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.unassignDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

type recordPaymentRequest struct {
	PaymentStatus string `json:"paymentStatus"`
}

// RecordPayment handles POST /api/v1/orders/:id/payment.
func (s *Server) RecordPayment(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req recordPaymentRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	status, err := order.PaymentStatusFromString(req.PaymentStatus)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRecordPaymentCommand(orderID, status)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.recordPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}
