package http

import (
	"net/http"
	"strconv"
	"time"

	"vendororders/internal/core/application/usecases/queries"
	"vendororders/internal/core/domain/model/order"
	"vendororders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	defaultPageSize = 20
)

type orderItemJSON struct {
	MenuItemID     string   `json:"menuItemId"`
	Name           string   `json:"name"`
	Quantity       int      `json:"quantity"`
	UnitPrice      int64    `json:"unitPrice"`
	Subtotal       int64    `json:"subtotal"`
	Customizations []string `json:"customizations,omitempty"`
}

type orderJSON struct {
	ID              string          `json:"id"`
	OrderNumber     string          `json:"orderNumber"`
	Status          string          `json:"status"`
	CustomerName    string          `json:"customerName"`
	CustomerPhone   string          `json:"customerPhone"`
	DeliveryAddress string          `json:"deliveryAddress"`
	TotalAmount     int64           `json:"totalAmount"`
	PaymentMethod   string          `json:"paymentMethod"`
	PaymentStatus   string          `json:"paymentStatus"`
	DriverID        *string         `json:"driverId,omitempty"`
	DriverPhone     *string         `json:"driverPhone,omitempty"`
	EstimatedTime   *int            `json:"estimatedTime,omitempty"`
	RejectionReason string          `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	AcceptedAt      *time.Time      `json:"acceptedAt,omitempty"`
	ReadyAt         *time.Time      `json:"readyAt,omitempty"`
	DeliveredAt     *time.Time      `json:"deliveredAt,omitempty"`
	Items           []orderItemJSON `json:"items,omitempty"`
}

type pagedOrdersJSON struct {
	Orders     []orderJSON `json:"orders"`
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	TotalCount int64       `json:"totalCount"`
	HasMore    bool        `json:"hasMore"`
}

func orderToJSON(resp queries.OrderResponse) orderJSON {
	items := make([]orderItemJSON, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, orderItemJSON(item))
	}

	return orderJSON{
		ID:              resp.ID,
		OrderNumber:     resp.OrderNumber,
		Status:          resp.Status,
		CustomerName:    resp.CustomerName,
		CustomerPhone:   resp.CustomerPhone,
		DeliveryAddress: resp.DeliveryAddress,
		TotalAmount:     resp.TotalAmount,
		PaymentMethod:   resp.PaymentMethod,
		PaymentStatus:   resp.PaymentStatus,
		DriverID:        resp.DriverID,
		DriverPhone:     resp.DriverPhone,
		EstimatedTime:   resp.EstimatedTime,
		RejectionReason: resp.RejectionReason,
		CreatedAt:       resp.CreatedAt,
		AcceptedAt:      resp.AcceptedAt,
		ReadyAt:         resp.ReadyAt,
		DeliveredAt:     resp.DeliveredAt,
		Items:           items,
	}
}

func pagedToJSON(page queries.PagedOrdersResponse) pagedOrdersJSON {
	orders := make([]orderJSON, 0, len(page.Orders))
	for _, resp := range page.Orders {
		orders = append(orders, orderToJSON(resp))
	}

	return pagedOrdersJSON{
		Orders:     orders,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalCount: page.TotalCount,
		HasMore:    page.HasMore,
	}
}

// ListOrders handles GET /api/v1/orders. Exactly one filter applies per
// request: ?status= lists a status partition, ?q= searches, ?start=&end=
// filters by creation window. The filters are tried in that precedence.
func (s *Server) ListOrders(ctx echo.Context) error {
	page, pageSize, err := parsePagination(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	requestCtx := ctx.Request().Context()

	if statusParam := ctx.QueryParam("status"); statusParam != "" {
		status, statusErr := order.StatusFromString(statusParam)
		if statusErr != nil {
			return writeError(ctx, statusErr)
		}

		query, queryErr := queries.NewListOrdersByStatusQuery(status, page, pageSize)
		if queryErr != nil {
			return writeError(ctx, queryErr)
		}

		result, handleErr := s.listOrdersByStatusHandler.Handle(requestCtx, query)
		if handleErr != nil {
			return writeError(ctx, handleErr)
		}
		return ctx.JSON(http.StatusOK, pagedToJSON(result))
	}

	if term := ctx.QueryParam("q"); term != "" {
		query, queryErr := queries.NewSearchOrdersQuery(term, page, pageSize)
		if queryErr != nil {
			return writeError(ctx, queryErr)
		}

		result, handleErr := s.searchOrdersHandler.Handle(requestCtx, query)
		if handleErr != nil {
			return writeError(ctx, handleErr)
		}
		return ctx.JSON(http.StatusOK, pagedToJSON(result))
	}

	if ctx.QueryParam("start") != "" || ctx.QueryParam("end") != "" {
		start, parseErr := parseTimeParam(ctx, "start")
		if parseErr != nil {
			return writeError(ctx, parseErr)
		}
		end, parseErr := parseTimeParam(ctx, "end")
		if parseErr != nil {
			return writeError(ctx, parseErr)
		}

		query, queryErr := queries.NewListOrdersByDateRangeQuery(start, end, page, pageSize)
		if queryErr != nil {
			return writeError(ctx, queryErr)
		}

		result, handleErr := s.listOrdersByDateRangeHandler.Handle(requestCtx, query)
		if handleErr != nil {
			return writeError(ctx, handleErr)
		}
		return ctx.JSON(http.StatusOK, pagedToJSON(result))
	}

	return writeError(ctx, errs.NewValueIsRequiredError("status, q or start/end"))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToJSON(result))
}

// GetOrderByNumber handles GET /api/v1/orders/number/:orderNumber, the
// lookup vendor staff use when all they have is the display number on the
// receipt.
func (s *Server) GetOrderByNumber(ctx echo.Context) error {
	query, err := queries.NewGetOrderByNumberQuery(ctx.Param("orderNumber"))
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getOrderByNumberHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToJSON(result))
}

func parsePagination(ctx echo.Context) (int, int, error) {
	page := 1
	if pageParam := ctx.QueryParam("page"); pageParam != "" {
		parsed, err := strconv.Atoi(pageParam)
		if err != nil {
			return 0, 0, errs.NewValueIsInvalidErrorWithCause("page", err)
		}
		page = parsed
	}

	pageSize := defaultPageSize
	if sizeParam := ctx.QueryParam("pageSize"); sizeParam != "" {
		parsed, err := strconv.Atoi(sizeParam)
		if err != nil {
			return 0, 0, errs.NewValueIsInvalidErrorWithCause("pageSize", err)
		}
		pageSize = parsed
	}

	return page, pageSize, nil
}

func parseTimeParam(ctx echo.Context, name string) (time.Time, error) {
	value := ctx.QueryParam(name)
	if value == "" {
		return time.Time{}, errs.NewValueIsRequiredError(name)
	}

	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return parsed, nil
}
