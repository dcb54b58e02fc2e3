package queries

import (
	"context"

	"vendororders/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderByNumberQueryHandler reads one order with its line items, looked
// up by display order number. The unique index on order_number keeps the
// lookup cheap.
type GetOrderByNumberQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByNumberQueryHandler creates a handler for by-number reads.
func NewGetOrderByNumberQueryHandler(db *gorm.DB) GetOrderByNumberQueryHandler {
	return GetOrderByNumberQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFound when no order exists
// under the requested number.
func (h GetOrderByNumberQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByNumberQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE order_number = ?
	`, query.OrderNumber()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderResponse{}, err
		}
		return OrderResponse{}, errs.NewObjectNotFoundError("orderNumber", query.OrderNumber())
	}

	resp, err := scanOrderRow(rows)
	if err != nil {
		return OrderResponse{}, err
	}
	rows.Close()

	orderID, err := uuid.Parse(resp.ID)
	if err != nil {
		return OrderResponse{}, err
	}

	items, err := loadOrderItems(ctx, h.db, orderID)
	if err != nil {
		return OrderResponse{}, err
	}
	resp.Items = items

	return resp, nil
}
