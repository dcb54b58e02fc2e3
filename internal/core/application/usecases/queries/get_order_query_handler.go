package queries

import (
	"context"
	"encoding/json"

	"vendororders/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order with its line items.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFound when no order exists
// under the requested identifier.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderResponse{}, err
		}
		return OrderResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
	}

	resp, err := scanOrderRow(rows)
	if err != nil {
		return OrderResponse{}, err
	}
	rows.Close()

	items, err := loadOrderItems(ctx, h.db, query.OrderID().Bytes())
	if err != nil {
		return OrderResponse{}, err
	}
	resp.Items = items

	return resp, nil
}

// loadOrderItems reads the line items of one order, shared by the detail
// queries.
func loadOrderItems(ctx context.Context, db *gorm.DB, orderID uuid.UUID) ([]OrderItemResponse, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			menu_item_id,
			name,
			quantity,
			unit_price,
			customizations
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemResponse, 0)
	for rows.Next() {
		var (
			item           OrderItemResponse
			menuItemID     uuid.UUID
			customizations []byte
		)
		if err = rows.Scan(&menuItemID, &item.Name, &item.Quantity, &item.UnitPrice, &customizations); err != nil {
			return nil, err
		}

		item.MenuItemID = menuItemID.String()
		item.Subtotal = item.UnitPrice * int64(item.Quantity)
		if len(customizations) > 0 {
			if err = json.Unmarshal(customizations, &item.Customizations); err != nil {
				return nil, err
			}
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
