package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListOrdersByDateRangeQueryHandler reads the orders created within an
// inclusive window on created_at.
type ListOrdersByDateRangeQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersByDateRangeQueryHandler creates a handler for date-range
// queries.
func NewListOrdersByDateRangeQueryHandler(db *gorm.DB) ListOrdersByDateRangeQueryHandler {
	return ListOrdersByDateRangeQueryHandler{db: db}
}

// Handle executes the query, newest first.
func (h ListOrdersByDateRangeQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersByDateRangeQuery,
) (PagedOrdersResponse, error) {
	if err := query.Validate(); err != nil {
		return PagedOrdersResponse{}, err
	}

	var totalCount int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT count(*) FROM orders WHERE created_at BETWEEN ? AND ?
	`, query.Start(), query.End()).Scan(&totalCount).Error
	if err != nil {
		return PagedOrdersResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE created_at BETWEEN ? AND ?
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, query.Start(), query.End(), query.PageSize(), (query.Page()-1)*query.PageSize()).Rows()
	if err != nil {
		return PagedOrdersResponse{}, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		resp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return PagedOrdersResponse{}, scanErr
		}
		orders = append(orders, resp)
	}
	if err = rows.Err(); err != nil {
		return PagedOrdersResponse{}, err
	}

	return newPage(orders, query.Page(), query.PageSize(), totalCount), nil
}
