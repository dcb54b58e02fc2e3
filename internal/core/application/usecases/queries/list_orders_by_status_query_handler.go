package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListOrdersByStatusQueryHandler reads one status partition from the
// database, newest first.
type ListOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersByStatusQueryHandler creates a handler for status-partition
// queries.
func NewListOrdersByStatusQueryHandler(db *gorm.DB) ListOrdersByStatusQueryHandler {
	return ListOrdersByStatusQueryHandler{db: db}
}

// Handle executes the query. totalCount counts the partition, not the whole
// store, so hasMore reflects the filtered set.
func (h ListOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersByStatusQuery,
) (PagedOrdersResponse, error) {
	if err := query.Validate(); err != nil {
		return PagedOrdersResponse{}, err
	}

	var totalCount int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT count(*) FROM orders WHERE status = ?
	`, int(query.Status())).Scan(&totalCount).Error
	if err != nil {
		return PagedOrdersResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE status = ?
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, int(query.Status()), query.PageSize(), (query.Page()-1)*query.PageSize()).Rows()
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
