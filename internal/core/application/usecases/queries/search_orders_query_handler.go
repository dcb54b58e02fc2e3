package queries

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// SearchOrdersQueryHandler runs substring search over the order book.
// Item names live in the order_items table, so the match is an EXISTS
// subquery rather than a join, keeping one row per order.
type SearchOrdersQueryHandler struct {
	db *gorm.DB
}

// NewSearchOrdersQueryHandler creates a handler for order search.
func NewSearchOrdersQueryHandler(db *gorm.DB) SearchOrdersQueryHandler {
	return SearchOrdersQueryHandler{db: db}
}

const searchPredicate = `
	order_number ILIKE @term
	OR customer_name ILIKE @term
	OR delivery_address ILIKE @term
	OR EXISTS (
		SELECT 1 FROM order_items oi
		WHERE oi.order_id = orders.id AND oi.name ILIKE @term
	)
`

// Handle executes the search, ranked newest first.
func (h SearchOrdersQueryHandler) Handle(
	ctx context.Context,
	query SearchOrdersQuery,
) (PagedOrdersResponse, error) {
	if err := query.Validate(); err != nil {
		return PagedOrdersResponse{}, err
	}

	term := "%" + escapeLike(query.Term()) + "%"

	var totalCount int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT count(*) FROM orders WHERE `+searchPredicate,
		map[string]any{"term": term}).Scan(&totalCount).Error
	if err != nil {
		return PagedOrdersResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE `+searchPredicate+`
		ORDER BY created_at DESC
		LIMIT @limit OFFSET @offset
	`, map[string]any{
		"term":   term,
		"limit":  query.PageSize(),
		"offset": (query.Page() - 1) * query.PageSize(),
	}).Rows()
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

// escapeLike neutralizes LIKE metacharacters so the search term matches
// literally.
func escapeLike(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(term)
}
