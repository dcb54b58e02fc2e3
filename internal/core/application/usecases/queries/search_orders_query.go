package queries

import (
	"errors"

	"vendororders/internal/pkg/errs"
	"vendororders/internal/pkg/guard"
)

var ErrSearchOrdersQueryIsNotConstructed = errors.New(
	"SearchOrdersQuery must be created via NewSearchOrdersQuery constructor",
)

// SearchOrdersQuery finds orders by case-insensitive substring match over
// the order number, the customer name, the delivery address and the item
// names. Results are ranked by recency.
type SearchOrdersQuery struct {
	term     string
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewSearchOrdersQuery creates a search query. The term must be non-empty.
func NewSearchOrdersQuery(term string, page, pageSize int) (SearchOrdersQuery, error) {
	if term == "" {
		return SearchOrdersQuery{}, errs.NewValueIsRequiredError("q")
	}
	if err := validatePagination(page, pageSize); err != nil {
		return SearchOrdersQuery{}, err
	}

	return SearchOrdersQuery{
		term:     term,
		page:     page,
		pageSize: pageSize,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q SearchOrdersQuery) Validate() error {
	return q.guard.Validate(ErrSearchOrdersQueryIsNotConstructed)
}

// Term returns the search term.
func (q SearchOrdersQuery) Term() string {
	return q.term
}

// Page returns the 1-based page number.
func (q SearchOrdersQuery) Page() int {
	return q.page
}

// PageSize returns the page size.
func (q SearchOrdersQuery) PageSize() int {
	return q.pageSize
}
