package queries

import (
	"errors"
	"fmt"
	"time"

	"vendororders/internal/pkg/errs"
	"vendororders/internal/pkg/guard"
)

var ErrListOrdersByDateRangeQueryIsNotConstructed = errors.New(
	"ListOrdersByDateRangeQuery must be created via NewListOrdersByDateRangeQuery constructor",
)

// ListOrdersByDateRangeQuery retrieves orders created within an inclusive
// time window, newest first.
type ListOrdersByDateRangeQuery struct {
	start    time.Time
	end      time.Time
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewListOrdersByDateRangeQuery creates a date-range query. Both bounds are
// required and the window must not be inverted.
func NewListOrdersByDateRangeQuery(start, end time.Time, page, pageSize int) (ListOrdersByDateRangeQuery, error) {
	if start.IsZero() {
		return ListOrdersByDateRangeQuery{}, errs.NewValueIsRequiredError("start")
	}
	if end.IsZero() {
		return ListOrdersByDateRangeQuery{}, errs.NewValueIsRequiredError("end")
	}
	if end.Before(start) {
		return ListOrdersByDateRangeQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"end", fmt.Errorf("%s is before start %s", end.Format(time.RFC3339), start.Format(time.RFC3339)))
	}
	if err := validatePagination(page, pageSize); err != nil {
		return ListOrdersByDateRangeQuery{}, err
	}

	return ListOrdersByDateRangeQuery{
		start:    start,
		end:      end,
		page:     page,
		pageSize: pageSize,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersByDateRangeQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersByDateRangeQueryIsNotConstructed)
}

// Start returns the inclusive lower bound.
func (q ListOrdersByDateRangeQuery) Start() time.Time {
	return q.start
}

// End returns the inclusive upper bound.
func (q ListOrdersByDateRangeQuery) End() time.Time {
	return q.end
}

// Page returns the 1-based page number.
func (q ListOrdersByDateRangeQuery) Page() int {
	return q.page
}

// PageSize returns the page size.
func (q ListOrdersByDateRangeQuery) PageSize() int {
	return q.pageSize
}
