package queries

import (
	"errors"
	"fmt"

	"vendororders/internal/core/domain/model/order"
	"vendororders/internal/pkg/errs"
	"vendororders/internal/pkg/guard"
)

var ErrListOrdersByStatusQueryIsNotConstructed = errors.New(
	"ListOrdersByStatusQuery must be created via NewListOrdersByStatusQuery constructor",
)

const maxPageSize = 100

// ListOrdersByStatusQuery retrieves one status partition of the order book,
// newest first. Backs the per-status tabs of the vendor dashboard.
type ListOrdersByStatusQuery struct {
	status   order.Status
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewListOrdersByStatusQuery creates a query for one status partition.
func NewListOrdersByStatusQuery(status order.Status, page, pageSize int) (ListOrdersByStatusQuery, error) {
	if err := status.Validate(); err != nil {
		return ListOrdersByStatusQuery{}, err
	}
	if err := validatePagination(page, pageSize); err != nil {
		return ListOrdersByStatusQuery{}, err
	}

	return ListOrdersByStatusQuery{
		status:   status,
		page:     page,
		pageSize: pageSize,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersByStatusQueryIsNotConstructed)
}

// Status returns the requested status partition.
func (q ListOrdersByStatusQuery) Status() order.Status {
	return q.status
}

// Page returns the 1-based page number.
func (q ListOrdersByStatusQuery) Page() int {
	return q.page
}

// PageSize returns the page size.
func (q ListOrdersByStatusQuery) PageSize() int {
	return q.pageSize
}

func validatePagination(page, pageSize int) error {
	if page < 1 {
		return errs.NewValueIsInvalidErrorWithCause("page", fmt.Errorf("%d is not greater than 0", page))
	}
	if pageSize < 1 || pageSize > maxPageSize {
		return errs.NewValueIsInvalidErrorWithCause(
			"pageSize", fmt.Errorf("%d is not between 1 and %d", pageSize, maxPageSize))
	}
	return nil
}
