package queries

import (
	"errors"

	"vendororders/internal/pkg/errs"
	"vendororders/internal/pkg/guard"
)

var ErrGetOrderByNumberQueryIsNotConstructed = errors.New(
	"GetOrderByNumberQuery must be created via NewGetOrderByNumberQuery constructor",
)

// GetOrderByNumberQuery retrieves the full detail of a single order by its
// display order number, the identifier customers and vendor staff actually
// see.
type GetOrderByNumberQuery struct {
	orderNumber string

	guard guard.ConstructorGuard
}

// NewGetOrderByNumberQuery creates a query for one order by number.
func NewGetOrderByNumberQuery(orderNumber string) (GetOrderByNumberQuery, error) {
	if orderNumber == "" {
		return GetOrderByNumberQuery{}, errs.NewValueIsRequiredError("orderNumber")
	}

	return GetOrderByNumberQuery{
		orderNumber: orderNumber,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByNumberQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByNumberQueryIsNotConstructed)
}

// OrderNumber returns the requested display order number.
func (q GetOrderByNumberQuery) OrderNumber() string {
	return q.orderNumber
}
