package errs

import (
	"errors"
	"fmt"
)

// ErrDuplicateOrder is the sentinel for order creation with an order number
// that already exists in the store.
var ErrDuplicateOrder = errors.New("duplicate order")

// DuplicateOrderError reports an order-number collision on create.
type DuplicateOrderError struct {
	OrderNumber string
	Cause       error
}

// NewDuplicateOrderError creates a DuplicateOrderError for the colliding
// order number.
func NewDuplicateOrderError(orderNumber string) *DuplicateOrderError {
	return &DuplicateOrderError{OrderNumber: orderNumber}
}

// NewDuplicateOrderErrorWithCause creates a DuplicateOrderError wrapping an
// underlying cause, typically the database unique-constraint violation.
func NewDuplicateOrderErrorWithCause(orderNumber string, cause error) *DuplicateOrderError {
	return &DuplicateOrderError{OrderNumber: orderNumber, Cause: cause}
}

func (e *DuplicateOrderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrDuplicateOrder, sanitize(e.OrderNumber), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrDuplicateOrder, sanitize(e.OrderNumber))
}

func (e *DuplicateOrderError) Unwrap() error {
	return ErrDuplicateOrder
}
