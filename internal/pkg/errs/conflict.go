package errs

import (
	"errors"
	"fmt"
)

// ErrConflict is the sentinel for updates that lost a race to a concurrent
// writer on the same order. Callers may retry after re-reading current state.
var ErrConflict = errors.New("concurrent modification")

// ConflictError reports a version-checked update that matched no rows because
// another transaction committed first.
type ConflictError struct {
	OrderID string
	Cause   error
}

// NewConflictError creates a ConflictError for the contended order.
func NewConflictError(orderID string) *ConflictError {
	return &ConflictError{OrderID: orderID}
}

// NewConflictErrorWithCause creates a ConflictError wrapping an underlying cause.
func NewConflictErrorWithCause(orderID string, cause error) *ConflictError {
	return &ConflictError{OrderID: orderID, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrConflict, e.OrderID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrConflict, e.OrderID)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
