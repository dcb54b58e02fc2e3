package errs

import (
	"errors"
	"fmt"
)

// ErrInvalidAssignment is the sentinel for driver assignment attempted
// outside the allowed status window.
var ErrInvalidAssignment = errors.New("invalid assignment")

// InvalidAssignmentError reports a driver assign or unassign call made while
// the order status does not permit it.
type InvalidAssignmentError struct {
	Status string
	Cause  error
}

// NewInvalidAssignmentError creates an InvalidAssignmentError for the status
// the order was in when the assignment was attempted.
func NewInvalidAssignmentError(status string) *InvalidAssignmentError {
	return &InvalidAssignmentError{Status: status}
}

// NewInvalidAssignmentErrorWithCause creates an InvalidAssignmentError
// wrapping an underlying cause.
func NewInvalidAssignmentErrorWithCause(status string, cause error) *InvalidAssignmentError {
	return &InvalidAssignmentError{Status: status, Cause: cause}
}

func (e *InvalidAssignmentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: status is %s (cause: %s)", ErrInvalidAssignment, e.Status, e.Cause)
	}
	return fmt.Sprintf("%s: status is %s", ErrInvalidAssignment, e.Status)
}

func (e *InvalidAssignmentError) Unwrap() error {
	return ErrInvalidAssignment
}
