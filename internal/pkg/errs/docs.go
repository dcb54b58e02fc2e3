// Package errs provides the standardized error types for the vendor order
// service. Every error kind follows the same pattern:
//   - a sentinel error variable (e.g. ErrInvalidTransition)
//   - a struct type carrying the error details and an optional Cause
//   - constructor functions with and without a cause
//   - an Error() method for formatting and an Unwrap() method returning the
//     sentinel, so callers classify errors with errors.Is
//
// The taxonomy maps one-to-one onto the service's externally visible
// failures: validation errors (ValueIsRequired, ValueIsInvalid), missing
// objects (ObjectNotFound), illegal lifecycle transitions
// (InvalidTransition), order-number collisions (DuplicateOrder), driver
// assignment outside the allowed status window (InvalidAssignment), and
// lost optimistic-concurrency races (Conflict).
package errs
