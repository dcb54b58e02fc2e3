// Package guard provides the ConstructorGuard helper used by value objects,
// commands and queries to reject zero-value instances that bypassed their
// constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error was supplied for a non-constructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its designated
// constructor. Embedding a guard in a struct makes zero-value instances
// detectable: only constructors call NewConstructorGuard, so a zero guard
// means the struct was instantiated directly.
//
// Example:
//
//	type RejectOrderCommand struct {
//	    orderID kernel.UUID
//	    reason  string
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewRejectOrderCommand(...) (RejectOrderCommand, error) {
//	    ...
//	    return RejectOrderCommand{..., guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c RejectOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrRejectOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the embedding object as
// properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was created through its constructor,
// otherwise the supplied validationError (or ErrDefaultConstructorGuard when
// validationError is nil).
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
