package order

import (
	"fmt"

	"vendororders/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with defined transitions so that orders follow the vendor
// fulfillment workflow.
//
// State transitions:
//
//	New ──accept──> Preparing ──markReady──> Ready ──dispatch──> OutForDelivery ──markDelivered──> Delivered
//	 │                                                                                            (terminal)
//	 ├──reject──> Rejected (terminal)
//	 │
//	New | Preparing | Ready ──cancel──> Cancelled (terminal)
//
// The initial state is New, assigned at order creation and never reachable
// by a transition. Delivered, Cancelled and Rejected are terminal: every
// transition out of them fails with an InvalidTransition error, including
// same-status retries.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status assigned when an order is created.
	// The vendor has not yet accepted or rejected the order.
	New

	// Preparing indicates the vendor accepted the order and the kitchen
	// is working on it.
	Preparing

	// Ready indicates the order is prepared and waiting for a driver.
	Ready

	// OutForDelivery indicates a driver picked the order up.
	// Orders in this status always carry a driver reference.
	OutForDelivery

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates an admin cancelled the order before dispatch. Terminal.
	Cancelled

	// Rejected indicates the vendor declined the order. Terminal.
	Rejected
)

// getStatusStrings returns the wire names for all Status values, including
// Unknown for safe string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		New:            "NEW",
		Preparing:      "PREPARING",
		Ready:          "READY",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Cancelled:      "CANCELLED",
		Rejected:       "REJECTED",
	}
}

// getValidStatusStrings returns only the valid Status values, used by
// Validate and StatusFromString.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:            "NEW",
		Preparing:      "PREPARING",
		Ready:          "READY",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Cancelled:      "CANCELLED",
		Rejected:       "REJECTED",
	}
}

// StatusFromString parses a wire status name ("NEW", "PREPARING", ...) into
// a Status. Returns a validation error for unknown names. Used at external
// boundaries: API request parsing and database re-hydration.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the defined lifecycle states.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status ("NEW", "OUT_FOR_DELIVERY", ...).
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled || s == Rejected
}

// Accept transitions New -> Preparing.
// Any other source, including Preparing itself, fails with InvalidTransition.
func (s Status) Accept() (Status, error) {
	if s != New {
		return Unknown, errs.NewInvalidTransitionError(s.String(), Preparing.String())
	}
	return Preparing, nil
}

// Reject transitions New -> Rejected. Rejection is only possible before the
// vendor accepts the order.
func (s Status) Reject() (Status, error) {
	if s != New {
		return Unknown, errs.NewInvalidTransitionError(s.String(), Rejected.String())
	}
	return Rejected, nil
}

// MarkReady transitions Preparing -> Ready.
func (s Status) MarkReady() (Status, error) {
	if s != Preparing {
		return Unknown, errs.NewInvalidTransitionError(s.String(), Ready.String())
	}
	return Ready, nil
}

// Dispatch transitions Ready -> OutForDelivery. The aggregate guarantees a
// driver reference is present before this transition is applied.
func (s Status) Dispatch() (Status, error) {
	if s != Ready {
		return Unknown, errs.NewInvalidTransitionError(s.String(), OutForDelivery.String())
	}
	return OutForDelivery, nil
}

// MarkDelivered transitions OutForDelivery -> Delivered.
func (s Status) MarkDelivered() (Status, error) {
	if s != OutForDelivery {
		return Unknown, errs.NewInvalidTransitionError(s.String(), Delivered.String())
	}
	return Delivered, nil
}

// Cancel transitions New, Preparing or Ready -> Cancelled. Orders already
// out for delivery or in a terminal state cannot be cancelled.
func (s Status) Cancel() (Status, error) {
	if s != New && s != Preparing && s != Ready {
		return Unknown, errs.NewInvalidTransitionError(s.String(), Cancelled.String())
	}
	return Cancelled, nil
}

// ValidateCanHaveDriver validates consistency between order status and the
// presence of a driver reference.
//
// Rules:
//   - New and Rejected orders must not have a driver
//   - OutForDelivery and Delivered orders must have a driver
//   - Preparing, Ready and Cancelled orders may have one (early assignment,
//     or a cancellation after a driver was assigned)
func (s Status) ValidateCanHaveDriver(driver bool) error {
	if driver && (s == New || s == Rejected) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			errs.NewInvalidAssignmentError(s.String()),
		)
	}

	if !driver && (s == OutForDelivery || s == Delivered) {
		return errs.NewValueIsRequiredErrorWithCause(
			"driver",
			errs.NewInvalidAssignmentError(s.String()),
		)
	}

	return nil
}
