package commands

import (
	"errors"
	"fmt"

	"vendororders/internal/core/domain/model/kernel"
	"vendororders/internal/core/domain/model/order"
	"vendororders/internal/pkg/errs"
	"vendororders/internal/pkg/guard"
)

var ErrApplyTransitionCommandIsNotConstructed = errors.New(
	"ApplyTransitionCommand must be created via NewApplyTransitionCommand constructor",
)

// ApplyTransitionCommand represents a generic status change request naming
// the target status directly, as sent by clients that drive the lifecycle
// through a single endpoint. The metadata carries whatever the specific
// transition needs: an estimate for acceptance, a reason for rejection, a
// driver for dispatch.
type ApplyTransitionCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	target   order.Status
	metadata order.TransitionMetadata

	guard guard.ConstructorGuard
}

// NewApplyTransitionCommand creates a command requesting a transition to the
// target status.
func NewApplyTransitionCommand(
	orderID kernel.UUID,
	target order.Status,
	metadata order.TransitionMetadata,
) (ApplyTransitionCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ApplyTransitionCommand{}, err
	}
	if err := target.Validate(); err != nil {
		return ApplyTransitionCommand{}, err
	}
	if metadata.EstimatedTime != nil && *metadata.EstimatedTime <= 0 {
		return ApplyTransitionCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"estimatedTime", fmt.Errorf("%d is not greater than 0", *metadata.EstimatedTime))
	}

	return ApplyTransitionCommand{
		orderID:  orderID,
		target:   target,
		metadata: metadata,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyTransitionCommand) Validate() error {
	return c.guard.Validate(ErrApplyTransitionCommandIsNotConstructed)
}

// OrderID returns the order to transition.
func (c ApplyTransitionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested target status.
func (c ApplyTransitionCommand) Target() order.Status {
	return c.target
}

// Metadata returns the transition-specific payload.
func (c ApplyTransitionCommand) Metadata() order.TransitionMetadata {
	return c.metadata
}
