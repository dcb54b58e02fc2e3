package commands

import (
	"context"

	"vendororders/internal/core/domain/model/order"
)

// ApplyTransitionCommandHandler routes a target-status request to the
// matching lifecycle transition.
type ApplyTransitionCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewApplyTransitionCommandHandler creates a handler for generic status
// change requests.
func NewApplyTransitionCommandHandler(uowFactory OrderUoWFactory) ApplyTransitionCommandHandler {
	return ApplyTransitionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the requested transition to the order identified by the
// command.
func (h *ApplyTransitionCommandHandler) Handle(ctx context.Context, cmd ApplyTransitionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return executeTransition(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.ApplyTransition(cmd.Target(), cmd.Metadata())
	})
}
