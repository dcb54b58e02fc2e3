package commands

import (
	"context"

	"vendororders/internal/core/domain/model/order"
)

// AssignDriverCommandHandler reserves a driver for an order. By default the
// order must be READY; deployments that line drivers up during preparation
// enable the early-assignment window.
type AssignDriverCommandHandler struct {
	uowFactory     OrderUoWFactory
	allowPreparing bool
}

// NewAssignDriverCommandHandler creates a handler for driver assignment.
// When allowPreparing is true, drivers may also be assigned while the order
// is still PREPARING.
func NewAssignDriverCommandHandler(uowFactory OrderUoWFactory, allowPreparing bool) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory:     uowFactory,
		allowPreparing: allowPreparing,
	}
}

// Handle assigns the driver to the order identified by the command.
// Reassignment replaces any previously assigned driver.
func (h *AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return executeTransition(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.AssignDriver(cmd.Driver(), h.allowPreparing)
	})
}
