package commands

import (
	"context"

	"vendororders/internal/core/domain/model/order"
)

// UnassignDriverCommandHandler releases the driver reserved for an order
// while it is still at the restaurant.
type UnassignDriverCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUnassignDriverCommandHandler creates a handler for driver release.
func NewUnassignDriverCommandHandler(uowFactory OrderUoWFactory) UnassignDriverCommandHandler {
	return UnassignDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle releases the driver from the order identified by the command.
func (h *UnassignDriverCommandHandler) Handle(ctx context.Context, cmd UnassignDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return executeTransition(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.UnassignDriver()
	})
}
