package commands

import (
	"context"

	"vendororders/internal/core/domain/model/order"
)

// AcceptOrderCommandHandler moves an order from NEW to PREPARING, stamping
// the acceptance time and the optional preparation estimate.
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAcceptOrderCommandHandler creates a handler for accepting orders.
func NewAcceptOrderCommandHandler(uowFactory OrderUoWFactory) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle accepts the order identified by the command.
func (h *AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return executeTransition(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.Accept(cmd.EstimatedTime())
	})
}
