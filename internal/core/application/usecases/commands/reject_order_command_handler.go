package commands

import (
	"context"

	"vendororders/internal/core/domain/model/order"
)

// RejectOrderCommandHandler moves an order from NEW to the terminal
// REJECTED status.
type RejectOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRejectOrderCommandHandler creates a handler for rejecting orders.
func NewRejectOrderCommandHandler(uowFactory OrderUoWFactory) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle rejects the order identified by the command.
func (h *RejectOrderCommandHandler) Handle(ctx context.Context, cmd RejectOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return executeTransition(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.Reject(cmd.Reason())
	})
}
