package commands

import (
	"context"

	"vendororders/internal/core/domain/model/order"
)

// DispatchOrderCommandHandler moves an order from READY to OUT_FOR_DELIVERY
// with a driver attached.
type DispatchOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDispatchOrderCommandHandler creates a handler for dispatching orders.
func NewDispatchOrderCommandHandler(uowFactory OrderUoWFactory) DispatchOrderCommandHandler {
	return DispatchOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle dispatches the order identified by the command.
func (h *DispatchOrderCommandHandler) Handle(ctx context.Context, cmd DispatchOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return executeTransition(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.Dispatch(cmd.Driver())
	})
}
