package commands

import (
	"context"

	"vendororders/internal/core/domain/model/order"
)

// CancelOrderCommandHandler moves an order into the terminal CANCELLED
// status. Cancellation is only possible while the order is still at the
// restaurant; once it is out for delivery the trip cannot be recalled.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for cancelling orders.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle cancels the order identified by the command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return executeTransition(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.Cancel()
	})
}
