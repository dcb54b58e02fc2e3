package commands

import (
	"context"

	"vendororders/internal/core/domain/model/order"
)

// MarkOrderReadyCommandHandler moves an order from PREPARING to READY,
// stamping the ready time.
type MarkOrderReadyCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkOrderReadyCommandHandler creates a handler for marking orders ready.
func NewMarkOrderReadyCommandHandler(uowFactory OrderUoWFactory) MarkOrderReadyCommandHandler {
	return MarkOrderReadyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle marks the order identified by the command as ready.
func (h *MarkOrderReadyCommandHandler) Handle(ctx context.Context, cmd MarkOrderReadyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return executeTransition(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.MarkReady()
	})
}
