package commands

import (
	"context"
	"log/slog"

	"vendororders/internal/core/domain/model/order"
)

// MarkOrderDeliveredCommandHandler moves an order from OUT_FOR_DELIVERY to
// the terminal DELIVERED status.
type MarkOrderDeliveredCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

// NewMarkOrderDeliveredCommandHandler creates a handler for completing
// deliveries.
func NewMarkOrderDeliveredCommandHandler(
	uowFactory OrderUoWFactory, logger *slog.Logger,
) MarkOrderDeliveredCommandHandler {
	return MarkOrderDeliveredCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "mark_order_delivered"),
	}
}

// Handle marks the order identified by the command as delivered. A cash
// order with a failed payment still completes, but the discrepancy is
// logged for reconciliation.
func (h *MarkOrderDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkOrderDeliveredCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return executeTransition(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		if err := o.MarkDelivered(); err != nil {
			return err
		}

		if o.PaymentMethod() == order.PaymentMethodCash && o.PaymentStatus() == order.PaymentFailed {
			h.logger.WarnContext(ctx, "cash order delivered with failed payment",
				"order_id", o.ID().String(),
				"order_number", o.OrderNumber())
		}

		return nil
	})
}
