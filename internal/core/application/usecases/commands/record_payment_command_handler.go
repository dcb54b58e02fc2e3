package commands

import (
	"context"

	"vendororders/internal/core/domain/model/order"
)

// RecordPaymentCommandHandler stores payment outcomes reported by the
// payment system. The payment lifecycle is independent of the order status
// and recording an outcome emits no lifecycle event.
type RecordPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRecordPaymentCommandHandler creates a handler for payment outcomes.
func NewRecordPaymentCommandHandler(uowFactory OrderUoWFactory) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle records the payment outcome on the order identified by the command.
func (h *RecordPaymentCommandHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return executeTransition(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.RecordPaymentOutcome(cmd.PaymentStatus())
	})
}
