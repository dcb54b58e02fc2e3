package commands

import (
	"errors"

	"vendororders/internal/core/domain/model/kernel"
	"vendororders/internal/core/domain/model/order"
	"vendororders/internal/pkg/errs"
	"vendororders/internal/pkg/guard"
)

var ErrRecordPaymentCommandIsNotConstructed = errors.New(
	"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
)

// RecordPaymentCommand represents the external payment system reporting the
// outcome of a capture attempt.
type RecordPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	paymentStatus order.PaymentStatus

	guard guard.ConstructorGuard
}

// NewRecordPaymentCommand creates a command to record a payment outcome.
// Only final outcomes (PAID, FAILED) are accepted.
func NewRecordPaymentCommand(orderID kernel.UUID, status order.PaymentStatus) (RecordPaymentCommand, error) {
	if err := orderID.Validate(); err != nil {
		return RecordPaymentCommand{}, err
	}
	if status != order.PaymentPaid && status != order.PaymentFailed {
		return RecordPaymentCommand{}, errs.NewValueIsInvalidError("paymentStatus")
	}

	return RecordPaymentCommand{
		orderID:       orderID,
		paymentStatus: status,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

// OrderID returns the order the payment outcome belongs to.
func (c RecordPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PaymentStatus returns the reported outcome.
func (c RecordPaymentCommand) PaymentStatus() order.PaymentStatus {
	return c.paymentStatus
}
