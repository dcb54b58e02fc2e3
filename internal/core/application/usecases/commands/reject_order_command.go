package commands

import (
	"errors"

	"vendororders/internal/core/domain/model/kernel"
	"vendororders/internal/pkg/errs"
	"vendororders/internal/pkg/guard"
)

var ErrRejectOrderCommandIsNotConstructed = errors.New(
	"RejectOrderCommand must be created via NewRejectOrderCommand constructor",
)

// RejectOrderCommand represents the vendor declining a NEW order. A reason
// is mandatory so the customer-facing system can explain the rejection.
type RejectOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

// NewRejectOrderCommand creates a command to reject an order.
func NewRejectOrderCommand(orderID kernel.UUID, reason string) (RejectOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return RejectOrderCommand{}, err
	}
	if reason == "" {
		return RejectOrderCommand{}, errs.NewValueIsRequiredError("reason")
	}

	return RejectOrderCommand{
		orderID: orderID,
		reason:  reason,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectOrderCommandIsNotConstructed)
}

// OrderID returns the order to reject.
func (c RejectOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Reason returns the rejection reason shown to the customer.
func (c RejectOrderCommand) Reason() string {
	return c.reason
}
