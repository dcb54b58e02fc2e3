package commands

import (
	"errors"

	"vendororders/internal/core/domain/model/kernel"
	"vendororders/internal/pkg/guard"
)

var ErrMarkOrderDeliveredCommandIsNotConstructed = errors.New(
	"MarkOrderDeliveredCommand must be created via NewMarkOrderDeliveredCommand constructor",
)

// MarkOrderDeliveredCommand represents the driver confirming handover to
// the customer.
type MarkOrderDeliveredCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkOrderDeliveredCommand creates a command to complete a delivery.
func NewMarkOrderDeliveredCommand(orderID kernel.UUID) (MarkOrderDeliveredCommand, error) {
	if err := orderID.Validate(); err != nil {
		return MarkOrderDeliveredCommand{}, err
	}

	return MarkOrderDeliveredCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderDeliveredCommandIsNotConstructed)
}

// OrderID returns the order to mark delivered.
func (c MarkOrderDeliveredCommand) OrderID() kernel.UUID {
	return c.orderID
}
