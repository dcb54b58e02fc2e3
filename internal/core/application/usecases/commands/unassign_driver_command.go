package commands

import (
	"errors"

	"vendororders/internal/core/domain/model/kernel"
	"vendororders/internal/pkg/guard"
)

var ErrUnassignDriverCommandIsNotConstructed = errors.New(
	"UnassignDriverCommand must be created via NewUnassignDriverCommand constructor",
)

// UnassignDriverCommand represents releasing the driver reserved for an
// order before dispatch.
type UnassignDriverCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewUnassignDriverCommand creates a command to release an order's driver.
func NewUnassignDriverCommand(orderID kernel.UUID) (UnassignDriverCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UnassignDriverCommand{}, err
	}

	return UnassignDriverCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UnassignDriverCommand) Validate() error {
	return c.guard.Validate(ErrUnassignDriverCommandIsNotConstructed)
}

// OrderID returns the order whose driver is released.
func (c UnassignDriverCommand) OrderID() kernel.UUID {
	return c.orderID
}
