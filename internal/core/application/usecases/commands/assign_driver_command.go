package commands

import (
	"errors"

	"vendororders/internal/core/domain/model/kernel"
	"vendororders/internal/core/domain/model/order"
	"vendororders/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand represents reserving a driver for an order ahead of
// dispatch. Assignment changes no status and emits no notification.
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	driver  order.Driver

	guard guard.ConstructorGuard
}

// NewAssignDriverCommand creates a command to assign a driver to an order.
func NewAssignDriverCommand(orderID kernel.UUID, driverID, driverPhone string) (AssignDriverCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AssignDriverCommand{}, err
	}

	driver, err := order.NewDriver(driverID, driverPhone)
	if err != nil {
		return AssignDriverCommand{}, err
	}

	return AssignDriverCommand{
		orderID: orderID,
		driver:  driver,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

// OrderID returns the order receiving the driver.
func (c AssignDriverCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Driver returns the driver to assign.
func (c AssignDriverCommand) Driver() order.Driver {
	return c.driver
}
