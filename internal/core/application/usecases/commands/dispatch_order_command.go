package commands

import (
	"errors"

	"vendororders/internal/core/domain/model/kernel"
	"vendororders/internal/core/domain/model/order"
	"vendororders/internal/pkg/guard"
)

var ErrDispatchOrderCommandIsNotConstructed = errors.New(
	"DispatchOrderCommand must be created via NewDispatchOrderCommand constructor",
)

// DispatchOrderCommand represents handing a READY order to a driver. The
// driver may be named here or omitted entirely, in which case the driver
// already assigned to the order takes the delivery.
type DispatchOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	driver  *order.Driver

	guard guard.ConstructorGuard
}

// NewDispatchOrderCommand creates a command to dispatch an order. Leave both
// driver fields empty to dispatch with the pre-assigned driver; otherwise
// both the driver id and phone are required.
func NewDispatchOrderCommand(orderID kernel.UUID, driverID, driverPhone string) (DispatchOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return DispatchOrderCommand{}, err
	}

	var driver *order.Driver
	if driverID != "" || driverPhone != "" {
		d, err := order.NewDriver(driverID, driverPhone)
		if err != nil {
			return DispatchOrderCommand{}, err
		}
		driver = &d
	}

	return DispatchOrderCommand{
		orderID: orderID,
		driver:  driver,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchOrderCommand) Validate() error {
	return c.guard.Validate(ErrDispatchOrderCommandIsNotConstructed)
}

// OrderID returns the order to dispatch.
func (c DispatchOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Driver returns the driver taking the delivery, or nil when the order's
// assigned driver should be used.
func (c DispatchOrderCommand) Driver() *order.Driver {
	return c.driver
}
