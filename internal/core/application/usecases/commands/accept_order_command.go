package commands

import (
	"errors"
	"fmt"

	"vendororders/internal/core/domain/model/kernel"
	"vendororders/internal/pkg/errs"
	"vendororders/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand represents the vendor accepting a NEW order, optionally
// announcing a preparation estimate in minutes.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	estimatedTime *int

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command to accept an order. The estimate
// is optional but must be positive when provided.
func NewAcceptOrderCommand(orderID kernel.UUID, estimatedTime *int) (AcceptOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AcceptOrderCommand{}, err
	}
	if estimatedTime != nil && *estimatedTime <= 0 {
		return AcceptOrderCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"estimatedTime", fmt.Errorf("%d is not greater than 0", *estimatedTime))
	}

	return AcceptOrderCommand{
		orderID:       orderID,
		estimatedTime: estimatedTime,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// OrderID returns the order to accept.
func (c AcceptOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// EstimatedTime returns the optional preparation estimate in minutes.
func (c AcceptOrderCommand) EstimatedTime() *int {
	return c.estimatedTime
}
