package commands

import (
	"errors"

	"vendororders/internal/core/domain/model/kernel"
	"vendororders/internal/core/domain/model/order"
	"vendororders/internal/pkg/errs"
	"vendororders/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request from the customer-facing ordering
// system to register a new order with the vendor. The declared total amount
// must match the sum of the line items; the mismatch is caught when the
// aggregate is constructed.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), "ORD001", customer, items, total, order.PaymentMethodCash)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	orderNumber   string
	customer      order.Customer
	items         []order.Item
	totalAmount   kernel.Money
	paymentMethod order.PaymentMethod

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates the identifier, order number, customer snapshot and line items.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	orderNumber string,
	customer order.Customer,
	items []order.Item,
	totalAmount kernel.Money,
	paymentMethod order.PaymentMethod,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setOrderNumber(orderNumber),
		orderCommand.setCustomer(customer),
		orderCommand.setItems(items),
		orderCommand.setPaymentMethod(paymentMethod),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	orderCommand.totalAmount = totalAmount
	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderNumber returns the human-readable display identifier.
func (c CreateOrderCommand) OrderNumber() string {
	return c.orderNumber
}

// Customer returns the customer snapshot.
func (c CreateOrderCommand) Customer() order.Customer {
	return c.customer
}

// Items returns the line items.
func (c CreateOrderCommand) Items() []order.Item {
	return append([]order.Item(nil), c.items...)
}

// TotalAmount returns the declared order total.
func (c CreateOrderCommand) TotalAmount() kernel.Money {
	return c.totalAmount
}

// PaymentMethod returns how the customer pays.
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	c.orderNumber = orderNumber
	return nil
}

func (c *CreateOrderCommand) setCustomer(customer order.Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	c.items = append([]order.Item(nil), items...)
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(method order.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	c.paymentMethod = method
	return nil
}
