package order

import (
	"errors"

	"vendororders/internal/core/domain/model/kernel"
	"vendororders/internal/pkg/errs"
	"vendororders/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when a Customer was not created
// through the NewCustomer factory function.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is a snapshot of the ordering customer: identity plus the contact
// and delivery details the vendor needs. The customer entity itself is owned
// by the customer-facing system; this value object only references it by id
// and captures the fields used for delivery and search.
type Customer struct {
	id      kernel.UUID
	name    string
	phone   string
	address string

	guard guard.ConstructorGuard
}

// NewCustomer creates a validated customer snapshot. Name, phone and
// delivery address are all required.
func NewCustomer(id kernel.UUID, name, phone, address string) (Customer, error) {
	customer := Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setID(id),
		customer.setName(name),
		customer.setPhone(phone),
		customer.setAddress(address),
	); err != nil {
		return Customer{}, err
	}

	return customer, nil
}

// Validate ensures the customer was created through NewCustomer.
func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// ID returns the external customer identifier.
func (c Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer name snapshot.
func (c Customer) Name() string {
	return c.name
}

// Phone returns the customer contact phone.
func (c Customer) Phone() string {
	return c.phone
}

// Address returns the delivery address.
func (c Customer) Address() string {
	return c.address
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	c.name = name
	return nil
}

func (c *Customer) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("customer phone")
	}
	c.phone = phone
	return nil
}

func (c *Customer) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("customer address")
	}
	c.address = address
	return nil
}
