package order

import (
	"errors"

	"vendororders/internal/pkg/errs"
	"vendororders/internal/pkg/guard"
)

// ErrDriverIsNotConstructed is returned when a Driver was not created
// through the NewDriver factory function.
var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")

// Driver references the delivery driver handling an order. Both the
// identifier and the contact phone are required: the phone is surfaced to
// the customer once the order is out for delivery.
type Driver struct {
	id    string
	phone string

	guard guard.ConstructorGuard
}

// NewDriver creates a validated driver reference.
func NewDriver(id, phone string) (Driver, error) {
	driver := Driver{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		driver.setID(id),
		driver.setPhone(phone),
	); err != nil {
		return Driver{}, err
	}

	return driver, nil
}

// Validate ensures the driver was created through NewDriver.
func (d Driver) Validate() error {
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// ID returns the driver identifier.
func (d Driver) ID() string {
	return d.id
}

// Phone returns the driver contact phone.
func (d Driver) Phone() string {
	return d.phone
}

func (d *Driver) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("driverId")
	}
	d.id = id
	return nil
}

func (d *Driver) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("driverPhone")
	}
	d.phone = phone
	return nil
}
