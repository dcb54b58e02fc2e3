package order

import (
	"errors"
	"fmt"

	"vendororders/internal/core/domain/model/kernel"
	"vendororders/internal/pkg/errs"
	"vendororders/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// the NewItem factory function.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a line item of an order: a menu item snapshot with quantity,
// captured unit price and optional customizations. Items are immutable after
// order creation; changing an order's contents means creating a new order.
//
// The name is a snapshot of the menu item at ordering time so that search
// and history stay stable when the menu changes.
type Item struct {
	menuItemID     kernel.UUID
	name           string
	quantity       int
	unitPrice      kernel.Money
	customizations []string

	guard guard.ConstructorGuard
}

// NewItem creates a validated line item. The quantity must be positive and
// the snapshot name non-empty.
func NewItem(menuItemID kernel.UUID, name string, quantity int, unitPrice kernel.Money, customizations []string) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setMenuItemID(menuItemID),
		item.setName(name),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	item.unitPrice = unitPrice
	item.customizations = append([]string(nil), customizations...)
	return item, nil
}

// Validate ensures the item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// MenuItemID returns the identifier of the referenced menu item.
func (i Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Name returns the menu item name snapshot.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the captured per-unit price.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Customizations returns a copy of the customization notes.
func (i Item) Customizations() []string {
	return append([]string(nil), i.customizations...)
}

// Subtotal returns quantity times unit price.
func (i Item) Subtotal() kernel.Money {
	return i.unitPrice.MulInt(i.quantity)
}

func (i *Item) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}
	i.menuItemID = menuItemID
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
