package kernel

import (
	"fmt"

	"vendororders/internal/pkg/errs"
)

// Money is a value object representing a monetary amount in minor currency
// units (e.g. paise, cents). Integer arithmetic keeps line-item totals exact,
// which matters because an order's total amount is frozen at creation and
// re-derived amounts must match it to the unit.
//
// The zero value of Money is a valid zero amount. Negative amounts are not
// representable through the constructor.
//
// Example:
//
//	unitPrice, _ := kernel.NewMoney(22500) // 225.00 in minor units
//	lineTotal := unitPrice.MulInt(2)       // 450.00
type Money struct {
	amount int64
}

// NewMoney creates a Money amount from minor currency units.
// Returns a validation error for negative amounts.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%d is negative", amount))
	}
	return Money{amount: amount}, nil
}

// Amount returns the value in minor currency units.
func (m Money) Amount() int64 {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

// MulInt returns the amount multiplied by a non-negative integer factor,
// used to compute a line item's subtotal from its unit price and quantity.
func (m Money) MulInt(factor int) Money {
	return Money{amount: m.amount * int64(factor)}
}

// IsEqual reports whether two amounts are identical.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}
