package order_test

import (
	"testing"

	"vendororders/internal/core/domain/model/kernel"
	"vendororders/internal/core/domain/model/order"
	"vendororders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	price, _ := kernel.NewMoney(22500)

	t.Run("should create valid item and compute subtotal", func(t *testing.T) {
		item, err := order.NewItem(kernel.NewUUID(), "Masala Dosa", 2, price, []string{"no onion"})

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, "Masala Dosa", item.Name())
		assert.Equal(t, 2, item.Quantity())
		assert.Equal(t, int64(45000), item.Subtotal().Amount())
		assert.Equal(t, []string{"no onion"}, item.Customizations())
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		for _, quantity := range []int{0, -1} {
			_, err := order.NewItem(kernel.NewUUID(), "Masala Dosa", quantity, price, nil)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), "", 1, price, nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero-value item fails validation", func(t *testing.T) {
		var item order.Item

		require.Equal(t, order.ErrItemIsNotConstructed, item.Validate())
	})
}

func TestNewDriver(t *testing.T) {
	t.Run("should require id and phone", func(t *testing.T) {
		_, err := order.NewDriver("", "+911234567890")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = order.NewDriver("D1", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		driver, err := order.NewDriver("D1", "+911234567890")
		require.NoError(t, err)
		assert.Equal(t, "D1", driver.ID())
	})
}

func TestNewCustomer(t *testing.T) {
	t.Run("should require all snapshot fields", func(t *testing.T) {
		id := kernel.NewUUID()

		_, err := order.NewCustomer(id, "", "+91", "addr")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = order.NewCustomer(id, "name", "", "addr")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = order.NewCustomer(id, "name", "+91", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		customer, err := order.NewCustomer(id, "name", "+91", "addr")
		require.NoError(t, err)
		require.NoError(t, customer.Validate())
	})
}
