package commands_test

import (
	"testing"

	"vendororders/internal/core/application/usecases/commands"
	"vendororders/internal/core/domain/model/kernel"
	"vendororders/internal/core/domain/model/order"
	"vendororders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		id, "ORD100", testCustomer(t), testItems(t), testTotal(t), order.PaymentMethodCash)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, "ORD100", cmd.OrderNumber())
	assert.Len(t, cmd.Items(), 1)
	assert.Equal(t, order.PaymentMethodCash, cmd.PaymentMethod())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateOrderCommand(
		invalidID, "ORD100", testCustomer(t), testItems(t), testTotal(t), order.PaymentMethodCash)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_EmptyOrderNumber(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), "", testCustomer(t), testItems(t), testTotal(t), order.PaymentMethodCash)
	require.Error(t, err)
	var requiredErr *errs.ValueIsRequiredError
	assert.ErrorAs(t, err, &requiredErr)
}

func TestNewCreateOrderCommand_NoItems(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), "ORD100", testCustomer(t), nil, testTotal(t), order.PaymentMethodCash)
	require.Error(t, err)
	var requiredErr *errs.ValueIsRequiredError
	assert.ErrorAs(t, err, &requiredErr)
}

func TestNewCreateOrderCommand_InvalidPaymentMethod(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), "ORD100", testCustomer(t), testItems(t), testTotal(t), order.PaymentMethodUnknown)
	require.Error(t, err)
}

func TestNewAcceptOrderCommand_InvalidEstimate(t *testing.T) {
	zero := 0
	_, err := commands.NewAcceptOrderCommand(kernel.NewUUID(), &zero)
	require.Error(t, err)
	var invalidErr *errs.ValueIsInvalidError
	assert.ErrorAs(t, err, &invalidErr)
}

func TestNewRejectOrderCommand_EmptyReason(t *testing.T) {
	_, err := commands.NewRejectOrderCommand(kernel.NewUUID(), "")
	require.Error(t, err)
	var requiredErr *errs.ValueIsRequiredError
	assert.ErrorAs(t, err, &requiredErr)
}

func TestNewDispatchOrderCommand_PartialDriverFails(t *testing.T) {
	_, err := commands.NewDispatchOrderCommand(kernel.NewUUID(), "D1", "")
	require.Error(t, err)
	var requiredErr *errs.ValueIsRequiredError
	assert.ErrorAs(t, err, &requiredErr)
}

func TestNewDispatchOrderCommand_NoDriverIsAllowed(t *testing.T) {
	cmd, err := commands.NewDispatchOrderCommand(kernel.NewUUID(), "", "")
	require.NoError(t, err)
	assert.Nil(t, cmd.Driver())
}

func TestNewAssignDriverCommand_MissingDriverFails(t *testing.T) {
	_, err := commands.NewAssignDriverCommand(kernel.NewUUID(), "", "")
	require.Error(t, err)
}
