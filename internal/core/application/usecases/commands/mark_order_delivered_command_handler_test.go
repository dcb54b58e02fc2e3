package commands_test

import (
	"bytes"
	"log/slog"
	"testing"

	"vendororders/internal/core/application/usecases/commands"
	"vendororders/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkOrderDeliveredCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := testOrderAt(t, order.OutForDelivery)
	cmd, err := commands.NewMarkOrderDeliveredCommand(o.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	expectTransition(ctx, uow, repo, o)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkOrderDeliveredCommandHandler(factory, slog.Default())
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, order.Delivered, o.Status())
	assert.NotNil(t, o.DeliveredAt())
	require.NotNil(t, o.Driver(), "delivered orders keep the driver for the record")
}

func TestMarkOrderDeliveredCommandHandler_Handle_CashWithFailedPaymentStillCompletes(t *testing.T) {
	ctx := t.Context()
	o := testOrderAt(t, order.OutForDelivery)
	require.NoError(t, o.RecordPaymentOutcome(order.PaymentFailed))
	cmd, err := commands.NewMarkOrderDeliveredCommand(o.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	expectTransition(ctx, uow, repo, o)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	var logBuf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuf, nil))

	h := commands.NewMarkOrderDeliveredCommandHandler(factory, logger)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, order.Delivered, o.Status())
	assert.Contains(t, logBuf.String(), "cash order delivered with failed payment")
}
