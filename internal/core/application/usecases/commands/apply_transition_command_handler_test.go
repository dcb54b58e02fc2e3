package commands_test

import (
	"testing"

	"vendororders/internal/core/application/usecases/commands"
	"vendororders/internal/core/domain/model/order"
	"vendororders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyTransitionCommandHandler_Handle_Accept(t *testing.T) {
	ctx := t.Context()
	o := testOrderAt(t, order.New)
	eta := 30
	cmd, err := commands.NewApplyTransitionCommand(o.ID(), order.Preparing,
		order.TransitionMetadata{EstimatedTime: &eta})
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	expectTransition(ctx, uow, repo, o)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApplyTransitionCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, order.Preparing, o.Status())
}

func TestApplyTransitionCommandHandler_Handle_RejectRequiresReason(t *testing.T) {
	ctx := t.Context()
	o := testOrderAt(t, order.New)
	cmd, err := commands.NewApplyTransitionCommand(o.ID(), order.Rejected, order.TransitionMetadata{})
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	expectFailedTransition(ctx, uow, repo, o)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApplyTransitionCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	var requiredErr *errs.ValueIsRequiredError
	assert.ErrorAs(t, err, &requiredErr)
	assert.Equal(t, order.New, o.Status())
}

func TestApplyTransitionCommandHandler_Handle_SkippingAStageFails(t *testing.T) {
	ctx := t.Context()
	o := testOrderAt(t, order.New)
	cmd, err := commands.NewApplyTransitionCommand(o.ID(), order.Delivered, order.TransitionMetadata{})
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	expectFailedTransition(ctx, uow, repo, o)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApplyTransitionCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	var transitionErr *errs.InvalidTransitionError
	assert.ErrorAs(t, err, &transitionErr)
}

func TestNewApplyTransitionCommand_RejectsUnknownTarget(t *testing.T) {
	o := testOrderAt(t, order.New)
	_, err := commands.NewApplyTransitionCommand(o.ID(), order.Unknown, order.TransitionMetadata{})
	require.Error(t, err)
}

func TestRecordPaymentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := testOrderAt(t, order.Preparing)
	cmd, err := commands.NewRecordPaymentCommand(o.ID(), order.PaymentPaid)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	expectTransition(ctx, uow, repo, o)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordPaymentCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, order.PaymentPaid, o.PaymentStatus())
	assert.Equal(t, order.Preparing, o.Status(), "payment outcome must not touch the order status")
}

func TestNewRecordPaymentCommand_RejectsPending(t *testing.T) {
	o := testOrderAt(t, order.New)
	_, err := commands.NewRecordPaymentCommand(o.ID(), order.PaymentPending)
	require.Error(t, err)
	var invalidErr *errs.ValueIsInvalidError
	assert.ErrorAs(t, err, &invalidErr)
}
