package commands_test

import (
	"testing"

	"vendororders/internal/core/application/usecases/commands"
	"vendororders/internal/core/domain/model/order"
	"vendororders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignDriverCommandHandler_Handle_ReadyOrder(t *testing.T) {
	ctx := t.Context()
	o := testOrderAt(t, order.Ready)
	cmd, err := commands.NewAssignDriverCommand(o.ID(), "D5", "+915554443332")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	expectTransition(ctx, uow, repo, o)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	eventsBefore := len(o.Events())

	h := commands.NewAssignDriverCommandHandler(factory, false)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, order.Ready, o.Status(), "assignment must not change status")
	require.NotNil(t, o.Driver())
	assert.Equal(t, "D5", o.Driver().ID())
	assert.Len(t, o.Events(), eventsBefore, "assignment must not emit a lifecycle event")
}

func TestAssignDriverCommandHandler_Handle_PreparingRequiresEarlyWindow(t *testing.T) {
	ctx := t.Context()

	t.Run("should fail when early assignment is disabled", func(t *testing.T) {
		o := testOrderAt(t, order.Preparing)
		cmd, err := commands.NewAssignDriverCommand(o.ID(), "D5", "+915554443332")
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		uow := new(MockOrderUoW)
		expectFailedTransition(ctx, uow, repo, o)

		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewAssignDriverCommandHandler(factory, false)
		err = h.Handle(ctx, cmd)
		require.Error(t, err)
		var assignmentErr *errs.InvalidAssignmentError
		assert.ErrorAs(t, err, &assignmentErr)
		assert.Nil(t, o.Driver())
	})

	t.Run("should succeed when early assignment is enabled", func(t *testing.T) {
		o := testOrderAt(t, order.Preparing)
		cmd, err := commands.NewAssignDriverCommand(o.ID(), "D5", "+915554443332")
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		uow := new(MockOrderUoW)
		expectTransition(ctx, uow, repo, o)

		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewAssignDriverCommandHandler(factory, true)
		require.NoError(t, h.Handle(ctx, cmd))
		require.NotNil(t, o.Driver())
	})
}

func TestAssignDriverCommandHandler_Handle_ReassignmentReplacesDriver(t *testing.T) {
	ctx := t.Context()
	o := testOrderAt(t, order.Ready)
	first, err := order.NewDriver("D1", "+911112223330")
	require.NoError(t, err)
	require.NoError(t, o.AssignDriver(first, false))

	cmd, err := commands.NewAssignDriverCommand(o.ID(), "D2", "+912223334440")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	expectTransition(ctx, uow, repo, o)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignDriverCommandHandler(factory, false)
	require.NoError(t, h.Handle(ctx, cmd))
	require.NotNil(t, o.Driver())
	assert.Equal(t, "D2", o.Driver().ID())
}

func TestUnassignDriverCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := testOrderAt(t, order.Ready)
	driver, err := order.NewDriver("D5", "+915554443332")
	require.NoError(t, err)
	require.NoError(t, o.AssignDriver(driver, false))

	cmd, err := commands.NewUnassignDriverCommand(o.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	expectTransition(ctx, uow, repo, o)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUnassignDriverCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Nil(t, o.Driver())
}

func TestUnassignDriverCommandHandler_Handle_OutForDeliveryFails(t *testing.T) {
	ctx := t.Context()
	o := testOrderAt(t, order.OutForDelivery)
	cmd, err := commands.NewUnassignDriverCommand(o.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	expectFailedTransition(ctx, uow, repo, o)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUnassignDriverCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	var assignmentErr *errs.InvalidAssignmentError
	assert.ErrorAs(t, err, &assignmentErr)
	require.NotNil(t, o.Driver(), "the driver on an active delivery stays attached")
}
