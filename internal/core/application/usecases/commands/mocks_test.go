package commands_test

import (
	"context"
	"testing"

	"vendororders/internal/core/application/usecases/commands"
	"vendororders/internal/core/domain/model/kernel"
	"vendororders/internal/core/domain/model/order"
	"vendororders/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func testCustomer(t *testing.T) order.Customer {
	t.Helper()
	customer, err := order.NewCustomer(kernel.NewUUID(), "Priya Sharma", "+911112223334", "12 MG Road, Bengaluru")
	require.NoError(t, err)
	return customer
}

func testItems(t *testing.T) []order.Item {
	t.Helper()
	price, err := kernel.NewMoney(12500)
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), "Paneer Tikka", 2, price, nil)
	require.NoError(t, err)
	return []order.Item{item}
}

func testTotal(t *testing.T) kernel.Money {
	t.Helper()
	total, err := kernel.NewMoney(25000)
	require.NoError(t, err)
	return total
}

// testOrderAt builds an order advanced to the given status through the
// regular lifecycle transitions.
func testOrderAt(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), "ORD100", testCustomer(t), testItems(t), testTotal(t), order.PaymentMethodCash)
	require.NoError(t, err)

	if status == order.New {
		return o
	}
	eta := 20
	require.NoError(t, o.Accept(&eta))
	if status == order.Preparing {
		return o
	}
	require.NoError(t, o.MarkReady())
	if status == order.Ready {
		return o
	}
	driver, err := order.NewDriver("D1", "+911234567890")
	require.NoError(t, err)
	require.NoError(t, o.Dispatch(&driver))
	if status == order.OutForDelivery {
		return o
	}
	require.NoError(t, o.MarkDelivered())
	require.Equal(t, status, order.Delivered)
	return o
}

// expectTransition wires the mocks for the usual read-mutate-write path.
func expectTransition(ctx context.Context, uow *MockOrderUoW, repo *MockOrderRepository, o *order.Order) {
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		repo.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
}
