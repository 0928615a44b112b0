package commands_test

import (
	"context"
	"testing"
	"time"

	"dinesmart/internal/core/application/usecases/commands"
	"dinesmart/internal/core/domain/model/kernel"
	"dinesmart/internal/core/domain/model/menu"
	"dinesmart/internal/core/domain/model/order"
	"dinesmart/internal/core/ports"
	"dinesmart/internal/pkg/retry"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	now       = time.Date(2024, 5, 17, 20, 0, 0, 0, time.UTC)
	testClock = kernel.NewFixedClock(now)

	// noDelay retries immediately so tests never sleep.
	noDelay = retry.Config{MaxAttempts: 3}
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) NextID(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) GetAllTerminalCreatedBefore(ctx context.Context, before time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, before)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) HasActiveWithMenuItem(ctx context.Context, menuItemID int64) (bool, error) {
	args := m.Called(ctx, menuItemID)
	return args.Bool(0), args.Error(1)
}

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) NextID(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMenuRepository) Add(ctx context.Context, item menu.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuRepository) Update(ctx context.Context, item menu.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMenuRepository) Get(ctx context.Context, id int64) (menu.MenuItem, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(menu.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) GetByName(ctx context.Context, name string) (menu.MenuItem, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(menu.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) GetAll(ctx context.Context) ([]menu.MenuItem, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]menu.MenuItem)
	return items, args.Error(1)
}

// MockUoW implements every unit of work flavour used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) MenuRepository() ports.MenuRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockMenuUoWFactory struct{ mock.Mock }

func (m *MockMenuUoWFactory) Create() commands.MenuUoW {
	args := m.Called()
	return args.Get(0).(commands.MenuUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func mainsCategory(t *testing.T) menu.FoodCategory {
	t.Helper()
	c, err := menu.NewFoodCategory(1, "Mains", false)
	require.NoError(t, err)
	return c
}

func burger(t *testing.T) menu.MenuItem {
	t.Helper()
	item, err := menu.NewMenuItem(1, "Burger", "Beef", 8.50, mainsCategory(t), true)
	require.NoError(t, err)
	return item
}

func soda(t *testing.T) menu.MenuItem {
	t.Helper()
	drinks, err := menu.NewBeverageCategory(2, "Soft drinks", false)
	require.NoError(t, err)
	item, err := menu.NewMenuItem(2, "Soda", "", 2.00, drinks, true)
	require.NoError(t, err)
	return item
}

func orderIn(t *testing.T, id int64, status order.Status) *order.Order {
	t.Helper()
	o, err := order.NewOrder(id, 4, []order.ItemRequest{
		{MenuItem: burger(t), Quantity: 2},
		{MenuItem: soda(t), Quantity: 1},
	}, testClock)
	require.NoError(t, err)

	path := map[order.Status][]order.Status{
		order.Pending:       {},
		order.Preparing:     {order.Preparing},
		order.ReadyForServe: {order.Preparing, order.ReadyForServe},
		order.Served:        {order.Preparing, order.ReadyForServe, order.Served},
		order.Paid:          {order.Preparing, order.ReadyForServe, order.Served, order.Paid},
		order.Cancelled:     {order.Cancelled},
	}
	for _, next := range path[status] {
		o, err = o.TransitionStatus(next)
		require.NoError(t, err)
	}
	return o
}
