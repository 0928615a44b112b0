package queries_test

import (
	"context"
	"testing"
	"time"

	"dinesmart/internal/core/domain/model/kernel"
	"dinesmart/internal/core/domain/model/menu"
	"dinesmart/internal/core/domain/model/order"
	"dinesmart/internal/core/domain/model/table"
	"dinesmart/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct {
	mock.Mock
	ports.OrderRepository
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

type MockMenuRepository struct {
	mock.Mock
	ports.MenuRepository
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

type MockTableRepository struct {
	mock.Mock
}

func (m *MockTableRepository) Get(ctx context.Context, id int64) (table.Table, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(table.Table), args.Error(1)
}

func (m *MockTableRepository) GetAll(ctx context.Context) ([]table.Table, error) {
	args := m.Called(ctx)
	tables, _ := args.Get(0).([]table.Table)
	return tables, args.Error(1)
}

// repoFactory hands out fixed repositories.
type repoFactory struct {
	orders ports.OrderRepository
	menu   ports.MenuRepository
}

func (f repoFactory) OrderRepository() ports.OrderRepository { return f.orders }
func (f repoFactory) MenuRepository() ports.MenuRepository   { return f.menu }

var testClock = kernel.NewFixedClock(time.Date(2024, 5, 17, 20, 0, 0, 0, time.UTC))

func newCategory(t *testing.T, kind menu.CategoryKind, id int64, name string) menu.Category {
	t.Helper()
	c, err := menu.NewCategory(kind, id, name, false)
	require.NoError(t, err)
	return c
}

func newItem(t *testing.T, id int64, name string, category menu.Category, available bool) menu.MenuItem {
	t.Helper()
	item, err := menu.NewMenuItem(id, name, "", 5.00, category, available)
	require.NoError(t, err)
	return item
}

func newOrder(t *testing.T, id int64, status order.Status) *order.Order {
	t.Helper()
	mains := newCategory(t, menu.Food, 1, "Mains")
	o, err := order.NewOrder(id, 1, []order.ItemRequest{
		{MenuItem: newItem(t, 1, "Burger", mains, true), Quantity: 1},
	}, testClock)
	require.NoError(t, err)
	if status == order.Cancelled {
		o, err = o.TransitionStatus(order.Cancelled)
		require.NoError(t, err)
	}
	return o
}

func newOrderAt(t *testing.T, id, tableID int64) *order.Order {
	t.Helper()
	mains := newCategory(t, menu.Food, 1, "Mains")
	o, err := order.NewOrder(id, tableID, []order.ItemRequest{
		{MenuItem: newItem(t, 1, "Burger", mains, true), Quantity: 1},
	}, testClock)
	require.NoError(t, err)
	return o
}

func newTable(t *testing.T, id int64, capacity int) table.Table {
	t.Helper()
	tbl, err := table.NewTable(id, capacity)
	require.NoError(t, err)
	return tbl
}
