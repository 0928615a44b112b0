package memory_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"dinesmart/internal/adapters/out/memory"
	"dinesmart/internal/core/domain/model/kernel"
	"dinesmart/internal/core/domain/model/menu"
	"dinesmart/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, events ...order.Event) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

// recordingPublisher keeps every published event.
type recordingPublisher struct {
	mu     sync.Mutex
	events []order.Event
}

func (p *recordingPublisher) Publish(_ context.Context, events ...order.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
	return nil
}

func (p *recordingPublisher) kinds() []order.EventKind {
	p.mu.Lock()
	defer p.mu.Unlock()
	kinds := make([]order.EventKind, 0, len(p.events))
	for _, e := range p.events {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

var testClock = kernel.NewFixedClock(time.Date(2024, 5, 17, 19, 30, 0, 0, time.UTC))

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newFactory(publisher *recordingPublisher) *memory.UnitOfWorkFactory {
	if publisher == nil {
		return memory.NewUnitOfWorkFactory(memory.NewStore(), nil, discardLogger())
	}
	return memory.NewUnitOfWorkFactory(memory.NewStore(), publisher, discardLogger())
}

func newItem(t *testing.T, id int64, name string, price float64) menu.MenuItem {
	t.Helper()
	mains, err := menu.NewFoodCategory(1, "Mains", false)
	require.NoError(t, err)
	item, err := menu.NewMenuItem(id, name, "", price, mains, true)
	require.NoError(t, err)
	return item
}

func newOrder(t *testing.T, id int64, items ...menu.MenuItem) *order.Order {
	t.Helper()
	requests := make([]order.ItemRequest, 0, len(items))
	for _, item := range items {
		requests = append(requests, order.ItemRequest{MenuItem: item, Quantity: 1})
	}
	o, err := order.NewOrder(id, 4, requests, testClock)
	require.NoError(t, err)
	return o
}

func advance(t *testing.T, o *order.Order, statuses ...order.Status) *order.Order {
	t.Helper()
	for _, s := range statuses {
		var err error
		o, err = o.TransitionStatus(s)
		require.NoError(t, err)
	}
	return o
}
