package memory

import (
	"context"
	"errors"
	"log/slog"

	"dinesmart/internal/core/domain/model/menu"
	"dinesmart/internal/core/domain/model/order"
	"dinesmart/internal/core/ports"
)

// ErrNoActiveTransaction is returned by Commit and Rollback outside of a
// transaction.
var ErrNoActiveTransaction = errors.New("memory: no active transaction")

// UnitOfWorkFactory creates units of work over one Store.
type UnitOfWorkFactory struct {
	store     *Store
	publisher ports.OrderEventPublisher
	logger    *slog.Logger
}

// NewUnitOfWorkFactory creates a factory. The publisher may be nil, in which
// case committed order events are dropped.
func NewUnitOfWorkFactory(
	store *Store,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{
		store:     store,
		publisher: publisher,
		logger:    logger.With("component", "memory-uow"),
	}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{
		store:     f.store,
		publisher: f.publisher,
		logger:    f.logger,
	}
}

// UnitOfWork stages writes between Begin and Commit. Reads inside a
// transaction see the committed state with the staged writes applied on top.
// Without an active transaction every write is committed immediately.
//
// A UnitOfWork is not safe for concurrent use; create one per operation.
type UnitOfWork struct {
	store     *Store
	publisher ports.OrderEventPublisher
	logger    *slog.Logger

	active      bool
	orderWrites []orderWrite
	menuWrites  []menuWrite
	events      []order.Event
}

// Begin starts a transaction. Calling Begin on an active unit of work is a no-op.
func (u *UnitOfWork) Begin(_ context.Context) error {
	if u.active {
		return nil
	}
	u.reset()
	u.active = true
	return nil
}

// Commit applies the staged writes atomically and then publishes the recorded
// order events. A failed publish is logged and does not fail the commit.
func (u *UnitOfWork) Commit(ctx context.Context) error {
	if !u.active {
		return ErrNoActiveTransaction
	}

	orderWrites, menuWrites, events := u.orderWrites, u.menuWrites, u.events
	u.active = false
	u.reset()

	if err := u.store.commit(orderWrites, menuWrites); err != nil {
		return err
	}

	u.publish(ctx, events)
	return nil
}

// Rollback discards the staged writes.
func (u *UnitOfWork) Rollback(_ context.Context) error {
	if !u.active {
		return ErrNoActiveTransaction
	}
	u.active = false
	u.reset()
	return nil
}

func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{uow: u}
}

func (u *UnitOfWork) MenuRepository() ports.MenuRepository {
	return &MenuRepository{uow: u}
}

func (u *UnitOfWork) reset() {
	u.orderWrites = nil
	u.menuWrites = nil
	u.events = nil
}

func (u *UnitOfWork) publish(ctx context.Context, events []order.Event) {
	if u.publisher == nil || len(events) == 0 {
		return
	}
	if err := u.publisher.Publish(ctx, events...); err != nil {
		u.logger.ErrorContext(ctx, "failed to publish order events", "count", len(events), "error", err)
	}
}

func (u *UnitOfWork) writeOrder(ctx context.Context, w orderWrite, event order.Event) error {
	if u.active {
		u.orderWrites = append(u.orderWrites, w)
		u.events = append(u.events, event)
		return nil
	}

	if err := u.store.commit([]orderWrite{w}, nil); err != nil {
		return err
	}
	u.publish(ctx, []order.Event{event})
	return nil
}

func (u *UnitOfWork) writeMenu(w menuWrite) error {
	if u.active {
		u.menuWrites = append(u.menuWrites, w)
		return nil
	}
	return u.store.commit(nil, []menuWrite{w})
}

// lookupOrder returns the latest staged state of an order, falling back to
// the committed one.
func (u *UnitOfWork) lookupOrder(id int64) (*order.Order, bool) {
	for i := len(u.orderWrites) - 1; i >= 0; i-- {
		if w := u.orderWrites[i]; w.id == id {
			return w.next, w.next != nil
		}
	}
	return u.store.order(id)
}

func (u *UnitOfWork) orderView() map[int64]*order.Order {
	view := u.store.orderSnapshot()
	for _, w := range u.orderWrites {
		if w.next == nil {
			delete(view, w.id)
			continue
		}
		view[w.id] = w.next
	}
	return view
}

func (u *UnitOfWork) lookupMenuItem(id int64) (menu.MenuItem, bool) {
	for i := len(u.menuWrites) - 1; i >= 0; i-- {
		if w := u.menuWrites[i]; w.id == id {
			return w.item, w.kind != menuDelete
		}
	}
	return u.store.menuItem(id)
}

func (u *UnitOfWork) menuView() map[int64]menu.MenuItem {
	view := u.store.menuSnapshot()
	for _, w := range u.menuWrites {
		if w.kind == menuDelete {
			delete(view, w.id)
			continue
		}
		view[w.id] = w.item
	}
	return view
}
