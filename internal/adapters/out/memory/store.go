// Package memory keeps orders and the menu catalog in process memory.
//
// A Store is safe for concurrent use. Unit of work instances stage their
// writes and apply them to the store atomically on Commit, checking order
// versions exactly like the PostgreSQL adapter does. Data is lost when the
// process exits.
package memory

import (
	"maps"
	"slices"
	"sync"

	"dinesmart/internal/core/domain/model/menu"
	"dinesmart/internal/core/domain/model/order"
	"dinesmart/internal/pkg/errs"
)

// Store holds the committed state shared by all units of work.
type Store struct {
	mu sync.RWMutex

	orders      map[int64]*order.Order
	items       map[int64]menu.MenuItem
	lastOrderID int64
	lastItemID  int64
}

func NewStore() *Store {
	return &Store{
		orders: make(map[int64]*order.Order),
		items:  make(map[int64]menu.MenuItem),
	}
}

// orderWrite is a staged insert, update or delete of one order. expected is
// the stored version the write was based on, 0 when the order must not exist
// yet. A nil next deletes the order.
type orderWrite struct {
	id       int64
	expected int
	next     *order.Order
}

type menuWriteKind int

const (
	menuInsert menuWriteKind = iota + 1
	menuUpdate
	menuDelete
)

type menuWrite struct {
	kind menuWriteKind
	id   int64
	item menu.MenuItem
}

func (s *Store) nextOrderID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastOrderID++
	return s.lastOrderID
}

func (s *Store) nextMenuItemID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastItemID++
	return s.lastItemID
}

func (s *Store) order(id int64) (*order.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[id]
	return o, ok
}

func (s *Store) orderSnapshot() map[int64]*order.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.orders)
}

func (s *Store) menuItem(id int64) (menu.MenuItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[id]
	return item, ok
}

func (s *Store) menuSnapshot() map[int64]menu.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.items)
}

// commit applies all writes or none of them.
func (s *Store) commit(orderWrites []orderWrite, menuWrites []menuWrite) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending := make(map[int64]*order.Order, len(orderWrites))
	for _, w := range orderWrites {
		current, ok := pending[w.id]
		if !ok {
			current = s.orders[w.id]
		}
		if err := checkOrderWrite(current, w); err != nil {
			return err
		}
		pending[w.id] = w.next
	}

	items := s.items
	if len(menuWrites) > 0 {
		items = maps.Clone(s.items)
		for _, w := range menuWrites {
			if err := applyMenuWrite(items, w); err != nil {
				return err
			}
			if w.kind == menuDelete && s.activeOrderHas(w.id, pending) {
				// the "no active order" read this delete relied on is stale
				return errs.NewConcurrentModificationError("menu item", w.id, 0)
			}
		}
	}

	for id, next := range pending {
		if next == nil {
			delete(s.orders, id)
			continue
		}
		s.orders[id] = next
	}
	s.items = items
	return nil
}

func checkOrderWrite(current *order.Order, w orderWrite) error {
	switch {
	case w.expected == 0 && current != nil:
		return errs.NewObjectAlreadyExistsError("order id", w.id)
	case w.expected == 0:
		return nil
	case current == nil || current.Version() != w.expected:
		return errs.NewConcurrentModificationError("order", w.id, w.expected)
	default:
		return nil
	}
}

func (s *Store) activeOrderHas(menuItemID int64, pending map[int64]*order.Order) bool {
	for id, o := range s.orders {
		if next, ok := pending[id]; ok {
			o = next
		}
		if hasActiveLine(o, menuItemID) {
			return true
		}
	}
	for id, o := range pending {
		if _, stored := s.orders[id]; !stored && hasActiveLine(o, menuItemID) {
			return true
		}
	}
	return false
}

func hasActiveLine(o *order.Order, menuItemID int64) bool {
	return o != nil && o.Status().IsActive() && o.ContainsMenuItem(menuItemID)
}

// applyMenuWrite enforces id and name uniqueness on items.
func applyMenuWrite(items map[int64]menu.MenuItem, w menuWrite) error {
	_, exists := items[w.id]

	switch w.kind {
	case menuInsert:
		if exists {
			return errs.NewObjectAlreadyExistsError("menu item id", w.id)
		}
	case menuUpdate, menuDelete:
		if !exists {
			return errs.NewObjectNotFoundError("menu item", w.id)
		}
	}

	if w.kind == menuDelete {
		delete(items, w.id)
		return nil
	}

	if nameTaken(items, w.item) {
		return errs.NewObjectAlreadyExistsError("menu item name", w.item.Name())
	}
	items[w.id] = w.item
	return nil
}

func nameTaken(items map[int64]menu.MenuItem, item menu.MenuItem) bool {
	for id, other := range items {
		if id != item.ID() && other.Name() == item.Name() {
			return true
		}
	}
	return false
}

func sortedOrders(orders map[int64]*order.Order) []*order.Order {
	ids := slices.Sorted(maps.Keys(orders))
	out := make([]*order.Order, 0, len(ids))
	for _, id := range ids {
		out = append(out, orders[id])
	}
	return out
}

func sortedItems(items map[int64]menu.MenuItem) []menu.MenuItem {
	ids := slices.Sorted(maps.Keys(items))
	out := make([]menu.MenuItem, 0, len(ids))
	for _, id := range ids {
		out = append(out, items[id])
	}
	return out
}
