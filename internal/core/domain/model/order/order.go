package order

import (
	"errors"
	"fmt"
	"math"
	"time"

	"dinesmart/internal/core/domain/model/kernel"
	"dinesmart/internal/pkg/errs"
	"dinesmart/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// InitialVersion is the version of a freshly created order.
const InitialVersion = 1

// Order is the aggregate root of the ordering process: what a table ordered,
// how much it costs and how far the kitchen got.
//
// Order follows these invariants:
//   - Identifier and table identifier are non-negative
//   - There is at least one line, and every quantity is positive
//   - No two lines share a menu item id
//   - Total equals the sum of price*quantity over the lines, in line order
//   - Status transitions follow the Status graph
//
// An Order is an immutable snapshot. AddItems and TransitionStatus return a
// new snapshot with Version incremented by one; the receiver is left intact.
type Order struct {
	id        int64
	tableID   int64
	createdAt time.Time
	lines     []Line
	status    Status
	total     float64
	version   int

	guard guard.ConstructorGuard
}

// NewOrder creates a Pending order for a table. The creation time is read from
// clock, and equal menu item ids within items are merged into one line.
//
// Example:
//
//	o, err := order.NewOrder(1, 4, []order.ItemRequest{
//	    {MenuItem: burger, Quantity: 2},
//	    {MenuItem: soda, Quantity: 1},
//	}, kernel.NewSystemClock())
func NewOrder(id, tableID int64, items []ItemRequest, clock kernel.Clock) (*Order, error) {
	if clock == nil {
		return nil, errs.NewValueIsRequiredError("clock")
	}

	o := &Order{
		status:  Pending,
		version: InitialVersion,
		guard:   guard.NewConstructorGuard(),
	}

	lines, err := mergeLines(nil, items)
	if err := errors.Join(
		o.setID(id),
		o.setTableID(tableID),
		err,
	); err != nil {
		return nil, err
	}

	if err := o.setLines(lines); err != nil {
		return nil, err
	}
	o.createdAt = clock.Now()

	return o, nil
}

// RestoreOrder rebuilds an order snapshot read from storage. The total is
// recomputed from the lines rather than trusted.
func RestoreOrder(
	id, tableID int64,
	createdAt time.Time,
	lines []Line,
	status Status,
	version int,
) (*Order, error) {
	o := &Order{
		createdAt: createdAt,
		status:    status,
		version:   version,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setTableID(tableID),
		status.Validate(),
		validateVersion(version),
		validateCreatedAt(createdAt),
		validateLines(lines),
	); err != nil {
		return nil, err
	}

	if err := o.setLines(append([]Line(nil), lines...)); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was created through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

func (o *Order) ID() int64 {
	return o.id
}

func (o *Order) TableID() int64 {
	return o.tableID
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) Status() Status {
	return o.status
}

// Total is the amount computed when the snapshot was built.
func (o *Order) Total() float64 {
	return o.total
}

// Version is the optimistic concurrency sequence number of the snapshot.
func (o *Order) Version() int {
	return o.version
}

// Lines returns a copy of the order lines in insertion order.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Quantity returns how many units of the menu item are on the order.
func (o *Order) Quantity(menuItemID int64) (int, bool) {
	for _, line := range o.lines {
		if line.item.ID() == menuItemID {
			return line.quantity, true
		}
	}
	return 0, false
}

// ContainsMenuItem reports whether a line references the menu item.
func (o *Order) ContainsMenuItem(menuItemID int64) bool {
	_, ok := o.Quantity(menuItemID)
	return ok
}

// CalculateTotal sums price*quantity over the lines. It has no side effects
// and always agrees with Total for a constructed order.
func (o *Order) CalculateTotal() float64 {
	return sumLines(o.lines)
}

// AddItems returns a snapshot with items merged into the lines. Items can only
// be added while the order is Pending or Preparing.
func (o *Order) AddItems(items []ItemRequest) (*Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if !o.status.CanAddItems() {
		return nil, errs.NewInvalidStateError("add items", o.status)
	}

	lines, err := mergeLines(o.lines, items)
	if err != nil {
		return nil, err
	}

	next := o.next()
	if err := next.setLines(lines); err != nil {
		return nil, err
	}
	return next, nil
}

// TransitionStatus returns a snapshot in status next. Lines and total are unchanged.
//
// Example:
//
//	preparing, err := pending.TransitionStatus(order.Preparing)
func (o *Order) TransitionStatus(next Status) (*Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	status, err := o.status.TransitionTo(next)
	if err != nil {
		return nil, err
	}

	snapshot := o.next()
	snapshot.status = status
	return snapshot, nil
}

// next copies the snapshot and bumps its version.
func (o *Order) next() *Order {
	return &Order{
		id:        o.id,
		tableID:   o.tableID,
		createdAt: o.createdAt,
		lines:     o.Lines(),
		status:    o.status,
		total:     o.total,
		version:   o.version + 1,
		guard:     o.guard,
	}
}

func (o *Order) setID(id int64) error {
	if err := kernel.ValidateID("order id", id); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTableID(tableID int64) error {
	if err := kernel.ValidateID("table id", tableID); err != nil {
		return err
	}
	o.tableID = tableID
	return nil
}

// setLines takes ownership of lines and recomputes the total.
func (o *Order) setLines(lines []Line) error {
	total := sumLines(lines)
	if math.IsInf(total, 0) || math.IsNaN(total) || total <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order total", fmt.Errorf("%v is not a positive finite amount", total))
	}
	o.lines = lines
	o.total = total
	return nil
}

func validateVersion(version int) error {
	if version < InitialVersion {
		return errs.NewVersionIsInvalidErrorWithCause(
			"order version",
			fmt.Errorf("%d is less than %d", version, InitialVersion),
		)
	}
	return nil
}

func validateCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("order created at")
	}
	return nil
}

func validateLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("order lines")
	}

	seen := make(map[int64]struct{}, len(lines))
	for i, line := range lines {
		if err := (ItemRequest{MenuItem: line.item, Quantity: line.quantity}).Validate(); err != nil {
			return fmt.Errorf("line %d: %w", i, err)
		}
		if _, dup := seen[line.item.ID()]; dup {
			return errs.NewValueIsInvalidErrorWithCause(
				"order lines",
				fmt.Errorf("menu item %d appears more than once", line.item.ID()),
			)
		}
		seen[line.item.ID()] = struct{}{}
	}
	return nil
}
