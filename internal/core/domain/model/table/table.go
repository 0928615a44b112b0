package table

import (
	"errors"
	"fmt"

	"dinesmart/internal/core/domain/model/kernel"
	"dinesmart/internal/pkg/errs"
	"dinesmart/internal/pkg/guard"
)

var (
	// ErrTableIsNotConstructed is returned when a Table instance was not created
	// through the NewTable factory method.
	ErrTableIsNotConstructed = errors.New("Table must be created via NewTable constructor")
)

// Occupancy tells whether guests are seated at a table.
type Occupancy bool

const (
	Free     Occupancy = false
	Occupied Occupancy = true
)

func (o Occupancy) String() string {
	if o {
		return "occupied"
	}
	return "free"
}

// Table is a dining table with a seating capacity. While occupied it refers
// to the order of the guests seated at it.
type Table struct {
	id       int64
	capacity int
	occupied bool
	orderID  int64

	guard guard.ConstructorGuard
}

// NewTable creates a free table. All validation failures are joined into the
// returned error.
func NewTable(id int64, capacity int) (Table, error) {
	t := Table{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		t.setID(id),
		t.setCapacity(capacity),
	); err != nil {
		return Table{}, err
	}

	return t, nil
}

// Validate ensures the table was created through NewTable.
func (t Table) Validate() error {
	return t.guard.Validate(ErrTableIsNotConstructed)
}

func (t Table) ID() int64 {
	return t.id
}

func (t Table) Capacity() int {
	return t.capacity
}

func (t Table) Occupancy() Occupancy {
	return Occupancy(t.occupied)
}

func (t Table) IsOccupied() bool {
	return t.occupied
}

// CurrentOrder returns the id of the order seated at the table. ok is false
// for a free table.
func (t Table) CurrentOrder() (orderID int64, ok bool) {
	return t.orderID, t.occupied
}

// Seat returns a copy of the table occupied by the given order. Seating an
// occupied table fails with *errs.InvalidStateError.
func (t Table) Seat(orderID int64) (Table, error) {
	if err := t.Validate(); err != nil {
		return Table{}, err
	}
	if err := kernel.ValidateID("order id", orderID); err != nil {
		return Table{}, err
	}
	if t.occupied {
		return Table{}, errs.NewInvalidStateError(fmt.Sprintf("seat order %d at table %d", orderID, t.id), t.Occupancy())
	}

	t.occupied = true
	t.orderID = orderID
	return t, nil
}

// Release returns a free copy of the table. Releasing a free table fails with
// *errs.InvalidStateError.
func (t Table) Release() (Table, error) {
	if err := t.Validate(); err != nil {
		return Table{}, err
	}
	if !t.occupied {
		return Table{}, errs.NewInvalidStateError(fmt.Sprintf("release table %d", t.id), t.Occupancy())
	}

	t.occupied = false
	t.orderID = 0
	return t, nil
}

func (t *Table) setID(id int64) error {
	if err := kernel.ValidateID("table id", id); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Table) setCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("table capacity", fmt.Errorf("%d is not greater than 0", capacity))
	}
	t.capacity = capacity
	return nil
}
