package menu

import (
	"errors"
	"fmt"
	"math"

	"dinesmart/internal/core/domain/model/kernel"
	"dinesmart/internal/pkg/errs"
	"dinesmart/internal/pkg/guard"
)

var (
	// ErrMenuItemIsNotConstructed is returned when a MenuItem instance was not created
	// through the NewMenuItem factory method.
	ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")
)

// MenuItem is a single entry of the restaurant menu.
//
// MenuItem follows these invariants:
//   - Identifier is non-negative
//   - Name is not blank
//   - Price is strictly positive and finite
//   - Category is a constructed Food or Beverage category
//
// MenuItem is an immutable value: every field is private, there are no
// setters, and WithID/WithAvailability return modified copies. Two items are
// equal when all of their fields are equal.
type MenuItem struct {
	id          int64
	name        string
	description string
	price       float64
	category    Category
	available   bool

	guard guard.ConstructorGuard
}

// NewMenuItem creates a validated menu item. All validation failures are
// joined into the returned error.
//
// Example:
//
//	mains, _ := menu.NewFoodCategory(1, "Mains", false)
//	burger, err := menu.NewMenuItem(10, "Burger", "Beef, cheddar, pickles", 8.50, mains, true)
//	if err != nil {
//	    // errs.IsValidation(err) == true
//	}
func NewMenuItem(
	id int64,
	name string,
	description string,
	price float64,
	category Category,
	available bool,
) (MenuItem, error) {
	item := MenuItem{
		description: description,
		available:   available,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setPrice(price),
		item.setCategory(category),
	); err != nil {
		return MenuItem{}, err
	}

	return item, nil
}

// Validate ensures the item was created through NewMenuItem.
func (m MenuItem) Validate() error {
	return m.guard.Validate(ErrMenuItemIsNotConstructed)
}

// IsEqual compares two menu items field by field.
func (m MenuItem) IsEqual(other MenuItem) bool {
	return m.id == other.id &&
		m.name == other.name &&
		m.description == other.description &&
		m.price == other.price &&
		SameCategory(m.category, other.category) &&
		m.available == other.available
}

func (m MenuItem) ID() int64 {
	return m.id
}

func (m MenuItem) Name() string {
	return m.name
}

func (m MenuItem) Description() string {
	return m.description
}

func (m MenuItem) Price() float64 {
	return m.price
}

func (m MenuItem) Category() Category {
	return m.category
}

// IsAvailable reports whether the kitchen currently serves the item.
func (m MenuItem) IsAvailable() bool {
	return m.available
}

// Availability describes whether an item can be ordered.
type Availability bool

const (
	Available   Availability = true
	Unavailable Availability = false
)

func (a Availability) String() string {
	if a {
		return "available"
	}
	return "unavailable"
}

func (m MenuItem) Availability() Availability {
	return Availability(m.available)
}

// WithID returns a copy of the item carrying a new identifier. Repositories use
// it to assign identifiers on insert.
func (m MenuItem) WithID(id int64) (MenuItem, error) {
	if err := m.Validate(); err != nil {
		return MenuItem{}, err
	}
	if err := m.setID(id); err != nil {
		return MenuItem{}, err
	}
	return m, nil
}

// WithAvailability returns a copy of the item with the given availability.
func (m MenuItem) WithAvailability(available bool) (MenuItem, error) {
	if err := m.Validate(); err != nil {
		return MenuItem{}, err
	}
	m.available = available
	return m, nil
}

// BelongsTo reports whether the item is filed under the given category kind and id.
func (m MenuItem) BelongsTo(kind CategoryKind, categoryID int64) bool {
	return m.category != nil && m.category.Kind() == kind && m.category.ID() == categoryID
}

func (m *MenuItem) setID(id int64) error {
	if err := kernel.ValidateID("menu item id", id); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setName(name string) error {
	if err := kernel.ValidateName("menu item name", name); err != nil {
		return err
	}
	m.name = name
	return nil
}

func (m *MenuItem) setPrice(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"menu item price",
			fmt.Errorf("%v is not a positive finite amount", price),
		)
	}
	m.price = price
	return nil
}

func (m *MenuItem) setCategory(category Category) error {
	if category == nil {
		return errs.NewValueIsRequiredError("category")
	}
	if err := category.Validate(); err != nil {
		return err
	}
	if _, err := MatchCategory(category,
		func(FoodCategory) struct{} { return struct{}{} },
		func(BeverageCategory) struct{} { return struct{}{} },
	); err != nil {
		return err
	}
	m.category = category
	return nil
}
