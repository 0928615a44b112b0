package order

import (
	"errors"
	"fmt"
	"math"

	"dinesmart/internal/core/domain/model/menu"
	"dinesmart/internal/pkg/errs"
)

// ItemRequest asks for quantity units of a menu item. It is the input of
// NewOrder and AddItems; the menu item is resolved by the caller.
type ItemRequest struct {
	MenuItem menu.MenuItem
	Quantity int
}

// Validate checks the menu item and that the quantity is positive.
func (r ItemRequest) Validate() error {
	return errors.Join(
		r.MenuItem.Validate(),
		validateQuantity(r.Quantity),
	)
}

// Line is one entry of an order: a menu item and how many of it were ordered.
type Line struct {
	item     menu.MenuItem
	quantity int
}

// NewLine validates and creates an order line.
func NewLine(item menu.MenuItem, quantity int) (Line, error) {
	if err := (ItemRequest{MenuItem: item, Quantity: quantity}).Validate(); err != nil {
		return Line{}, err
	}
	return Line{item: item, quantity: quantity}, nil
}

func (l Line) MenuItem() menu.MenuItem {
	return l.item
}

func (l Line) Quantity() int {
	return l.quantity
}

// Subtotal is price times quantity.
func (l Line) Subtotal() float64 {
	return l.item.Price() * float64(l.quantity)
}

func validateQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	return nil
}

// mergeLines returns a new slice holding existing plus items. Items whose menu
// item id is already present grow that line's quantity and keep the stored
// menu item; new ids are appended in request order.
func mergeLines(existing []Line, items []ItemRequest) ([]Line, error) {
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("order items")
	}

	var validationErrs []error
	for i, item := range items {
		if err := item.Validate(); err != nil {
			validationErrs = append(validationErrs, fmt.Errorf("item %d: %w", i, err))
		}
	}
	if err := errors.Join(validationErrs...); err != nil {
		return nil, err
	}

	merged := make([]Line, len(existing), len(existing)+len(items))
	copy(merged, existing)

	index := make(map[int64]int, len(merged))
	for i, line := range merged {
		index[line.item.ID()] = i
	}

	for _, item := range items {
		if i, ok := index[item.MenuItem.ID()]; ok {
			if merged[i].quantity > math.MaxInt-item.Quantity {
				return nil, errs.NewValueIsOutOfRangeError("quantity",
					fmt.Sprintf("%d+%d", merged[i].quantity, item.Quantity), 1, math.MaxInt)
			}
			merged[i].quantity += item.Quantity
			continue
		}
		index[item.MenuItem.ID()] = len(merged)
		merged = append(merged, Line{item: item.MenuItem, quantity: item.Quantity})
	}

	return merged, nil
}

func sumLines(lines []Line) float64 {
	var total float64
	for _, line := range lines {
		total += line.Subtotal()
	}
	return total
}
