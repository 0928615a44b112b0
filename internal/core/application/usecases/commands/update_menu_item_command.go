package commands

import (
	"errors"

	"dinesmart/internal/core/domain/model/menu"
	"dinesmart/internal/pkg/guard"
)

var (
	ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
		"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
	)
)

// UpdateMenuItemCommand replaces every field of an existing menu item.
// Orders keep the item as it was when it was ordered.
type UpdateMenuItemCommand struct {
	item menu.MenuItem

	guard guard.ConstructorGuard
}

func NewUpdateMenuItemCommand(
	id int64,
	name, description string,
	price float64,
	category menu.Category,
	available bool,
) (UpdateMenuItemCommand, error) {
	item, err := menu.NewMenuItem(id, name, description, price, category, available)
	if err != nil {
		return UpdateMenuItemCommand{}, err
	}

	return UpdateMenuItemCommand{
		item:  item,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

func (c UpdateMenuItemCommand) Item() menu.MenuItem {
	return c.item
}
