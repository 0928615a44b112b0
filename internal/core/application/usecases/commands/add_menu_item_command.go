package commands

import (
	"errors"

	"dinesmart/internal/core/domain/model/menu"
	"dinesmart/internal/pkg/guard"
)

var (
	ErrAddMenuItemCommandIsNotConstructed = errors.New(
		"AddMenuItemCommand must be created via NewAddMenuItemCommand constructor",
	)
)

// AddMenuItemCommand puts a new item on the menu. The identifier is assigned
// by the repository when the command is handled.
//
// Example:
//
//	mains, _ := menu.NewFoodCategory(1, "Mains", false)
//	cmd, err := NewAddMenuItemCommand("Burger", "Beef and cheddar", 8.50, mains, true)
type AddMenuItemCommand struct {
	draft menu.MenuItem

	guard guard.ConstructorGuard
}

// NewAddMenuItemCommand validates the item exactly as menu.NewMenuItem does.
func NewAddMenuItemCommand(
	name, description string,
	price float64,
	category menu.Category,
	available bool,
) (AddMenuItemCommand, error) {
	draft, err := menu.NewMenuItem(0, name, description, price, category, available)
	if err != nil {
		return AddMenuItemCommand{}, err
	}

	return AddMenuItemCommand{
		draft: draft,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c AddMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrAddMenuItemCommandIsNotConstructed)
}

// Draft returns the validated item with a placeholder id.
func (c AddMenuItemCommand) Draft() menu.MenuItem {
	return c.draft
}
