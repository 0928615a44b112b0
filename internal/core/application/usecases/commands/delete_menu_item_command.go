package commands

import (
	"errors"

	"dinesmart/internal/core/domain/model/kernel"
	"dinesmart/internal/pkg/guard"
)

var (
	ErrDeleteMenuItemCommandIsNotConstructed = errors.New(
		"DeleteMenuItemCommand must be created via NewDeleteMenuItemCommand constructor",
	)
)

// DeleteMenuItemCommand takes an item off the menu.
type DeleteMenuItemCommand struct {
	menuItemID int64

	guard guard.ConstructorGuard
}

func NewDeleteMenuItemCommand(menuItemID int64) (DeleteMenuItemCommand, error) {
	if err := kernel.ValidateID("menu item id", menuItemID); err != nil {
		return DeleteMenuItemCommand{}, err
	}

	return DeleteMenuItemCommand{
		menuItemID: menuItemID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteMenuItemCommandIsNotConstructed)
}

func (c DeleteMenuItemCommand) MenuItemID() int64 {
	return c.menuItemID
}
