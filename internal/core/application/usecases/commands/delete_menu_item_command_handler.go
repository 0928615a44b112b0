package commands

import (
	"context"

	"dinesmart/internal/pkg/errs"
	"dinesmart/internal/pkg/retry"
)

// menuItemState describes why a menu item cannot be deleted.
type menuItemState string

func (s menuItemState) String() string {
	return string(s)
}

const onActiveOrder menuItemState = "it is on an active order"

// DeleteMenuItemCommandHandler removes menu items. An item that is still on a
// Pending, Preparing, ReadyForServe or Served order cannot be removed.
type DeleteMenuItemCommandHandler struct {
	uowFactory UoWFactory
	retry      retry.Config
}

func NewDeleteMenuItemCommandHandler(uowFactory UoWFactory, retryConfig retry.Config) DeleteMenuItemCommandHandler {
	return DeleteMenuItemCommandHandler{
		uowFactory: uowFactory,
		retry:      retryConfig,
	}
}

func (h DeleteMenuItemCommandHandler) Handle(ctx context.Context, cmd DeleteMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return retry.Do(ctx, h.retry, func(ctx context.Context) error {
		_, err := inTx(ctx, h.uowFactory.Create(), func(uow UoW) (struct{}, error) {
			inUse, err := uow.OrderRepository().HasActiveWithMenuItem(ctx, cmd.MenuItemID())
			if err != nil {
				return struct{}{}, err
			}
			if inUse {
				return struct{}{}, errs.NewInvalidStateError("delete menu item", onActiveOrder)
			}

			return struct{}{}, uow.MenuRepository().Delete(ctx, cmd.MenuItemID())
		})
		return err
	})
}
