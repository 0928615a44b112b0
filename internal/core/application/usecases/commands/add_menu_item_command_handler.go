package commands

import (
	"context"

	"dinesmart/internal/core/domain/model/menu"
	"dinesmart/internal/pkg/retry"
)

// AddMenuItemCommandHandler stores new menu items. A name that is already on
// the menu fails with *errs.ObjectAlreadyExistsError.
type AddMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
	retry      retry.Config
}

func NewAddMenuItemCommandHandler(uowFactory MenuUoWFactory, retryConfig retry.Config) AddMenuItemCommandHandler {
	return AddMenuItemCommandHandler{
		uowFactory: uowFactory,
		retry:      retryConfig,
	}
}

func (h AddMenuItemCommandHandler) Handle(ctx context.Context, cmd AddMenuItemCommand) (menu.MenuItem, error) {
	if err := cmd.Validate(); err != nil {
		return menu.MenuItem{}, err
	}

	return retry.DoValue(ctx, h.retry, func(ctx context.Context) (menu.MenuItem, error) {
		return inTx(ctx, h.uowFactory.Create(), func(uow MenuUoW) (menu.MenuItem, error) {
			menuRepo := uow.MenuRepository()

			id, err := menuRepo.NextID(ctx)
			if err != nil {
				return menu.MenuItem{}, err
			}

			item, err := cmd.Draft().WithID(id)
			if err != nil {
				return menu.MenuItem{}, err
			}

			if err = menuRepo.Add(ctx, item); err != nil {
				return menu.MenuItem{}, err
			}

			return item, nil
		})
	})
}
