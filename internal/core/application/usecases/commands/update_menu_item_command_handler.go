package commands

import (
	"context"

	"dinesmart/internal/core/domain/model/menu"
	"dinesmart/internal/pkg/retry"
)

// UpdateMenuItemCommandHandler replaces stored menu items. A missing item
// fails with *errs.ObjectNotFoundError.
type UpdateMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
	retry      retry.Config
}

func NewUpdateMenuItemCommandHandler(
	uowFactory MenuUoWFactory,
	retryConfig retry.Config,
) UpdateMenuItemCommandHandler {
	return UpdateMenuItemCommandHandler{
		uowFactory: uowFactory,
		retry:      retryConfig,
	}
}

func (h UpdateMenuItemCommandHandler) Handle(ctx context.Context, cmd UpdateMenuItemCommand) (menu.MenuItem, error) {
	if err := cmd.Validate(); err != nil {
		return menu.MenuItem{}, err
	}

	return retry.DoValue(ctx, h.retry, func(ctx context.Context) (menu.MenuItem, error) {
		return inTx(ctx, h.uowFactory.Create(), func(uow MenuUoW) (menu.MenuItem, error) {
			if err := uow.MenuRepository().Update(ctx, cmd.Item()); err != nil {
				return menu.MenuItem{}, err
			}
			return cmd.Item(), nil
		})
	})
}
