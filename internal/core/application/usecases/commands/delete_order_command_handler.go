package commands

import (
	"context"

	"dinesmart/internal/pkg/errs"
	"dinesmart/internal/pkg/retry"
)

// DeleteOrderCommandHandler deletes orders that reached a terminal status.
// Deleting an active order fails with *errs.InvalidStateError.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	retry      retry.Config
}

func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory, retryConfig retry.Config) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		retry:      retryConfig,
	}
}

func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return retry.Do(ctx, h.retry, func(ctx context.Context) error {
		_, err := inTx(ctx, h.uowFactory.Create(), func(uow OrderUoW) (struct{}, error) {
			orderRepo := uow.OrderRepository()

			current, err := orderRepo.Get(ctx, cmd.OrderID())
			if err != nil {
				return struct{}{}, err
			}

			if !current.Status().IsTerminal() {
				return struct{}{}, errs.NewInvalidStateError("delete order", current.Status())
			}

			return struct{}{}, orderRepo.Delete(ctx, current)
		})
		return err
	})
}
