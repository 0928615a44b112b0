package commands

import (
	"context"

	"dinesmart/internal/core/domain/model/order"
	"dinesmart/internal/pkg/retry"
)

// AddItemsToOrderCommandHandler merges items into an order that is still
// Pending or Preparing.
//
// Two concurrent calls on the same order never overwrite each other: the
// repository rejects the slower write with a concurrent modification error
// and the handler re-applies its items to the fresh snapshot.
type AddItemsToOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	retry      retry.Config
}

func NewAddItemsToOrderCommandHandler(
	uowFactory OrderUoWFactory,
	retryConfig retry.Config,
) AddItemsToOrderCommandHandler {
	return AddItemsToOrderCommandHandler{
		uowFactory: uowFactory,
		retry:      retryConfig,
	}
}

func (h AddItemsToOrderCommandHandler) Handle(
	ctx context.Context,
	cmd AddItemsToOrderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return retry.DoValue(ctx, h.retry, func(ctx context.Context) (*order.Order, error) {
		return inTx(ctx, h.uowFactory.Create(), func(uow OrderUoW) (*order.Order, error) {
			orderRepo := uow.OrderRepository()

			current, err := orderRepo.Get(ctx, cmd.OrderID())
			if err != nil {
				return nil, err
			}

			updated, err := current.AddItems(cmd.Items())
			if err != nil {
				return nil, err
			}

			if err = orderRepo.Update(ctx, updated); err != nil {
				return nil, err
			}

			return updated, nil
		})
	})
}
