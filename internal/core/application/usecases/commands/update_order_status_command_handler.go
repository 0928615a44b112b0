package commands

import (
	"context"

	"dinesmart/internal/core/domain/model/order"
	"dinesmart/internal/pkg/retry"
)

// UpdateOrderStatusCommandHandler applies status transitions.
//
// Every attempt reads the current snapshot, so a transition that lost a race
// is re-evaluated against the winner's status:
//
//	updated, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // no such order
//	case errors.Is(err, errs.ErrInvalidTransition):
//	    // not an edge of the status graph
//	}
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	retry      retry.Config
}

func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	retryConfig retry.Config,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		retry:      retryConfig,
	}
}

func (h UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
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

			updated, err := current.TransitionStatus(cmd.Status())
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
