package commands

import (
	"context"

	"dinesmart/internal/core/domain/model/kernel"
	"dinesmart/internal/pkg/retry"
)

// PurgeTerminalOrdersCommandHandler deletes finished orders past their
// retention in a single transaction and reports how many were removed.
type PurgeTerminalOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
	retry      retry.Config
}

func NewPurgeTerminalOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	clock kernel.Clock,
	retryConfig retry.Config,
) PurgeTerminalOrdersCommandHandler {
	return PurgeTerminalOrdersCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		retry:      retryConfig,
	}
}

func (h PurgeTerminalOrdersCommandHandler) Handle(ctx context.Context, cmd PurgeTerminalOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	cutoff := h.clock.Now().Add(-cmd.Retention())

	return retry.DoValue(ctx, h.retry, func(ctx context.Context) (int, error) {
		return inTx(ctx, h.uowFactory.Create(), func(uow OrderUoW) (int, error) {
			orderRepo := uow.OrderRepository()

			expired, err := orderRepo.GetAllTerminalCreatedBefore(ctx, cutoff)
			if err != nil {
				return 0, err
			}

			for _, o := range expired {
				if err = orderRepo.Delete(ctx, o); err != nil {
					return 0, err
				}
			}

			return len(expired), nil
		})
	})
}
