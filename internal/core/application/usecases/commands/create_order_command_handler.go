package commands

import (
	"context"

	"dinesmart/internal/core/domain/model/kernel"
	"dinesmart/internal/core/domain/model/order"
	"dinesmart/internal/pkg/retry"
)

// CreateOrderCommandHandler opens new orders in Pending status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, kernel.NewSystemClock(), retry.DefaultConfig)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Printf("order %d for table %d: %.2f\n", created.ID(), created.TableID(), created.Total())
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
	retry      retry.Config
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// The clock supplies the creation timestamp.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	clock kernel.Clock,
	retryConfig retry.Config,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		retry:      retryConfig,
	}
}

// Handle reserves an order id, builds the order and stores it in one transaction.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return retry.DoValue(ctx, h.retry, func(ctx context.Context) (*order.Order, error) {
		return inTx(ctx, h.uowFactory.Create(), func(uow OrderUoW) (*order.Order, error) {
			orderRepo := uow.OrderRepository()

			id, err := orderRepo.NextID(ctx)
			if err != nil {
				return nil, err
			}

			created, err := order.NewOrder(id, cmd.TableID(), cmd.Items(), h.clock)
			if err != nil {
				return nil, err
			}

			if err = orderRepo.Add(ctx, created); err != nil {
				return nil, err
			}

			return created, nil
		})
	})
}
