package queries

import (
	"context"

	"dinesmart/internal/core/domain/model/order"
)

// GetOrderQueryHandler reads single orders. An absent order is reported as
// *errs.ObjectNotFoundError, never as a nil snapshot.
type GetOrderQueryHandler struct {
	repos OrderRepoFactory
}

func NewGetOrderQueryHandler(repos OrderRepoFactory) GetOrderQueryHandler {
	return GetOrderQueryHandler{repos: repos}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.repos.OrderRepository().Get(ctx, query.OrderID())
}
