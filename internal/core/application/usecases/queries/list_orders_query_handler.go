package queries

import (
	"cmp"
	"context"
	"slices"

	"dinesmart/internal/core/domain/model/order"
)

// ListActiveOrdersQueryHandler lists the orders the restaurant still works on.
type ListActiveOrdersQueryHandler struct {
	repos OrderRepoFactory
}

func NewListActiveOrdersQueryHandler(repos OrderRepoFactory) ListActiveOrdersQueryHandler {
	return ListActiveOrdersQueryHandler{repos: repos}
}

// Handle returns active orders ordered by id.
func (h ListActiveOrdersQueryHandler) Handle(ctx context.Context, query ListActiveOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.repos.OrderRepository().GetAllActive(ctx)
	if err != nil {
		return nil, err
	}

	sortByID(orders)
	return orders, nil
}

// ListOrdersQueryHandler lists stored orders.
type ListOrdersQueryHandler struct {
	repos OrderRepoFactory
}

func NewListOrdersQueryHandler(repos OrderRepoFactory) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{repos: repos}
}

// Handle returns the matching orders ordered by id.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.repos.OrderRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if status, ok := query.Status(); ok {
		orders = slices.DeleteFunc(orders, func(o *order.Order) bool {
			return o.Status() != status
		})
	}

	sortByID(orders)
	return orders, nil
}

func sortByID(orders []*order.Order) {
	slices.SortFunc(orders, func(a, b *order.Order) int {
		return cmp.Compare(a.ID(), b.ID())
	})
}
