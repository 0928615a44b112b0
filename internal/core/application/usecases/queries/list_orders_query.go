package queries

import (
	"errors"

	"dinesmart/internal/core/domain/model/order"
	"dinesmart/internal/pkg/guard"
)

var (
	ErrListActiveOrdersQueryIsNotConstructed = errors.New(
		"ListActiveOrdersQuery must be created via NewListActiveOrdersQuery constructor",
	)
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListActiveOrdersQuery retrieves orders that are neither Paid nor Cancelled.
// This is a parameterless query; results are ordered by order id.
type ListActiveOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewListActiveOrdersQuery() ListActiveOrdersQuery {
	return ListActiveOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q ListActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListActiveOrdersQueryIsNotConstructed)
}

// ListOrdersQuery retrieves every stored order, optionally only those in
// one status.
type ListOrdersQuery struct {
	status *order.Status

	guard guard.ConstructorGuard
}

func NewListOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{guard: guard.NewConstructorGuard()}
}

func NewListOrdersByStatusQuery(status order.Status) (ListOrdersQuery, error) {
	if err := status.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{status: &status, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the status filter, if any.
func (q ListOrdersQuery) Status() (order.Status, bool) {
	if q.status == nil {
		return order.Unknown, false
	}
	return *q.status, true
}
