package memory

import (
	"context"
	"time"

	"dinesmart/internal/core/domain/model/order"
	"dinesmart/internal/pkg/errs"
)

// OrderRepository implements ports.OrderRepository on top of a UnitOfWork.
type OrderRepository struct {
	uow *UnitOfWork
}

func (r *OrderRepository) NextID(_ context.Context) (int64, error) {
	return r.uow.store.nextOrderID(), nil
}

func (r *OrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if _, exists := r.uow.lookupOrder(aggregate.ID()); exists {
		return errs.NewObjectAlreadyExistsError("order id", aggregate.ID())
	}

	return r.uow.writeOrder(ctx, orderWrite{
		id:   aggregate.ID(),
		next: aggregate,
	}, order.NewCreatedEvent(aggregate))
}

func (r *OrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	current, ok := r.uow.lookupOrder(aggregate.ID())
	if !ok {
		return errs.NewObjectNotFoundError("order", aggregate.ID())
	}
	expected := aggregate.Version() - 1
	if current.Version() != expected {
		return errs.NewConcurrentModificationError("order", aggregate.ID(), expected)
	}

	return r.uow.writeOrder(ctx, orderWrite{
		id:       aggregate.ID(),
		expected: expected,
		next:     aggregate,
	}, order.NewUpdatedEvent(aggregate))
}

func (r *OrderRepository) Delete(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	current, ok := r.uow.lookupOrder(aggregate.ID())
	if !ok {
		return errs.NewObjectNotFoundError("order", aggregate.ID())
	}
	if current.Version() != aggregate.Version() {
		return errs.NewConcurrentModificationError("order", aggregate.ID(), aggregate.Version())
	}

	return r.uow.writeOrder(ctx, orderWrite{
		id:       aggregate.ID(),
		expected: aggregate.Version(),
	}, order.NewDeletedEvent(aggregate))
}

func (r *OrderRepository) Get(_ context.Context, id int64) (*order.Order, error) {
	o, ok := r.uow.lookupOrder(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return o, nil
}

func (r *OrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	return sortedOrders(r.uow.orderView()), nil
}

func (r *OrderRepository) GetAllActive(_ context.Context) ([]*order.Order, error) {
	return r.filter(func(o *order.Order) bool {
		return o.Status().IsActive()
	}), nil
}

func (r *OrderRepository) GetAllTerminalCreatedBefore(_ context.Context, before time.Time) ([]*order.Order, error) {
	return r.filter(func(o *order.Order) bool {
		return o.Status().IsTerminal() && o.CreatedAt().Before(before)
	}), nil
}

func (r *OrderRepository) HasActiveWithMenuItem(_ context.Context, menuItemID int64) (bool, error) {
	for _, o := range r.uow.orderView() {
		if hasActiveLine(o, menuItemID) {
			return true, nil
		}
	}
	return false, nil
}

func (r *OrderRepository) filter(keep func(*order.Order) bool) []*order.Order {
	view := r.uow.orderView()
	for id, o := range view {
		if !keep(o) {
			delete(view, id)
		}
	}
	return sortedOrders(view)
}
