package queries

import (
	"context"
	"slices"

	"dinesmart/internal/core/domain/model/order"
	"dinesmart/internal/core/domain/model/table"
	"dinesmart/internal/core/ports"
)

// GetTableQueryHandler returns a table with its current occupancy.
type GetTableQueryHandler struct {
	tables ports.TableRepository
	repos  OrderRepoFactory
}

func NewGetTableQueryHandler(tables ports.TableRepository, repos OrderRepoFactory) GetTableQueryHandler {
	return GetTableQueryHandler{tables: tables, repos: repos}
}

func (h GetTableQueryHandler) Handle(ctx context.Context, query GetTableQuery) (table.Table, error) {
	if err := query.Validate(); err != nil {
		return table.Table{}, err
	}

	t, err := h.tables.Get(ctx, query.TableID())
	if err != nil {
		return table.Table{}, err
	}

	active, err := h.repos.OrderRepository().GetAllActive(ctx)
	if err != nil {
		return table.Table{}, err
	}

	return seat(t, active)
}

// ListTablesQueryHandler returns the tables ordered by id with their current
// occupancy.
type ListTablesQueryHandler struct {
	tables ports.TableRepository
	repos  OrderRepoFactory
}

func NewListTablesQueryHandler(tables ports.TableRepository, repos OrderRepoFactory) ListTablesQueryHandler {
	return ListTablesQueryHandler{tables: tables, repos: repos}
}

func (h ListTablesQueryHandler) Handle(ctx context.Context, query ListTablesQuery) ([]table.Table, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tables, err := h.tables.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	active, err := h.repos.OrderRepository().GetAllActive(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]table.Table, 0, len(tables))
	for _, t := range tables {
		t, err = seat(t, active)
		if err != nil {
			return nil, err
		}
		if query.freeOnly && t.IsOccupied() {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// seat occupies t with the oldest active order placed at it, if any.
func seat(t table.Table, active []*order.Order) (table.Table, error) {
	sortByID(active)
	i := slices.IndexFunc(active, func(o *order.Order) bool {
		return o.TableID() == t.ID()
	})
	if i < 0 {
		return t, nil
	}
	return t.Seat(active[i].ID())
}
