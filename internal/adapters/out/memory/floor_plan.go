package memory

import (
	"context"
	"maps"
	"slices"

	"dinesmart/internal/core/domain/model/table"
	"dinesmart/internal/pkg/errs"
)

// FloorPlan implements ports.TableRepository over a fixed set of tables. It
// is read only and safe for concurrent use.
type FloorPlan struct {
	tables map[int64]table.Table
}

// NewFloorPlan fails with *errs.ObjectAlreadyExistsError when two tables
// share an id.
func NewFloorPlan(tables ...table.Table) (*FloorPlan, error) {
	plan := &FloorPlan{tables: make(map[int64]table.Table, len(tables))}
	for _, t := range tables {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if _, ok := plan.tables[t.ID()]; ok {
			return nil, errs.NewObjectAlreadyExistsError("table id", t.ID())
		}
		plan.tables[t.ID()] = t
	}
	return plan, nil
}

func (p *FloorPlan) Get(_ context.Context, id int64) (table.Table, error) {
	t, ok := p.tables[id]
	if !ok {
		return table.Table{}, errs.NewObjectNotFoundError("table", id)
	}
	return t, nil
}

func (p *FloorPlan) GetAll(_ context.Context) ([]table.Table, error) {
	ids := slices.Sorted(maps.Keys(p.tables))
	out := make([]table.Table, 0, len(ids))
	for _, id := range ids {
		out = append(out, p.tables[id])
	}
	return out, nil
}
