package queries

import (
	"errors"

	"dinesmart/internal/core/domain/model/kernel"
	"dinesmart/internal/pkg/guard"
)

var (
	ErrGetTableQueryIsNotConstructed = errors.New(
		"GetTableQuery must be created via NewGetTableQuery constructor",
	)
	ErrListTablesQueryIsNotConstructed = errors.New(
		"ListTablesQuery must be created via NewListTablesQuery constructor",
	)
)

type GetTableQuery struct {
	tableID int64

	guard guard.ConstructorGuard
}

func NewGetTableQuery(tableID int64) (GetTableQuery, error) {
	if err := kernel.ValidateID("table id", tableID); err != nil {
		return GetTableQuery{}, err
	}

	return GetTableQuery{tableID: tableID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetTableQuery) Validate() error {
	return q.guard.Validate(ErrGetTableQueryIsNotConstructed)
}

func (q GetTableQuery) TableID() int64 {
	return q.tableID
}

// ListTablesQuery lists the floor, optionally only the free tables.
type ListTablesQuery struct {
	freeOnly bool

	guard guard.ConstructorGuard
}

func NewListTablesQuery() ListTablesQuery {
	return ListTablesQuery{guard: guard.NewConstructorGuard()}
}

// FreeOnly returns a copy of the query that skips occupied tables.
func (q ListTablesQuery) FreeOnly() ListTablesQuery {
	q.freeOnly = true
	return q
}

func (q ListTablesQuery) Validate() error {
	return q.guard.Validate(ErrListTablesQueryIsNotConstructed)
}
