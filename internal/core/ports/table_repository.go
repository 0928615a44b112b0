package ports

import (
	"context"

	"dinesmart/internal/core/domain/model/table"
)

// TableRepository exposes the tables of the restaurant floor. Tables it
// returns are free; occupancy is derived from the active orders.
type TableRepository interface {
	// Get retrieves a table by id. A missing table fails with *errs.ObjectNotFoundError.
	Get(ctx context.Context, id int64) (table.Table, error)

	// GetAll returns every table ordered by id.
	GetAll(ctx context.Context) ([]table.Table, error)
}
