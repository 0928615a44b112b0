package ports

import (
	"context"

	"dinesmart/internal/core/domain/model/menu"
)

// MenuRepository defines the persistence contract for the menu catalog.
// Menu item names are unique.
type MenuRepository interface {
	// NextID reserves a fresh menu item identifier.
	NextID(ctx context.Context) (int64, error)

	// Add persists a new item. A taken id or name fails with *errs.ObjectAlreadyExistsError.
	Add(ctx context.Context, item menu.MenuItem) error

	// Update replaces a stored item. A missing item fails with
	// *errs.ObjectNotFoundError, a name taken by another item with
	// *errs.ObjectAlreadyExistsError.
	Update(ctx context.Context, item menu.MenuItem) error

	// Delete removes an item. A missing item fails with *errs.ObjectNotFoundError.
	Delete(ctx context.Context, id int64) error

	// Get retrieves an item by id.
	Get(ctx context.Context, id int64) (menu.MenuItem, error)

	// GetByName retrieves an item by its exact name.
	GetByName(ctx context.Context, name string) (menu.MenuItem, error)

	// GetAll returns the whole catalog ordered by id.
	GetAll(ctx context.Context) ([]menu.MenuItem, error)
}
