// Package ports defines the contracts between the DineSmart core and its
// adapters. The core depends only on these interfaces; storage, messaging and
// transport live behind them.
package ports

import (
	"context"
	"time"

	"dinesmart/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Order snapshots carry a version. Update and Delete are compare-and-swap
// operations: they succeed only while the stored version is the one the
// caller read, and fail with *errs.ConcurrentModificationError otherwise.
type OrderRepository interface {
	// NextID reserves a fresh order identifier.
	NextID(ctx context.Context) (int64, error)

	// Add persists a new order. An existing id fails with *errs.ObjectAlreadyExistsError.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update replaces the stored snapshot with aggregate. The stored version
	// must equal aggregate.Version()-1.
	Update(ctx context.Context, aggregate *order.Order) error

	// Delete removes the order when the stored version still equals
	// aggregate.Version().
	Delete(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id. A missing order fails with *errs.ObjectNotFoundError.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetAll returns every order ordered by id.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllActive returns the orders that are neither Paid nor Cancelled,
	// ordered by id.
	GetAllActive(ctx context.Context) ([]*order.Order, error)

	// GetAllTerminalCreatedBefore returns Paid and Cancelled orders created
	// strictly before the given instant, ordered by id.
	GetAllTerminalCreatedBefore(ctx context.Context, before time.Time) ([]*order.Order, error)

	// HasActiveWithMenuItem reports whether an active order has a line for the menu item.
	HasActiveWithMenuItem(ctx context.Context, menuItemID int64) (bool, error)
}
