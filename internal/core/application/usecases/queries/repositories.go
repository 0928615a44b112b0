// Package queries contains read operations of the CQRS architecture.
// Query handlers never open a transaction: they read committed state through
// repositories that are not bound to one, and return immutable snapshots.
package queries

import (
	"dinesmart/internal/core/ports"
)

type (
	// OrderRepoFactory provides a repository that reads committed orders.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// MenuRepoFactory provides a repository that reads the committed catalog.
	MenuRepoFactory interface {
		MenuRepository() ports.MenuRepository
	}
)
