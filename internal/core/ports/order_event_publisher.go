package ports

import (
	"context"

	"dinesmart/internal/core/domain/model/order"
)

// OrderEventPublisher delivers committed order changes to the outside world.
// A failed publish never undoes the commit it follows.
type OrderEventPublisher interface {
	Publish(ctx context.Context, events ...order.Event) error
}
