// Package eventlog writes committed order events to a structured log. It
// stands in for the broker when none is configured.
package eventlog

import (
	"context"
	"log/slog"

	"dinesmart/internal/core/domain/model/order"
)

type Publisher struct {
	logger *slog.Logger
}

func NewPublisher(logger *slog.Logger) *Publisher {
	return &Publisher{logger: logger.With("component", "order-events")}
}

func (p *Publisher) Publish(ctx context.Context, events ...order.Event) error {
	for _, event := range events {
		if event.Order == nil {
			continue
		}
		p.logger.InfoContext(ctx, event.Kind.String(),
			slog.Int64("order_id", event.Order.ID()),
			slog.Int64("table_id", event.Order.TableID()),
			slog.String("status", event.Order.Status().String()),
			slog.Int("version", event.Order.Version()),
			slog.Float64("total", event.Order.Total()),
		)
	}
	return nil
}
