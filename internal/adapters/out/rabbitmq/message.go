package rabbitmq

import (
	"time"

	"dinesmart/internal/core/domain/model/order"
)

// OrderMessage is the JSON body of an order event.
type OrderMessage struct {
	Event     string        `json:"event"`
	OrderID   int64         `json:"order_id"`
	TableID   int64         `json:"table_id"`
	Status    string        `json:"status"`
	Total     float64       `json:"total"`
	Version   int           `json:"version"`
	CreatedAt time.Time     `json:"created_at"`
	Lines     []LineMessage `json:"lines"`
}

type LineMessage struct {
	MenuItemID int64   `json:"menu_item_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

func newOrderMessage(event order.Event) OrderMessage {
	o := event.Order
	lines := o.Lines()

	msg := OrderMessage{
		Event:     event.Kind.String(),
		OrderID:   o.ID(),
		TableID:   o.TableID(),
		Status:    o.Status().String(),
		Total:     o.Total(),
		Version:   o.Version(),
		CreatedAt: o.CreatedAt(),
		Lines:     make([]LineMessage, 0, len(lines)),
	}
	for _, line := range lines {
		msg.Lines = append(msg.Lines, LineMessage{
			MenuItemID: line.MenuItem().ID(),
			Name:       line.MenuItem().Name(),
			Price:      line.MenuItem().Price(),
			Quantity:   line.Quantity(),
		})
	}
	return msg
}
