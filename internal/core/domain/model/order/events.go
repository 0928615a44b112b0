package order

// EventKind tells what happened to an order.
type EventKind int

const (
	EventCreated EventKind = iota + 1
	EventUpdated
	EventDeleted
)

func (k EventKind) String() string {
	switch k {
	case EventCreated:
		return "order.created"
	case EventUpdated:
		return "order.updated"
	case EventDeleted:
		return "order.deleted"
	default:
		return "order.unknown"
	}
}

// Event is emitted once a change to an order has been committed. For EventDeleted
// the snapshot is the last stored state.
type Event struct {
	Kind  EventKind
	Order *Order
}

func NewCreatedEvent(o *Order) Event {
	return Event{Kind: EventCreated, Order: o}
}

func NewUpdatedEvent(o *Order) Event {
	return Event{Kind: EventUpdated, Order: o}
}

func NewDeletedEvent(o *Order) Event {
	return Event{Kind: EventDeleted, Order: o}
}
