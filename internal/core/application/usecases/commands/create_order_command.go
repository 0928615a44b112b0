package commands

import (
	"errors"

	"dinesmart/internal/core/domain/model/kernel"
	"dinesmart/internal/core/domain/model/order"
	"dinesmart/internal/pkg/errs"
	"dinesmart/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to open a new order for a table.
// The menu items are already resolved against the catalog by the caller.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(4, []order.ItemRequest{
//	    {MenuItem: burger, Quantity: 2},
//	    {MenuItem: soda, Quantity: 1},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	tableID int64
	items   []order.ItemRequest

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the table id and that at least one item is requested.
func NewCreateOrderCommand(tableID int64, items []order.ItemRequest) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTableID(tableID),
		command.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) TableID() int64 {
	return c.tableID
}

// Items returns a copy of the requested items.
func (c CreateOrderCommand) Items() []order.ItemRequest {
	return append([]order.ItemRequest(nil), c.items...)
}

func (c *CreateOrderCommand) setTableID(tableID int64) error {
	if err := kernel.ValidateID("table id", tableID); err != nil {
		return err
	}

	c.tableID = tableID
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.ItemRequest) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}

	c.items = append([]order.ItemRequest(nil), items...)
	return nil
}
