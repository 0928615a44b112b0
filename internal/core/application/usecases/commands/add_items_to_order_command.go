package commands

import (
	"errors"

	"dinesmart/internal/core/domain/model/kernel"
	"dinesmart/internal/core/domain/model/order"
	"dinesmart/internal/pkg/errs"
	"dinesmart/internal/pkg/guard"
)

var (
	ErrAddItemsToOrderCommandIsNotConstructed = errors.New(
		"AddItemsToOrderCommand must be created via NewAddItemsToOrderCommand constructor",
	)
)

// AddItemsToOrderCommand adds menu items to an open order.
type AddItemsToOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	items   []order.ItemRequest

	guard guard.ConstructorGuard
}

func NewAddItemsToOrderCommand(orderID int64, items []order.ItemRequest) (AddItemsToOrderCommand, error) {
	command := AddItemsToOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setItems(items),
	); err != nil {
		return AddItemsToOrderCommand{}, err
	}

	return command, nil
}

func (c AddItemsToOrderCommand) Validate() error {
	return c.guard.Validate(ErrAddItemsToOrderCommandIsNotConstructed)
}

func (c AddItemsToOrderCommand) OrderID() int64 {
	return c.orderID
}

// Items returns a copy of the requested items.
func (c AddItemsToOrderCommand) Items() []order.ItemRequest {
	return append([]order.ItemRequest(nil), c.items...)
}

func (c *AddItemsToOrderCommand) setOrderID(orderID int64) error {
	if err := kernel.ValidateID("order id", orderID); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddItemsToOrderCommand) setItems(items []order.ItemRequest) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}

	c.items = append([]order.ItemRequest(nil), items...)
	return nil
}
