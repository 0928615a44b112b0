package http

import (
	"dinesmart/internal/core/domain/model/menu"
	"dinesmart/internal/core/domain/model/order"
	"dinesmart/internal/core/domain/model/table"
	"dinesmart/internal/generated/servers"
)

func toOrders(orders []*order.Order) []servers.Order {
	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = toOrder(o)
	}
	return response
}

func toOrder(o *order.Order) servers.Order {
	lines := o.Lines()
	response := servers.Order{
		Id:        o.ID(),
		TableId:   o.TableID(),
		CreatedAt: o.CreatedAt(),
		Status:    servers.OrderStatus(o.Status().String()),
		Total:     o.Total(),
		Version:   o.Version(),
		Lines:     make([]servers.OrderLine, len(lines)),
	}

	for i, line := range lines {
		response.Lines[i] = servers.OrderLine{
			MenuItem: toMenuItem(line.MenuItem()),
			Quantity: line.Quantity(),
			Subtotal: line.Subtotal(),
		}
	}

	return response
}

func toMenuItem(item menu.MenuItem) servers.MenuItem {
	return servers.MenuItem{
		Id:          item.ID(),
		Name:        item.Name(),
		Description: item.Description(),
		Price:       item.Price(),
		Available:   item.IsAvailable(),
		Category:    toCategory(item.Category()),
	}
}

func toCategory(c menu.Category) servers.Category {
	response := servers.Category{
		Id:   c.ID(),
		Kind: servers.CategoryKind(c.Kind().String()),
		Name: c.Name(),
	}

	_, _ = menu.MatchCategory(c,
		func(food menu.FoodCategory) struct{} {
			vegan := food.IsVeganFriendly()
			response.VeganFriendly = &vegan
			return struct{}{}
		},
		func(beverage menu.BeverageCategory) struct{} {
			alcohol := beverage.HasAlcohol()
			response.Alcohol = &alcohol
			return struct{}{}
		},
	)

	return response
}

// fromCategory builds a domain category. The flag that does not belong to the
// kind is ignored.
func fromCategory(c servers.Category) (menu.Category, error) {
	kind, err := menu.ParseCategoryKind(string(c.Kind))
	if err != nil {
		return nil, err
	}

	flag := c.VeganFriendly
	if kind == menu.Beverage {
		flag = c.Alcohol
	}

	return menu.NewCategory(kind, c.Id, c.Name, deref(flag, false))
}

func deref[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}

func toTable(t table.Table) servers.Table {
	response := servers.Table{
		Id:       t.ID(),
		Capacity: t.Capacity(),
		Occupied: t.IsOccupied(),
	}
	if orderID, ok := t.CurrentOrder(); ok {
		response.CurrentOrderId = &orderID
	}
	return response
}
