package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"dinesmart/internal/core/application/usecases/commands"
	"dinesmart/internal/core/application/usecases/queries"
	"dinesmart/internal/core/domain/model/order"
	"dinesmart/internal/generated/servers"
	"dinesmart/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var _ servers.ServerInterface = (*Server)(nil)

// Handlers groups the use cases the HTTP server dispatches to.
type Handlers struct {
	CreateOrder       commands.CreateOrderCommandHandler
	AddItemsToOrder   commands.AddItemsToOrderCommandHandler
	UpdateOrderStatus commands.UpdateOrderStatusCommandHandler
	DeleteOrder       commands.DeleteOrderCommandHandler
	AddMenuItem       commands.AddMenuItemCommandHandler
	UpdateMenuItem    commands.UpdateMenuItemCommandHandler
	DeleteMenuItem    commands.DeleteMenuItemCommandHandler

	GetOrder          queries.GetOrderQueryHandler
	ListOrders        queries.ListOrdersQueryHandler
	ListActiveOrders  queries.ListActiveOrdersQueryHandler
	GetMenuItem       queries.GetMenuItemQueryHandler
	GetMenuItemByName queries.GetMenuItemByNameQueryHandler
	ListMenuItems     queries.ListMenuItemsQueryHandler
	ListCategories    queries.ListCategoriesQueryHandler
	GetTable          queries.GetTableQueryHandler
	ListTables        queries.ListTablesQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http"),
	}
}

// ListOrders handles GET /api/v1/orders - retrieves all orders, optionally in one status.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	query := queries.NewListOrdersQuery()
	if params.Status != nil {
		status, err := order.ParseStatus(string(*params.Status))
		if err != nil {
			return s.fail(ctx, err)
		}
		if query, err = queries.NewListOrdersByStatusQuery(status); err != nil {
			return s.fail(ctx, err)
		}
	}

	orders, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// ListActiveOrders handles GET /api/v1/orders/active - retrieves orders that are not finished.
func (s *Server) ListActiveOrders(ctx echo.Context) error {
	orders, err := s.handlers.ListActiveOrders.Handle(ctx.Request().Context(), queries.NewListActiveOrdersQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID servers.OrderId) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(o))
}

// CreateOrder handles POST /api/v1/orders - opens an order for a table.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.NewOrder
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx)
	}

	items, err := s.resolveItems(ctx, body.Items)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(body.TableId, items)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrder(created))
}

// AddItemsToOrder handles POST /api/v1/orders/{orderId}/items.
func (s *Server) AddItemsToOrder(ctx echo.Context, orderID servers.OrderId) error {
	var body servers.NewItems
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx)
	}

	items, err := s.resolveItems(ctx, body.Items)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAddItemsToOrderCommand(orderID, items)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.handlers.AddItemsToOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(updated))
}

// UpdateOrderStatus handles PUT /api/v1/orders/{orderId}/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderID servers.OrderId) error {
	var body servers.StatusUpdate
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx)
	}

	status, err := order.ParseStatus(string(body.Status))
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.handlers.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(updated))
}

// DeleteOrder handles DELETE /api/v1/orders/{orderId}. Only Paid and
// Cancelled orders can be deleted.
func (s *Server) DeleteOrder(ctx echo.Context, orderID servers.OrderId) error {
	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// resolveItems looks every requested menu item up in the catalog. Unknown
// ids fail with not found, items taken out of service cannot be ordered.
func (s *Server) resolveItems(ctx echo.Context, requested []servers.ItemRequest) ([]order.ItemRequest, error) {
	items := make([]order.ItemRequest, 0, len(requested))
	for _, r := range requested {
		query, err := queries.NewGetMenuItemQuery(r.MenuItemId)
		if err != nil {
			return nil, err
		}

		item, err := s.handlers.GetMenuItem.Handle(ctx.Request().Context(), query)
		if err != nil {
			return nil, err
		}
		if !item.IsAvailable() {
			return nil, errs.NewInvalidStateError(fmt.Sprintf("order %q", item.Name()), item.Availability())
		}

		items = append(items, order.ItemRequest{MenuItem: item, Quantity: r.Quantity})
	}
	return items, nil
}
