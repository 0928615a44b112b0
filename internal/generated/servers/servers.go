// Package servers binds the HTTP API described by api/openapi.yml to echo.
// It follows the layout of oapi-codegen's echo server output: transport
// types, ServerInterface, a wrapper that binds path and query parameters
// through the oapi-codegen runtime, and RegisterHandlers. It is maintained by
// hand; routes_test.go keeps it in step with the document.
package servers

import (
	"fmt"
	"net/http"
	"time"

	"dinesmart/api"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Defines values for CategoryKind.
const (
	Beverage CategoryKind = "beverage"
	Food     CategoryKind = "food"
)

// Defines values for OrderStatus.
const (
	Cancelled     OrderStatus = "Cancelled"
	Paid          OrderStatus = "Paid"
	Pending       OrderStatus = "Pending"
	Preparing     OrderStatus = "Preparing"
	ReadyForServe OrderStatus = "ReadyForServe"
	Served        OrderStatus = "Served"
)

// Category defines model for Category.
type Category struct {
	// Alcohol Beverage categories only
	Alcohol *bool        `json:"alcohol,omitempty"`
	Id      int64        `json:"id"`
	Kind    CategoryKind `json:"kind"`
	Name    string       `json:"name"`

	// VeganFriendly Food categories only
	VeganFriendly *bool `json:"vegan_friendly,omitempty"`
}

// CategoryKind defines model for CategoryKind.
type CategoryKind string

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ItemRequest defines model for ItemRequest.
type ItemRequest struct {
	MenuItemId int64 `json:"menu_item_id"`
	Quantity   int   `json:"quantity"`
}

// MenuItem defines model for MenuItem.
type MenuItem struct {
	Available   bool     `json:"available"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
	Id          int64    `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
}

// NewItems defines model for NewItems.
type NewItems struct {
	Items []ItemRequest `json:"items"`
}

// NewMenuItem defines model for NewMenuItem.
type NewMenuItem struct {
	Available   *bool    `json:"available,omitempty"`
	Category    Category `json:"category"`
	Description *string  `json:"description,omitempty"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	Items   []ItemRequest `json:"items"`
	TableId int64         `json:"table_id"`
}

// Order defines model for Order.
type Order struct {
	CreatedAt time.Time   `json:"created_at"`
	Id        int64       `json:"id"`
	Lines     []OrderLine `json:"lines"`
	Status    OrderStatus `json:"status"`
	TableId   int64       `json:"table_id"`
	Total     float64     `json:"total"`
	Version   int         `json:"version"`
}

// OrderLine defines model for OrderLine.
type OrderLine struct {
	MenuItem MenuItem `json:"menu_item"`
	Quantity int      `json:"quantity"`
	Subtotal float64  `json:"subtotal"`
}

// OrderStatus defines model for OrderStatus.
type OrderStatus string

// Table defines model for Table.
type Table struct {
	Capacity int `json:"capacity"`

	// CurrentOrderId Oldest active order at the table, present while occupied
	CurrentOrderId *int64 `json:"current_order_id,omitempty"`
	Id             int64  `json:"id"`
	Occupied       bool   `json:"occupied"`
}

// StatusUpdate defines model for StatusUpdate.
type StatusUpdate struct {
	Status OrderStatus `json:"status"`
}

// ItemId defines model for ItemId.
type ItemId = int64

// OrderId defines model for OrderId.
type OrderId = int64

// TableId defines model for TableId.
type TableId = int64

// ListMenuItemsParams defines parameters for ListMenuItems.
type ListMenuItemsParams struct {
	CategoryKind  *CategoryKind `form:"category_kind,omitempty" json:"category_kind,omitempty"`
	CategoryId    *int64        `form:"category_id,omitempty" json:"category_id,omitempty"`
	AvailableOnly *bool         `form:"available_only,omitempty" json:"available_only,omitempty"`
}

// GetMenuItemByNameParams defines parameters for GetMenuItemByName.
type GetMenuItemByNameParams struct {
	Name string `form:"name" json:"name"`
}

// ListOrdersParams defines parameters for ListOrders.
type ListOrdersParams struct {
	Status *OrderStatus `form:"status,omitempty" json:"status,omitempty"`
}

// ListTablesParams defines parameters for ListTables.
type ListTablesParams struct {
	FreeOnly *bool `form:"free_only,omitempty" json:"free_only,omitempty"`
}

// AddMenuItemJSONRequestBody defines body for AddMenuItem for application/json ContentType.
type AddMenuItemJSONRequestBody = NewMenuItem

// UpdateMenuItemJSONRequestBody defines body for UpdateMenuItem for application/json ContentType.
type UpdateMenuItemJSONRequestBody = NewMenuItem

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = NewOrder

// AddItemsToOrderJSONRequestBody defines body for AddItemsToOrder for application/json ContentType.
type AddItemsToOrderJSONRequestBody = NewItems

// UpdateOrderStatusJSONRequestBody defines body for UpdateOrderStatus for application/json ContentType.
type UpdateOrderStatusJSONRequestBody = StatusUpdate

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List the categories used by the menu
	// (GET /api/v1/menu/categories)
	ListCategories(ctx echo.Context) error
	// List menu items
	// (GET /api/v1/menu/items)
	ListMenuItems(ctx echo.Context, params ListMenuItemsParams) error
	// Put a new item on the menu
	// (POST /api/v1/menu/items)
	AddMenuItem(ctx echo.Context) error
	// Take an item off the menu
	// (DELETE /api/v1/menu/items/{itemId})
	DeleteMenuItem(ctx echo.Context, itemId ItemId) error
	// Get a menu item
	// (GET /api/v1/menu/items/{itemId})
	GetMenuItem(ctx echo.Context, itemId ItemId) error
	// Replace a menu item
	// (PUT /api/v1/menu/items/{itemId})
	UpdateMenuItem(ctx echo.Context, itemId ItemId) error
	// Find a menu item by its exact name
	// (GET /api/v1/menu/lookup)
	GetMenuItemByName(ctx echo.Context, params GetMenuItemByNameParams) error
	// List orders
	// (GET /api/v1/orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	// Open an order for a table
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error
	// List orders that are neither paid nor cancelled
	// (GET /api/v1/orders/active)
	ListActiveOrders(ctx echo.Context) error
	// Delete a paid or cancelled order
	// (DELETE /api/v1/orders/{orderId})
	DeleteOrder(ctx echo.Context, orderId OrderId) error
	// Get an order
	// (GET /api/v1/orders/{orderId})
	GetOrder(ctx echo.Context, orderId OrderId) error
	// Add items to a pending or preparing order
	// (POST /api/v1/orders/{orderId}/items)
	AddItemsToOrder(ctx echo.Context, orderId OrderId) error
	// Move an order to another status
	// (PUT /api/v1/orders/{orderId}/status)
	UpdateOrderStatus(ctx echo.Context, orderId OrderId) error
	// List the tables of the floor with their occupancy
	// (GET /api/v1/tables)
	ListTables(ctx echo.Context, params ListTablesParams) error
	// Get a table with its occupancy
	// (GET /api/v1/tables/{tableId})
	GetTable(ctx echo.Context, tableId TableId) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// ListCategories converts echo context to params.
func (w *ServerInterfaceWrapper) ListCategories(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListCategories(ctx)
	return err
}

// ListMenuItems converts echo context to params.
func (w *ServerInterfaceWrapper) ListMenuItems(ctx echo.Context) error {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params ListMenuItemsParams
	// ------------- Optional query parameter "category_kind" -------------

	err = runtime.BindQueryParameter("form", true, false, "category_kind", ctx.QueryParams(), &params.CategoryKind)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter category_kind: %s", err))
	}

	// ------------- Optional query parameter "category_id" -------------

	err = runtime.BindQueryParameter("form", true, false, "category_id", ctx.QueryParams(), &params.CategoryId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter category_id: %s", err))
	}

	// ------------- Optional query parameter "available_only" -------------

	err = runtime.BindQueryParameter("form", true, false, "available_only", ctx.QueryParams(), &params.AvailableOnly)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter available_only: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListMenuItems(ctx, params)
	return err
}

// AddMenuItem converts echo context to params.
func (w *ServerInterfaceWrapper) AddMenuItem(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.AddMenuItem(ctx)
	return err
}

// DeleteMenuItem converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteMenuItem(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "itemId" -------------
	var itemId ItemId

	err = runtime.BindStyledParameterWithOptions("simple", "itemId", ctx.Param("itemId"), &itemId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter itemId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DeleteMenuItem(ctx, itemId)
	return err
}

// GetMenuItem converts echo context to params.
func (w *ServerInterfaceWrapper) GetMenuItem(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "itemId" -------------
	var itemId ItemId

	err = runtime.BindStyledParameterWithOptions("simple", "itemId", ctx.Param("itemId"), &itemId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter itemId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetMenuItem(ctx, itemId)
	return err
}

// UpdateMenuItem converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateMenuItem(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "itemId" -------------
	var itemId ItemId

	err = runtime.BindStyledParameterWithOptions("simple", "itemId", ctx.Param("itemId"), &itemId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter itemId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateMenuItem(ctx, itemId)
	return err
}

// GetMenuItemByName converts echo context to params.
func (w *ServerInterfaceWrapper) GetMenuItemByName(ctx echo.Context) error {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params GetMenuItemByNameParams
	// ------------- Required query parameter "name" -------------

	err = runtime.BindQueryParameter("form", true, true, "name", ctx.QueryParams(), &params.Name)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter name: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetMenuItemByName(ctx, params)
	return err
}

// ListOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params ListOrdersParams
	// ------------- Optional query parameter "status" -------------

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListOrders(ctx, params)
	return err
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateOrder(ctx)
	return err
}

// ListActiveOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListActiveOrders(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListActiveOrders(ctx)
	return err
}

// DeleteOrder converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DeleteOrder(ctx, orderId)
	return err
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetOrder(ctx, orderId)
	return err
}

// AddItemsToOrder converts echo context to params.
func (w *ServerInterfaceWrapper) AddItemsToOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.AddItemsToOrder(ctx, orderId)
	return err
}

// UpdateOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateOrderStatus(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateOrderStatus(ctx, orderId)
	return err
}

// ListTables converts echo context to params.
func (w *ServerInterfaceWrapper) ListTables(ctx echo.Context) error {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params ListTablesParams
	// ------------- Optional query parameter "free_only" -------------

	err = runtime.BindQueryParameter("form", true, false, "free_only", ctx.QueryParams(), &params.FreeOnly)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter free_only: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListTables(ctx, params)
	return err
}

// GetTable converts echo context to params.
func (w *ServerInterfaceWrapper) GetTable(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "tableId" -------------
	var tableId TableId

	err = runtime.BindStyledParameterWithOptions("simple", "tableId", ctx.Param("tableId"), &tableId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter tableId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetTable(ctx, tableId)
	return err
}

// EchoRouter is an interface that wraps the methods of echo.Echo and echo.Group.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// Registers handlers, and prepends BaseURL to the paths, so that the paths
// can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {

	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/menu/categories", wrapper.ListCategories)
	router.GET(baseURL+"/api/v1/menu/items", wrapper.ListMenuItems)
	router.POST(baseURL+"/api/v1/menu/items", wrapper.AddMenuItem)
	router.DELETE(baseURL+"/api/v1/menu/items/:itemId", wrapper.DeleteMenuItem)
	router.GET(baseURL+"/api/v1/menu/items/:itemId", wrapper.GetMenuItem)
	router.PUT(baseURL+"/api/v1/menu/items/:itemId", wrapper.UpdateMenuItem)
	router.GET(baseURL+"/api/v1/menu/lookup", wrapper.GetMenuItemByName)
	router.GET(baseURL+"/api/v1/orders", wrapper.ListOrders)
	router.POST(baseURL+"/api/v1/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/api/v1/orders/active", wrapper.ListActiveOrders)
	router.DELETE(baseURL+"/api/v1/orders/:orderId", wrapper.DeleteOrder)
	router.GET(baseURL+"/api/v1/orders/:orderId", wrapper.GetOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/items", wrapper.AddItemsToOrder)
	router.PUT(baseURL+"/api/v1/orders/:orderId/status", wrapper.UpdateOrderStatus)
	router.GET(baseURL+"/api/v1/tables", wrapper.ListTables)
	router.GET(baseURL+"/api/v1/tables/:tableId", wrapper.GetTable)

}

// GetSwagger parses the embedded API document. Each call returns a fresh
// document, so callers may modify it.
func GetSwagger() (swagger *openapi3.T, err error) {
	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = true
	swagger, err = loader.LoadFromData(api.Spec)
	if err != nil {
		return nil, fmt.Errorf("error loading Swagger: %w", err)
	}
	return swagger, nil
}
