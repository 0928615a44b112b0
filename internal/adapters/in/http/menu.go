package http

import (
	"net/http"

	"dinesmart/internal/core/application/usecases/commands"
	"dinesmart/internal/core/application/usecases/queries"
	"dinesmart/internal/core/domain/model/menu"
	"dinesmart/internal/generated/servers"
	"dinesmart/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ListMenuItems handles GET /api/v1/menu/items. Filtering by category needs
// both the kind and the id.
func (s *Server) ListMenuItems(ctx echo.Context, params servers.ListMenuItemsParams) error {
	query := queries.NewListMenuItemsQuery()

	switch {
	case params.CategoryKind != nil && params.CategoryId != nil:
		kind, err := menu.ParseCategoryKind(string(*params.CategoryKind))
		if err != nil {
			return s.fail(ctx, err)
		}
		if query, err = queries.NewListMenuItemsByCategoryQuery(kind, *params.CategoryId); err != nil {
			return s.fail(ctx, err)
		}
	case params.CategoryKind != nil:
		return s.fail(ctx, errs.NewValueIsRequiredError("category_id"))
	case params.CategoryId != nil:
		return s.fail(ctx, errs.NewValueIsRequiredError("category_kind"))
	}

	if params.AvailableOnly != nil && *params.AvailableOnly {
		query = query.AvailableOnly()
	}

	items, err := s.handlers.ListMenuItems.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.MenuItem, len(items))
	for i, item := range items {
		response[i] = toMenuItem(item)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetMenuItem handles GET /api/v1/menu/items/{itemId}.
func (s *Server) GetMenuItem(ctx echo.Context, itemID servers.ItemId) error {
	query, err := queries.NewGetMenuItemQuery(itemID)
	if err != nil {
		return s.fail(ctx, err)
	}

	item, err := s.handlers.GetMenuItem.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toMenuItem(item))
}

// GetMenuItemByName handles GET /api/v1/menu/lookup?name=.
func (s *Server) GetMenuItemByName(ctx echo.Context, params servers.GetMenuItemByNameParams) error {
	query, err := queries.NewGetMenuItemByNameQuery(params.Name)
	if err != nil {
		return s.fail(ctx, err)
	}

	item, err := s.handlers.GetMenuItemByName.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toMenuItem(item))
}

// ListCategories handles GET /api/v1/menu/categories.
func (s *Server) ListCategories(ctx echo.Context) error {
	categories, err := s.handlers.ListCategories.Handle(ctx.Request().Context(), queries.NewListCategoriesQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Category, len(categories))
	for i, category := range categories {
		response[i] = toCategory(category)
	}
	return ctx.JSON(http.StatusOK, response)
}

// AddMenuItem handles POST /api/v1/menu/items. Items are available unless
// the request says otherwise.
func (s *Server) AddMenuItem(ctx echo.Context) error {
	var body servers.NewMenuItem
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx)
	}

	category, err := fromCategory(body.Category)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAddMenuItemCommand(
		body.Name, deref(body.Description, ""), body.Price, category, deref(body.Available, true),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.handlers.AddMenuItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toMenuItem(created))
}

// UpdateMenuItem handles PUT /api/v1/menu/items/{itemId}.
func (s *Server) UpdateMenuItem(ctx echo.Context, itemID servers.ItemId) error {
	var body servers.NewMenuItem
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx)
	}

	category, err := fromCategory(body.Category)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateMenuItemCommand(
		itemID, body.Name, deref(body.Description, ""), body.Price, category, deref(body.Available, true),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.handlers.UpdateMenuItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toMenuItem(updated))
}

// DeleteMenuItem handles DELETE /api/v1/menu/items/{itemId}. Items on an
// active order stay on the menu.
func (s *Server) DeleteMenuItem(ctx echo.Context, itemID servers.ItemId) error {
	cmd, err := commands.NewDeleteMenuItemCommand(itemID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.DeleteMenuItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
