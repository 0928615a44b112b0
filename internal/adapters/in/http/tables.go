package http

import (
	"net/http"

	"dinesmart/internal/core/application/usecases/queries"
	"dinesmart/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ListTables handles GET /api/v1/tables. A table is occupied while an active
// order is placed at it.
func (s *Server) ListTables(ctx echo.Context, params servers.ListTablesParams) error {
	query := queries.NewListTablesQuery()
	if deref(params.FreeOnly, false) {
		query = query.FreeOnly()
	}

	tables, err := s.handlers.ListTables.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Table, len(tables))
	for i, t := range tables {
		response[i] = toTable(t)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetTable handles GET /api/v1/tables/{tableId}.
func (s *Server) GetTable(ctx echo.Context, tableID servers.TableId) error {
	query, err := queries.NewGetTableQuery(tableID)
	if err != nil {
		return s.fail(ctx, err)
	}

	t, err := s.handlers.GetTable.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toTable(t))
}
