package queries_test

import (
	"testing"

	"dinesmart/internal/core/application/usecases/queries"
	"dinesmart/internal/core/domain/model/menu"
	"dinesmart/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMenuItemQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	burger := newItem(t, 1, "Burger", newCategory(t, menu.Food, 1, "Mains"), true)
	repo := new(MockMenuRepository)
	repo.On("Get", ctx, int64(1)).Return(burger, nil).Once()
	repo.On("Get", ctx, int64(2)).Return(menu.MenuItem{}, errs.NewObjectNotFoundError("menu item", int64(2))).Once()
	handler := queries.NewGetMenuItemQueryHandler(repoFactory{menu: repo})

	query, _ := queries.NewGetMenuItemQuery(1)
	got, err := handler.Handle(ctx, query)
	require.NoError(t, err)
	assert.True(t, burger.IsEqual(got))

	query, _ = queries.NewGetMenuItemQuery(2)
	_, err = handler.Handle(ctx, query)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGetMenuItemByNameQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	burger := newItem(t, 1, "Burger", newCategory(t, menu.Food, 1, "Mains"), true)
	repo := new(MockMenuRepository)
	repo.On("GetByName", ctx, "Burger").Return(burger, nil).Once()

	query, err := queries.NewGetMenuItemByNameQuery("  Burger ")
	require.NoError(t, err)
	got, err := queries.NewGetMenuItemByNameQueryHandler(repoFactory{menu: repo}).Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, "Burger", got.Name())

	_, err = queries.NewGetMenuItemByNameQuery(" ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestListMenuItemsQueryHandler_Handle(t *testing.T) {
	mains := newCategory(t, menu.Food, 1, "Mains")
	drinks := newCategory(t, menu.Beverage, 1, "Drinks")
	catalog := []menu.MenuItem{
		newItem(t, 3, "Soda", drinks, true),
		newItem(t, 1, "Burger", mains, true),
		newItem(t, 2, "Steak", mains, false),
	}

	names := func(items []menu.MenuItem) []string {
		out := make([]string, 0, len(items))
		for _, item := range items {
			out = append(out, item.Name())
		}
		return out
	}

	t.Run("should list all items ordered by id", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockMenuRepository)
		repo.On("GetAll", ctx).Return(catalog, nil).Once()

		items, err := queries.NewListMenuItemsQueryHandler(repoFactory{menu: repo}).
			Handle(ctx, queries.NewListMenuItemsQuery())

		require.NoError(t, err)
		assert.Equal(t, []string{"Burger", "Steak", "Soda"}, names(items))
	})

	t.Run("should filter by category kind and id", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockMenuRepository)
		repo.On("GetAll", ctx).Return(catalog, nil).Once()

		query, err := queries.NewListMenuItemsByCategoryQuery(menu.Food, 1)
		require.NoError(t, err)
		items, err := queries.NewListMenuItemsQueryHandler(repoFactory{menu: repo}).Handle(ctx, query)

		require.NoError(t, err)
		assert.Equal(t, []string{"Burger", "Steak"}, names(items))
	})

	t.Run("should skip unavailable items on request", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockMenuRepository)
		repo.On("GetAll", ctx).Return(catalog, nil).Once()

		query, _ := queries.NewListMenuItemsByCategoryQuery(menu.Food, 1)
		items, err := queries.NewListMenuItemsQueryHandler(repoFactory{menu: repo}).Handle(ctx, query.AvailableOnly())

		require.NoError(t, err)
		assert.Equal(t, []string{"Burger"}, names(items))
	})

	t.Run("should reject unknown category kind", func(t *testing.T) {
		_, err := queries.NewListMenuItemsByCategoryQuery(menu.UnknownKind, 1)

		require.Error(t, err)
	})
}

func TestListCategoriesQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	mains := newCategory(t, menu.Food, 2, "Mains")
	starters := newCategory(t, menu.Food, 1, "Starters")
	drinks := newCategory(t, menu.Beverage, 1, "Drinks")
	repo := new(MockMenuRepository)
	repo.On("GetAll", ctx).Return([]menu.MenuItem{
		newItem(t, 1, "Soda", drinks, true),
		newItem(t, 2, "Burger", mains, true),
		newItem(t, 3, "Steak", mains, true),
		newItem(t, 4, "Soup", starters, true),
	}, nil).Once()

	categories, err := queries.NewListCategoriesQueryHandler(repoFactory{menu: repo}).
		Handle(ctx, queries.NewListCategoriesQuery())

	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "Starters", categories[0].Name())
	assert.Equal(t, "Mains", categories[1].Name())
	assert.Equal(t, "Drinks", categories[2].Name())
}
