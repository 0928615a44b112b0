package queries

import (
	"cmp"
	"context"
	"slices"

	"dinesmart/internal/core/domain/model/menu"
)

type GetMenuItemQueryHandler struct {
	repos MenuRepoFactory
}

func NewGetMenuItemQueryHandler(repos MenuRepoFactory) GetMenuItemQueryHandler {
	return GetMenuItemQueryHandler{repos: repos}
}

func (h GetMenuItemQueryHandler) Handle(ctx context.Context, query GetMenuItemQuery) (menu.MenuItem, error) {
	if err := query.Validate(); err != nil {
		return menu.MenuItem{}, err
	}

	return h.repos.MenuRepository().Get(ctx, query.MenuItemID())
}

type GetMenuItemByNameQueryHandler struct {
	repos MenuRepoFactory
}

func NewGetMenuItemByNameQueryHandler(repos MenuRepoFactory) GetMenuItemByNameQueryHandler {
	return GetMenuItemByNameQueryHandler{repos: repos}
}

func (h GetMenuItemByNameQueryHandler) Handle(
	ctx context.Context,
	query GetMenuItemByNameQuery,
) (menu.MenuItem, error) {
	if err := query.Validate(); err != nil {
		return menu.MenuItem{}, err
	}

	return h.repos.MenuRepository().GetByName(ctx, query.Name())
}

// ListMenuItemsQueryHandler returns matching menu items ordered by id.
type ListMenuItemsQueryHandler struct {
	repos MenuRepoFactory
}

func NewListMenuItemsQueryHandler(repos MenuRepoFactory) ListMenuItemsQueryHandler {
	return ListMenuItemsQueryHandler{repos: repos}
}

func (h ListMenuItemsQueryHandler) Handle(ctx context.Context, query ListMenuItemsQuery) ([]menu.MenuItem, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items, err := h.repos.MenuRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	matching := make([]menu.MenuItem, 0, len(items))
	for _, item := range items {
		if query.matches(item) {
			matching = append(matching, item)
		}
	}

	slices.SortFunc(matching, func(a, b menu.MenuItem) int {
		return cmp.Compare(a.ID(), b.ID())
	})
	return matching, nil
}

// ListCategoriesQueryHandler returns every distinct category of the catalog,
// food before beverages, then by category id.
type ListCategoriesQueryHandler struct {
	repos MenuRepoFactory
}

func NewListCategoriesQueryHandler(repos MenuRepoFactory) ListCategoriesQueryHandler {
	return ListCategoriesQueryHandler{repos: repos}
}

func (h ListCategoriesQueryHandler) Handle(ctx context.Context, query ListCategoriesQuery) ([]menu.Category, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items, err := h.repos.MenuRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	categories := make([]menu.Category, 0)
	for _, item := range items {
		c := item.Category()
		if !slices.ContainsFunc(categories, func(known menu.Category) bool {
			return menu.SameCategory(known, c)
		}) {
			categories = append(categories, c)
		}
	}

	slices.SortFunc(categories, func(a, b menu.Category) int {
		return cmp.Or(
			cmp.Compare(a.Kind(), b.Kind()),
			cmp.Compare(a.ID(), b.ID()),
			cmp.Compare(a.Name(), b.Name()),
		)
	})
	return categories, nil
}
