package queries

import (
	"errors"
	"strings"

	"dinesmart/internal/core/domain/model/kernel"
	"dinesmart/internal/core/domain/model/menu"
	"dinesmart/internal/pkg/errs"
	"dinesmart/internal/pkg/guard"
)

var (
	ErrGetMenuItemQueryIsNotConstructed = errors.New(
		"GetMenuItemQuery must be created via NewGetMenuItemQuery constructor",
	)
	ErrGetMenuItemByNameQueryIsNotConstructed = errors.New(
		"GetMenuItemByNameQuery must be created via NewGetMenuItemByNameQuery constructor",
	)
	ErrListMenuItemsQueryIsNotConstructed = errors.New(
		"ListMenuItemsQuery must be created via NewListMenuItemsQuery constructor",
	)
	ErrListCategoriesQueryIsNotConstructed = errors.New(
		"ListCategoriesQuery must be created via NewListCategoriesQuery constructor",
	)
)

// GetMenuItemQuery looks a menu item up by id. It is also the catalog lookup
// that resolves item references before an order is created or extended.
type GetMenuItemQuery struct {
	menuItemID int64

	guard guard.ConstructorGuard
}

func NewGetMenuItemQuery(menuItemID int64) (GetMenuItemQuery, error) {
	if err := kernel.ValidateID("menu item id", menuItemID); err != nil {
		return GetMenuItemQuery{}, err
	}

	return GetMenuItemQuery{menuItemID: menuItemID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetMenuItemQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuItemQueryIsNotConstructed)
}

func (q GetMenuItemQuery) MenuItemID() int64 {
	return q.menuItemID
}

// GetMenuItemByNameQuery looks a menu item up by its exact name.
type GetMenuItemByNameQuery struct {
	name string

	guard guard.ConstructorGuard
}

func NewGetMenuItemByNameQuery(name string) (GetMenuItemByNameQuery, error) {
	if err := kernel.ValidateName("menu item name", name); err != nil {
		return GetMenuItemByNameQuery{}, err
	}

	return GetMenuItemByNameQuery{name: strings.TrimSpace(name), guard: guard.NewConstructorGuard()}, nil
}

func (q GetMenuItemByNameQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuItemByNameQueryIsNotConstructed)
}

func (q GetMenuItemByNameQuery) Name() string {
	return q.name
}

// ListMenuItemsQuery lists the catalog, optionally restricted to one category
// and to available items.
//
// Example:
//
//	all := NewListMenuItemsQuery()
//	drinks, err := NewListMenuItemsByCategoryQuery(menu.Beverage, 2)
type ListMenuItemsQuery struct {
	categoryKind  menu.CategoryKind
	categoryID    int64
	byCategory    bool
	availableOnly bool

	guard guard.ConstructorGuard
}

func NewListMenuItemsQuery() ListMenuItemsQuery {
	return ListMenuItemsQuery{guard: guard.NewConstructorGuard()}
}

func NewListMenuItemsByCategoryQuery(kind menu.CategoryKind, categoryID int64) (ListMenuItemsQuery, error) {
	if kind != menu.Food && kind != menu.Beverage {
		return ListMenuItemsQuery{}, errs.NewValueIsInvalidError("category kind")
	}
	if err := kernel.ValidateID("category id", categoryID); err != nil {
		return ListMenuItemsQuery{}, err
	}

	return ListMenuItemsQuery{
		categoryKind: kind,
		categoryID:   categoryID,
		byCategory:   true,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// AvailableOnly returns a copy of the query that skips unavailable items.
func (q ListMenuItemsQuery) AvailableOnly() ListMenuItemsQuery {
	q.availableOnly = true
	return q
}

func (q ListMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrListMenuItemsQueryIsNotConstructed)
}

func (q ListMenuItemsQuery) matches(item menu.MenuItem) bool {
	if q.availableOnly && !item.IsAvailable() {
		return false
	}
	return !q.byCategory || item.BelongsTo(q.categoryKind, q.categoryID)
}

// ListCategoriesQuery lists the distinct categories used by the catalog.
type ListCategoriesQuery struct {
	guard guard.ConstructorGuard
}

func NewListCategoriesQuery() ListCategoriesQuery {
	return ListCategoriesQuery{guard: guard.NewConstructorGuard()}
}

func (q ListCategoriesQuery) Validate() error {
	return q.guard.Validate(ErrListCategoriesQueryIsNotConstructed)
}
