package memory

import (
	"context"

	"dinesmart/internal/core/domain/model/menu"
	"dinesmart/internal/pkg/errs"
)

// MenuRepository implements ports.MenuRepository on top of a UnitOfWork.
type MenuRepository struct {
	uow *UnitOfWork
}

func (r *MenuRepository) NextID(_ context.Context) (int64, error) {
	return r.uow.store.nextMenuItemID(), nil
}

func (r *MenuRepository) Add(_ context.Context, item menu.MenuItem) error {
	return r.write(menuInsert, item)
}

func (r *MenuRepository) Update(_ context.Context, item menu.MenuItem) error {
	return r.write(menuUpdate, item)
}

func (r *MenuRepository) Delete(_ context.Context, id int64) error {
	if _, ok := r.uow.lookupMenuItem(id); !ok {
		return errs.NewObjectNotFoundError("menu item", id)
	}
	return r.uow.writeMenu(menuWrite{kind: menuDelete, id: id})
}

func (r *MenuRepository) Get(_ context.Context, id int64) (menu.MenuItem, error) {
	item, ok := r.uow.lookupMenuItem(id)
	if !ok {
		return menu.MenuItem{}, errs.NewObjectNotFoundError("menu item", id)
	}
	return item, nil
}

func (r *MenuRepository) GetByName(_ context.Context, name string) (menu.MenuItem, error) {
	for _, item := range r.uow.menuView() {
		if item.Name() == name {
			return item, nil
		}
	}
	return menu.MenuItem{}, errs.NewObjectNotFoundError("menu item", name)
}

func (r *MenuRepository) GetAll(_ context.Context) ([]menu.MenuItem, error) {
	return sortedItems(r.uow.menuView()), nil
}

// write validates against the transaction's view so that conflicts surface
// before Commit; Commit checks them again against the committed state.
func (r *MenuRepository) write(kind menuWriteKind, item menu.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	w := menuWrite{kind: kind, id: item.ID(), item: item}
	if err := applyMenuWrite(r.uow.menuView(), w); err != nil {
		return err
	}
	return r.uow.writeMenu(w)
}
