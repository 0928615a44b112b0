package menurepo

import (
	"context"
	"errors"

	"dinesmart/internal/adapters/out/postgres/pgerrs"
	"dinesmart/internal/core/domain/model/menu"
	"dinesmart/internal/pkg/errs"

	"gorm.io/gorm"
)

const idSequence = "menu_item_id_seq"

// GormMenuRepository implements ports.MenuRepository using GORM.
type GormMenuRepository struct {
	db *gorm.DB
}

func NewGormMenuRepository(db *gorm.DB) *GormMenuRepository {
	return &GormMenuRepository{db: db}
}

// Migrate creates the menu_items table and its id sequence.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&MenuItemDTO{}); err != nil {
		return err
	}
	return db.Exec("CREATE SEQUENCE IF NOT EXISTS " + idSequence).Error
}

func (r *GormMenuRepository) NextID(ctx context.Context) (int64, error) {
	var id int64
	if err := r.db.WithContext(ctx).Raw("SELECT nextval(?)", idSequence).Scan(&id).Error; err != nil {
		return 0, err
	}
	return id, nil
}

// Add saves a new menu item.
func (r *GormMenuRepository) Add(ctx context.Context, item menu.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(item)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerrs.IsUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause("menu item name", item.Name(), err)
		}
		return err
	}
	return nil
}

// Update replaces every attribute of a stored menu item.
func (r *GormMenuRepository) Update(ctx context.Context, item menu.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(item)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&MenuItemDTO{}).Where("id = ?", dto.ID).
		Select("*").Omit("id").Updates(&dto)
	if result.Error != nil {
		if pgerrs.IsUniqueViolation(result.Error) {
			return errs.NewObjectAlreadyExistsErrorWithCause("menu item name", item.Name(), result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menu item", item.ID())
	}
	return nil
}

func (r *GormMenuRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&MenuItemDTO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menu item", id)
	}
	return nil
}

func (r *GormMenuRepository) Get(ctx context.Context, id int64) (menu.MenuItem, error) {
	return r.first(ctx, id, "id = ?", id)
}

func (r *GormMenuRepository) GetByName(ctx context.Context, name string) (menu.MenuItem, error) {
	return r.first(ctx, name, "name = ?", name)
}

// GetAll returns the catalog ordered by id.
func (r *GormMenuRepository) GetAll(ctx context.Context) ([]menu.MenuItem, error) {
	var dtos []MenuItemDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]menu.MenuItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *GormMenuRepository) first(ctx context.Context, key any, query string, args ...any) (menu.MenuItem, error) {
	var dto MenuItemDTO
	if err := r.db.WithContext(ctx).Where(query, args...).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return menu.MenuItem{}, errs.NewObjectNotFoundError("menu item", key)
		}
		return menu.MenuItem{}, err
	}
	return toDomain(dto)
}
