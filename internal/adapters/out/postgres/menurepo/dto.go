// Package menurepo persists the menu catalog with GORM.
package menurepo

import (
	"dinesmart/internal/core/domain/model/menu"
)

// MenuItemDTO represents a row of the menu_items table.
type MenuItemDTO struct {
	ID   int64       `gorm:"primaryKey;autoIncrement:false"`
	Name string      `gorm:"not null;uniqueIndex"`
	Item ItemColumns `gorm:"embedded"`
}

func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// ItemColumns holds the menu item attributes besides id and name. Order
// lines embed it to keep the item as it was when it was ordered.
type ItemColumns struct {
	Description  string
	Price        float64 `gorm:"not null"`
	CategoryKind int     `gorm:"not null"`
	CategoryID   int64   `gorm:"not null"`
	CategoryName string  `gorm:"not null"`
	CategoryFlag bool
	Available    bool
}

// ColumnsFromDomain flattens a menu item, including its category variant.
func ColumnsFromDomain(item menu.MenuItem) (ItemColumns, error) {
	flag, err := menu.CategoryFlag(item.Category())
	if err != nil {
		return ItemColumns{}, err
	}

	return ItemColumns{
		Description:  item.Description(),
		Price:        item.Price(),
		CategoryKind: int(item.Category().Kind()),
		CategoryID:   item.Category().ID(),
		CategoryName: item.Category().Name(),
		CategoryFlag: flag,
		Available:    item.IsAvailable(),
	}, nil
}

// ToDomain rebuilds the menu item with the given id and name from its columns.
func (c ItemColumns) ToDomain(id int64, name string) (menu.MenuItem, error) {
	category, err := menu.NewCategory(menu.CategoryKind(c.CategoryKind), c.CategoryID, c.CategoryName, c.CategoryFlag)
	if err != nil {
		return menu.MenuItem{}, err
	}

	return menu.NewMenuItem(id, name, c.Description, c.Price, category, c.Available)
}

func fromDomain(item menu.MenuItem) (MenuItemDTO, error) {
	columns, err := ColumnsFromDomain(item)
	if err != nil {
		return MenuItemDTO{}, err
	}
	return MenuItemDTO{ID: item.ID(), Name: item.Name(), Item: columns}, nil
}

func toDomain(dto MenuItemDTO) (menu.MenuItem, error) {
	return dto.Item.ToDomain(dto.ID, dto.Name)
}
