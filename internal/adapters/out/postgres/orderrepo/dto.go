// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"dinesmart/internal/adapters/out/postgres/menurepo"
	"dinesmart/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status and creation time are indexed for the active and purge listings.
type OrderDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement:false"`
	TableID   int64     `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null;index;autoCreateTime:false"`
	Status    int       `gorm:"not null;index"`
	Total     float64   `gorm:"not null"`
	Version   int       `gorm:"not null"`
	Lines     []LineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO is one order line with the menu item as it was when ordered.
// Lines are not linked to menu_items: an order outlives catalog edits.
type LineDTO struct {
	OrderID    int64                `gorm:"primaryKey;autoIncrement:false"`
	Position   int                  `gorm:"primaryKey;autoIncrement:false"`
	MenuItemID int64                `gorm:"not null;index"`
	ItemName   string               `gorm:"not null"`
	Item       menurepo.ItemColumns `gorm:"embedded;embeddedPrefix:item_"`
	Quantity   int                  `gorm:"not null"`
}

func (LineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	lines, err := linesFromDomain(aggregate)
	if err != nil {
		return OrderDTO{}, err
	}

	return OrderDTO{
		ID:        aggregate.ID(),
		TableID:   aggregate.TableID(),
		CreatedAt: aggregate.CreatedAt(),
		Status:    int(aggregate.Status()),
		Total:     aggregate.Total(),
		Version:   aggregate.Version(),
		Lines:     lines,
	}, nil
}

func linesFromDomain(aggregate *order.Order) ([]LineDTO, error) {
	lines := aggregate.Lines()
	dtos := make([]LineDTO, 0, len(lines))
	for i, line := range lines {
		columns, err := menurepo.ColumnsFromDomain(line.MenuItem())
		if err != nil {
			return nil, err
		}

		dtos = append(dtos, LineDTO{
			OrderID:    aggregate.ID(),
			Position:   i,
			MenuItemID: line.MenuItem().ID(),
			ItemName:   line.MenuItem().Name(),
			Item:       columns,
			Quantity:   line.Quantity(),
		})
	}
	return dtos, nil
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder. Lines must be loaded ordered by position. The stored total is
// informational; the aggregate recomputes it from the lines.
func toDomain(dto OrderDTO) (*order.Order, error) {
	lines := make([]order.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		item, err := l.Item.ToDomain(l.MenuItemID, l.ItemName)
		if err != nil {
			return nil, err
		}

		line, err := order.NewLine(item, l.Quantity)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(dto.ID, dto.TableID, dto.CreatedAt, lines, order.Status(dto.Status), dto.Version)
}
