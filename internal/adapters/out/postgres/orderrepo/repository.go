package orderrepo

import (
	"context"
	"errors"
	"time"

	"dinesmart/internal/adapters/out/postgres/pgerrs"
	"dinesmart/internal/core/domain/model/order"
	"dinesmart/internal/pkg/errs"

	"gorm.io/gorm"
)

const idSequence = "order_id_seq"

var terminalStatuses = []int{int(order.Paid), int(order.Cancelled)}

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker eventTracker
}

// eventTracker collects the order events produced by successful writes.
type eventTracker interface {
	Track(event order.Event)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker eventTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Migrate creates the orders and order_lines tables and the order id sequence.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&OrderDTO{}, &LineDTO{}); err != nil {
		return err
	}
	return db.Exec("CREATE SEQUENCE IF NOT EXISTS " + idSequence).Error
}

func (r *GormOrderRepository) NextID(ctx context.Context) (int64, error) {
	var id int64
	if err := r.db.WithContext(ctx).Raw("SELECT nextval(?)", idSequence).Scan(&id).Error; err != nil {
		return 0, err
	}
	return id, nil
}

// Add saves a new order together with its lines.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerrs.IsUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause("order id", aggregate.ID(), err)
		}
		return err
	}

	r.tracker.Track(order.NewCreatedEvent(aggregate))
	return nil
}

// Update replaces the stored order when its version is aggregate.Version()-1.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	expected := aggregate.Version() - 1
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&OrderDTO{}).
			Where("id = ? AND version = ?", dto.ID, expected).
			Updates(map[string]any{
				"status":  dto.Status,
				"total":   dto.Total,
				"version": dto.Version,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return r.missOrConflict(tx, dto.ID, expected)
		}

		if err := tx.Where("order_id = ?", dto.ID).Delete(&LineDTO{}).Error; err != nil {
			return err
		}
		return tx.Create(&dto.Lines).Error
	})
	if err != nil {
		return err
	}

	r.tracker.Track(order.NewUpdatedEvent(aggregate))
	return nil
}

// Delete removes the order when its stored version is still aggregate.Version().
// Lines go with it through the foreign key cascade.
func (r *GormOrderRepository) Delete(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	result := db.Where("id = ? AND version = ?", aggregate.ID(), aggregate.Version()).Delete(&OrderDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.missOrConflict(db, aggregate.ID(), aggregate.Version())
	}

	r.tracker.Track(order.NewDeletedEvent(aggregate))
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	if err := r.withLines(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	return r.find(r.withLines(ctx))
}

// GetAllActive retrieves the orders that are neither Paid nor Cancelled.
func (r *GormOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	return r.find(r.withLines(ctx).Where("status NOT IN ?", terminalStatuses))
}

// GetAllTerminalCreatedBefore retrieves Paid and Cancelled orders created before the given time.
func (r *GormOrderRepository) GetAllTerminalCreatedBefore(ctx context.Context, before time.Time) ([]*order.Order, error) {
	return r.find(r.withLines(ctx).Where("status IN ? AND created_at < ?", terminalStatuses, before))
}

func (r *GormOrderRepository) HasActiveWithMenuItem(ctx context.Context, menuItemID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&LineDTO{}).
		Joins("JOIN orders ON orders.id = order_lines.order_id").
		Where("order_lines.menu_item_id = ? AND orders.status NOT IN ?", menuItemID, terminalStatuses).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormOrderRepository) withLines(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Lines", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}

func (r *GormOrderRepository) find(query *gorm.DB) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := query.Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// missOrConflict explains a write that matched no row.
func (r *GormOrderRepository) missOrConflict(db *gorm.DB, id int64, expectedVersion int) error {
	var count int64
	if err := db.Model(&OrderDTO{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("order", id)
	}
	return errs.NewConcurrentModificationError("order", id, expectedVersion)
}
