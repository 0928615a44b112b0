// Package postgres provides GORM-based implementation of the Unit of Work pattern.
// The Unit of Work pattern maintains a list of objects affected by a business
// transaction and coordinates writing out changes and resolving concurrency problems.
//
// Transactions run at the SERIALIZABLE isolation level. A transaction that
// loses a race fails with SQLSTATE 40001 on a statement or on Commit; command
// handlers retry such failures with a fresh unit of work.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db, publisher, logger)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	current, err := uow.OrderRepository().Get(ctx, id)
//	if err != nil {
//	    return err
//	}
//	next, err := current.TransitionStatus(order.Preparing)
//	if err != nil {
//	    return err
//	}
//	if err := uow.OrderRepository().Update(ctx, next); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance provides an isolated transaction; goroutines must
// not share one.
package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"dinesmart/internal/adapters/out/postgres/menurepo"
	"dinesmart/internal/adapters/out/postgres/orderrepo"
	"dinesmart/internal/core/domain/model/order"
	"dinesmart/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Factory ensures each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	publisher ports.OrderEventPublisher
	logger    *slog.Logger
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// Committed order events are handed to publisher; a nil publisher drops them.
func NewGormUnitOfWorkFactory(
	db *gorm.DB,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{
		db:        db,
		publisher: publisher,
		logger:    logger.With("component", "postgres-uow"),
	}
}

// Create produces a new UnitOfWork instance ready for business transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:        f.db,
		publisher: f.publisher,
		logger:    f.logger,
	}
}

// GormUnitOfWork coordinates database transactions and tracks the order
// events produced by its repositories. Events are published only after a
// successful commit; a rollback discards them.
type GormUnitOfWork struct {
	db        *gorm.DB
	tx        *gorm.DB
	publisher ports.OrderEventPublisher
	logger    *slog.Logger
	events    []order.Event
}

// Begin initiates a new serializable transaction for the unit of work.
// Multiple calls to Begin on the same instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin(&sql.TxOptions{Isolation: sql.LevelSerializable})
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	uow.events = nil
	return nil
}

// Commit finalizes all changes made within the current transaction and then
// publishes the tracked order events. A failed publish is logged and does not
// fail the commit.
//
// Returns error if no active transaction exists or if the commit operation fails.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	events := uow.events
	uow.events = nil
	if err != nil {
		return err
	}

	uow.publish(ctx, events)
	return nil
}

// Rollback discards all changes made within the current transaction.
// Returns error if no active transaction exists or if the rollback operation fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.events = nil
	return err
}

// OrderRepository provides access to order persistence operations within the unit of work.
// Repository operations will execute within the current transaction if one is active,
// otherwise they use the main database connection for immediate execution.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// MenuRepository provides access to catalog persistence operations within the unit of work.
func (uow *GormUnitOfWork) MenuRepository() ports.MenuRepository {
	return menurepo.NewGormMenuRepository(uow.conn())
}

// Track registers an order event produced inside this unit of work. Outside of
// a transaction the write is already durable, so the event is published at once.
func (uow *GormUnitOfWork) Track(event order.Event) {
	if uow.tx == nil {
		uow.publish(context.Background(), []order.Event{event})
		return
	}
	uow.events = append(uow.events, event)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) publish(ctx context.Context, events []order.Event) {
	if uow.publisher == nil || len(events) == 0 {
		return
	}
	if err := uow.publisher.Publish(ctx, events...); err != nil {
		uow.logger.ErrorContext(ctx, "failed to publish order events", "count", len(events), "error", err)
	}
}
