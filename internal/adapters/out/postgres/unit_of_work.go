// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern together with the per-aggregate repositories.
//
// The unit of work coordinates one database transaction across repositories
// and collects a change event for every row the transaction touched. After a
// successful commit those events are handed to the change publisher, which
// raises them as pg_notify notifications on the collection's channel. That is
// the realtime feed the HTTP stream endpoint fans out to clients.
//
// Publication is best-effort and happens after commit: a lost notification
// never rolls a write back, and subscribers must treat the feed as
// eventually consistent.
//
// Basic usage:
//
//	factory := NewGormUnitOfWorkFactory(db, publisher)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.ShipmentRepository().Add(ctx, s); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"opsboard/internal/adapters/out/postgres/activityrepo"
	"opsboard/internal/adapters/out/postgres/eventrepo"
	"opsboard/internal/adapters/out/postgres/inventoryrepo"
	"opsboard/internal/adapters/out/postgres/notificationrepo"
	"opsboard/internal/adapters/out/postgres/shipmentrepo"
	"opsboard/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Each business operation gets a fresh unit of work instance with proper
// isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	publisher ports.ChangePublisher
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// The publisher receives a change event per written row after each successful
// commit; pass nil to disable the feed (used by some tests).
func NewGormUnitOfWorkFactory(db *gorm.DB, publisher ports.ChangePublisher) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, publisher: publisher}
}

// Create produces a new UnitOfWork instance ready for transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:        f.db,
		publisher: f.publisher,
		changes:   make([]ports.ChangeEvent, 0),
	}
}

// GormUnitOfWork coordinates a database transaction and collects the change
// events raised by repository writes within it. Events are published on the
// change feed only after the transaction commits; a rollback discards them.
type GormUnitOfWork struct {
	db        *gorm.DB
	tx        *gorm.DB
	publisher ports.ChangePublisher
	changes   []ports.ChangeEvent
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls on the same instance are safe and will not create nested
// transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction, then
// publishes the collected change events. Returns error if no active
// transaction exists or the commit fails; publish failures are the
// publisher's to log, never the committer's to see.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return err
	}

	if uow.publisher != nil {
		for _, change := range uow.changes {
			uow.publisher.Publish(change)
		}
	}
	uow.changes = uow.changes[:0]

	return nil
}

// Rollback discards all changes made within the current transaction together
// with the change events collected for it.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.changes = uow.changes[:0]
	return err
}

// TrackChange records a change event to publish after a successful commit.
// Called by the repository implementations on every write.
func (uow *GormUnitOfWork) TrackChange(event ports.ChangeEvent) {
	uow.changes = append(uow.changes, event)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// ShipmentRepository provides shipment persistence bound to the current
// transaction if one is active, otherwise to the main connection.
func (uow *GormUnitOfWork) ShipmentRepository() ports.ShipmentRepository {
	return shipmentrepo.NewGormShipmentRepository(uow.conn(), uow)
}

// EventRepository provides event persistence within the unit of work.
func (uow *GormUnitOfWork) EventRepository() ports.EventRepository {
	return eventrepo.NewGormEventRepository(uow.conn(), uow)
}

// InventoryRepository provides inventory persistence within the unit of work.
func (uow *GormUnitOfWork) InventoryRepository() ports.InventoryRepository {
	return inventoryrepo.NewGormInventoryRepository(uow.conn(), uow)
}

// NotificationRepository provides notification persistence within the unit of work.
func (uow *GormUnitOfWork) NotificationRepository() ports.NotificationRepository {
	return notificationrepo.NewGormNotificationRepository(uow.conn(), uow)
}

// ActivityRepository provides activity feed persistence within the unit of work.
func (uow *GormUnitOfWork) ActivityRepository() ports.ActivityRepository {
	return activityrepo.NewGormActivityRepository(uow.conn(), uow)
}
