// Package postgres persists delivery requests and dispatch runs with gorm.
//
// A GormUnitOfWork wraps one database transaction. Repositories obtained from
// it after Begin share that transaction; before Begin they run directly on the
// connection pool.
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.DispatchRunRepository().Add(ctx, plan); err != nil {
//	    return err
//	}
//	if err := uow.DeliveryRequestRepository().MarkDispatched(ctx, plan.ID(), plan.RequestIDs()); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Each UnitOfWork belongs to one goroutine; create one per operation.
package postgres

import (
	"context"

	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/adapters/out/postgres/requestrepo"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/adapters/out/postgres/runrepo"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/kernel"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// AutoMigrate creates or updates every table the adapters use.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&requestrepo.DeliveryRequestDTO{},
		&runrepo.DispatchRunDTO{},
		&runrepo.DispatchStopDTO{},
	)
}

// GormUnitOfWorkFactory hands out a fresh GormUnitOfWork per operation.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return f.CreateGorm()
}

// CreateGorm is Create without the interface conversion, for callers that need
// TrackedAggregates.
func (f *GormUnitOfWorkFactory) CreateGorm() *GormUnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork implements ports.UnitOfWork over a gorm transaction and
// records which aggregates were written through its repositories.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin opens the transaction. Calling it again while a transaction is open
// is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit returns gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback returns gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) DeliveryRequestRepository() ports.DeliveryRequestRepository {
	return requestrepo.NewGormDeliveryRequestRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) DispatchRunRepository() ports.DispatchRunRepository {
	return runrepo.NewGormDispatchRunRepository(uow.conn(), uow)
}

// TrackAggregate is called by repositories after a successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedAggregates lists the ids written so far, in write order. A rollback
// clears the list.
func (uow *GormUnitOfWork) TrackedAggregates() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(uow.trackedAggregates))
	for _, t := range uow.trackedAggregates {
		ids = append(ids, t.ID)
	}
	return ids
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
