package runrepo

import (
	"context"
	"errors"

	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/dispatch"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/kernel"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/ports"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/pkg/errs"

	"gorm.io/gorm"
)

var _ ports.DispatchRunRepository = (*GormDispatchRunRepository)(nil)

// GormDispatchRunRepository implements ports.DispatchRunRepository.
type GormDispatchRunRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormDispatchRunRepository(db *gorm.DB, tracker aggregateTracker) *GormDispatchRunRepository {
	return &GormDispatchRunRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the run header and its stops.
func (r *GormDispatchRunRepository) Add(ctx context.Context, plan dispatch.Plan) error {
	if err := plan.Validate(); err != nil {
		return err
	}

	dto := fromDomain(plan)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(plan.ID(), plan)
	return nil
}

func (r *GormDispatchRunRepository) Get(ctx context.Context, id kernel.UUID) (dispatch.Plan, error) {
	if err := id.Validate(); err != nil {
		return dispatch.Plan{}, err
	}

	var dto DispatchRunDTO
	err := r.db.WithContext(ctx).
		Preload("Stops", func(db *gorm.DB) *gorm.DB {
			return db.Order("sequence")
		}).
		First(&dto, "id = ?", id.Google()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dispatch.Plan{}, errs.NewObjectNotFoundError("dispatch run", id.String())
		}
		return dispatch.Plan{}, err
	}

	return toDomain(dto)
}
