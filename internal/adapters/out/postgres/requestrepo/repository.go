package requestrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/delivery"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/kernel"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/ports"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

var _ ports.DeliveryRequestRepository = (*GormDeliveryRequestRepository)(nil)

// GormDeliveryRequestRepository implements ports.DeliveryRequestRepository.
type GormDeliveryRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormDeliveryRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRequestRepository {
	return &GormDeliveryRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormDeliveryRequestRepository) Add(ctx context.Context, request *delivery.Request) error {
	if err := request.Validate(); err != nil {
		return err
	}

	dto := fromDomain(request)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(request.ID(), request)
	return nil
}

// Update writes every column, including a cleared dispatch run reference.
func (r *GormDeliveryRequestRepository) Update(ctx context.Context, request *delivery.Request) error {
	if err := request.Validate(); err != nil {
		return err
	}

	dto := fromDomain(request)
	result := r.db.WithContext(ctx).
		Model(&DeliveryRequestDTO{}).
		Where("id = ?", dto.ID).
		Select("destination_latitude", "destination_longitude", "status", "dispatch_run_id", "submitted_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("delivery request", request.ID().String())
	}

	r.tracker.TrackAggregate(request.ID(), request)
	return nil
}

func (r *GormDeliveryRequestRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Request, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryRequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Google()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery request", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormDeliveryRequestRepository) GetAllPending(ctx context.Context) ([]*delivery.Request, error) {
	var dtos []DeliveryRequestDTO
	if err := r.db.WithContext(ctx).
		Where("status = ?", int(delivery.Pending)).
		Order("submitted_at, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	requests := make([]*delivery.Request, 0, len(dtos))
	for _, dto := range dtos {
		req, err := toDomain(dto)
		if err != nil {
			return nil, fmt.Errorf("restore delivery request %s: %w", dto.ID, err)
		}
		requests = append(requests, req)
	}

	return requests, nil
}

func (r *GormDeliveryRequestRepository) MarkDispatched(ctx context.Context, runID kernel.UUID, ids []kernel.UUID) error {
	if err := runID.Validate(); err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}

	raw := make([]string, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
		raw = append(raw, id.String())
	}

	run := runID.Google()
	result := r.db.WithContext(ctx).
		Model(&DeliveryRequestDTO{}).
		Where("id = ANY(?::uuid[]) AND status = ?", pq.Array(raw), int(delivery.Pending)).
		Updates(map[string]any{
			"status":          int(delivery.Dispatched),
			"dispatch_run_id": run,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected != int64(len(ids)) {
		return fmt.Errorf("%w: %d of %d requests were still pending",
			ports.ErrRequestsChangedConcurrently, result.RowsAffected, len(ids))
	}

	return nil
}
