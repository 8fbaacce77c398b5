// Package runrepo persists dispatch plans in dispatch_runs and dispatch_stops.
package runrepo

import (
	"fmt"
	"time"

	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/dispatch"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DispatchRunDTO is the header row of a dispatch plan.
type DispatchRunDTO struct {
	ID        uuid.UUID         `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time         `gorm:"type:timestamptz;not null;index"`
	Stops     []DispatchStopDTO `gorm:"foreignKey:RunID;constraint:OnDelete:CASCADE"`
}

func (DispatchRunDTO) TableName() string {
	return "dispatch_runs"
}

// DispatchStopDTO is one visit of a run, keyed by (run_id, sequence).
type DispatchStopDTO struct {
	RunID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Sequence   int       `gorm:"type:int;primaryKey;autoIncrement:false"`
	RequestID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Latitude   float64   `gorm:"type:double precision;not null"`
	Longitude  float64   `gorm:"type:double precision;not null"`
	DistanceKm float64   `gorm:"type:double precision;not null"`
}

func (DispatchStopDTO) TableName() string {
	return "dispatch_stops"
}

func fromDomain(plan dispatch.Plan) DispatchRunDTO {
	runID := plan.ID().Google()
	stops := make([]DispatchStopDTO, 0, plan.Len())

	for _, s := range plan.Stops() {
		stops = append(stops, DispatchStopDTO{
			RunID:      runID,
			Sequence:   s.Sequence(),
			RequestID:  s.RequestID().Google(),
			Latitude:   s.Destination().Latitude(),
			Longitude:  s.Destination().Longitude(),
			DistanceKm: s.DistanceKm(),
		})
	}

	return DispatchRunDTO{
		ID:        runID,
		CreatedAt: plan.CreatedAt(),
		Stops:     stops,
	}
}

func toDomain(dto DispatchRunDTO) (dispatch.Plan, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return dispatch.Plan{}, err
	}

	stops := make([]dispatch.Stop, 0, len(dto.Stops))
	for _, stopDTO := range dto.Stops {
		stop, stopErr := stopToDomain(stopDTO)
		if stopErr != nil {
			return dispatch.Plan{}, fmt.Errorf("stop %d: %w", stopDTO.Sequence, stopErr)
		}
		stops = append(stops, stop)
	}

	return dispatch.RestorePlan(id, dto.CreatedAt, stops)
}

func stopToDomain(dto DispatchStopDTO) (dispatch.Stop, error) {
	requestID, err := kernel.UUIDFromGoogle(dto.RequestID)
	if err != nil {
		return dispatch.Stop{}, err
	}

	destination, err := kernel.NewLocation(dto.Latitude, dto.Longitude)
	if err != nil {
		return dispatch.Stop{}, err
	}

	return dispatch.NewStop(dto.Sequence, requestID, destination, dto.DistanceKm)
}
