// Package requestrepo persists delivery requests in the delivery_requests table.
package requestrepo

import (
	"time"

	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/delivery"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryRequestDTO is the row shape of a delivery request.
type DeliveryRequestDTO struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Destination   DestinationDTO `gorm:"embedded;embeddedPrefix:destination_"`
	Status        int            `gorm:"type:smallint;not null;index"`
	DispatchRunID *uuid.UUID     `gorm:"type:uuid;index"`
	SubmittedAt   time.Time      `gorm:"type:timestamptz;not null;index"`
}

func (DeliveryRequestDTO) TableName() string {
	return "delivery_requests"
}

// DestinationDTO is embedded as destination_latitude / destination_longitude.
type DestinationDTO struct {
	Latitude  float64 `gorm:"type:double precision;not null"`
	Longitude float64 `gorm:"type:double precision;not null"`
}

func fromDomain(r *delivery.Request) DeliveryRequestDTO {
	var runID *uuid.UUID
	if r.DispatchRun() != nil {
		raw := r.DispatchRun().Google()
		runID = &raw
	}

	return DeliveryRequestDTO{
		ID: r.ID().Google(),
		Destination: DestinationDTO{
			Latitude:  r.Destination().Latitude(),
			Longitude: r.Destination().Longitude(),
		},
		Status:        int(r.Status()),
		DispatchRunID: runID,
		SubmittedAt:   r.SubmittedAt(),
	}
}

func toDomain(dto DeliveryRequestDTO) (*delivery.Request, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	destination, err := kernel.NewLocation(dto.Destination.Latitude, dto.Destination.Longitude)
	if err != nil {
		return nil, err
	}

	var runID *kernel.UUID
	if dto.DispatchRunID != nil {
		rID, runErr := kernel.UUIDFromGoogle(*dto.DispatchRunID)
		if runErr != nil {
			return nil, runErr
		}
		runID = &rID
	}

	return delivery.RestoreRequest(id, destination, delivery.Status(dto.Status), runID, dto.SubmittedAt)
}
