package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/kernel"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDispatchRunQueryHandler reads a run and its stops. Unknown ids give
// errs.ObjectNotFoundError.
type GetDispatchRunQueryHandler struct {
	db *gorm.DB
}

func NewGetDispatchRunQueryHandler(db *gorm.DB) GetDispatchRunQueryHandler {
	return GetDispatchRunQueryHandler{db: db}
}

func (h GetDispatchRunQueryHandler) Handle(
	ctx context.Context,
	query GetDispatchRunQuery,
) (GetDispatchRunQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDispatchRunQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)
	runID := query.RunID().Google()

	var createdAt time.Time
	err := db.Raw(`SELECT created_at FROM dispatch_runs WHERE id = ?`, runID).Row().Scan(&createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDispatchRunQueryResponse{}, errs.NewObjectNotFoundError("dispatch run", query.RunID().String())
	}
	if err != nil {
		return GetDispatchRunQueryResponse{}, err
	}

	rows, err := db.Raw(`
		SELECT
			sequence,
			request_id,
			latitude,
			longitude,
			distance_km
		FROM dispatch_stops
		WHERE run_id = ?
		ORDER BY sequence
	`, runID).Rows()
	if err != nil {
		return GetDispatchRunQueryResponse{}, err
	}
	defer rows.Close()

	response := GetDispatchRunQueryResponse{
		ID:        query.RunID(),
		CreatedAt: createdAt.UTC(),
		Stops:     make([]DispatchStopView, 0),
	}

	for rows.Next() {
		var (
			stop      DispatchStopView
			requestID uuid.UUID
			lat, lng  float64
		)

		if err = rows.Scan(&stop.Sequence, &requestID, &lat, &lng, &stop.DistanceKm); err != nil {
			return GetDispatchRunQueryResponse{}, err
		}

		if stop.RequestID, err = kernel.UUIDFromGoogle(requestID); err != nil {
			return GetDispatchRunQueryResponse{}, err
		}
		if stop.Destination, err = kernel.NewLocation(lat, lng); err != nil {
			return GetDispatchRunQueryResponse{}, err
		}

		response.Stops = append(response.Stops, stop)
	}

	if err = rows.Err(); err != nil {
		return GetDispatchRunQueryResponse{}, err
	}

	return response, nil
}
