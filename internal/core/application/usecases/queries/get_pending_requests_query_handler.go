package queries

import (
	"context"
	"time"

	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/delivery"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingRequestsQueryHandler reads pending requests, oldest first.
type GetPendingRequestsQueryHandler struct {
	db *gorm.DB
}

func NewGetPendingRequestsQueryHandler(db *gorm.DB) GetPendingRequestsQueryHandler {
	return GetPendingRequestsQueryHandler{db: db}
}

func (h GetPendingRequestsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingRequestsQuery,
) ([]GetPendingRequestsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			destination_latitude,
			destination_longitude,
			submitted_at
		FROM delivery_requests
		WHERE status = ?
		ORDER BY submitted_at, id
	`, int(delivery.Pending)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]GetPendingRequestsQueryResponse, 0)
	for rows.Next() {
		var (
			id          uuid.UUID
			lat, lng    float64
			submittedAt time.Time
		)

		if err = rows.Scan(&id, &lat, &lng, &submittedAt); err != nil {
			return nil, err
		}

		requestID, idErr := kernel.UUIDFromGoogle(id)
		if idErr != nil {
			return nil, idErr
		}

		destination, locErr := kernel.NewLocation(lat, lng)
		if locErr != nil {
			return nil, locErr
		}

		result = append(result, GetPendingRequestsQueryResponse{
			ID:          requestID,
			Destination: destination,
			SubmittedAt: submittedAt.UTC(),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
