package queries

import (
	"errors"
	"time"

	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/kernel"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/pkg/guard"
)

var ErrGetDispatchRunQueryIsNotConstructed = errors.New(
	"GetDispatchRunQuery must be created via NewGetDispatchRunQuery constructor",
)

// GetDispatchRunQuery fetches a stored dispatch run by id.
type GetDispatchRunQuery struct {
	runID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetDispatchRunQuery(runID kernel.UUID) (GetDispatchRunQuery, error) {
	if err := runID.Validate(); err != nil {
		return GetDispatchRunQuery{}, err
	}

	return GetDispatchRunQuery{
		runID: runID,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetDispatchRunQuery) Validate() error {
	return q.guard.Validate(ErrGetDispatchRunQueryIsNotConstructed)
}

func (q GetDispatchRunQuery) RunID() kernel.UUID {
	return q.runID
}

// GetDispatchRunQueryResponse is a run with its stops in visiting order.
type GetDispatchRunQueryResponse struct {
	ID        kernel.UUID
	CreatedAt time.Time
	Stops     []DispatchStopView
}

// DispatchStopView is one stop of a stored run.
type DispatchStopView struct {
	Sequence    int
	RequestID   kernel.UUID
	Destination kernel.Location
	DistanceKm  float64
}
