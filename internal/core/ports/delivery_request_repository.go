package ports

import (
	"context"
	"errors"

	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/delivery"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/kernel"
)

// ErrRequestsChangedConcurrently is returned by MarkDispatched when some of
// the requests were no longer pending at write time.
var ErrRequestsChangedConcurrently = errors.New("delivery requests changed concurrently")

// DeliveryRequestRepository defines the persistence contract for delivery requests.
type DeliveryRequestRepository interface {
	// Add persists a new request.
	Add(ctx context.Context, request *delivery.Request) error

	// Update persists the current state of an existing request.
	Update(ctx context.Context, request *delivery.Request) error

	// Get returns the request or errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Request, error)

	// GetAllPending returns every Pending request, oldest submission first.
	// The order is stable so planning the same backlog twice yields the same
	// tie-breaking.
	GetAllPending(ctx context.Context) ([]*delivery.Request, error)

	// MarkDispatched flips the given pending requests to Dispatched under runID
	// in a single statement. If any of them is no longer pending the call fails
	// with ErrRequestsChangedConcurrently.
	MarkDispatched(ctx context.Context, runID kernel.UUID, ids []kernel.UUID) error
}
