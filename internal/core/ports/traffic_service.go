package ports

import (
	"context"
	"time"

	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/kernel"
)

// TrafficService answers how long a vehicle needs, under current traffic, to
// drive from origin to destination.
//
// Implementations must honour ctx cancellation; the caller sets the deadline and
// stops waiting once it passes.
// Any error means "no live answer" and callers fall back to their own estimate.
type TrafficService interface {
	DurationForRoute(ctx context.Context, origin, destination kernel.Location) (time.Duration, error)
}
