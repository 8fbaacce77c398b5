package ports

import (
	"context"

	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/dispatch"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/kernel"
)

// DispatchRunRepository stores dispatch plans together with their stops.
type DispatchRunRepository interface {
	// Add persists a plan and all of its stops.
	Add(ctx context.Context, plan dispatch.Plan) error

	// Get returns the plan with stops in visiting order, or
	// errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (dispatch.Plan, error)
}
