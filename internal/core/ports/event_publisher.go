package ports

import (
	"context"

	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/dispatch"
)

// DispatchEventPublisher announces committed dispatch plans to downstream
// consumers such as rider apps or notification services.
type DispatchEventPublisher interface {
	PublishDispatchPlanned(ctx context.Context, plan dispatch.Plan) error
}
