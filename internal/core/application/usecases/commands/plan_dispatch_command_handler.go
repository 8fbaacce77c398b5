package commands

import (
	"context"
	"errors"
	"log/slog"

	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/dispatch"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/services"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/ports"
)

var ErrNoPendingRequests = errors.New("no pending delivery requests")

// PlanDispatchCommandHandler sequences all pending requests into one run.
//
// Loading the backlog, saving the plan and flipping requests to Dispatched
// happen in a single transaction. The dispatch.planned event goes out after
// commit; a publish failure is logged and does not undo the run.
type PlanDispatchCommandHandler struct {
	uowFactory UoWFactory
	planner    services.DispatchPlanner
	publisher  ports.DispatchEventPublisher
	logger     *slog.Logger
}

func NewPlanDispatchCommandHandler(
	uowFactory UoWFactory,
	planner services.DispatchPlanner,
	publisher ports.DispatchEventPublisher,
	logger *slog.Logger,
) PlanDispatchCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return PlanDispatchCommandHandler{
		uowFactory: uowFactory,
		planner:    planner,
		publisher:  publisher,
		logger:     logger.With("component", "plan_dispatch_handler"),
	}
}

// Handle returns the committed plan, or ErrNoPendingRequests when the backlog
// is empty.
func (h PlanDispatchCommandHandler) Handle(ctx context.Context, cmd PlanDispatchCommand) (dispatch.Plan, error) {
	if err := cmd.Validate(); err != nil {
		return dispatch.Plan{}, err
	}

	plan, err := h.planAndStore(ctx)
	if err != nil {
		return dispatch.Plan{}, err
	}

	if err = h.publisher.PublishDispatchPlanned(ctx, plan); err != nil {
		h.logger.ErrorContext(ctx, "failed to publish dispatch plan",
			"run_id", plan.ID().String(), "error", err)
	}

	h.logger.InfoContext(ctx, "dispatch run planned",
		"run_id", plan.ID().String(),
		"stops", plan.Len(),
		"farthest_km", plan.FarthestDistanceKm())

	return plan, nil
}

func (h PlanDispatchCommandHandler) planAndStore(ctx context.Context) (dispatch.Plan, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return dispatch.Plan{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	requestRepo := uow.DeliveryRequestRepository()
	runRepo := uow.DispatchRunRepository()

	pending, err := requestRepo.GetAllPending(ctx)
	if err != nil {
		return dispatch.Plan{}, err
	}
	if len(pending) == 0 {
		return dispatch.Plan{}, ErrNoPendingRequests
	}

	plan, err := h.planner.Plan(pending)
	if err != nil {
		return dispatch.Plan{}, err
	}

	for _, r := range pending {
		if err = r.Dispatch(plan.ID()); err != nil {
			return dispatch.Plan{}, err
		}
	}

	if err = runRepo.Add(ctx, plan); err != nil {
		return dispatch.Plan{}, err
	}

	if err = requestRepo.MarkDispatched(ctx, plan.ID(), plan.RequestIDs()); err != nil {
		return dispatch.Plan{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return dispatch.Plan{}, err
	}

	return plan, nil
}
