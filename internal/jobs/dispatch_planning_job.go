package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/application/usecases/commands"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/dispatch"

	"github.com/robfig/cron/v3"
)

const (
	DefaultDispatchSchedule = "0 */5 * * * *"
	runTimeout              = time.Minute
)

type PlanDispatchHandler interface {
	Handle(ctx context.Context, cmd commands.PlanDispatchCommand) (dispatch.Plan, error)
}

// DispatchPlanningJob periodically turns the pending backlog into a dispatch run.
type DispatchPlanningJob struct {
	handler  PlanDispatchHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewDispatchPlanningJob(handler PlanDispatchHandler, schedule string, logger *slog.Logger) (*DispatchPlanningJob, error) {
	if handler == nil {
		return nil, errors.New("plan dispatch handler is nil")
	}
	if schedule == "" {
		schedule = DefaultDispatchSchedule
	}
	if _, err := cron.NewParser(
		cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
	).Parse(schedule); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &DispatchPlanningJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "dispatch_planning_job"),
	}, nil
}

func (j *DispatchPlanningJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()

		j.Run(ctx)
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dispatch planning job started", "schedule", j.schedule)
	return nil
}

// Run performs one planning pass. Failures are logged, not returned.
func (j *DispatchPlanningJob) Run(ctx context.Context) {
	plan, err := j.handler.Handle(ctx, commands.NewPlanDispatchCommand())
	if err != nil {
		if !errors.Is(err, commands.ErrNoPendingRequests) {
			j.logger.ErrorContext(ctx, "Dispatch planning job failed", "error", err)
		}
		return
	}

	j.logger.InfoContext(ctx, "Dispatch run planned by schedule",
		"run_id", plan.ID().String(),
		"stops", plan.Len())
}

// Stop waits for a running pass to finish.
func (j *DispatchPlanningJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Dispatch planning job stopped")
}
