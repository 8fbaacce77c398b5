package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager starts and stops every scheduled job together.
type JobManager struct {
	dispatchPlanningJob *DispatchPlanningJob
}

func NewJobManager(planDispatchHandler PlanDispatchHandler, dispatchSchedule string, logger *slog.Logger) (*JobManager, error) {
	dispatchPlanningJob, err := NewDispatchPlanningJob(planDispatchHandler, dispatchSchedule, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create dispatch planning job: %w", err)
	}

	return &JobManager{
		dispatchPlanningJob: dispatchPlanningJob,
	}, nil
}

func (jm *JobManager) StartAll() error {
	if err := jm.dispatchPlanningJob.Start(); err != nil {
		return fmt.Errorf("failed to start dispatch planning job: %w", err)
	}

	return nil
}

func (jm *JobManager) StopAll() {
	jm.dispatchPlanningJob.Stop()
}
