package cron

import (
	"context"
	"log/slog"
	"time"
)

// IncrementActivator promotes pending salary increments whose effective month
// has arrived. Implemented by the salary service.
type IncrementActivator interface {
	ActivateDue(ctx context.Context) (int, error)
}

type IncrementJobs struct {
	activator IncrementActivator
}

func NewIncrementJobs(activator IncrementActivator) *IncrementJobs {
	return &IncrementJobs{activator: activator}
}

func (j *IncrementJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("activate_pending_increments", 1*time.Hour, j.ActivatePendingIncrements)
}

func (j *IncrementJobs) ActivatePendingIncrements(ctx context.Context) error {
	count, err := j.activator.ActivateDue(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		slog.Info("Cron: activated pending increments", "count", count)
	}
	return nil
}
