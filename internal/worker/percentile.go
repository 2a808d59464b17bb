package worker

import (
	"context"

	"github.com/robfig/cron/v3"

	"github.com/stackroast/stackroast/internal/pkg/logger"
	"github.com/stackroast/stackroast/internal/services"
)

// PercentileRefresher periodically rebuilds the score percentile
// distribution from recorded scores, so the "better than X% of stacks"
// figure tracks real submissions instead of the shipped estimate.
type PercentileRefresher struct {
	stacks   *services.StackService
	schedule string
	logger   *logger.Logger
	cron     *cron.Cron
}

// NewPercentileRefresher creates a new percentile refresher worker.
// The schedule is a cron expression; descriptors like "@every 1h" work
// too.
func NewPercentileRefresher(stacks *services.StackService, schedule string, log *logger.Logger) *PercentileRefresher {
	return &PercentileRefresher{
		stacks:   stacks,
		schedule: schedule,
		logger:   log,
	}
}

// Start runs one immediate rebuild and schedules the periodic ones.
func (w *PercentileRefresher) Start(ctx context.Context) error {
	w.refresh(ctx)

	w.cron = cron.New()
	_, err := w.cron.AddFunc(w.schedule, func() {
		w.refresh(ctx)
	})
	if err != nil {
		return err
	}

	w.cron.Start()
	w.logger.WithFields(map[string]interface{}{
		"schedule": w.schedule,
	}).Info("Percentile refresher started")

	return nil
}

// Stop halts the schedule and waits for a running refresh to finish.
func (w *PercentileRefresher) Stop() {
	if w.cron == nil {
		return
	}
	<-w.cron.Stop().Done()
	w.logger.Info("Percentile refresher stopped")
}

func (w *PercentileRefresher) refresh(ctx context.Context) {
	if err := w.stacks.RebuildPercentiles(ctx); err != nil {
		w.logger.ErrorWithErr(err, "Failed to rebuild percentile distribution")
	}
}
