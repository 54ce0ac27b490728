package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"backoffice/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

const DefaultRetentionSchedule = "0 0 3 * * *"

type PurgeActivityLogsHandler interface {
	Handle(ctx context.Context, cmd commands.PurgeActivityLogsCommand) (commands.PurgeActivityLogsResult, error)
}

// RetentionConfig controls how far back activity records are kept and how the
// purge is chunked. Schedule is a six-field cron expression with seconds.
// DryRun only counts what each run would delete.
type RetentionConfig struct {
	Schedule   string
	Days       int
	BatchSize  int
	MaxBatches int
	DryRun     bool
}

// ActivityLogRetentionJob deletes activity records older than the retention
// window on a cron schedule.
type ActivityLogRetentionJob struct {
	handler PurgeActivityLogsHandler
	config  RetentionConfig
	now     func() time.Time
	cron    *cron.Cron
	logger  *slog.Logger

	// runCtx is cancelled by Stop so that a purge in flight returns early.
	runCtx    context.Context
	cancelRun context.CancelFunc
}

func NewActivityLogRetentionJob(
	handler PurgeActivityLogsHandler,
	config RetentionConfig,
	logger *slog.Logger,
) *ActivityLogRetentionJob {
	if config.Schedule == "" {
		config.Schedule = DefaultRetentionSchedule
	}
	runCtx, cancelRun := context.WithCancel(context.Background())
	return &ActivityLogRetentionJob{
		handler:   handler,
		config:    config,
		now:       time.Now,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "activity_log_retention_job"),
		runCtx:    runCtx,
		cancelRun: cancelRun,
	}
}

// Start registers the purge with the scheduler and starts it.
func (j *ActivityLogRetentionJob) Start() error {
	if j.config.Days < 1 {
		return fmt.Errorf("retention days must be positive, got %d", j.config.Days)
	}

	_, err := j.cron.AddFunc(j.config.Schedule, func() {
		_, _ = j.RunOnce(j.runCtx)
	})
	if err != nil {
		return fmt.Errorf("schedule %q: %w", j.config.Schedule, err)
	}

	j.cron.Start()
	j.logger.Info("Activity log retention job started",
		"schedule", j.config.Schedule,
		"retention_days", j.config.Days,
		"dry_run", j.config.DryRun)
	return nil
}

// Stop stops the scheduler, cancels a running purge and waits for it to return.
// The purge keeps the batches it already committed.
func (j *ActivityLogRetentionJob) Stop() {
	stopped := j.cron.Stop()
	j.cancelRun()
	<-stopped.Done()
	j.logger.Info("Activity log retention job stopped")
}

// RunOnce purges everything older than the retention window. Failures are
// logged and returned; the next scheduled run starts over.
func (j *ActivityLogRetentionJob) RunOnce(ctx context.Context) (commands.PurgeActivityLogsResult, error) {
	cutoff := j.now().UTC().AddDate(0, 0, -j.config.Days)

	cmd, err := commands.NewPurgeActivityLogsCommand(cutoff, j.config.BatchSize, j.config.MaxBatches, j.config.DryRun)
	if err != nil {
		j.logger.ErrorContext(ctx, "Invalid retention settings", "error", err)
		return commands.PurgeActivityLogsResult{}, err
	}

	started := j.now()
	result, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Activity log purge failed",
			"cutoff", cutoff,
			"deleted", result.Deleted,
			"batches", result.Batches,
			"error", err)
		return result, err
	}

	if cmd.DryRun() {
		j.logger.InfoContext(ctx, "Activity log purge dry run",
			"cutoff", cutoff,
			"would_delete", result.Deleted,
			"batches", result.Batches)
		return result, nil
	}

	j.logger.InfoContext(ctx, "Activity log purge finished",
		"cutoff", cutoff,
		"deleted", result.Deleted,
		"batches", result.Batches,
		"took", j.now().Sub(started))
	return result, nil
}
