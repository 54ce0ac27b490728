package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	retentionJob *ActivityLogRetentionJob
}

func NewJobManager(
	purgeHandler PurgeActivityLogsHandler,
	retention RetentionConfig,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		retentionJob: NewActivityLogRetentionJob(purgeHandler, retention, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.retentionJob.Start(); err != nil {
		return fmt.Errorf("failed to start activity log retention job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs, waiting for running ones to return.
func (jm *JobManager) StopAll() {
	jm.retentionJob.Stop()
}
