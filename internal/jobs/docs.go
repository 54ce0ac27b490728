// Package jobs provides scheduled background tasks for the back office.
//
// Jobs are built on github.com/robfig/cron/v3 with a seconds field, so a
// schedule has six fields.
//
// # Available Jobs
//
// ActivityLogRetentionJob deletes activity records older than the retention
// window. It runs daily at 03:00 unless RETENTION_CRON says otherwise.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(purgeHandler, jobs.RetentionConfig{
//		Schedule:   cfg.RetentionCron,
//		Days:       cfg.RetentionDays,
//		BatchSize:  cfg.RetentionBatchSize,
//		MaxBatches: cfg.RetentionMaxBatches,
//	}, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal(err)
//	}
//	defer jobManager.StopAll()
//
// A failed run is logged and never stops the scheduler.
package jobs
