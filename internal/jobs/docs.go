// Package jobs provides scheduled background tasks for DineSmart.
//
// Jobs are built on github.com/robfig/cron/v3 with six-field (seconds first)
// cron expressions.
//
// # Available Jobs
//
//  1. TerminalOrderPurgeJob - deletes Paid and Cancelled orders older than
//     the configured retention. Active orders are never touched.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(purgeHandler, jobs.PurgeConfig{
//		Schedule:  "0 */10 * * * *",
//		Retention: 24 * time.Hour,
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
//   - A failed purge is logged and retried on the next tick
//   - Overlapping runs are skipped
//   - Failed job starts will stop any already running jobs
package jobs
