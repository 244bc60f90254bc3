// Package jobs provides scheduled background tasks for the operations board.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance the dashboard needs.
//
// # Available Jobs
//
// 1. NotificationRetentionJob - Runs hourly to delete read notifications older than the retention window
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(purgeNotificationsHandler, retention, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The retention job uses the cron expression "0 * * * *", running at the top
// of every hour. Hourly granularity is plenty for a retention window measured
// in days.
//
// # Error Handling
//
// - Sweep failures are logged and retried on the next tick
// - Unread notifications are never deleted regardless of age
package jobs
