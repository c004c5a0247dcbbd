// Package jobs provides scheduled background tasks for the logistics system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for parcel tracking.
//
// # Available Jobs
//
// 1. DelayedParcelWatchJob - Runs every minute to flag in-transit parcels
// without recent movement as delayed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(flagDelayedHandler, 24*time.Hour, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The watch job logs failures and keeps running; a failed sweep is retried
// on the next tick.
package jobs
