package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"logistics/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	delayedParcelWatchJob *DelayedParcelWatchJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	flagDelayedHandler commands.FlagDelayedParcelsCommandHandler,
	delayedAfter time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		delayedParcelWatchJob: NewDelayedParcelWatchJob(flagDelayedHandler, delayedAfter, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.delayedParcelWatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start delayed parcel watch: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.delayedParcelWatchJob.Stop()
}
