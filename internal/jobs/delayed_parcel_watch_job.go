package jobs

import (
	"context"
	"log/slog"
	"time"

	"logistics/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DelayedParcelWatchJob periodically sweeps in-transit parcels and flags
// those without recent movement as delayed.
type DelayedParcelWatchJob struct {
	handler   commands.FlagDelayedParcelsCommandHandler
	threshold time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewDelayedParcelWatchJob creates a job flagging stale in-transit parcels.
// threshold is the silence window after which a parcel counts as delayed.
func NewDelayedParcelWatchJob(
	handler commands.FlagDelayedParcelsCommandHandler,
	threshold time.Duration,
	logger *slog.Logger,
) *DelayedParcelWatchJob {
	return &DelayedParcelWatchJob{
		handler:   handler,
		threshold: threshold,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "delayed_parcel_watch_job"),
	}
}

// Start begins the watch job to run every minute.
func (j *DelayedParcelWatchJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewFlagDelayedParcelsCommand(j.threshold)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Delayed parcel watch misconfigured", "error", cmdErr)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Delayed parcel watch failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delayed parcel watch started (running every minute)",
		"threshold", j.threshold.String())
	return nil
}

// Stop stops the watch job.
func (j *DelayedParcelWatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delayed parcel watch stopped")
}
