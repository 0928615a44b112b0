package jobs

import (
	"context"
	"log/slog"
	"time"

	"dinesmart/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

type purgeHandler interface {
	Handle(ctx context.Context, cmd commands.PurgeTerminalOrdersCommand) (int, error)
}

// TerminalOrderPurgeJob deletes Paid and Cancelled orders once they are older
// than the retention period.
type TerminalOrderPurgeJob struct {
	handler   purgeHandler
	schedule  string
	retention time.Duration
	timeout   time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewTerminalOrderPurgeJob creates the job. schedule is a six-field cron
// expression (seconds first), e.g. "0 */10 * * * *".
func NewTerminalOrderPurgeJob(
	handler purgeHandler,
	schedule string,
	retention time.Duration,
	logger *slog.Logger,
) *TerminalOrderPurgeJob {
	return &TerminalOrderPurgeJob{
		handler:   handler,
		schedule:  schedule,
		retention: retention,
		timeout:   time.Minute,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With("component", "terminal_order_purge_job"),
	}
}

// Start schedules the job.
func (j *TerminalOrderPurgeJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
		defer cancel()
		j.RunOnce(ctx)
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Terminal order purge job started", "schedule", j.schedule, "retention", j.retention)
	return nil
}

// RunOnce performs a single purge. Failures are logged; the next run retries.
func (j *TerminalOrderPurgeJob) RunOnce(ctx context.Context) {
	cmd, err := commands.NewPurgeTerminalOrdersCommand(j.retention)
	if err != nil {
		j.logger.ErrorContext(ctx, "Terminal order purge is misconfigured", "error", err)
		return
	}

	purged, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Terminal order purge failed", "purged", purged, "error", err)
		return
	}
	if purged > 0 {
		j.logger.InfoContext(ctx, "Terminal orders purged", "purged", purged)
	}
}

// Stop stops the scheduler and waits for a running purge to finish.
func (j *TerminalOrderPurgeJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Terminal order purge job stopped")
}
