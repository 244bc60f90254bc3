package jobs

import (
	"context"
	"log/slog"
	"time"

	"opsboard/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// NotificationRetentionJob manages the scheduled sweep of old read
// notifications. Runs hourly; unread notifications are never removed.
type NotificationRetentionJob struct {
	handler   commands.PurgeNotificationsCommandHandler
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewNotificationRetentionJob creates a new job for sweeping read
// notifications older than the retention window.
func NewNotificationRetentionJob(
	handler commands.PurgeNotificationsCommandHandler,
	retention time.Duration,
	logger *slog.Logger,
) *NotificationRetentionJob {
	return &NotificationRetentionJob{
		handler:   handler,
		retention: retention,
		cron:      cron.New(),
		logger:    logger.With("component", "notification_retention_job"),
	}
}

// Start begins the retention job to run at the top of every hour.
func (j *NotificationRetentionJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewPurgeNotificationsCommand(j.retention)
		if err != nil {
			j.logger.ErrorContext(ctx, "Notification retention job misconfigured", "error", err)
			return
		}

		removed, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Notification retention sweep failed", "error", err)
			return
		}

		if removed > 0 {
			j.logger.InfoContext(ctx, "Notification retention sweep completed", "removed", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification retention job started (running hourly)",
		"retention", j.retention)
	return nil
}

// Stop stops the retention job.
func (j *NotificationRetentionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification retention job stopped")
}
