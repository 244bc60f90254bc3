package commands

import (
	"context"
	"log/slog"
	"time"

	"opsboard/internal/core/domain/model/activity"
	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/notification"
	"opsboard/internal/core/domain/services"
)

// emitter persists notification and activity side effects for command
// handlers. Emission is best-effort: it runs in its own transaction after the
// primary write has committed, and any failure is logged and swallowed so the
// triggering operation still succeeds.
type emitter struct {
	uowFactory EmitUoWFactory
	logger     *slog.Logger
}

func newEmitter(uowFactory EmitUoWFactory, logger *slog.Logger) emitter {
	return emitter{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// emit persists the notification draft and, when description is non-empty, an
// activity feed entry alongside it.
func (e emitter) emit(
	ctx context.Context,
	draft services.NotificationDraft,
	description string,
	activityType activity.Type,
) {
	if err := e.persist(ctx, &draft, description, activityType); err != nil {
		e.logger.Warn("notification emit failed",
			slog.String("title", draft.Title),
			slog.Any("error", err))
	}
}

// recordActivity persists an activity feed entry with no notification.
func (e emitter) recordActivity(ctx context.Context, description string, activityType activity.Type) {
	if err := e.persist(ctx, nil, description, activityType); err != nil {
		e.logger.Warn("activity record failed",
			slog.String("description", description),
			slog.Any("error", err))
	}
}

func (e emitter) persist(
	ctx context.Context,
	draft *services.NotificationDraft,
	description string,
	activityType activity.Type,
) error {
	uow := e.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := time.Now().UTC()

	if draft != nil {
		n, err := notification.NewNotification(kernel.NewUUID(), draft.Title, draft.Message, draft.Kind, now)
		if err != nil {
			return err
		}

		if err = uow.NotificationRepository().Add(ctx, n); err != nil {
			return err
		}
	}

	if description != "" {
		a, err := activity.NewActivity(kernel.NewUUID(), description, activityType, now)
		if err != nil {
			return err
		}

		if err = uow.ActivityRepository().Add(ctx, a); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
