package notify

import (
	"context"
	"errors"
	"fmt"
	"nextfund-ledger/internal/model"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// Enqueuer is the subset of *asynq.Client used by AsynqNotifier.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Ensure implementation satisfies interface at compile time
var _ Notifier = (*AsynqNotifier)(nil)

type AsynqNotifier struct {
	client Enqueuer
	logger zerolog.Logger
}

func NewAsynqNotifier(client Enqueuer, logger zerolog.Logger) *AsynqNotifier {
	return &AsynqNotifier{
		client: client,
		logger: logger,
	}
}

// Notify enqueues the notification. An id conflict means it was already queued.
func (n *AsynqNotifier) Notify(ctx context.Context, notification *model.Notification) error {
	if notification.ID == "" {
		return errors.New("notification without id")
	}

	task, err := NewDeliverTask(notification)
	if err != nil {
		return fmt.Errorf("build notification task: %w", err)
	}

	info, err := n.client.EnqueueContext(ctx, task)
	if err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) || errors.Is(err, asynq.ErrDuplicateTask) {
			n.logger.Debug().Str("notification_id", notification.ID).Msg("notification already queued")
			return nil
		}
		return fmt.Errorf("enqueue notification: %w", err)
	}

	n.logger.Debug().
		Str("notification_id", notification.ID).
		Int64("user_id", notification.UserID).
		Str("kind", string(notification.Kind)).
		Str("queue", info.Queue).
		Msg("notification queued")
	return nil
}
