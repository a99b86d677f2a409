package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"nextfund-ledger/internal/model"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Publisher is the subset of *redis.Client used to fan out notifications.
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// DeliveryHandler publishes queued notifications to the user's channel.
type DeliveryHandler struct {
	publisher Publisher
	logger    zerolog.Logger
}

func NewDeliveryHandler(publisher Publisher, logger zerolog.Logger) *DeliveryHandler {
	return &DeliveryHandler{
		publisher: publisher,
		logger:    logger,
	}
}

// ProcessTask implements asynq.Handler.
func (h *DeliveryHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var n model.Notification
	if err := json.Unmarshal(t.Payload(), &n); err != nil {
		h.logger.Error().Err(err).Str("task_type", t.Type()).Msg("invalid notification payload")
		return fmt.Errorf("decode notification: %v: %w", err, asynq.SkipRetry)
	}

	receivers, err := h.publisher.Publish(ctx, Channel(n.UserID), t.Payload()).Result()
	if err != nil {
		return fmt.Errorf("publish notification %s: %w", n.ID, err)
	}

	h.logger.Debug().
		Str("notification_id", n.ID).
		Int64("user_id", n.UserID).
		Int64("receivers", receivers).
		Msg("notification delivered")
	return nil
}
