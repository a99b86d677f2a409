package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"nextfund-ledger/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Ensure implementation satisfies interface at compile time
var _ Subscriber = (*RedisSubscriber)(nil)

type RedisSubscriber struct {
	rdb    *redis.Client
	logger zerolog.Logger
}

func NewRedisSubscriber(rdb *redis.Client, logger zerolog.Logger) *RedisSubscriber {
	return &RedisSubscriber{
		rdb:    rdb,
		logger: logger,
	}
}

// Subscribe returns a channel that is closed when ctx is done or the subscription drops.
func (s *RedisSubscriber) Subscribe(ctx context.Context, userID int64) (<-chan *model.Notification, error) {
	pubsub := s.rdb.Subscribe(ctx, Channel(userID))
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("subscribe %s: %w", Channel(userID), err)
	}

	out := make(chan *model.Notification)
	go func() {
		defer close(out)
		defer pubsub.Close()

		messages := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				n := &model.Notification{}
				if err := json.Unmarshal([]byte(msg.Payload), n); err != nil {
					s.logger.Warn().Err(err).Int64("user_id", userID).Msg("dropping malformed notification")
					continue
				}
				select {
				case out <- n:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
