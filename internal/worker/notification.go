package worker

import (
	"context"
	"fmt"
	"nextfund-ledger/internal/config"
	"nextfund-ledger/internal/database"
	"nextfund-ledger/internal/notify"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// NotificationWorker consumes the notification queue and publishes each
// notification to the user's Redis channel.
type NotificationWorker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
	logger zerolog.Logger
}

func NewNotificationWorker(redisCfg config.RedisConfig, concurrency int, handler *notify.DeliveryHandler, logger zerolog.Logger) *NotificationWorker {
	server := asynq.NewServer(
		database.AsynqRedisOpt(redisCfg),
		asynq.Config{
			Concurrency:    concurrency,
			RetryDelayFunc: asynq.DefaultRetryDelayFunc,
			Queues: map[string]int{
				notify.Queue: 1,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Error().Err(err).Str("task_type", task.Type()).Msg("notification delivery failed")
			}),
			Logger: asynqLogger{logger: logger},
		},
	)

	mux := asynq.NewServeMux()
	mux.Handle(notify.TypeDeliver, handler)

	return &NotificationWorker{
		server: server,
		mux:    mux,
		logger: logger,
	}
}

func (w *NotificationWorker) Start() error {
	if err := w.server.Start(w.mux); err != nil {
		return err
	}
	w.logger.Info().Str("queue", notify.Queue).Msg("Notification worker started")
	return nil
}

func (w *NotificationWorker) Stop() {
	w.server.Shutdown()
	w.logger.Info().Msg("Notification worker stopped")
}

// asynqLogger routes asynq's internal logs through zerolog.
type asynqLogger struct {
	logger zerolog.Logger
}

func (l asynqLogger) Debug(args ...interface{}) { l.logger.Debug().Msg(fmt.Sprint(args...)) }
func (l asynqLogger) Info(args ...interface{})  { l.logger.Info().Msg(fmt.Sprint(args...)) }
func (l asynqLogger) Warn(args ...interface{})  { l.logger.Warn().Msg(fmt.Sprint(args...)) }
func (l asynqLogger) Error(args ...interface{}) { l.logger.Error().Msg(fmt.Sprint(args...)) }
func (l asynqLogger) Fatal(args ...interface{}) { l.logger.Fatal().Msg(fmt.Sprint(args...)) }
