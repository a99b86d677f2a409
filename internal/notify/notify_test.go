package notify

import (
	"context"
	"encoding/json"
	"errors"
	"nextfund-ledger/internal/model"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEnqueuer struct {
	tasks []*asynq.Task
	err   error
}

func (f *fakeEnqueuer) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{ID: "id", Queue: Queue, Type: task.Type()}, nil
}

type fakePublisher struct {
	channel string
	message interface{}
	err     error
}

func (f *fakePublisher) Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd {
	f.channel = channel
	f.message = message
	return redis.NewIntResult(1, f.err)
}

func TestChannel(t *testing.T) {
	assert.Equal(t, "notifications:user:42", Channel(42))
}

func TestAsynqNotifier_Notify(t *testing.T) {
	enq := &fakeEnqueuer{}
	notifier := NewAsynqNotifier(enq, zerolog.Nop())

	err := notifier.Notify(context.Background(), &model.Notification{
		ID:     "pix:abc",
		UserID: 7,
		Kind:   model.NotifyDepositApproved,
		Amount: "50.00",
	})

	require.NoError(t, err)
	require.Len(t, enq.tasks, 1)
	assert.Equal(t, TypeDeliver, enq.tasks[0].Type())

	var got model.Notification
	require.NoError(t, json.Unmarshal(enq.tasks[0].Payload(), &got))
	assert.Equal(t, int64(7), got.UserID)
	assert.Equal(t, model.NotifyDepositApproved, got.Kind)
}

func TestAsynqNotifier_IDConflictIsNotAnError(t *testing.T) {
	notifier := NewAsynqNotifier(&fakeEnqueuer{err: asynq.ErrTaskIDConflict}, zerolog.Nop())

	err := notifier.Notify(context.Background(), &model.Notification{ID: "reward:1:2", UserID: 1})

	assert.NoError(t, err)
}

func TestAsynqNotifier_EnqueueFailure(t *testing.T) {
	notifier := NewAsynqNotifier(&fakeEnqueuer{err: errors.New("redis down")}, zerolog.Nop())

	err := notifier.Notify(context.Background(), &model.Notification{ID: "vip:x", UserID: 1})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis down")
}

func TestAsynqNotifier_RequiresID(t *testing.T) {
	notifier := NewAsynqNotifier(&fakeEnqueuer{}, zerolog.Nop())

	assert.Error(t, notifier.Notify(context.Background(), &model.Notification{UserID: 1}))
}

func TestDeliveryHandler_PublishesToUserChannel(t *testing.T) {
	pub := &fakePublisher{}
	handler := NewDeliveryHandler(pub, zerolog.Nop())

	task, err := NewDeliverTask(&model.Notification{ID: "pix:abc", UserID: 9, Kind: model.NotifyDepositApproved})
	require.NoError(t, err)

	require.NoError(t, handler.ProcessTask(context.Background(), task))
	assert.Equal(t, "notifications:user:9", pub.channel)
	assert.Equal(t, task.Payload(), pub.message)
}

func TestDeliveryHandler_MalformedPayloadSkipsRetry(t *testing.T) {
	handler := NewDeliveryHandler(&fakePublisher{}, zerolog.Nop())

	err := handler.ProcessTask(context.Background(), asynq.NewTask(TypeDeliver, []byte("{")))

	assert.ErrorIs(t, err, asynq.SkipRetry)
}

func TestDeliveryHandler_PublishFailureIsRetried(t *testing.T) {
	handler := NewDeliveryHandler(&fakePublisher{err: errors.New("connection reset")}, zerolog.Nop())
	task, err := NewDeliverTask(&model.Notification{ID: "pix:abc", UserID: 9})
	require.NoError(t, err)

	err = handler.ProcessTask(context.Background(), task)

	require.Error(t, err)
	assert.NotErrorIs(t, err, asynq.SkipRetry)
}
