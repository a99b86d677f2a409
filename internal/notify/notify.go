// Package notify delivers user notifications after a balance change has been
// committed. Notifications are queued with asynq and fanned out to connected
// clients through Redis pub/sub.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"nextfund-ledger/internal/model"
	"time"

	"github.com/hibiken/asynq"
)

const (
	TypeDeliver = "notification:deliver"
	Queue       = "notifications"
)

// Notifier queues a notification for delivery.
type Notifier interface {
	Notify(ctx context.Context, n *model.Notification) error
}

// Subscriber streams the notifications of one user until ctx is done.
type Subscriber interface {
	Subscribe(ctx context.Context, userID int64) (<-chan *model.Notification, error)
}

// Channel is the pub/sub channel of a user.
func Channel(userID int64) string {
	return fmt.Sprintf("notifications:user:%d", userID)
}

// NewDeliverTask builds the delivery task. The task id is the notification id,
// which is derived from the ledger event, so a repeated enqueue is rejected by asynq.
func NewDeliverTask(n *model.Notification) (*asynq.Task, error) {
	payload, err := json.Marshal(n)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeDeliver, payload,
		asynq.TaskID(n.ID),
		asynq.MaxRetry(5),
		asynq.Timeout(10*time.Second),
		asynq.Queue(Queue)), nil
}
