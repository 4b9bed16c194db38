package tasks

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"lexbook/models"
)

const TypeSendReminder = "reminder:send"

// NewReminderTask wraps a reminder intent as an asynq task scheduled for its
// fire time.
func NewReminderTask(intent models.ReminderIntent) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(intent)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(intent.FireAt)}

	return task, opts, nil
}

// AsynqReminderDispatcher enqueues reminder intents on the redis-backed
// queue; the worker in the cron package picks them up at fire time.
type AsynqReminderDispatcher struct {
	client *asynq.Client
}

func NewAsynqReminderDispatcher(redisOpt asynq.RedisClientOpt) *AsynqReminderDispatcher {
	return &AsynqReminderDispatcher{client: asynq.NewClient(redisOpt)}
}

func (d *AsynqReminderDispatcher) Dispatch(ctx context.Context, intent models.ReminderIntent) error {
	task, opts, err := NewReminderTask(intent)
	if err != nil {
		return err
	}
	enqueueCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	_, err = d.client.EnqueueContext(enqueueCtx, task, opts...)
	return err
}

func (d *AsynqReminderDispatcher) Close() error {
	return d.client.Close()
}
