package tasks

import (
	"context"
	"encoding/json"
	"time"

	"clinicore/config"
	"clinicore/models"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

// NewReminderTask builds the asynq task carrying an appointment
// reminder, scheduled to fire at the given time.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ReminderScheduler enqueues appointment reminder tasks.
type ReminderScheduler interface {
	Schedule(ctx context.Context, payload models.ReminderPayload, fireAt time.Time) error
}

// AsynqReminderScheduler schedules reminders on the shared Redis queue.
type AsynqReminderScheduler struct {
	client *asynq.Client
}

// NewAsynqReminderScheduler constructs a scheduler over the configured
// reminder queue.
func NewAsynqReminderScheduler() *AsynqReminderScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	return &AsynqReminderScheduler{client: client}
}

func (s *AsynqReminderScheduler) Schedule(ctx context.Context, payload models.ReminderPayload, fireAt time.Time) error {
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	_, err = s.client.EnqueueContext(ctx, task, opts...)
	return err
}

// Close releases the underlying queue connection.
func (s *AsynqReminderScheduler) Close() error {
	return s.client.Close()
}
