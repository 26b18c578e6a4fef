package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"clinicore/config"
	appointmentRepo "clinicore/database/repository/appointment"
	"clinicore/models"
	"clinicore/services/notification"
	"clinicore/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitReminderWorker runs the async reminder worker in the background.
func InitReminderWorker(notifSvc notification.NotificationService, apptRepo appointmentRepo.AppointmentRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(notifSvc, apptRepo))

	go monitorRedisConnection()

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(notifSvc notification.NotificationService, apptRepo appointmentRepo.AppointmentRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		log.Printf("[ReminderHandler] triggering reminder for appointment %s -> %s", p.AppointmentID, p.Title)

		data := map[string]string{
			"appointmentId": p.AppointmentID,
			"fireDate":      p.FireDate,
			"title":         p.Title,
			"body":          p.Body,
		}

		err := notifSvc.SendPatientPushNotification(ctx, p.PatientID, p.Title, p.Body, data)

		status := models.NotificationSent
		if err != nil {
			status = models.NotificationFailed
			log.Printf("[ReminderHandler] failed to send notification: %v", err)
		}
		if updErr := apptRepo.UpdateFields(ctx, p.AppointmentID, map[string]interface{}{
			"notification_status": status,
		}); updErr != nil {
			log.Printf("[ReminderHandler] failed to record notification status: %v", updErr)
		}
		return err
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReminderWorker] redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
