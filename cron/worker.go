package cron

import (
	"context"
	"fmt"
	"time"

	"vetbuddy/config"
	"vetbuddy/services/notification"
	"vetbuddy/services/tasks"
	"vetbuddy/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// ReminderRedisOpt is the asynq connection shared by the reminder client and worker.
func ReminderRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

// InitReminderWorker starts the reminder worker in the background and returns the server
// so the caller can shut it down.
func InitReminderWorker(notifSvc notification.NotificationService) *asynq.Server {
	logger := utils.GetLogger()

	srv := asynq.NewServer(
		ReminderRedisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(notifSvc))

	go func() {
		logger.Info("starting reminder worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("reminder worker failed to start",
				zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Error("reminder worker giving up; reminders will not be delivered")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()

	return srv
}

func handleReminderTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		p, err := tasks.ParseReminder(task)
		if err != nil {
			logger.Error("dropping reminder", zap.Error(err))
			// retrying a malformed payload cannot succeed
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}
		if p.ClinicID == "" {
			logger.Warn("reminder without clinic, dropping", zap.String("bookingID", p.BookingID))
			return nil
		}

		logger.Info("triggering reminder",
			zap.String("bookingID", p.BookingID), zap.String("clinicID", p.ClinicID))

		data := map[string]string{
			"bookingId": p.BookingID,
			"fireDate":  p.FireDate,
		}
		if err := notifSvc.SendClinicPushNotification(ctx, p.ClinicID, p.Title, p.Body, data); err != nil {
			logger.Error("failed to send reminder", zap.String("bookingID", p.BookingID), zap.Error(err))
			return err
		}
		return nil
	}
}
