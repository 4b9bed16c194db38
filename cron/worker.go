package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"lexbook/config"
	"lexbook/models"
	"lexbook/services/booking"
	"lexbook/services/tasks"
	"lexbook/utils"
)

// ReminderSender delivers a due reminder; the delivery channel (email, SMS,
// push) is an external collaborator concern.
type ReminderSender func(ctx context.Context, intent models.ReminderIntent) error

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(send ReminderSender) {
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
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(send))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(send ReminderSender) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var intent models.ReminderIntent
		if err := json.Unmarshal(task.Payload(), &intent); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		if err := send(ctx, intent); err != nil {
			log.Printf("[ReminderHandler] failed to deliver reminder %s for booking %s: %v",
				intent.ReminderID, intent.BookingID, err)
			return err
		}
		return nil
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

// StartLifecycleSweep runs the periodic ledger sweep: confirmed bookings
// whose end time has passed become completed, and pending bookings whose
// payment failed are cancelled once the grace period expires. Transitions go
// through the engine so the state machine stays authoritative.
func StartLifecycleSweep(engine booking.BookingEngine, led BookingSnapshotter, clock booking.Clock) (*cron.Cron, error) {
	c := cron.New()

	_, err := c.AddFunc("@every 10m", func() {
		RunLifecycleSweep(engine, led, clock.Now())
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	return c, nil
}

// BookingSnapshotter is the slice of the ledger the sweep needs.
type BookingSnapshotter interface {
	Snapshot() []models.Booking
}

// RunLifecycleSweep executes one sweep pass at the given instant.
func RunLifecycleSweep(engine booking.BookingEngine, led BookingSnapshotter, now time.Time) {
	logger := utils.GetLogger()
	grace := time.Duration(config.AppConfig.PaymentGraceMinutes) * time.Minute
	ctx := context.Background()

	for _, b := range led.Snapshot() {
		switch {
		case b.Status == models.StatusConfirmed && b.EndTime.Before(now):
			if _, err := engine.UpdateBookingStatus(ctx, b.ID, models.StatusCompleted, ""); err != nil {
				logger.Warn("sweep: completing booking failed",
					zap.String("bookingID", b.ID), zap.Error(err))
			}
		case b.Status == models.StatusPending &&
			b.PaymentStatus == models.PaymentFailed &&
			now.Sub(b.UpdatedAt) > grace:
			if _, err := engine.UpdateBookingStatus(ctx, b.ID, models.StatusCancelled, "payment not completed within grace period"); err != nil {
				logger.Warn("sweep: cancelling unpaid booking failed",
					zap.String("bookingID", b.ID), zap.Error(err))
			}
		}
	}
}
