// File: lexbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"lexbook/catalog"
	"lexbook/config"
	"lexbook/cron"
	"lexbook/handlers"
	"lexbook/ledger"
	"lexbook/middleware"
	"lexbook/models"
	"lexbook/routes"
	"lexbook/services/booking"
	"lexbook/services/tasks"
	"lexbook/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Catalog and ledger.
	repo, err := catalog.Load(config.AppConfig.CatalogPath)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to load catalog: %v", err)
	}
	led := ledger.NewInMemoryLedger()

	// Reminder queue.
	redisOpt := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
	reminders := tasks.NewAsynqReminderDispatcher(redisOpt)
	defer reminders.Close()

	// Booking engine.
	engine := &booking.DefaultBookingEngine{
		Catalog:  repo,
		Ledger:   led,
		Calendar: booking.NewBusinessCalendar(models.DefaultBusinessHours()),
		Policy: booking.EmergencyPolicy{
			ReservedSlotsPerDay: config.AppConfig.EmergencyReservedPerDay,
			MinNoticeMinutes:    config.AppConfig.MinNoticeMinutes,
		},
		Payments:                 &booking.SimulatedPaymentHandler{Logger: logger},
		CalSync:                  &booking.LoggingCalendarSync{Logger: logger},
		Reminders:                reminders,
		Clock:                    booking.SystemClock(),
		StrideMinutes:            config.AppConfig.SlotStrideMinutes,
		NextAvailableHorizonDays: config.AppConfig.NextAvailableHorizonDays,
	}

	// Background workers: reminder delivery and the lifecycle sweep.
	cron.InitReminderWorker(func(ctx context.Context, intent models.ReminderIntent) error {
		logger.Info("reminder fired",
			zap.String("reminderID", intent.ReminderID),
			zap.String("bookingID", intent.BookingID),
			zap.String("title", intent.Title))
		return nil
	})
	sweeper, err := cron.StartLifecycleSweep(engine, led, booking.SystemClock())
	if err != nil {
		logger.Sugar().Fatalf("main: failed to start lifecycle sweep: %v", err)
	}
	defer sweeper.Stop()

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	bookingHandler := handlers.NewBookingHandler(engine, logger)
	serviceHandler := handlers.NewServiceHandler(repo)
	routes.RegisterRoutes(router, bookingHandler, serviceHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
