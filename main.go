package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vetbuddy/config"
	"vetbuddy/cron"
	"vetbuddy/database"
	bookingRepo "vetbuddy/database/repository/booking"
	clinicRepo "vetbuddy/database/repository/clinic"
	"vetbuddy/handlers"
	"vetbuddy/middleware"
	"vetbuddy/routes"
	"vetbuddy/services/availability"
	"vetbuddy/services/booking"
	"vetbuddy/services/notification"
	"vetbuddy/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	database.InitDB()
	authCache, err := utils.GetAuthCacheClient()
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	if err := utils.FirebaseInit(); err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	// repositories.
	clinics := clinicRepo.NewMongoClinicRepo()
	bookings := bookingRepo.NewMongoBookingRepo()
	for name, ensure := range map[string]func() error{
		"clinics":  clinics.EnsureIndexes,
		"bookings": bookings.EnsureIndexes,
	} {
		if err := ensure(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure %s indexes: %v", name, err)
		}
	}

	// services.
	location := config.ClinicLocation()

	notificationService := &notification.DefaultNotificationService{Clinics: clinics}
	if utils.FCMClient != nil {
		notificationService.Sender = utils.FCMClient
	}

	availabilityService := &availability.DefaultAvailabilityService{
		Clinics:  clinics,
		Bookings: bookings,
		Location: location,
	}

	reminderClient := asynq.NewClient(cron.ReminderRedisOpt())
	defer reminderClient.Close()

	bookingService := &booking.DefaultBookingService{
		Clinics:      clinics,
		Bookings:     bookings,
		Availability: availabilityService,
		Notification: notificationService,
		Reminders:    reminderClient,
		ReminderLead: time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute,
		Location:     location,
	}

	reminderWorker := cron.InitReminderWorker(notificationService)

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	utils.StartHealthMonitor(monitorCtx, authCache, database.MongoClient)

	handlerBundle := &handlers.HandlerBundle{
		ClinicRepo:   clinics,
		AuthCache:    authCache,
		Availability: &handlers.AvailabilityHandler{Service: availabilityService},
		Booking:      &handlers.BookingHandler{Service: bookingService},
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))
	routes.RegisterRoutes(router, handlerBundle)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	reminderWorker.Shutdown()
	if err := database.Disconnect(ctx); err != nil {
		logger.Sugar().Warnf("main: mongo disconnect: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
