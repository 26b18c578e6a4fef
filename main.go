// File: clinicore/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinicore/config"
	"clinicore/cron"
	"clinicore/database"
	appointmentRepoPkg "clinicore/database/repository/appointment"
	availabilityRepoPkg "clinicore/database/repository/availability"
	doctorRepoPkg "clinicore/database/repository/doctor"
	documentRepoPkg "clinicore/database/repository/document"
	patientRepoPkg "clinicore/database/repository/patient"
	"clinicore/handlers"
	"clinicore/middleware"
	"clinicore/routes"
	"clinicore/services/appointment"
	"clinicore/services/availability"
	"clinicore/services/dashboard"
	"clinicore/services/doctor"
	"clinicore/services/document"
	ai "clinicore/services/intelligence"
	"clinicore/services/notification"
	"clinicore/services/patient"
	"clinicore/services/tasks"
	"clinicore/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	availRepo := availabilityRepoPkg.NewMongoAvailabilityRepo()
	apptRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	patRepo := patientRepoPkg.NewMongoPatientRepo()
	docRepo := documentRepoPkg.NewMongoDocumentRepo()
	drRepo := doctorRepoPkg.NewMongoDoctorRepo()

	// services.
	availabilitySvc := availability.NewAvailabilityService(availRepo)

	meetLinks, err := appointment.NewCalendarMeetLinkProvider(context.Background())
	if err != nil {
		logger.Sugar().Warnf("main: meet link provider unavailable: %v", err)
	}

	reminderScheduler := tasks.NewAsynqReminderScheduler()
	defer reminderScheduler.Close()

	appointmentSvc := &appointment.DefaultAppointmentService{
		Repo:         apptRepo,
		Patients:     patRepo,
		Availability: availabilitySvc,
		Reminders:    reminderScheduler,
		ReminderLead: time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute,
	}
	if meetLinks != nil {
		appointmentSvc.MeetLinks = meetLinks
	}

	patientSvc := &patient.DefaultPatientService{Repo: patRepo}
	documentSvc := &document.DefaultDocumentService{
		Repo:     docRepo,
		Patients: patRepo,
		Storage:  cloudinaryStorageService,
	}
	dashboardSvc := &dashboard.DefaultDashboardService{
		Patients:     patRepo,
		Appointments: apptRepo,
	}
	doctorSvc := &doctor.DefaultDoctorService{Repo: drRepo}

	ctxStore := ai.NewRedisContextStore(utils.GetAIContextCacheClient(), 30*time.Minute)
	assistantSvc := ai.NewDefaultAssistantService(config.AppConfig.GeminiAPIKey, ctxStore)

	notificationSvc, err := notification.NewDefaultNotificationService(patRepo, drRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}
	cron.InitReminderWorker(notificationSvc, apptRepo)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAIContextCacheClient()},
		database.MongoClient,
	)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		DoctorRepo:   drRepo,
		Doctor:       handlers.NewDoctorHandler(doctorSvc),
		Availability: handlers.NewAvailabilityHandler(availabilitySvc),
		Appointment:  handlers.NewAppointmentHandler(appointmentSvc),
		Patient:      handlers.NewPatientHandler(patientSvc),
		Document:     handlers.NewDocumentHandler(documentSvc),
		Dashboard:    handlers.NewDashboardHandler(dashboardSvc),
		Assistant:    handlers.NewAssistantHandler(assistantSvc),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
