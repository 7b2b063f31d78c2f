// File: beautyspa/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"beautyspa/config"
	"beautyspa/cron"
	"beautyspa/database"
	appointmentRepo "beautyspa/database/repository/appointment"
	scheduleRepo "beautyspa/database/repository/schedule"
	serviceRepo "beautyspa/database/repository/service"
	staffRepo "beautyspa/database/repository/staff"
	timeslotRepo "beautyspa/database/repository/timeslot"
	"beautyspa/handlers"
	"beautyspa/middleware"
	"beautyspa/routes"
	"beautyspa/services/appointment"
	"beautyspa/services/booking"
	"beautyspa/services/catalog"
	"beautyspa/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	svcRepo := serviceRepo.NewMongoServiceRepo()
	slotRepo := timeslotRepo.NewMongoTimeSlotRepo()
	rosterRepo := staffRepo.NewMongoStaffRepo()
	workRepo := scheduleRepo.NewMongoScheduleRepo()
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()

	// services.
	catalogService := catalog.NewDefaultCatalogService(svcRepo, slotRepo, apptRepo, logger)
	appointmentService := appointment.NewDefaultAppointmentService(apptRepo, logger)

	resolver := &booking.DefaultStaffResolver{
		Staff:     rosterRepo,
		Schedules: workRepo,
		Skills:    booking.NewSkillMatcher(logger),
		Availability: &booking.AvailabilityChecker{
			Conflicts: &booking.RepoConflictChecker{Repo: apptRepo},
			Logger:    logger,
		},
		Config: booking.ResolutionConfig{
			ScheduleFiltering:    config.AppConfig.ScheduleFiltering,
			ShiftFiltering:       config.AppConfig.ShiftFiltering,
			StrictSkillFiltering: config.AppConfig.StrictSkillFiltering,
			DurationMinutes:      config.AppConfig.DefaultDurationMinutes,
		},
		Logger: logger,
	}

	sessionService := &booking.DefaultBookingSessionService{
		Resolver:        resolver,
		Services:        svcRepo,
		Slots:           slotRepo,
		Capacity:        catalogService,
		Appointments:    apptRepo,
		Presenter:       booking.OrderFromName(config.AppConfig.PresentationOrder),
		Cache:           utils.GetSessionCacheClient(),
		SessionTTL:      time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute,
		Cooldown:        time.Duration(config.AppConfig.ConfirmCooldownSeconds) * time.Second,
		DurationMinutes: config.AppConfig.DefaultDurationMinutes,
		Logger:          logger,
	}

	// handlers.
	handlerBundle := &routes.HandlerBundle{
		Booking:     handlers.NewBookingHandler(sessionService, logger),
		Catalog:     handlers.NewCatalogHandler(catalogService, logger),
		Appointment: handlers.NewAppointmentHandler(appointmentService, logger),
	}
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetCacheClient(), utils.GetSessionCacheClient(), database.MongoClient)
	cron.InitMaintenanceWorker(apptRepo)

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
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
