package main

import (
	"clinibook-service/internal/app/config"
	"clinibook-service/internal/app/delivery/http/controllers"
	"clinibook-service/internal/app/delivery/http/middlewares"
	"clinibook-service/internal/app/delivery/http/routers"
	"clinibook-service/internal/app/drivers/database"
	"clinibook-service/internal/app/drivers/logger"
	"clinibook-service/internal/app/drivers/messaging"
	"clinibook-service/internal/app/drivers/storage"
	"clinibook-service/internal/app/services/clinic"
	"clinibook-service/internal/app/services/core/auth"
	"clinibook-service/internal/app/services/core/booking"
	"clinibook-service/internal/app/services/core/directory"
	"clinibook-service/internal/app/services/core/drafts"
	"clinibook-service/internal/app/services/core/session"
	"clinibook-service/internal/app/services/shared/notifier"
	"clinibook-service/internal/app/services/shared/redis"
	sharedstorage "clinibook-service/internal/app/services/shared/storage"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	requestLogger := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQConn := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQConn,
		Minio:          minioClient,
		Logger:         zapLogger,
		RequestLogger:  requestLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	zapLogger.Info("Waiting for pending requests to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	zapLogger.Info("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// Sessions
	sessionService := session.NewSessionService(redisRepository, bootstrap.InternalConfig)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, bootstrap.InternalConfig)

	// Clinic backend clients
	clinicRestClient := clinic.NewRestClient(&bootstrap.InternalConfig.Clinic)
	doctorClient := clinic.NewDoctorRestClient(clinicRestClient, bootstrap.Logger)
	specialtyClient := clinic.NewSpecialtyRestClient(clinicRestClient)
	appointmentClient := clinic.NewAppointmentRestClient(clinicRestClient)

	// Shared services
	storageService := sharedstorage.NewMinioStorage(bootstrap.Minio, bootstrap.InternalConfig)
	notificationPublisher, err := notifier.NewRabbitMQPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig, bootstrap.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize notification publisher: %v", err)
	}

	// Auth
	authUsecase := auth.NewAuthUsecase(sessionService, bootstrap.InternalConfig, bootstrap.Logger)
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase)

	// Directory
	directoryUsecase := directory.NewDirectoryUsecase(doctorClient, specialtyClient, bootstrap.Logger)
	directoryController := controllers.NewDirectoryController(bootstrap.Logger, directoryUsecase)

	// Booking
	draftRepository := drafts.NewDraftRepository(redisRepository, bootstrap.InternalConfig)
	bookingUsecase := booking.NewBookingUsecase(
		draftRepository,
		doctorClient,
		appointmentClient,
		notificationPublisher,
		storageService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	bookingController := controllers.NewBookingController(bootstrap.Logger, bookingUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		bootstrap.RequestLogger,
		middlewares,
		authController,
		directoryController,
		bookingController,
	)
}
