package routers

import (
	"clinibook-service/internal/app/config"
	"clinibook-service/internal/app/delivery/http/controllers"
	"clinibook-service/internal/app/delivery/http/middlewares"
	"fmt"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/sirupsen/logrus"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	requestLogger *logrus.Logger,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	directoryController *controllers.DirectoryController,
	bookingController *controllers.BookingController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.RequestLogger(internalConfig.App, requestLogger))
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Route("/specialties", func(r chi.Router) {
				attachSpecialtyRoutes(r, directoryController)
			})

			r.Route("/doctors", func(r chi.Router) {
				attachDoctorRoutes(r, directoryController)
			})

			r.Route("/booking", func(r chi.Router) {
				attachBookingRoutes(r, middlewares, bookingController)
			})
		})
	})
}
