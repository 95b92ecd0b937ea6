package routers

import (
	"clinibook-service/internal/app/delivery/http/controllers"
	"clinibook-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	router.Post("/session", authController.CreateSession)
	router.With(middlewares.Authenticate).Delete("/session", authController.Logout)
}
