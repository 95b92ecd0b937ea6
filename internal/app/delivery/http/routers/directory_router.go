package routers

import (
	"clinibook-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachSpecialtyRoutes(router chi.Router, directoryController *controllers.DirectoryController) {
	router.Get("/", directoryController.GetSpecialties)
}

func attachDoctorRoutes(router chi.Router, directoryController *controllers.DirectoryController) {
	router.Get("/", directoryController.GetDoctors)
}
