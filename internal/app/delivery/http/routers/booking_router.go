package routers

import (
	"clinibook-service/internal/app/delivery/http/controllers"
	"clinibook-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, middlewares *middlewares.Middlewares, bookingController *controllers.BookingController) {
	router.Use(middlewares.Authenticate)

	router.Post("/drafts", bookingController.CreateDraft)
	router.Route("/drafts/{draftID}", func(r chi.Router) {
		r.Get("/", bookingController.GetDraft)
		r.Patch("/", bookingController.UpdateDraftField)
		r.Get("/availability", bookingController.GetAvailability)
		r.Post("/next", bookingController.NextStage)
		r.Post("/back", bookingController.PreviousStage)
		r.Post("/submit", bookingController.Submit)
		r.Post("/referral", bookingController.AttachReferral)
	})
}
