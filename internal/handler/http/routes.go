package http

import (
	"github.com/MKhiriev/fleet-tracker/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.root)
		r.Post("/register", h.register)
		r.Post("/token", h.token)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/users/me", h.me)

		r.Route("/reports", func(r chi.Router) {
			r.With(h.requireRole(models.RoleCaptain)).Post("/", h.createReport)
			r.Get("/", h.listReports)
			r.Get("/{id}", h.getReport)
			r.With(h.requireRole(models.RoleOperator)).Post("/{id}/approve", h.approveReport)
			r.With(h.requireRole(models.RoleOperator)).Post("/{id}/reject", h.rejectReport)
		})

		r.Route("/operator", func(r chi.Router) {
			r.Use(h.requireRole(models.RoleOperator))

			r.Get("/ships", h.listShips)
			r.Post("/ships", h.createShip)
			r.Put("/ships/{id}", h.updateShip)
			r.Delete("/ships/{id}", h.deleteShip)

			r.Get("/routes", h.listOperatorRoutes)
			r.Post("/routes", h.createRoute)
			r.Get("/routes/search", h.searchRoutes)
			r.Delete("/routes/{id}", h.deleteRoute)
			r.Post("/routes/{id}/fishing_spots", h.attachFishingSpots)

			r.Post("/catch", h.logCatch)
			r.Get("/catch/statistics", h.catchStatistics)

			r.Get("/captains", h.listCaptains)

			r.Get("/reports/standard", h.notImplemented)
			r.Get("/export", h.notImplemented)
		})

		r.Route("/captain", func(r chi.Router) {
			r.Use(h.requireRole(models.RoleCaptain))

			r.Get("/routes", h.listCaptainRoutes)

			r.Get("/fishing_spots", h.listFishingSpots)
			r.Post("/fishing_spots", h.createFishingSpot)
			r.Delete("/fishing_spots/{id}", h.deleteFishingSpot)
			r.Put("/fishing_spots/{id}/time", h.updateFishingSpotTimes)

			r.Post("/routes/{id}/comment", h.notImplemented)
			r.Post("/ships/{id}/status", h.notImplemented)
			r.Get("/reports/standard", h.notImplemented)
			r.Post("/reports/{id}/cancel", h.cancelReport)
		})
	})

	return router
}
