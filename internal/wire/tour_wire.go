package wire

import (
	"tour-booking/internal/adaptor"
	"tour-booking/internal/data/repository"
	"tour-booking/pkg/middleware"
	"tour-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireTour configures public tour browsing and admin tour management routes
func wireTour(
	r chi.Router,
	tourHandler *adaptor.TourHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Optional auth lets admins see inactive tours in the listing
	r.Group(func(r chi.Router) {
		r.Use(middleware.OptionalAuth(repo.User, config.JWT.Secret, log))

		r.Get("/tours", tourHandler.GetTours)
		r.Get("/tours/{id}", tourHandler.GetTourByID)
	})

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(repo.User, config.JWT.Secret, log))
		r.Use(middleware.Admin(log))

		r.Post("/tours", tourHandler.CreateTour)
		r.Put("/tours/{id}", tourHandler.UpdateTour)
		r.Delete("/tours/{id}", tourHandler.DeleteTour)
	})
}
