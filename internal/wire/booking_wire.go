package wire

import (
	"tour-booking/internal/adaptor"
	"tour-booking/internal/data/repository"
	"tour-booking/pkg/middleware"
	"tour-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireBooking configures booking routes
func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/bookings", func(r chi.Router) {
		r.Use(middleware.Auth(repo.User, config.JWT.Secret, log))

		// ==================== PROTECTED ROUTES ====================
		r.Post("/", bookingHandler.CreateBooking)
		r.Get("/my", bookingHandler.GetMyBookings)

		// ==================== ADMIN ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.Admin(log))

			r.Get("/all", bookingHandler.GetAllBookings)
			r.Put("/{id}/status", bookingHandler.UpdateBookingStatus)
			r.Delete("/{id}", bookingHandler.DeleteBooking)
		})
	})
}
