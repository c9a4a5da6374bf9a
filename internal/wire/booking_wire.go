package wire

import (
	"car-rental/internal/adaptor"
	"car-rental/internal/data/entity"
	"car-rental/internal/data/repository"
	"car-rental/pkg/middleware"
	"car-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Route("/bookings", func(r chi.Router) {
		r.Use(middleware.Auth(repo.User, config.JWT, log))

		// GET /api/v1/bookings/{id} - booking details, any authenticated caller
		r.Get("/{id}", bookingHandler.GetBooking)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRoles(log, entity.RoleAdmin, entity.RoleUser))

			// GET /api/v1/bookings - own bookings, or every booking for admins
			r.Get("/", bookingHandler.GetBookings)

			// PUT /api/v1/bookings/{id} - reschedule (owner-or-admin)
			r.Put("/{id}", bookingHandler.UpdateBooking)

			// DELETE /api/v1/bookings/{id} - cancel (owner-or-admin)
			r.Delete("/{id}", bookingHandler.DeleteBooking)

			// GET /api/v1/bookings/{id}/status - current lifecycle status
			r.Get("/{id}/status", bookingHandler.GetBookingStatus)

			// PATCH /api/v1/bookings/{id}/status - relabel the lifecycle status
			r.Patch("/{id}/status", bookingHandler.UpdateBookingStatus)
		})
	})
}
