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

func wireCarProvider(
	r chi.Router,
	providerHandler *adaptor.CarProviderHandler,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	auth := middleware.Auth(repo.User, config.JWT, log)

	r.Route("/carProviders", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		// GET /api/v1/carProviders - paginated catalogue
		r.Get("/", providerHandler.GetCarProviders)

		// GET /api/v1/carProviders/renter/{renterId} - a renter's fleet
		r.Get("/renter/{renterId}", providerHandler.GetRenterCars)

		// GET /api/v1/carProviders/{id} - provider details
		r.Get("/{id}", providerHandler.GetCarProvider)

		// GET /api/v1/carProviders/{renterId}/status - bookings on a renter's fleet
		r.Get("/{renterId}/status", bookingHandler.GetRenterBookings)

		// ==================== RENTER / ADMIN ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(auth)
			r.Use(middleware.RequireRoles(log, entity.RoleAdmin, entity.RoleRenter))

			// POST /api/v1/carProviders - list a car
			r.Post("/", providerHandler.CreateCarProvider)

			// GET /api/v1/carProviders/top-sales - most-booked providers
			r.Get("/top-sales", providerHandler.GetTopSales)
		})

		// ==================== ADMIN ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(auth)
			r.Use(middleware.RequireRoles(log, entity.RoleAdmin))

			// PUT /api/v1/carProviders/{id} - edit a listing
			r.Put("/{id}", providerHandler.UpdateCarProvider)

			// DELETE /api/v1/carProviders/{id} - remove a listing
			r.Delete("/{id}", providerHandler.DeleteCarProvider)
		})

		// ==================== USER / ADMIN ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(auth)
			r.Use(middleware.RequireRoles(log, entity.RoleAdmin, entity.RoleUser))

			// POST /api/v1/carProviders/{id}/like - toggle a like
			r.Post("/{id}/like", providerHandler.LikeCarProvider)

			// GET /api/v1/carProviders/{carProviderId}/bookings - bookings scoped to one provider
			r.Get("/{carProviderId}/bookings", bookingHandler.GetBookings)

			// POST /api/v1/carProviders/{carProviderId}/bookings - book a car
			r.Post("/{carProviderId}/bookings", bookingHandler.AddBooking)
		})
	})
}
