package adaptor

import (
	"encoding/json"
	"net/http"

	"car-rental/internal/dto/request"
	"car-rental/internal/usecase"
	"car-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// GetBookings handles GET /api/v1/bookings and
// GET /api/v1/carProviders/{carProviderId}/bookings (protected)
func (h *BookingHandler) GetBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	role, _ := utils.GetRoleFromContext(r.Context())

	// Scope to one provider when the nested route supplies one
	var carProviderID *string
	if id := chi.URLParam(r, "carProviderId"); id != "" {
		carProviderID = &id
	}

	bookings, err := h.service.ListBookings(r.Context(), userID, role, carProviderID)
	if err != nil {
		handleServiceError(w, h.log, err, "list bookings")
		return
	}

	utils.ResponseList(w, len(bookings), bookings)
}

// GetBooking handles GET /api/v1/bookings/{id} (protected)
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	booking, err := h.service.GetBooking(r.Context(), bookingID)
	if err != nil {
		handleServiceError(w, h.log, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, booking)
}

// GetBookingStatus handles GET /api/v1/bookings/{id}/status (protected)
func (h *BookingHandler) GetBookingStatus(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	status, err := h.service.GetBookingStatus(r.Context(), bookingID)
	if err != nil {
		handleServiceError(w, h.log, err, "get booking status")
		return
	}

	utils.ResponseStatus(w, string(status))
}

// AddBooking handles POST /api/v1/carProviders/{carProviderId}/bookings (protected)
func (h *BookingHandler) AddBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	role, _ := utils.GetRoleFromContext(r.Context())

	carProviderID := chi.URLParam(r, "carProviderId")
	if carProviderID == "" {
		utils.ResponseBadRequest(w, "Car provider ID is required", nil)
		return
	}

	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.AddBooking(r.Context(), carProviderID, userID, role, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "add booking")
		return
	}

	utils.ResponseCreated(w, booking)
}

// UpdateBooking handles PUT /api/v1/bookings/{id} (protected, owner-or-admin)
func (h *BookingHandler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	role, _ := utils.GetRoleFromContext(r.Context())

	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	var req request.UpdateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.UpdateBooking(r.Context(), bookingID, userID, role, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update booking")
		return
	}

	utils.ResponseSuccess(w, booking)
}

// UpdateBookingStatus handles PATCH /api/v1/bookings/{id}/status (protected)
func (h *BookingHandler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	var req request.UpdateBookingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	status, err := h.service.UpdateBookingStatus(r.Context(), bookingID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update booking status")
		return
	}

	utils.ResponseStatus(w, string(status))
}

// DeleteBooking handles DELETE /api/v1/bookings/{id} (protected, owner-or-admin)
func (h *BookingHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	role, _ := utils.GetRoleFromContext(r.Context())

	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	if err := h.service.DeleteBooking(r.Context(), bookingID, userID, role); err != nil {
		handleServiceError(w, h.log, err, "delete booking")
		return
	}

	utils.ResponseSuccess(w, map[string]any{})
}

// GetRenterBookings handles GET /api/v1/carProviders/{renterId}/status (public)
func (h *BookingHandler) GetRenterBookings(w http.ResponseWriter, r *http.Request) {
	renterID := chi.URLParam(r, "renterId")
	if renterID == "" {
		utils.ResponseBadRequest(w, "Renter ID is required", nil)
		return
	}

	bookings, err := h.service.GetRenterBookings(r.Context(), renterID)
	if err != nil {
		handleServiceError(w, h.log, err, "get renter bookings")
		return
	}

	utils.ResponseList(w, len(bookings), bookings)
}
