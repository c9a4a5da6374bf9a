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

type CarProviderHandler struct {
	service usecase.CarProviderService
	log     *zap.Logger
}

func NewCarProviderHandler(service usecase.CarProviderService, log *zap.Logger) *CarProviderHandler {
	return &CarProviderHandler{
		service: service,
		log:     log.With(zap.String("handler", "car_provider")),
	}
}

// GetCarProviders handles GET /api/v1/carProviders (public)
func (h *CarProviderHandler) GetCarProviders(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	providers, err := h.service.ListCarProviders(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list car providers")
		return
	}

	utils.ResponseSuccess(w, providers)
}

// GetCarProvider handles GET /api/v1/carProviders/{id} (public)
func (h *CarProviderHandler) GetCarProvider(w http.ResponseWriter, r *http.Request) {
	providerID := chi.URLParam(r, "id")
	if providerID == "" {
		utils.ResponseBadRequest(w, "Car provider ID is required", nil)
		return
	}

	provider, err := h.service.GetCarProvider(r.Context(), providerID)
	if err != nil {
		handleServiceError(w, h.log, err, "get car provider")
		return
	}

	utils.ResponseSuccess(w, provider)
}

// CreateCarProvider handles POST /api/v1/carProviders (admin or renter)
func (h *CarProviderHandler) CreateCarProvider(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	role, _ := utils.GetRoleFromContext(r.Context())

	var req request.CreateCarProviderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	provider, err := h.service.CreateCarProvider(r.Context(), userID, role, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create car provider")
		return
	}

	utils.ResponseCreated(w, provider)
}

// UpdateCarProvider handles PUT /api/v1/carProviders/{id} (admin only)
func (h *CarProviderHandler) UpdateCarProvider(w http.ResponseWriter, r *http.Request) {
	providerID := chi.URLParam(r, "id")
	if providerID == "" {
		utils.ResponseBadRequest(w, "Car provider ID is required", nil)
		return
	}

	var req request.UpdateCarProviderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	provider, err := h.service.UpdateCarProvider(r.Context(), providerID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update car provider")
		return
	}

	utils.ResponseSuccess(w, provider)
}

// DeleteCarProvider handles DELETE /api/v1/carProviders/{id} (admin only)
func (h *CarProviderHandler) DeleteCarProvider(w http.ResponseWriter, r *http.Request) {
	providerID := chi.URLParam(r, "id")
	if providerID == "" {
		utils.ResponseBadRequest(w, "Car provider ID is required", nil)
		return
	}

	if err := h.service.DeleteCarProvider(r.Context(), providerID); err != nil {
		handleServiceError(w, h.log, err, "delete car provider")
		return
	}

	utils.ResponseSuccess(w, map[string]any{})
}

// LikeCarProvider handles POST /api/v1/carProviders/{id}/like (admin or user)
func (h *CarProviderHandler) LikeCarProvider(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	providerID := chi.URLParam(r, "id")
	if providerID == "" {
		utils.ResponseBadRequest(w, "Car provider ID is required", nil)
		return
	}

	liked, err := h.service.LikeCarProvider(r.Context(), providerID, userID)
	if err != nil {
		handleServiceError(w, h.log, err, "like car provider")
		return
	}

	utils.ResponseSuccess(w, map[string]bool{"liked": liked})
}

// GetTopSales handles GET /api/v1/carProviders/top-sales (admin or renter)
func (h *CarProviderHandler) GetTopSales(w http.ResponseWriter, r *http.Request) {
	sales, err := h.service.GetTopSales(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get top sales")
		return
	}

	utils.ResponseList(w, len(sales), sales)
}

// GetRenterCars handles GET /api/v1/carProviders/renter/{renterId} (public)
func (h *CarProviderHandler) GetRenterCars(w http.ResponseWriter, r *http.Request) {
	renterID := chi.URLParam(r, "renterId")
	if renterID == "" {
		utils.ResponseBadRequest(w, "Renter ID is required", nil)
		return
	}

	providers, err := h.service.GetRenterCars(r.Context(), renterID)
	if err != nil {
		handleServiceError(w, h.log, err, "get renter cars")
		return
	}

	utils.ResponseList(w, len(providers), providers)
}
