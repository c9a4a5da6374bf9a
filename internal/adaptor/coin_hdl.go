package adaptor

import (
	"encoding/json"
	"net/http"

	"car-rental/internal/usecase"
	"car-rental/pkg/utils"

	"go.uber.org/zap"
)

type CoinHandler struct {
	service usecase.CoinService
	log     *zap.Logger
}

func NewCoinHandler(service usecase.CoinService, log *zap.Logger) *CoinHandler {
	return &CoinHandler{
		service: service,
		log:     log.With(zap.String("handler", "coin")),
	}
}

type coinAmountRequest struct {
	Amount int64 `json:"amount"`
}

// GetCoins handles GET /api/v1/coins (protected)
func (h *CoinHandler) GetCoins(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	coins, err := h.service.GetCoins(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "fetch coins")
		return
	}

	utils.ResponseSuccess(w, map[string]int64{"coin": coins})
}

// AddCoins handles POST /api/v1/coins/add (protected, not implemented yet)
func (h *CoinHandler) AddCoins(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req coinAmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.AddCoins(r.Context(), userID, req.Amount); err != nil {
		handleServiceError(w, h.log, err, "add coins")
		return
	}

	utils.ResponseSuccess(w, nil)
}

// DeductCoins handles POST /api/v1/coins/deduct (protected, not implemented yet)
func (h *CoinHandler) DeductCoins(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req coinAmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.DeductCoins(r.Context(), userID, req.Amount); err != nil {
		handleServiceError(w, h.log, err, "deduct coins")
		return
	}

	utils.ResponseSuccess(w, nil)
}
