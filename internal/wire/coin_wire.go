package wire

import (
	"car-rental/internal/adaptor"
	"car-rental/internal/data/repository"
	"car-rental/pkg/middleware"
	"car-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCoin(
	r chi.Router,
	coinHandler *adaptor.CoinHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (any role) ====================
	r.Route("/coins", func(r chi.Router) {
		r.Use(middleware.Auth(repo.User, config.JWT, log))

		// GET /api/v1/coins - current balance
		r.Get("/", coinHandler.GetCoins)

		// Ledger mutations are stubbed out until the payment flow lands
		r.Post("/add", coinHandler.AddCoins)
		r.Post("/deduct", coinHandler.DeductCoins)
	})
}
