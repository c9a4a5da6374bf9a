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

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)
	// Logout only clears the cookie, so no auth needed
	r.Get("/auth/logout", authHandler.Logout)

	// ==================== PROTECTED ROUTES ====================
	r.With(middleware.Auth(repo.User, config.JWT, log)).
		Get("/auth/me", authHandler.GetMe)

	// ==================== ADMIN ROUTES ====================
	r.With(
		middleware.Auth(repo.User, config.JWT, log),
		middleware.RequireRoles(log, entity.RoleAdmin),
	).Delete("/auth/users/{id}", authHandler.DeleteUser)
}
