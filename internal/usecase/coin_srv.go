package usecase

import (
	"context"
	"fmt"

	"car-rental/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CoinService interface {
	GetCoins(ctx context.Context, userID uuid.UUID) (int64, error)
	// AddCoins and DeductCoins are declared but unfinished capabilities of the
	// system; they always fail until a ledger is built.
	AddCoins(ctx context.Context, userID uuid.UUID, amount int64) error
	DeductCoins(ctx context.Context, userID uuid.UUID, amount int64) error
}

type coinService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCoinService(repo *repository.Repository, log *zap.Logger) CoinService {
	return &coinService{
		repo: repo,
		log:  log.With(zap.String("service", "coin")),
	}
}

func (s *coinService) GetCoins(ctx context.Context, userID uuid.UUID) (int64, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to fetch coins", zap.Error(err), zap.String("user_id", userID.String()))
		return 0, fmt.Errorf("fetch coins: %w", err)
	}
	if user == nil {
		return 0, fmt.Errorf("user %s not found", userID.String())
	}

	return user.Coin, nil
}

func (s *coinService) AddCoins(ctx context.Context, userID uuid.UUID, amount int64) error {
	return fmt.Errorf("adding coins is not implemented")
}

func (s *coinService) DeductCoins(ctx context.Context, userID uuid.UUID, amount int64) error {
	return fmt.Errorf("deducting coins is not implemented")
}
