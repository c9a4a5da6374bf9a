package usecase

import (
	"car-rental/internal/data/repository"
	"car-rental/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth        AuthService
	CarProvider CarProviderService
	Booking     BookingService
	Coin        CoinService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:        NewAuthService(repo, config, log),
		CarProvider: NewCarProviderService(repo, log),
		Booking:     NewBookingService(repo, log),
		Coin:        NewCoinService(repo, log),
	}
}
