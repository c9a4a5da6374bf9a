package repository

import (
	"car-rental/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User        UserRepository
	CarProvider CarProviderRepository
	Booking     BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:        NewUserRepository(db, log),
		CarProvider: NewCarProviderRepository(db, log),
		Booking:     NewBookingRepository(db, log),
	}
}
