package entity

import "github.com/google/uuid"

type CarProviderStatus string

const (
	CarProviderAvailable CarProviderStatus = "available"
	CarProviderRented    CarProviderStatus = "rented"
)

type CarProvider struct {
	Base
	RenterID uuid.UUID         `db:"renter_id"`
	Name     string            `db:"name"`
	Address  string            `db:"address"`
	Tel      string            `db:"tel"`
	Picture  string            `db:"picture"`
	Status   CarProviderStatus `db:"status"`
}
