package response

import (
	"time"

	"car-rental/internal/data/entity"
)

type CarProviderResponse struct {
	ID        string                   `json:"id"`
	RenterID  string                   `json:"renter_id"`
	Name      string                   `json:"name"`
	Address   string                   `json:"address"`
	Tel       string                   `json:"tel"`
	Picture   string                   `json:"picture,omitempty"`
	Status    entity.CarProviderStatus `json:"status"`
	Likes     int64                    `json:"likes"`
	CreatedAt time.Time                `json:"created_at"`
}

type TopSaleResponse struct {
	CarProviderResponse
	Bookings int64 `json:"bookings"`
}

// Helper converters
func CarProviderToResponse(provider *entity.CarProvider, likes int64) CarProviderResponse {
	return CarProviderResponse{
		ID:        provider.ID.String(),
		RenterID:  provider.RenterID.String(),
		Name:      provider.Name,
		Address:   provider.Address,
		Tel:       provider.Tel,
		Picture:   provider.Picture,
		Status:    provider.Status,
		Likes:     likes,
		CreatedAt: provider.CreatedAt,
	}
}
