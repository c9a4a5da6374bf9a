package response

import (
	"time"

	"car-rental/internal/data/entity"
)

// CarProviderSummary is the projection attached to each booking. It stays
// empty when the booking's provider no longer resolves.
type CarProviderSummary struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Tel     string `json:"tel,omitempty"`
	Picture string `json:"picture,omitempty"`
}

type BookingResponse struct {
	ID            string               `json:"id"`
	UserID        string               `json:"user_id"`
	CarProviderID string               `json:"car_provider_id"`
	CarProvider   *CarProviderSummary  `json:"car_provider,omitempty"`
	PickupDate    time.Time            `json:"pickup_date"`
	ReturnDate    time.Time            `json:"return_date"`
	Status        entity.BookingStatus `json:"status"`
	CreatedAt     time.Time            `json:"created_at"`
}

// Helper converters
func BookingToResponse(booking *entity.Booking, provider *entity.CarProvider) BookingResponse {
	resp := BookingResponse{
		ID:            booking.ID.String(),
		UserID:        booking.UserID.String(),
		CarProviderID: booking.CarProviderID.String(),
		PickupDate:    booking.PickupDate,
		ReturnDate:    booking.ReturnDate,
		Status:        booking.Status,
		CreatedAt:     booking.CreatedAt,
	}

	if provider != nil {
		resp.CarProvider = &CarProviderSummary{
			Name:    provider.Name,
			Address: provider.Address,
			Tel:     provider.Tel,
			Picture: provider.Picture,
		}
	}

	return resp
}
