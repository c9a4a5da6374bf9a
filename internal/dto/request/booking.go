package request

import "time"

type CreateBookingRequest struct {
	PickupDate time.Time `json:"pickup_date" validate:"required"`
	ReturnDate time.Time `json:"return_date" validate:"required"`
}

// UpdateBookingRequest is the allow-list of fields a booking patch may touch.
// Owner and car provider references are fixed at creation and cannot be
// overwritten here.
type UpdateBookingRequest struct {
	PickupDate *time.Time `json:"pickup_date,omitempty"`
	ReturnDate *time.Time `json:"return_date,omitempty"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=rented received returned"`
}
