package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusRented   BookingStatus = "rented"
	BookingStatusReceived BookingStatus = "received"
	BookingStatusReturned BookingStatus = "returned"
)

// IsValid reports whether s is one of the declared booking statuses.
// There is no transition table: any declared status may replace any other.
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusRented, BookingStatusReceived, BookingStatusReturned:
		return true
	}
	return false
}

type Booking struct {
	Base
	UserID        uuid.UUID     `db:"user_id"`
	CarProviderID uuid.UUID     `db:"car_provider_id"`
	PickupDate    time.Time     `db:"pickup_date"`
	ReturnDate    time.Time     `db:"return_date"`
	Status        BookingStatus `db:"status"`
}
