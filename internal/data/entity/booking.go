package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

type Booking struct {
	Base
	UserID          uuid.UUID `db:"user_id"`
	TourID          uuid.UUID `db:"tour_id"`
	NumberOfPersons int       `db:"number_of_persons"`
	// Fixed at creation time, never recomputed from the tour afterwards
	TotalPrice decimal.Decimal `db:"total_price"`
	Status     BookingStatus   `db:"status"`
}
