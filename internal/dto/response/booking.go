package response

import (
	"time"

	"tour-booking/internal/data/entity"

	"github.com/shopspring/decimal"
)

type BookingResponse struct {
	ID              string               `json:"id"`
	UserID          string               `json:"userId"`
	TourID          string               `json:"tourId"`
	NumberOfPersons int                  `json:"numberOfPersons"`
	TotalPrice      decimal.Decimal      `json:"totalPrice"`
	Status          entity.BookingStatus `json:"status"`
	Tour            *TourResponse        `json:"tour,omitempty"`
	// User is filled only on the admin listing
	User      *UserResponse `json:"user,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:              booking.ID.String(),
		UserID:          booking.UserID.String(),
		TourID:          booking.TourID.String(),
		NumberOfPersons: booking.NumberOfPersons,
		TotalPrice:      booking.TotalPrice,
		Status:          booking.Status,
		CreatedAt:       booking.CreatedAt,
	}
}
