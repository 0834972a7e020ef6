package response

import (
	"time"

	"tour-booking/internal/data/entity"

	"github.com/shopspring/decimal"
)

type TourResponse struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Description    *string         `json:"description,omitempty"`
	Destination    string          `json:"destination"`
	Price          decimal.Decimal `json:"price"`
	Duration       int             `json:"duration"`
	AvailableSpots int             `json:"availableSpots"`
	StartDate      *string         `json:"startDate,omitempty"`
	EndDate        *string         `json:"endDate,omitempty"`
	ImageURL       *string         `json:"imageUrl,omitempty"`
	IsActive       bool            `json:"isActive"`
	LikesCount     int64           `json:"likesCount"`
	CreatedAt      time.Time       `json:"createdAt"`
}

type TourDetailResponse struct {
	TourResponse
	BookingsCount int64 `json:"bookingsCount"`
}

func TourToResponse(tour *entity.Tour, likesCount int64) TourResponse {
	return TourResponse{
		ID:             tour.ID.String(),
		Title:          tour.Title,
		Description:    tour.Description,
		Destination:    tour.Destination,
		Price:          tour.Price,
		Duration:       tour.Duration,
		AvailableSpots: tour.AvailableSpots,
		StartDate:      formatDate(tour.StartDate),
		EndDate:        formatDate(tour.EndDate),
		ImageURL:       tour.ImageURL,
		IsActive:       tour.IsActive,
		LikesCount:     likesCount,
		CreatedAt:      tour.CreatedAt,
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}
