package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Tour struct {
	Base
	Title       string          `db:"title"`
	Description *string         `db:"description"`
	Destination string          `db:"destination"`
	Price       decimal.Decimal `db:"price"`
	// Duration in days
	Duration       int        `db:"duration"`
	AvailableSpots int        `db:"available_spots"`
	StartDate      *time.Time `db:"start_date"`
	EndDate        *time.Time `db:"end_date"`
	ImageURL       *string    `db:"image_url"`
	IsActive       bool       `db:"is_active"`
}
