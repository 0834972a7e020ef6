package entity

import (
	"github.com/google/uuid"
)

// Like is unique per (user, tour) pair
type Like struct {
	BaseSimple
	UserID uuid.UUID `db:"user_id"`
	TourID uuid.UUID `db:"tour_id"`
}
