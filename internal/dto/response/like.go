package response

import (
	"time"

	"tour-booking/internal/data/entity"
)

type LikeResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	TourID    string    `json:"tourId"`
	CreatedAt time.Time `json:"createdAt"`
}

type LikedResponse struct {
	Liked bool `json:"liked"`
}

func LikeToResponse(like *entity.Like) LikeResponse {
	return LikeResponse{
		ID:        like.ID.String(),
		UserID:    like.UserID.String(),
		TourID:    like.TourID.String(),
		CreatedAt: like.CreatedAt,
	}
}
