package response

import (
	"time"

	"tour-booking/internal/data/entity"
)

// UserResponse carries the public profile fields; the password hash never leaves
// the entity layer
type UserResponse struct {
	ID        string      `json:"id"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	Role      entity.Role `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
}

type UserDetailResponse struct {
	UserResponse
	FollowersCount int64 `json:"followersCount"`
	FollowingCount int64 `json:"followingCount"`
}

type FollowResponse struct {
	ID          string    `json:"id"`
	FollowerID  string    `json:"followerId"`
	FollowingID string    `json:"followingId"`
	CreatedAt   time.Time `json:"createdAt"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

func FollowToResponse(follow *entity.Follow) FollowResponse {
	return FollowResponse{
		ID:          follow.ID.String(),
		FollowerID:  follow.FollowerID.String(),
		FollowingID: follow.FollowingID.String(),
		CreatedAt:   follow.CreatedAt,
	}
}
