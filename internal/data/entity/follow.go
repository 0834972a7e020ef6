package entity

import (
	"github.com/google/uuid"
)

// Follow is unique per (follower, following) pair
type Follow struct {
	BaseSimple
	FollowerID  uuid.UUID `db:"follower_id"`
	FollowingID uuid.UUID `db:"following_id"`
}
