package usecase

import (
	"errors"
)

// Closed set of service error kinds. Handlers translate these to HTTP status
// codes with errors.Is; services wrap them with context where useful.
var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrUserNotFound    = errors.New("user not found")
	ErrTourNotFound    = errors.New("tour not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrLikeNotFound    = errors.New("tour not liked")
	ErrFollowNotFound  = errors.New("not following this user")

	ErrEmailTaken       = errors.New("email already registered")
	ErrUsernameTaken    = errors.New("username already taken")
	ErrAlreadyLiked     = errors.New("already liked this tour")
	ErrAlreadyFollowing = errors.New("already following this user")

	ErrSelfFollow        = errors.New("cannot follow yourself")
	ErrInsufficientSpots = errors.New("not enough available spots")
)
