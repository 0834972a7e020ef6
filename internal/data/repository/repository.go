package repository

import (
	"errors"

	"tour-booking/pkg/database"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// ErrDuplicate is returned when an insert violates a unique constraint
var ErrDuplicate = errors.New("duplicate record")

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

type Repository struct {
	User    UserRepository
	Tour    TourRepository
	Booking BookingRepository
	Like    LikeRepository
	Follow  FollowRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Tour:    NewTourRepository(db, log),
		Booking: NewBookingRepository(db, log),
		Like:    NewLikeRepository(db, log),
		Follow:  NewFollowRepository(db, log),
	}
}
