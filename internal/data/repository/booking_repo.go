package repository

import (
	"context"
	"fmt"

	"tour-booking/internal/data/entity"
	"tour-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	// Reserve inserts the booking and decrements the tour's spot counter in one
	// transaction. Returns false when the tour has fewer spots than requested
	// (or no longer exists); nothing is written in that case.
	Reserve(ctx context.Context, booking *entity.Booking) (bool, error)

	// Release restores the tour's spots and deletes the booking in one
	// transaction. A missing tour row is tolerated; the booking is still removed.
	Release(ctx context.Context, booking *entity.Booking) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error)
	Count(ctx context.Context) (int64, error)
	CountByTourID(ctx context.Context, tourID uuid.UUID) (int64, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, user_id, tour_id, number_of_persons, total_price, status, created_at, updated_at`

func (r *bookingRepository) Reserve(ctx context.Context, booking *entity.Booking) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin reserve transaction", zap.Error(err))
		return false, fmt.Errorf("begin reserve: %w", err)
	}
	defer tx.Rollback(ctx)

	// Guarded decrement: concurrent reservations on the same tour serialize on
	// this row update, and the WHERE clause keeps the counter from going negative.
	decrement := `
		UPDATE tours
		SET available_spots = available_spots - $2, updated_at = NOW()
		WHERE id = $1 AND available_spots >= $2
	`

	result, err := tx.Exec(ctx, decrement, booking.TourID, booking.NumberOfPersons)
	if err != nil {
		r.log.Error("Failed to decrement tour spots",
			zap.Error(err),
			zap.String("tour_id", booking.TourID.String()),
			zap.Int("persons", booking.NumberOfPersons),
		)
		return false, fmt.Errorf("decrement tour spots %s: %w", booking.TourID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return false, nil
	}

	insert := `
		INSERT INTO bookings (id, user_id, tour_id, number_of_persons, total_price, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err = tx.Exec(ctx, insert,
		booking.ID,
		booking.UserID,
		booking.TourID,
		booking.NumberOfPersons,
		booking.TotalPrice,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to insert booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return false, fmt.Errorf("insert booking %s: %w", booking.ID.String(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit reserve transaction", zap.Error(err))
		return false, fmt.Errorf("commit reserve: %w", err)
	}

	return true, nil
}

func (r *bookingRepository) Release(ctx context.Context, booking *entity.Booking) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin release transaction", zap.Error(err))
		return fmt.Errorf("begin release: %w", err)
	}
	defer tx.Rollback(ctx)

	restore := `
		UPDATE tours
		SET available_spots = available_spots + $2, updated_at = NOW()
		WHERE id = $1
	`

	// Tour may have been deleted out from under the booking; restore is best effort
	if _, err := tx.Exec(ctx, restore, booking.TourID, booking.NumberOfPersons); err != nil {
		r.log.Error("Failed to restore tour spots",
			zap.Error(err),
			zap.String("tour_id", booking.TourID.String()),
		)
		return fmt.Errorf("restore tour spots %s: %w", booking.TourID.String(), err)
	}

	result, err := tx.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, booking.ID)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("delete booking %s: %w", booking.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", booking.ID.String())
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit release transaction", zap.Error(err))
		return fmt.Errorf("commit release: %w", err)
	}

	r.log.Info("Booking released",
		zap.String("booking_id", booking.ID.String()),
		zap.String("tour_id", booking.TourID.String()),
		zap.Int("persons", booking.NumberOfPersons),
	)
	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.TourID,
		&booking.NumberOfPersons,
		&booking.TotalPrice,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return &booking, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find bookings by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	return scanBookings(rows, r.log)
}

func (r *bookingRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE user_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count bookings by user ID %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *bookingRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find all bookings",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all bookings: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows, r.log)
}

func (r *bookingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings`).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return count, nil
}

func (r *bookingRepository) CountByTourID(ctx context.Context, tourID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE tour_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, tourID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by tour ID",
			zap.Error(err),
			zap.String("tour_id", tourID.String()),
		)
		return 0, fmt.Errorf("count bookings by tour ID %s: %w", tourID.String(), err)
	}

	return count, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, bookingID, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", bookingID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	return nil
}

func scanBookings(rows pgx.Rows, log *zap.Logger) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.TourID,
			&booking.NumberOfPersons,
			&booking.TotalPrice,
			&booking.Status,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		)
		if err != nil {
			log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	return bookings, nil
}
