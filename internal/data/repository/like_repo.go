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

type LikeRepository interface {
	Create(ctx context.Context, like *entity.Like) error
	Find(ctx context.Context, userID, tourID uuid.UUID) (*entity.Like, error)
	Delete(ctx context.Context, userID, tourID uuid.UUID) error
	FindByTourID(ctx context.Context, tourID uuid.UUID, limit, offset int) ([]*entity.Like, error)
	CountByTourID(ctx context.Context, tourID uuid.UUID) (int64, error)
}

type likeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewLikeRepository(db database.PgxIface, log *zap.Logger) LikeRepository {
	return &likeRepository{
		db:  db,
		log: log.With(zap.String("repository", "like")),
	}
}

func (r *likeRepository) Create(ctx context.Context, like *entity.Like) error {
	query := `
		INSERT INTO likes (id, user_id, tour_id, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query, like.ID, like.UserID, like.TourID, like.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		r.log.Error("Failed to create like",
			zap.Error(err),
			zap.String("user_id", like.UserID.String()),
			zap.String("tour_id", like.TourID.String()),
		)
		return fmt.Errorf("create like: %w", err)
	}

	return nil
}

func (r *likeRepository) Find(ctx context.Context, userID, tourID uuid.UUID) (*entity.Like, error) {
	query := `
		SELECT id, user_id, tour_id, created_at
		FROM likes
		WHERE user_id = $1 AND tour_id = $2
	`

	var like entity.Like
	err := r.db.QueryRow(ctx, query, userID, tourID).Scan(
		&like.ID,
		&like.UserID,
		&like.TourID,
		&like.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find like",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("tour_id", tourID.String()),
		)
		return nil, fmt.Errorf("find like: %w", err)
	}

	return &like, nil
}

func (r *likeRepository) Delete(ctx context.Context, userID, tourID uuid.UUID) error {
	query := `DELETE FROM likes WHERE user_id = $1 AND tour_id = $2`

	result, err := r.db.Exec(ctx, query, userID, tourID)
	if err != nil {
		r.log.Error("Failed to delete like",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("tour_id", tourID.String()),
		)
		return fmt.Errorf("delete like: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("like not found")
	}

	return nil
}

func (r *likeRepository) FindByTourID(ctx context.Context, tourID uuid.UUID, limit, offset int) ([]*entity.Like, error) {
	query := `
		SELECT id, user_id, tour_id, created_at
		FROM likes
		WHERE tour_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, tourID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find likes by tour ID",
			zap.Error(err),
			zap.String("tour_id", tourID.String()),
		)
		return nil, fmt.Errorf("find likes by tour ID %s: %w", tourID.String(), err)
	}
	defer rows.Close()

	var likes []*entity.Like
	for rows.Next() {
		var like entity.Like
		err := rows.Scan(&like.ID, &like.UserID, &like.TourID, &like.CreatedAt)
		if err != nil {
			r.log.Error("Failed to scan like row", zap.Error(err))
			return nil, fmt.Errorf("scan like row: %w", err)
		}
		likes = append(likes, &like)
	}

	return likes, nil
}

func (r *likeRepository) CountByTourID(ctx context.Context, tourID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM likes WHERE tour_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, tourID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count likes by tour ID",
			zap.Error(err),
			zap.String("tour_id", tourID.String()),
		)
		return 0, fmt.Errorf("count likes by tour ID %s: %w", tourID.String(), err)
	}

	return count, nil
}
