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

type FollowRepository interface {
	Create(ctx context.Context, follow *entity.Follow) error
	Find(ctx context.Context, followerID, followingID uuid.UUID) (*entity.Follow, error)
	Delete(ctx context.Context, followerID, followingID uuid.UUID) error
	FindFollowers(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Follow, error)
	CountFollowers(ctx context.Context, userID uuid.UUID) (int64, error)
	FindFollowing(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Follow, error)
	CountFollowing(ctx context.Context, userID uuid.UUID) (int64, error)
}

type followRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFollowRepository(db database.PgxIface, log *zap.Logger) FollowRepository {
	return &followRepository{
		db:  db,
		log: log.With(zap.String("repository", "follow")),
	}
}

func (r *followRepository) Create(ctx context.Context, follow *entity.Follow) error {
	query := `
		INSERT INTO follows (id, follower_id, following_id, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query, follow.ID, follow.FollowerID, follow.FollowingID, follow.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		r.log.Error("Failed to create follow",
			zap.Error(err),
			zap.String("follower_id", follow.FollowerID.String()),
			zap.String("following_id", follow.FollowingID.String()),
		)
		return fmt.Errorf("create follow: %w", err)
	}

	return nil
}

func (r *followRepository) Find(ctx context.Context, followerID, followingID uuid.UUID) (*entity.Follow, error) {
	query := `
		SELECT id, follower_id, following_id, created_at
		FROM follows
		WHERE follower_id = $1 AND following_id = $2
	`

	var follow entity.Follow
	err := r.db.QueryRow(ctx, query, followerID, followingID).Scan(
		&follow.ID,
		&follow.FollowerID,
		&follow.FollowingID,
		&follow.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find follow",
			zap.Error(err),
			zap.String("follower_id", followerID.String()),
			zap.String("following_id", followingID.String()),
		)
		return nil, fmt.Errorf("find follow: %w", err)
	}

	return &follow, nil
}

func (r *followRepository) Delete(ctx context.Context, followerID, followingID uuid.UUID) error {
	query := `DELETE FROM follows WHERE follower_id = $1 AND following_id = $2`

	result, err := r.db.Exec(ctx, query, followerID, followingID)
	if err != nil {
		r.log.Error("Failed to delete follow",
			zap.Error(err),
			zap.String("follower_id", followerID.String()),
			zap.String("following_id", followingID.String()),
		)
		return fmt.Errorf("delete follow: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("follow not found")
	}

	return nil
}

func (r *followRepository) FindFollowers(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Follow, error) {
	query := `
		SELECT id, follower_id, following_id, created_at
		FROM follows
		WHERE following_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	return r.findFollows(ctx, query, userID, limit, offset)
}

func (r *followRepository) CountFollowers(ctx context.Context, userID uuid.UUID) (int64, error) {
	return r.countFollows(ctx, `SELECT COUNT(*) FROM follows WHERE following_id = $1`, userID)
}

func (r *followRepository) FindFollowing(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Follow, error) {
	query := `
		SELECT id, follower_id, following_id, created_at
		FROM follows
		WHERE follower_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	return r.findFollows(ctx, query, userID, limit, offset)
}

func (r *followRepository) CountFollowing(ctx context.Context, userID uuid.UUID) (int64, error) {
	return r.countFollows(ctx, `SELECT COUNT(*) FROM follows WHERE follower_id = $1`, userID)
}

func (r *followRepository) findFollows(ctx context.Context, query string, userID uuid.UUID, limit, offset int) ([]*entity.Follow, error) {
	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find follows",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find follows for %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var follows []*entity.Follow
	for rows.Next() {
		var follow entity.Follow
		err := rows.Scan(&follow.ID, &follow.FollowerID, &follow.FollowingID, &follow.CreatedAt)
		if err != nil {
			r.log.Error("Failed to scan follow row", zap.Error(err))
			return nil, fmt.Errorf("scan follow row: %w", err)
		}
		follows = append(follows, &follow)
	}

	return follows, nil
}

func (r *followRepository) countFollows(ctx context.Context, query string, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count follows",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count follows for %s: %w", userID.String(), err)
	}

	return count, nil
}
