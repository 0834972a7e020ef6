package usecase

import (
	"context"
	"fmt"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"
	"tour-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type LikeService interface {
	LikeTour(ctx context.Context, userID uuid.UUID, tourID string) (*response.LikeResponse, error)
	UnlikeTour(ctx context.Context, userID uuid.UUID, tourID string) error
	GetTourLikes(ctx context.Context, tourID string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.LikeResponse], error)
	HasLiked(ctx context.Context, userID uuid.UUID, tourID string) (*response.LikedResponse, error)
}

type likeService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewLikeService(repo *repository.Repository, log *zap.Logger) LikeService {
	return &likeService{
		repo: repo,
		log:  log.With(zap.String("service", "like")),
	}
}

func (s *likeService) LikeTour(ctx context.Context, userID uuid.UUID, tourID string) (*response.LikeResponse, error) {
	id, err := uuid.Parse(tourID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid tour ID %s", ErrValidation, tourID)
	}

	tour, err := s.repo.Tour.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find tour: %w", err)
	}
	if tour == nil {
		return nil, ErrTourNotFound
	}

	existing, err := s.repo.Like.Find(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("find like: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadyLiked
	}

	like := &entity.Like{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID: userID,
		TourID: id,
	}

	if err := s.repo.Like.Create(ctx, like); err != nil {
		if err == repository.ErrDuplicate {
			return nil, ErrAlreadyLiked
		}
		s.log.Error("Failed to create like",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("tour_id", tourID),
		)
		return nil, fmt.Errorf("create like: %w", err)
	}

	s.log.Info("Tour liked",
		zap.String("user_id", userID.String()),
		zap.String("tour_id", tourID),
	)

	resp := response.LikeToResponse(like)
	return &resp, nil
}

func (s *likeService) UnlikeTour(ctx context.Context, userID uuid.UUID, tourID string) error {
	id, err := uuid.Parse(tourID)
	if err != nil {
		return fmt.Errorf("%w: invalid tour ID %s", ErrValidation, tourID)
	}

	existing, err := s.repo.Like.Find(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("find like: %w", err)
	}
	if existing == nil {
		return ErrLikeNotFound
	}

	if err := s.repo.Like.Delete(ctx, userID, id); err != nil {
		s.log.Error("Failed to delete like",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("tour_id", tourID),
		)
		return fmt.Errorf("delete like: %w", err)
	}

	s.log.Info("Tour unliked",
		zap.String("user_id", userID.String()),
		zap.String("tour_id", tourID),
	)

	return nil
}

func (s *likeService) GetTourLikes(ctx context.Context, tourID string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.LikeResponse], error) {
	id, err := uuid.Parse(tourID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid tour ID %s", ErrValidation, tourID)
	}

	likes, err := s.repo.Like.FindByTourID(ctx, id, page.Limit(), page.Offset())
	if err != nil {
		s.log.Error("Failed to get tour likes", zap.Error(err), zap.String("tour_id", tourID))
		return nil, fmt.Errorf("get tour likes: %w", err)
	}

	total, err := s.repo.Like.CountByTourID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("count tour likes: %w", err)
	}

	likeResponses := make([]response.LikeResponse, len(likes))
	for i, like := range likes {
		likeResponses[i] = response.LikeToResponse(like)
	}

	return response.NewPaginatedResponse(likeResponses, page.Page, page.Limit(), total), nil
}

func (s *likeService) HasLiked(ctx context.Context, userID uuid.UUID, tourID string) (*response.LikedResponse, error) {
	id, err := uuid.Parse(tourID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid tour ID %s", ErrValidation, tourID)
	}

	like, err := s.repo.Like.Find(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("find like: %w", err)
	}

	return &response.LikedResponse{Liked: like != nil}, nil
}
