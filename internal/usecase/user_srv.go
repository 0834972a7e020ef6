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

// Relay event names, mirrored by connected frontends
const (
	EventUserFollowed   = "user-followed"
	EventUserUnfollowed = "user-unfollowed"
)

// Notifier receives follow graph changes after they are committed. The relay
// hub implements it; tests use a recording fake.
type Notifier interface {
	Publish(event string, followerID, followingID uuid.UUID)
}

type UserService interface {
	GetUsers(ctx context.Context, search string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
	GetUserByID(ctx context.Context, userID string) (*response.UserDetailResponse, error)
	FollowUser(ctx context.Context, currentUserID uuid.UUID, targetID string) (*response.FollowResponse, error)
	UnfollowUser(ctx context.Context, currentUserID uuid.UUID, targetID string) error
	GetFollowers(ctx context.Context, userID string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
	GetFollowing(ctx context.Context, userID string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
}

type userService struct {
	repo     *repository.Repository
	notifier Notifier
	log      *zap.Logger
}

func NewUserService(repo *repository.Repository, notifier Notifier, log *zap.Logger) UserService {
	return &userService{
		repo:     repo,
		notifier: notifier,
		log:      log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetUsers(ctx context.Context, search string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	users, err := s.repo.User.Search(ctx, search, page.Limit(), page.Offset())
	if err != nil {
		s.log.Error("Failed to search users",
			zap.Error(err),
			zap.String("search", search),
			zap.Int("page", page.Page),
		)
		return nil, fmt.Errorf("search users: %w", err)
	}

	total, err := s.repo.User.CountSearch(ctx, search)
	if err != nil {
		s.log.Error("Failed to count users", zap.Error(err))
		return nil, fmt.Errorf("count users: %w", err)
	}

	userResponses := make([]response.UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = response.UserToResponse(user)
	}

	return response.NewPaginatedResponse(userResponses, page.Page, page.Limit(), total), nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*response.UserDetailResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID %s", ErrValidation, userID)
	}

	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	followersCount, err := s.repo.Follow.CountFollowers(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("count followers: %w", err)
	}

	followingCount, err := s.repo.Follow.CountFollowing(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("count following: %w", err)
	}

	return &response.UserDetailResponse{
		UserResponse:   response.UserToResponse(user),
		FollowersCount: followersCount,
		FollowingCount: followingCount,
	}, nil
}

func (s *userService) FollowUser(ctx context.Context, currentUserID uuid.UUID, targetID string) (*response.FollowResponse, error) {
	followingID, err := uuid.Parse(targetID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID %s", ErrValidation, targetID)
	}

	if currentUserID == followingID {
		return nil, ErrSelfFollow
	}

	target, err := s.repo.User.FindByID(ctx, followingID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if target == nil {
		return nil, ErrUserNotFound
	}

	existing, err := s.repo.Follow.Find(ctx, currentUserID, followingID)
	if err != nil {
		return nil, fmt.Errorf("find follow: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadyFollowing
	}

	follow := &entity.Follow{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		FollowerID:  currentUserID,
		FollowingID: followingID,
	}

	if err := s.repo.Follow.Create(ctx, follow); err != nil {
		if err == repository.ErrDuplicate {
			return nil, ErrAlreadyFollowing
		}
		s.log.Error("Failed to create follow",
			zap.Error(err),
			zap.String("follower_id", currentUserID.String()),
			zap.String("following_id", targetID),
		)
		return nil, fmt.Errorf("create follow: %w", err)
	}

	// Broadcast only after the write committed
	s.notifier.Publish(EventUserFollowed, currentUserID, followingID)

	s.log.Info("User followed",
		zap.String("follower_id", currentUserID.String()),
		zap.String("following_id", targetID),
	)

	resp := response.FollowToResponse(follow)
	return &resp, nil
}

func (s *userService) UnfollowUser(ctx context.Context, currentUserID uuid.UUID, targetID string) error {
	followingID, err := uuid.Parse(targetID)
	if err != nil {
		return fmt.Errorf("%w: invalid user ID %s", ErrValidation, targetID)
	}

	existing, err := s.repo.Follow.Find(ctx, currentUserID, followingID)
	if err != nil {
		return fmt.Errorf("find follow: %w", err)
	}
	if existing == nil {
		return ErrFollowNotFound
	}

	if err := s.repo.Follow.Delete(ctx, currentUserID, followingID); err != nil {
		s.log.Error("Failed to delete follow",
			zap.Error(err),
			zap.String("follower_id", currentUserID.String()),
			zap.String("following_id", targetID),
		)
		return fmt.Errorf("delete follow: %w", err)
	}

	s.notifier.Publish(EventUserUnfollowed, currentUserID, followingID)

	s.log.Info("User unfollowed",
		zap.String("follower_id", currentUserID.String()),
		zap.String("following_id", targetID),
	)

	return nil
}

func (s *userService) GetFollowers(ctx context.Context, userID string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID %s", ErrValidation, userID)
	}

	follows, err := s.repo.Follow.FindFollowers(ctx, id, page.Limit(), page.Offset())
	if err != nil {
		s.log.Error("Failed to get followers", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("get followers: %w", err)
	}

	userIDs := make([]uuid.UUID, len(follows))
	for i, follow := range follows {
		userIDs[i] = follow.FollowerID
	}

	users, err := s.repo.User.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("load followers: %w", err)
	}

	total, err := s.repo.Follow.CountFollowers(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("count followers: %w", err)
	}

	userResponses := make([]response.UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = response.UserToResponse(user)
	}

	return response.NewPaginatedResponse(userResponses, page.Page, page.Limit(), total), nil
}

func (s *userService) GetFollowing(ctx context.Context, userID string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID %s", ErrValidation, userID)
	}

	follows, err := s.repo.Follow.FindFollowing(ctx, id, page.Limit(), page.Offset())
	if err != nil {
		s.log.Error("Failed to get following", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("get following: %w", err)
	}

	userIDs := make([]uuid.UUID, len(follows))
	for i, follow := range follows {
		userIDs[i] = follow.FollowingID
	}

	users, err := s.repo.User.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("load following: %w", err)
	}

	total, err := s.repo.Follow.CountFollowing(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("count following: %w", err)
	}

	userResponses := make([]response.UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = response.UserToResponse(user)
	}

	return response.NewPaginatedResponse(userResponses, page.Page, page.Limit(), total), nil
}
