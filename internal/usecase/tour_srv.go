package usecase

import (
	"context"
	"fmt"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"
	"tour-booking/internal/dto/response"
	"tour-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type TourService interface {
	GetTours(ctx context.Context, req *request.TourListRequest) (*response.PaginatedResponse[response.TourResponse], error)
	GetTourByID(ctx context.Context, tourID string) (*response.TourDetailResponse, error)

	// Admin endpoints
	CreateTour(ctx context.Context, req *request.CreateTourRequest) (*response.TourResponse, error)
	UpdateTour(ctx context.Context, tourID string, req *request.UpdateTourRequest) (*response.TourResponse, error)
	DeleteTour(ctx context.Context, tourID string) error
}

type tourService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTourService(repo *repository.Repository, log *zap.Logger) TourService {
	return &tourService{
		repo: repo,
		log:  log.With(zap.String("service", "tour")),
	}
}

func (s *tourService) GetTours(ctx context.Context, req *request.TourListRequest) (*response.PaginatedResponse[response.TourResponse], error) {
	filter := repository.TourFilter{
		Search:          req.Search,
		Destination:     req.Destination,
		IncludeInactive: req.IncludeInactive,
	}

	limit := req.PerPage
	if limit < 1 {
		limit = request.DefaultPerPage
	}
	offset := utils.CalculateOffset(req.Page, limit)

	tours, err := s.repo.Tour.FindAll(ctx, filter, limit, offset)
	if err != nil {
		s.log.Error("Failed to get tours",
			zap.Error(err),
			zap.String("search", req.Search),
			zap.Int("page", req.Page),
		)
		return nil, fmt.Errorf("get tours: %w", err)
	}

	total, err := s.repo.Tour.Count(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count tours", zap.Error(err))
		return nil, fmt.Errorf("count tours: %w", err)
	}

	tourResponses := make([]response.TourResponse, len(tours))
	for i, tour := range tours {
		likesCount, _ := s.repo.Like.CountByTourID(ctx, tour.ID)
		tourResponses[i] = response.TourToResponse(tour, likesCount)
	}

	return response.NewPaginatedResponse(tourResponses, req.Page, limit, total), nil
}

func (s *tourService) GetTourByID(ctx context.Context, tourID string) (*response.TourDetailResponse, error) {
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

	likesCount, err := s.repo.Like.CountByTourID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("count likes: %w", err)
	}

	bookingsCount, err := s.repo.Booking.CountByTourID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	return &response.TourDetailResponse{
		TourResponse:  response.TourToResponse(tour, likesCount),
		BookingsCount: bookingsCount,
	}, nil
}

func (s *tourService) CreateTour(ctx context.Context, req *request.CreateTourRequest) (*response.TourResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create tour validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now()
	tour := &entity.Tour{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:          req.Title,
		Description:    req.Description,
		Destination:    req.Destination,
		Price:          decimal.NewFromFloat(req.Price),
		Duration:       req.Duration,
		AvailableSpots: req.AvailableSpots,
		StartDate:      parseDate(req.StartDate),
		EndDate:        parseDate(req.EndDate),
		ImageURL:       req.ImageURL,
		IsActive:       isActive,
	}

	if err := s.repo.Tour.Create(ctx, tour); err != nil {
		s.log.Error("Failed to create tour", zap.Error(err), zap.String("title", req.Title))
		return nil, fmt.Errorf("create tour: %w", err)
	}

	s.log.Info("Tour created",
		zap.String("tour_id", tour.ID.String()),
		zap.String("title", tour.Title),
		zap.Int("available_spots", tour.AvailableSpots),
	)

	resp := response.TourToResponse(tour, 0)
	return &resp, nil
}

func (s *tourService) UpdateTour(ctx context.Context, tourID string, req *request.UpdateTourRequest) (*response.TourResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update tour validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

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

	if req.Title != nil {
		tour.Title = *req.Title
	}
	if req.Description != nil {
		tour.Description = req.Description
	}
	if req.Destination != nil {
		tour.Destination = *req.Destination
	}
	if req.Price != nil {
		tour.Price = decimal.NewFromFloat(*req.Price)
	}
	if req.Duration != nil {
		tour.Duration = *req.Duration
	}
	if req.AvailableSpots != nil {
		tour.AvailableSpots = *req.AvailableSpots
	}
	if req.StartDate != nil {
		tour.StartDate = parseDate(req.StartDate)
	}
	if req.EndDate != nil {
		tour.EndDate = parseDate(req.EndDate)
	}
	if req.ImageURL != nil {
		tour.ImageURL = req.ImageURL
	}
	if req.IsActive != nil {
		tour.IsActive = *req.IsActive
	}
	tour.UpdatedAt = time.Now()

	if err := s.repo.Tour.Update(ctx, tour); err != nil {
		s.log.Error("Failed to update tour", zap.Error(err), zap.String("tour_id", tourID))
		return nil, fmt.Errorf("update tour: %w", err)
	}

	s.log.Info("Tour updated", zap.String("tour_id", tourID))

	likesCount, _ := s.repo.Like.CountByTourID(ctx, id)
	resp := response.TourToResponse(tour, likesCount)
	return &resp, nil
}

func (s *tourService) DeleteTour(ctx context.Context, tourID string) error {
	id, err := uuid.Parse(tourID)
	if err != nil {
		return fmt.Errorf("%w: invalid tour ID %s", ErrValidation, tourID)
	}

	tour, err := s.repo.Tour.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find tour: %w", err)
	}
	if tour == nil {
		return ErrTourNotFound
	}

	// Bookings keep their tour reference; no cascade
	if err := s.repo.Tour.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete tour", zap.Error(err), zap.String("tour_id", tourID))
		return fmt.Errorf("delete tour: %w", err)
	}

	s.log.Info("Tour deleted", zap.String("tour_id", tourID), zap.String("title", tour.Title))
	return nil
}

func parseDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}
