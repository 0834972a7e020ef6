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

type BookingService interface {
	CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetMyBookings(ctx context.Context, userID uuid.UUID, page *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)

	// Admin endpoints
	GetAllBookings(ctx context.Context, page *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	UpdateBookingStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error)
	DeleteBooking(ctx context.Context, bookingID string) error
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	tourID, err := uuid.Parse(req.TourID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid tour ID %s", ErrValidation, req.TourID)
	}

	// Availability and the not-found case are decided again inside Reserve; this
	// read exists to price the booking and to tell 404 apart from 400.
	tour, err := s.repo.Tour.FindByID(ctx, tourID)
	if err != nil {
		return nil, fmt.Errorf("find tour: %w", err)
	}
	if tour == nil {
		return nil, ErrTourNotFound
	}
	if tour.AvailableSpots < req.NumberOfPersons {
		return nil, ErrInsufficientSpots
	}

	totalPrice := tour.Price.Mul(decimal.NewFromInt(int64(req.NumberOfPersons)))

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:          userID,
		TourID:          tourID,
		NumberOfPersons: req.NumberOfPersons,
		TotalPrice:      totalPrice,
		Status:          entity.BookingStatusPending,
	}

	reserved, err := s.repo.Booking.Reserve(ctx, booking)
	if err != nil {
		s.log.Error("Failed to reserve booking",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("tour_id", req.TourID),
		)
		return nil, fmt.Errorf("reserve booking: %w", err)
	}
	if !reserved {
		// Lost the race since the availability check above
		return nil, ErrInsufficientSpots
	}

	// Reserve decremented the counter; re-read so the tour snapshot in the
	// response is not stale
	if fresh, err := s.repo.Tour.FindByID(ctx, tourID); err == nil && fresh != nil {
		tour = fresh
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("tour_id", req.TourID),
		zap.Int("persons", req.NumberOfPersons),
		zap.String("total_price", totalPrice.String()),
	)

	resp := response.BookingToResponse(booking)
	tourResp := response.TourToResponse(tour, 0)
	resp.Tour = &tourResp
	return &resp, nil
}

func (s *bookingService) GetMyBookings(ctx context.Context, userID uuid.UUID, page *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Booking.FindByUserID(ctx, userID, page.Limit(), page.Offset())
	if err != nil {
		s.log.Error("Failed to get user bookings",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int("page", page.Page),
		)
		return nil, fmt.Errorf("get user bookings: %w", err)
	}

	total, err := s.repo.Booking.CountByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to count user bookings", zap.Error(err))
		return nil, fmt.Errorf("count user bookings: %w", err)
	}

	bookingResponses := s.buildBookingResponses(ctx, bookings, false)

	return response.NewPaginatedResponse(bookingResponses, page.Page, page.Limit(), total), nil
}

func (s *bookingService) GetAllBookings(ctx context.Context, page *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Booking.FindAll(ctx, page.Limit(), page.Offset())
	if err != nil {
		s.log.Error("Failed to get all bookings", zap.Error(err), zap.Int("page", page.Page))
		return nil, fmt.Errorf("get all bookings: %w", err)
	}

	total, err := s.repo.Booking.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count bookings", zap.Error(err))
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	bookingResponses := s.buildBookingResponses(ctx, bookings, true)

	return response.NewPaginatedResponse(bookingResponses, page.Page, page.Limit(), total), nil
}

func (s *bookingService) UpdateBookingStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update booking status validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking ID %s", ErrValidation, bookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	status := entity.BookingStatus(req.Status)

	// Status change only; a Cancelled status does not touch the spot counter,
	// only deletion restores inventory.
	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, status); err != nil {
		s.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID),
			zap.String("status", req.Status),
		)
		return nil, fmt.Errorf("update booking status: %w", err)
	}

	booking.Status = status

	s.log.Info("Booking status updated",
		zap.String("booking_id", bookingID),
		zap.String("status", req.Status),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, bookingID string) error {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("%w: invalid booking ID %s", ErrValidation, bookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return ErrBookingNotFound
	}

	// Restores the tour's spots and removes the booking as one unit
	if err := s.repo.Booking.Release(ctx, booking); err != nil {
		s.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return fmt.Errorf("delete booking %s: %w", bookingID, err)
	}

	s.log.Info("Booking deleted",
		zap.String("booking_id", bookingID),
		zap.String("tour_id", booking.TourID.String()),
		zap.Int("restored_spots", booking.NumberOfPersons),
	)

	return nil
}

// buildBookingResponses resolves each booking's tour, and its owner when
// withUser is set. Lookup failures leave the field empty rather than failing
// the listing.
func (s *bookingService) buildBookingResponses(ctx context.Context, bookings []*entity.Booking, withUser bool) []response.BookingResponse {
	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		resp := response.BookingToResponse(booking)

		tour, _ := s.repo.Tour.FindByID(ctx, booking.TourID)
		if tour != nil {
			tourResp := response.TourToResponse(tour, 0)
			resp.Tour = &tourResp
		}

		if withUser {
			user, _ := s.repo.User.FindByID(ctx, booking.UserID)
			if user != nil {
				userResp := response.UserToResponse(user)
				resp.User = &userResp
			}
		}

		bookingResponses[i] = resp
	}

	return bookingResponses
}
