package usecase

import (
	"context"
	"testing"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("reserves spots and prices the booking", func(t *testing.T) {
		f := newFixture()
		user := f.addUser("alice", entity.RoleUser)
		tour := f.addTour("Island Hopping", 100, 5)

		svc := NewBookingService(f.repo, zap.NewNop())

		resp, err := svc.CreateBooking(ctx, user.ID, &request.CreateBookingRequest{
			TourID:          tour.ID.String(),
			NumberOfPersons: 3,
		})
		require.NoError(t, err)

		assert.Equal(t, "300", resp.TotalPrice.String())
		assert.Equal(t, entity.BookingStatusPending, resp.Status)
		assert.Equal(t, 2, tour.AvailableSpots)
		require.NotNil(t, resp.Tour)
		assert.Equal(t, tour.ID.String(), resp.Tour.ID)
		assert.Equal(t, 2, resp.Tour.AvailableSpots)
	})

	t.Run("rejects when spots are insufficient", func(t *testing.T) {
		f := newFixture()
		user := f.addUser("alice", entity.RoleUser)
		tour := f.addTour("Island Hopping", 100, 5)

		svc := NewBookingService(f.repo, zap.NewNop())

		_, err := svc.CreateBooking(ctx, user.ID, &request.CreateBookingRequest{
			TourID:          tour.ID.String(),
			NumberOfPersons: 3,
		})
		require.NoError(t, err)

		_, err = svc.CreateBooking(ctx, user.ID, &request.CreateBookingRequest{
			TourID:          tour.ID.String(),
			NumberOfPersons: 3,
		})
		assert.ErrorIs(t, err, ErrInsufficientSpots)
		assert.Equal(t, 2, tour.AvailableSpots)
	})

	t.Run("unknown tour returns not found", func(t *testing.T) {
		f := newFixture()
		user := f.addUser("alice", entity.RoleUser)

		svc := NewBookingService(f.repo, zap.NewNop())

		_, err := svc.CreateBooking(ctx, user.ID, &request.CreateBookingRequest{
			TourID:          uuid.NewString(),
			NumberOfPersons: 1,
		})
		assert.ErrorIs(t, err, ErrTourNotFound)
	})

	t.Run("invalid payload fails validation", func(t *testing.T) {
		f := newFixture()
		user := f.addUser("alice", entity.RoleUser)

		svc := NewBookingService(f.repo, zap.NewNop())

		cases := []struct {
			name string
			req  request.CreateBookingRequest
		}{
			{"missing tour id", request.CreateBookingRequest{NumberOfPersons: 2}},
			{"non-uuid tour id", request.CreateBookingRequest{TourID: "not-a-uuid", NumberOfPersons: 2}},
			{"zero persons", request.CreateBookingRequest{TourID: uuid.NewString()}},
			{"negative persons", request.CreateBookingRequest{TourID: uuid.NewString(), NumberOfPersons: -1}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := svc.CreateBooking(ctx, user.ID, &tc.req)
				assert.ErrorIs(t, err, ErrValidation)
			})
		}
	})
}

func TestGetMyBookings(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	alice := f.addUser("alice", entity.RoleUser)
	bob := f.addUser("bob", entity.RoleUser)
	tour := f.addTour("Island Hopping", 50, 100)

	svc := NewBookingService(f.repo, zap.NewNop())

	for i := 0; i < 12; i++ {
		_, err := svc.CreateBooking(ctx, alice.ID, &request.CreateBookingRequest{
			TourID:          tour.ID.String(),
			NumberOfPersons: 1,
		})
		require.NoError(t, err)
	}
	_, err := svc.CreateBooking(ctx, bob.ID, &request.CreateBookingRequest{
		TourID:          tour.ID.String(),
		NumberOfPersons: 1,
	})
	require.NoError(t, err)

	page1, err := svc.GetMyBookings(ctx, alice.ID, &request.PaginatedRequest{Page: 1})
	require.NoError(t, err)
	assert.Len(t, page1.Data, 10)
	assert.Equal(t, int64(12), page1.Pagination.Total)
	assert.Equal(t, 2, page1.Pagination.TotalPages)

	page2, err := svc.GetMyBookings(ctx, alice.ID, &request.PaginatedRequest{Page: 2})
	require.NoError(t, err)
	assert.Len(t, page2.Data, 2)

	// Past the last page is an empty result, not an error
	page5, err := svc.GetMyBookings(ctx, alice.ID, &request.PaginatedRequest{Page: 5})
	require.NoError(t, err)
	assert.Empty(t, page5.Data)
	assert.Equal(t, int64(12), page5.Pagination.Total)
	assert.Equal(t, 2, page5.Pagination.TotalPages)

	// Each row carries its tour, never another user's booking
	for _, b := range page1.Data {
		assert.Equal(t, alice.ID.String(), b.UserID)
		require.NotNil(t, b.Tour)
		assert.Equal(t, tour.ID.String(), b.Tour.ID)
	}
}

func TestGetAllBookingsIncludesOwner(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	alice := f.addUser("alice", entity.RoleUser)
	tour := f.addTour("Island Hopping", 50, 100)

	svc := NewBookingService(f.repo, zap.NewNop())

	_, err := svc.CreateBooking(ctx, alice.ID, &request.CreateBookingRequest{
		TourID:          tour.ID.String(),
		NumberOfPersons: 2,
	})
	require.NoError(t, err)

	all, err := svc.GetAllBookings(ctx, &request.PaginatedRequest{Page: 1})
	require.NoError(t, err)
	require.Len(t, all.Data, 1)
	require.NotNil(t, all.Data[0].User)
	assert.Equal(t, "alice", all.Data[0].User.Username)
}

func TestUpdateBookingStatus(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	alice := f.addUser("alice", entity.RoleUser)
	tour := f.addTour("Island Hopping", 50, 10)

	svc := NewBookingService(f.repo, zap.NewNop())

	created, err := svc.CreateBooking(ctx, alice.ID, &request.CreateBookingRequest{
		TourID:          tour.ID.String(),
		NumberOfPersons: 4,
	})
	require.NoError(t, err)
	require.Equal(t, 6, tour.AvailableSpots)

	t.Run("cancelling does not restore spots", func(t *testing.T) {
		resp, err := svc.UpdateBookingStatus(ctx, created.ID, &request.UpdateBookingStatusRequest{
			Status: string(entity.BookingStatusCancelled),
		})
		require.NoError(t, err)
		assert.Equal(t, entity.BookingStatusCancelled, resp.Status)
		assert.Equal(t, 6, tour.AvailableSpots)
	})

	t.Run("unknown status fails validation", func(t *testing.T) {
		_, err := svc.UpdateBookingStatus(ctx, created.ID, &request.UpdateBookingStatusRequest{
			Status: "Done",
		})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("unknown booking returns not found", func(t *testing.T) {
		_, err := svc.UpdateBookingStatus(ctx, uuid.NewString(), &request.UpdateBookingStatusRequest{
			Status: string(entity.BookingStatusConfirmed),
		})
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestDeleteBooking(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	alice := f.addUser("alice", entity.RoleUser)
	tour := f.addTour("Island Hopping", 50, 10)

	svc := NewBookingService(f.repo, zap.NewNop())

	created, err := svc.CreateBooking(ctx, alice.ID, &request.CreateBookingRequest{
		TourID:          tour.ID.String(),
		NumberOfPersons: 4,
	})
	require.NoError(t, err)
	require.Equal(t, 6, tour.AvailableSpots)

	require.NoError(t, svc.DeleteBooking(ctx, created.ID))
	assert.Equal(t, 10, tour.AvailableSpots)

	count, err := f.repo.Booking.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	assert.ErrorIs(t, svc.DeleteBooking(ctx, created.ID), ErrBookingNotFound)
}
