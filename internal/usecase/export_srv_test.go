package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func TestUsersCSV(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	alice := f.addUser("alice", entity.RoleUser)
	f.addUser("root", entity.RoleAdmin)

	svc := NewExportService(f.repo, zap.NewNop())

	data, err := svc.UsersCSV(ctx)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, userExportHeaders, records[0])
	assert.Equal(t, alice.ID.String(), records[1][0])
	assert.Equal(t, "alice", records[1][3])
	assert.Equal(t, "Admin", records[2][5])

	// The password hash must not leak into the export
	assert.NotContains(t, string(data), alice.PasswordHash)
}

func TestToursCSV(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	alice := f.addUser("alice", entity.RoleUser)
	tour := f.addTour("Island Hopping", 149.99, 20)
	inactive := f.addTour("Secret Retreat", 500, 2)
	inactive.IsActive = false

	likeSvc := NewLikeService(f.repo, zap.NewNop())
	_, err := likeSvc.LikeTour(ctx, alice.ID, tour.ID.String())
	require.NoError(t, err)

	bookingSvc := NewBookingService(f.repo, zap.NewNop())
	_, err = bookingSvc.CreateBooking(ctx, alice.ID, &request.CreateBookingRequest{
		TourID:          tour.ID.String(),
		NumberOfPersons: 2,
	})
	require.NoError(t, err)

	svc := NewExportService(f.repo, zap.NewNop())

	data, err := svc.ToursCSV(ctx)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)

	// Header plus both tours, inactive included
	require.Len(t, records, 3)
	assert.Equal(t, tourCSVHeaders, records[0])
	assert.NotContains(t, records[0], "Likes Count")

	row := records[1]
	require.Len(t, row, len(tourCSVHeaders))
	assert.Equal(t, tour.ID.String(), row[0])
	assert.Equal(t, "Island Hopping", row[1])
	assert.Equal(t, "149.99", row[3])
	assert.Equal(t, "18", row[5])
	assert.Equal(t, "1", row[8]) // bookings count
}

func TestUsersExcel(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.addUser("alice", entity.RoleUser)

	svc := NewExportService(f.repo, zap.NewNop())

	data, err := svc.UsersExcel(ctx)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Users")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, userExportHeaders, rows[0])
	assert.Equal(t, "alice", rows[1][3])
}

func TestToursExcel(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	alice := f.addUser("alice", entity.RoleUser)
	tour := f.addTour("Island Hopping", 149.99, 20)

	likeSvc := NewLikeService(f.repo, zap.NewNop())
	_, err := likeSvc.LikeTour(ctx, alice.ID, tour.ID.String())
	require.NoError(t, err)

	svc := NewExportService(f.repo, zap.NewNop())

	data, err := svc.ToursExcel(ctx)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Tours")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, tourExcelHeaders, rows[0])
	assert.Equal(t, "Island Hopping", rows[1][1])
	assert.Equal(t, "149.99", rows[1][3])
	assert.Equal(t, "1", rows[1][8]) // likes count, spreadsheet only
}
