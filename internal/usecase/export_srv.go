package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type ExportService interface {
	UsersCSV(ctx context.Context) ([]byte, error)
	UsersExcel(ctx context.Context) ([]byte, error)
	ToursCSV(ctx context.Context) ([]byte, error)
	ToursExcel(ctx context.Context) ([]byte, error)
}

type exportService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewExportService(repo *repository.Repository, log *zap.Logger) ExportService {
	return &exportService{
		repo: repo,
		log:  log.With(zap.String("service", "export")),
	}
}

var userExportHeaders = []string{"ID", "First Name", "Last Name", "Username", "Email", "Role", "Created At"}

func userExportRow(user *entity.User) []string {
	return []string{
		user.ID.String(),
		user.FirstName,
		user.LastName,
		user.Username,
		user.Email,
		string(user.Role),
		user.CreatedAt.Format(time.RFC3339),
	}
}

func (s *exportService) UsersCSV(ctx context.Context) ([]byte, error) {
	users, err := s.repo.User.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to load users for export", zap.Error(err))
		return nil, fmt.Errorf("load users: %w", err)
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(userExportHeaders); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, user := range users {
		if err := writer.Write(userExportRow(user)); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	s.log.Info("Users exported to CSV", zap.Int("count", len(users)))
	return buf.Bytes(), nil
}

func (s *exportService) UsersExcel(ctx context.Context) ([]byte, error) {
	users, err := s.repo.User.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to load users for export", zap.Error(err))
		return nil, fmt.Errorf("load users: %w", err)
	}

	rows := make([][]string, len(users))
	for i, user := range users {
		rows[i] = userExportRow(user)
	}

	widths := []float64{38, 15, 15, 15, 25, 10, 22}
	data, err := renderSheet("Users", userExportHeaders, rows, widths)
	if err != nil {
		return nil, err
	}

	s.log.Info("Users exported to Excel", zap.Int("count", len(users)))
	return data, nil
}

// The CSV export carries booking counts only; the Excel export adds per-tour
// like counts as well.
var (
	tourCSVHeaders = []string{
		"ID", "Title", "Destination", "Price", "Duration", "Available Spots",
		"Start Date", "End Date", "Bookings Count", "Created At",
	}
	tourExcelHeaders = []string{
		"ID", "Title", "Destination", "Price", "Duration", "Available Spots",
		"Start Date", "End Date", "Likes Count", "Bookings Count", "Created At",
	}
)

func (s *exportService) tourExportRow(ctx context.Context, tour *entity.Tour, withLikes bool) []string {
	bookingsCount, _ := s.repo.Booking.CountByTourID(ctx, tour.ID)

	formatDate := func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return t.Format("2006-01-02")
	}

	row := []string{
		tour.ID.String(),
		tour.Title,
		tour.Destination,
		tour.Price.StringFixed(2),
		strconv.Itoa(tour.Duration),
		strconv.Itoa(tour.AvailableSpots),
		formatDate(tour.StartDate),
		formatDate(tour.EndDate),
	}
	if withLikes {
		likesCount, _ := s.repo.Like.CountByTourID(ctx, tour.ID)
		row = append(row, strconv.FormatInt(likesCount, 10))
	}
	return append(row,
		strconv.FormatInt(bookingsCount, 10),
		tour.CreatedAt.Format(time.RFC3339),
	)
}

func (s *exportService) loadTourRows(ctx context.Context, withLikes bool) ([][]string, error) {
	tours, err := s.repo.Tour.FindAll(ctx, repository.TourFilter{IncludeInactive: true}, 10000, 0)
	if err != nil {
		s.log.Error("Failed to load tours for export", zap.Error(err))
		return nil, fmt.Errorf("load tours: %w", err)
	}

	rows := make([][]string, len(tours))
	for i, tour := range tours {
		rows[i] = s.tourExportRow(ctx, tour, withLikes)
	}
	return rows, nil
}

func (s *exportService) ToursCSV(ctx context.Context) ([]byte, error) {
	rows, err := s.loadTourRows(ctx, false)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(tourCSVHeaders); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	s.log.Info("Tours exported to CSV", zap.Int("count", len(rows)))
	return buf.Bytes(), nil
}

func (s *exportService) ToursExcel(ctx context.Context) ([]byte, error) {
	rows, err := s.loadTourRows(ctx, true)
	if err != nil {
		return nil, err
	}

	widths := []float64{38, 30, 20, 15, 12, 15, 15, 15, 12, 15, 22}
	data, err := renderSheet("Tours", tourExcelHeaders, rows, widths)
	if err != nil {
		return nil, err
	}

	s.log.Info("Tours exported to Excel", zap.Int("count", len(rows)))
	return data, nil
}

// renderSheet builds a single-sheet workbook with a bold, gray-filled header row
func renderSheet(sheet string, headers []string, rows [][]string, widths []float64) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("write header cell: %w", err)
		}

		col, _ := excelize.ColumnNumberToName(i + 1)
		if i < len(widths) {
			f.SetColWidth(sheet, col, col, widths[i])
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E0E0E0"}},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	firstCell, _ := excelize.CoordinatesToCellName(1, 1)
	lastCell, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(sheet, firstCell, lastCell, headerStyle); err != nil {
		return nil, fmt.Errorf("style header row: %w", err)
	}

	for i, row := range rows {
		for j, value := range row {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("write cell: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	return buf.Bytes(), nil
}
