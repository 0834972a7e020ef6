package repository

import (
	"context"
	"fmt"
	"strings"

	"tour-booking/internal/data/entity"
	"tour-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// TourFilter narrows list queries; zero value matches all active tours
type TourFilter struct {
	Search          string
	Destination     string
	IncludeInactive bool
}

type TourRepository interface {
	Create(ctx context.Context, tour *entity.Tour) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tour, error)
	Update(ctx context.Context, tour *entity.Tour) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindAll(ctx context.Context, filter TourFilter, limit, offset int) ([]*entity.Tour, error)
	Count(ctx context.Context, filter TourFilter) (int64, error)
}

type tourRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTourRepository(db database.PgxIface, log *zap.Logger) TourRepository {
	return &tourRepository{
		db:  db,
		log: log.With(zap.String("repository", "tour")),
	}
}

func (r *tourRepository) Create(ctx context.Context, tour *entity.Tour) error {
	query := `
		INSERT INTO tours (id, title, description, destination, price, duration,
		                   available_spots, start_date, end_date, image_url, is_active,
		                   created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.Exec(ctx, query,
		tour.ID,
		tour.Title,
		tour.Description,
		tour.Destination,
		tour.Price,
		tour.Duration,
		tour.AvailableSpots,
		tour.StartDate,
		tour.EndDate,
		tour.ImageURL,
		tour.IsActive,
		tour.CreatedAt,
		tour.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create tour",
			zap.Error(err),
			zap.String("title", tour.Title),
		)
		return fmt.Errorf("create tour %s: %w", tour.Title, err)
	}

	return nil
}

func (r *tourRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tour, error) {
	query := `
		SELECT id, title, description, destination, price, duration, available_spots,
		       start_date, end_date, image_url, is_active, created_at, updated_at
		FROM tours
		WHERE id = $1
	`

	var tour entity.Tour
	err := r.db.QueryRow(ctx, query, id).Scan(
		&tour.ID,
		&tour.Title,
		&tour.Description,
		&tour.Destination,
		&tour.Price,
		&tour.Duration,
		&tour.AvailableSpots,
		&tour.StartDate,
		&tour.EndDate,
		&tour.ImageURL,
		&tour.IsActive,
		&tour.CreatedAt,
		&tour.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find tour by ID",
			zap.Error(err),
			zap.String("tour_id", id.String()),
		)
		return nil, fmt.Errorf("find tour by ID %s: %w", id.String(), err)
	}

	return &tour, nil
}

func (r *tourRepository) Update(ctx context.Context, tour *entity.Tour) error {
	query := `
		UPDATE tours
		SET title = $2, description = $3, destination = $4, price = $5, duration = $6,
		    available_spots = $7, start_date = $8, end_date = $9, image_url = $10,
		    is_active = $11, updated_at = $12
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		tour.ID,
		tour.Title,
		tour.Description,
		tour.Destination,
		tour.Price,
		tour.Duration,
		tour.AvailableSpots,
		tour.StartDate,
		tour.EndDate,
		tour.ImageURL,
		tour.IsActive,
		tour.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update tour",
			zap.Error(err),
			zap.String("tour_id", tour.ID.String()),
		)
		return fmt.Errorf("update tour %s: %w", tour.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("tour %s not found", tour.ID.String())
	}

	return nil
}

func (r *tourRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM tours WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete tour",
			zap.Error(err),
			zap.String("tour_id", id.String()),
		)
		return fmt.Errorf("delete tour %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("tour %s not found", id.String())
	}

	r.log.Info("Tour deleted", zap.String("tour_id", id.String()))
	return nil
}

func buildTourWhere(filter TourFilter, args *[]interface{}) string {
	var conditions []string

	if !filter.IncludeInactive {
		conditions = append(conditions, "is_active = TRUE")
	}

	if filter.Search != "" {
		*args = append(*args, filter.Search)
		n := len(*args)
		conditions = append(conditions,
			fmt.Sprintf("(title ILIKE '%%' || $%d || '%%' OR description ILIKE '%%' || $%d || '%%')", n, n))
	}

	if filter.Destination != "" {
		*args = append(*args, filter.Destination)
		conditions = append(conditions, fmt.Sprintf("destination ILIKE '%%' || $%d || '%%'", len(*args)))
	}

	if len(conditions) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conditions, " AND ")
}

func (r *tourRepository) FindAll(ctx context.Context, filter TourFilter, limit, offset int) ([]*entity.Tour, error) {
	args := []interface{}{}

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, title, description, destination, price, duration, available_spots,
		       start_date, end_date, image_url, is_active, created_at, updated_at
		FROM tours
	`)
	queryBuilder.WriteString(buildTourWhere(filter, &args))

	args = append(args, limit, offset)
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args)))

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find tours",
			zap.Error(err),
			zap.String("search", filter.Search),
			zap.String("destination", filter.Destination),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find tours: %w", err)
	}
	defer rows.Close()

	var tours []*entity.Tour
	for rows.Next() {
		var tour entity.Tour
		err := rows.Scan(
			&tour.ID,
			&tour.Title,
			&tour.Description,
			&tour.Destination,
			&tour.Price,
			&tour.Duration,
			&tour.AvailableSpots,
			&tour.StartDate,
			&tour.EndDate,
			&tour.ImageURL,
			&tour.IsActive,
			&tour.CreatedAt,
			&tour.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan tour row", zap.Error(err))
			return nil, fmt.Errorf("scan tour row: %w", err)
		}
		tours = append(tours, &tour)
	}

	return tours, nil
}

func (r *tourRepository) Count(ctx context.Context, filter TourFilter) (int64, error) {
	args := []interface{}{}

	query := `SELECT COUNT(*) FROM tours` + buildTourWhere(filter, &args)

	var count int64
	err := r.db.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count tours", zap.Error(err))
		return 0, fmt.Errorf("count tours: %w", err)
	}

	return count, nil
}
