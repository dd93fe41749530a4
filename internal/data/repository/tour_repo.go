package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/query"
	"tour-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var tourColsFilter = map[string]string{
	"title":           "title",
	"city":            "city",
	"price":           "price",
	"limit":           "guest_limit",
	"status":          "status",
	"tourGuide":       "tour_guide_id",
	"ratingsAverage":  "ratings_average",
	"ratingsQuantity": "ratings_quantity",
	"maxGuests":       "max_guests",
	"minimumAge":      "minimum_age",
	"createdAt":       "created_at",
}

// Tour keyword search spans title, description, and city, OR-combined.
var tourSearchCols = []string{"title", "description", "city"}

func tourFields(alias string) string {
	p := ""
	if alias != "" {
		p = alias + "."
	}
	return p + `id, ` + p + `title, ` + p + `city, ` + p + `description, ` + p + `price, ` +
		p + `guest_limit, ` + p + `availability_times, ` + p + `start_location, ` + p + `program, ` +
		p + `bring_items, ` + p + `not_bring_items, ` + p + `suitable_for, ` + p + `durations, ` +
		p + `max_guests, ` + p + `minimum_age, ` + p + `image_cover, ` + p + `gallery, ` +
		p + `tour_guide_id, ` + p + `status, ` + p + `ratings_average, ` + p + `ratings_quantity, ` +
		p + `created_at, ` + p + `updated_at`
}

type TourRepository interface {
	Create(ctx context.Context, tour *entity.Tour) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tour, error)
	FindByTitle(ctx context.Context, title string) (*entity.Tour, error)
	FindAll(ctx context.Context, opts *query.Options) ([]*entity.Tour, error)
	Count(ctx context.Context) (int64, error)
	FindByStatus(ctx context.Context, status entity.TourStatus) ([]*entity.Tour, error)
	Update(ctx context.Context, tour *entity.Tour) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.TourStatus) error
	UpdateRating(ctx context.Context, id uuid.UUID, average float64, quantity int) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByGuide(ctx context.Context, guideID uuid.UUID) (int64, error)
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

func scanTour(row pgx.Row) (*entity.Tour, error) {
	var t entity.Tour
	err := row.Scan(
		&t.ID, &t.Title, &t.City, &t.Description, &t.Price, &t.Limit, &t.AvailabilityTimes,
		&t.StartLocation, &t.Program, &t.BringItems, &t.NotBringItems, &t.SuitableFor,
		&t.Durations, &t.MaxGuests, &t.MinimumAge, &t.ImageCover, &t.Gallery,
		&t.TourGuideID, &t.Status, &t.RatingsAverage, &t.RatingsQuantity,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *tourRepository) Create(ctx context.Context, tour *entity.Tour) error {
	sql := `
		INSERT INTO tours (id, title, city, description, price, guest_limit, availability_times,
			start_location, program, bring_items, not_bring_items, suitable_for, durations,
			max_guests, minimum_age, image_cover, gallery, tour_guide_id, status,
			ratings_average, ratings_quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17,
			$18, $19, $20, $21, $22, $23)
	`

	_, err := r.db.Exec(ctx, sql,
		tour.ID, tour.Title, tour.City, tour.Description, tour.Price, tour.Limit,
		tour.AvailabilityTimes, tour.StartLocation, tour.Program, tour.BringItems,
		tour.NotBringItems, tour.SuitableFor, tour.Durations, tour.MaxGuests, tour.MinimumAge,
		tour.ImageCover, tour.Gallery, tour.TourGuideID, tour.Status,
		tour.RatingsAverage, tour.RatingsQuantity, tour.CreatedAt, tour.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create tour",
			zap.Error(err),
			zap.String("title", tour.Title),
			zap.String("tour_guide_id", tour.TourGuideID.String()),
		)
		return fmt.Errorf("create tour %s: %w", tour.Title, err)
	}

	return nil
}

func (r *tourRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tour, error) {
	sql := `SELECT ` + tourFields("") + ` FROM tours WHERE id = $1`

	tour, err := scanTour(r.db.QueryRow(ctx, sql, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find tour by ID", zap.Error(err), zap.String("tour_id", id.String()))
		return nil, fmt.Errorf("find tour by ID %s: %w", id.String(), err)
	}

	return tour, nil
}

func (r *tourRepository) FindByTitle(ctx context.Context, title string) (*entity.Tour, error) {
	sql := `SELECT ` + tourFields("") + ` FROM tours WHERE title = $1`

	tour, err := scanTour(r.db.QueryRow(ctx, sql, title))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find tour by title", zap.Error(err), zap.String("title", title))
		return nil, fmt.Errorf("find tour by title %s: %w", title, err)
	}

	return tour, nil
}

func (r *tourRepository) FindAll(ctx context.Context, opts *query.Options) ([]*entity.Tour, error) {
	where, args := opts.Where(tourColsFilter, tourSearchCols)
	sql := `SELECT ` + tourFields("") + ` FROM tours` + where + opts.OrderBy(tourColsFilter) + opts.LimitOffset()

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		r.log.Error("Failed to list tours", zap.Error(err))
		return nil, fmt.Errorf("list tours: %w", err)
	}
	defer rows.Close()

	var tours []*entity.Tour
	for rows.Next() {
		tour, err := scanTour(rows)
		if err != nil {
			r.log.Error("Failed to scan tour row", zap.Error(err))
			return nil, fmt.Errorf("scan tour row: %w", err)
		}
		tours = append(tours, tour)
	}

	return tours, rows.Err()
}

func (r *tourRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM tours`).Scan(&count); err != nil {
		r.log.Error("Failed to count tours", zap.Error(err))
		return 0, fmt.Errorf("count tours: %w", err)
	}
	return count, nil
}

func (r *tourRepository) FindByStatus(ctx context.Context, status entity.TourStatus) ([]*entity.Tour, error) {
	sql := `SELECT ` + tourFields("") + ` FROM tours WHERE status = $1 ORDER BY created_at`

	rows, err := r.db.Query(ctx, sql, status)
	if err != nil {
		r.log.Error("Failed to list tours by status", zap.Error(err), zap.String("status", string(status)))
		return nil, fmt.Errorf("list tours by status %s: %w", string(status), err)
	}
	defer rows.Close()

	var tours []*entity.Tour
	for rows.Next() {
		tour, err := scanTour(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tour row: %w", err)
		}
		tours = append(tours, tour)
	}

	return tours, rows.Err()
}

func (r *tourRepository) Update(ctx context.Context, tour *entity.Tour) error {
	sql := `
		UPDATE tours
		SET title = $2, city = $3, description = $4, price = $5, guest_limit = $6,
			availability_times = $7, start_location = $8, program = $9, bring_items = $10,
			not_bring_items = $11, suitable_for = $12, durations = $13, max_guests = $14,
			minimum_age = $15, image_cover = $16, gallery = $17, status = $18, updated_at = $19
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, sql,
		tour.ID, tour.Title, tour.City, tour.Description, tour.Price, tour.Limit,
		tour.AvailabilityTimes, tour.StartLocation, tour.Program, tour.BringItems,
		tour.NotBringItems, tour.SuitableFor, tour.Durations, tour.MaxGuests, tour.MinimumAge,
		tour.ImageCover, tour.Gallery, tour.Status, time.Now(),
	)
	if err != nil {
		r.log.Error("Failed to update tour", zap.Error(err), zap.String("tour_id", tour.ID.String()))
		return fmt.Errorf("update tour %s: %w", tour.ID.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("tour %s not found", tour.ID.String())
	}

	return nil
}

func (r *tourRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.TourStatus) error {
	sql := `UPDATE tours SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, sql, id, status)
	if err != nil {
		r.log.Error("Failed to update tour status",
			zap.Error(err),
			zap.String("tour_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update tour %s status to %s: %w", id.String(), string(status), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("tour %s not found", id.String())
	}

	return nil
}

func (r *tourRepository) UpdateRating(ctx context.Context, id uuid.UUID, average float64, quantity int) error {
	sql := `UPDATE tours SET ratings_average = $2, ratings_quantity = $3, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, sql, id, average, quantity)
	if err != nil {
		r.log.Error("Failed to update tour rating", zap.Error(err), zap.String("tour_id", id.String()))
		return fmt.Errorf("update tour %s rating: %w", id.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("tour %s not found", id.String())
	}

	return nil
}

func (r *tourRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM tours WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete tour", zap.Error(err), zap.String("tour_id", id.String()))
		return fmt.Errorf("delete tour %s: %w", id.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("tour %s not found", id.String())
	}

	r.log.Info("Tour deleted", zap.String("tour_id", id.String()))
	return nil
}

// DeleteByGuide removes every tour owned by a guide; used when the guide's
// user record is deleted.
func (r *tourRepository) DeleteByGuide(ctx context.Context, guideID uuid.UUID) (int64, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM tours WHERE tour_guide_id = $1`, guideID)
	if err != nil {
		r.log.Error("Failed to delete tours by guide", zap.Error(err), zap.String("guide_id", guideID.String()))
		return 0, fmt.Errorf("delete tours of guide %s: %w", guideID.String(), err)
	}

	return result.RowsAffected(), nil
}
