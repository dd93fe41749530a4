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

var reviewCols = map[string]string{
	"rating":    "rating",
	"user":      "user_id",
	"tour":      "tour_id",
	"createdAt": "created_at",
}

var reviewSearchCols = []string{"title"}

const reviewFields = `id, title, rating, user_id, tour_id, created_at, updated_at`

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	FindByUserAndTour(ctx context.Context, userID, tourID uuid.UUID) (*entity.Review, error)
	FindAll(ctx context.Context, opts *query.Options) ([]*entity.Review, error)
	FindByTour(ctx context.Context, tourID uuid.UUID) ([]*entity.Review, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id uuid.UUID) error

	// AggregateByTour returns the mean rating and review count for a tour;
	// zero reviews yields (0, 0).
	AggregateByTour(ctx context.Context, tourID uuid.UUID) (float64, int, error)
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func scanReview(row pgx.Row) (*entity.Review, error) {
	var rv entity.Review
	err := row.Scan(&rv.ID, &rv.Title, &rv.Rating, &rv.UserID, &rv.TourID, &rv.CreatedAt, &rv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	sql := `
		INSERT INTO reviews (id, title, rating, user_id, tour_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, sql,
		review.ID, review.Title, review.Rating, review.UserID, review.TourID,
		review.CreatedAt, review.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", review.UserID.String()),
			zap.String("tour_id", review.TourID.String()),
		)
		return fmt.Errorf("create review: %w", err)
	}

	return nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	sql := `SELECT ` + reviewFields + ` FROM reviews WHERE id = $1`

	review, err := scanReview(r.db.QueryRow(ctx, sql, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by ID", zap.Error(err), zap.String("review_id", id.String()))
		return nil, fmt.Errorf("find review by ID %s: %w", id.String(), err)
	}

	return review, nil
}

func (r *reviewRepository) FindByUserAndTour(ctx context.Context, userID, tourID uuid.UUID) (*entity.Review, error) {
	sql := `SELECT ` + reviewFields + ` FROM reviews WHERE user_id = $1 AND tour_id = $2`

	review, err := scanReview(r.db.QueryRow(ctx, sql, userID, tourID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by user and tour", zap.Error(err))
		return nil, fmt.Errorf("find review by user and tour: %w", err)
	}

	return review, nil
}

func (r *reviewRepository) FindAll(ctx context.Context, opts *query.Options) ([]*entity.Review, error) {
	where, args := opts.Where(reviewCols, reviewSearchCols)
	sql := `SELECT ` + reviewFields + ` FROM reviews` + where + opts.OrderBy(reviewCols) + opts.LimitOffset()

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		r.log.Error("Failed to list reviews", zap.Error(err))
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*entity.Review
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, review)
	}

	return reviews, rows.Err()
}

func (r *reviewRepository) FindByTour(ctx context.Context, tourID uuid.UUID) ([]*entity.Review, error) {
	sql := `SELECT ` + reviewFields + ` FROM reviews WHERE tour_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, sql, tourID)
	if err != nil {
		r.log.Error("Failed to list reviews by tour", zap.Error(err), zap.String("tour_id", tourID.String()))
		return nil, fmt.Errorf("list reviews by tour %s: %w", tourID.String(), err)
	}
	defer rows.Close()

	var reviews []*entity.Review
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, review)
	}

	return reviews, rows.Err()
}

func (r *reviewRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM reviews`).Scan(&count); err != nil {
		r.log.Error("Failed to count reviews", zap.Error(err))
		return 0, fmt.Errorf("count reviews: %w", err)
	}
	return count, nil
}

func (r *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	sql := `UPDATE reviews SET title = $2, rating = $3, updated_at = $4 WHERE id = $1`

	result, err := r.db.Exec(ctx, sql, review.ID, review.Title, review.Rating, time.Now())
	if err != nil {
		r.log.Error("Failed to update review", zap.Error(err), zap.String("review_id", review.ID.String()))
		return fmt.Errorf("update review %s: %w", review.ID.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %s not found", review.ID.String())
	}

	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete review", zap.Error(err), zap.String("review_id", id.String()))
		return fmt.Errorf("delete review %s: %w", id.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %s not found", id.String())
	}

	return nil
}

func (r *reviewRepository) AggregateByTour(ctx context.Context, tourID uuid.UUID) (float64, int, error) {
	sql := `SELECT COALESCE(AVG(rating), 0), COUNT(*) FROM reviews WHERE tour_id = $1`

	var avg float64
	var count int
	if err := r.db.QueryRow(ctx, sql, tourID).Scan(&avg, &count); err != nil {
		r.log.Error("Failed to aggregate reviews", zap.Error(err), zap.String("tour_id", tourID.String()))
		return 0, 0, fmt.Errorf("aggregate reviews for tour %s: %w", tourID.String(), err)
	}

	return avg, count, nil
}
