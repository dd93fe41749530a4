package usecase

import (
	"context"
	"fmt"
	"math"

	"tour-booking/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RatingAggregator recomputes a tour's denormalized rating fields from its
// reviews. It runs synchronously inside every review mutation so readers
// never observe a stale average.
type RatingAggregator struct {
	reviews repository.ReviewRepository
	tours   repository.TourRepository
	log     *zap.Logger
}

func NewRatingAggregator(reviews repository.ReviewRepository, tours repository.TourRepository, log *zap.Logger) *RatingAggregator {
	return &RatingAggregator{
		reviews: reviews,
		tours:   tours,
		log:     log.With(zap.String("service", "rating")),
	}
}

// Recompute averages the tour's review ratings to one decimal place and
// writes the result. A tour with no reviews goes back to 0 average / 0 count.
func (a *RatingAggregator) Recompute(ctx context.Context, tourID uuid.UUID) error {
	avg, count, err := a.reviews.AggregateByTour(ctx, tourID)
	if err != nil {
		return fmt.Errorf("aggregate tour ratings: %w", err)
	}

	average := 0.0
	if count > 0 {
		average = math.Round(avg*10) / 10
	}

	if err := a.tours.UpdateRating(ctx, tourID, average, count); err != nil {
		return fmt.Errorf("write tour rating: %w", err)
	}

	a.log.Debug("Tour rating recomputed",
		zap.String("tour_id", tourID.String()),
		zap.Float64("average", average),
		zap.Int("quantity", count),
	)

	return nil
}
