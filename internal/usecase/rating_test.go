package usecase

import (
	"context"
	"errors"
	"testing"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type aggReviewRepo struct {
	repository.ReviewRepository
	avg   float64
	count int
	err   error
}

func (s *aggReviewRepo) AggregateByTour(_ context.Context, _ uuid.UUID) (float64, int, error) {
	return s.avg, s.count, s.err
}

type aggTourRepo struct {
	repository.TourRepository
	gotAverage  float64
	gotQuantity int
	calls       int
}

func (s *aggTourRepo) UpdateRating(_ context.Context, _ uuid.UUID, average float64, quantity int) error {
	s.gotAverage = average
	s.gotQuantity = quantity
	s.calls++
	return nil
}

func TestRatingAggregator_Recompute(t *testing.T) {
	tests := []struct {
		name        string
		avg         float64
		count       int
		wantAverage float64
	}{
		{name: "rounds_to_one_decimal", avg: 4.2512, count: 4, wantAverage: 4.3},
		{name: "rounds_down", avg: 3.3333, count: 3, wantAverage: 3.3},
		{name: "whole_number", avg: 5, count: 1, wantAverage: 5},
		{name: "no_reviews_resets", avg: 0, count: 0, wantAverage: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reviews := &aggReviewRepo{avg: tc.avg, count: tc.count}
			tours := &aggTourRepo{}
			agg := NewRatingAggregator(reviews, tours, zap.NewNop())

			err := agg.Recompute(context.Background(), uuid.New())
			require.NoError(t, err)

			assert.Equal(t, 1, tours.calls)
			assert.InDelta(t, tc.wantAverage, tours.gotAverage, 0.0001)
			assert.Equal(t, tc.count, tours.gotQuantity)
		})
	}
}

func TestRatingAggregator_AggregateFailure(t *testing.T) {
	reviews := &aggReviewRepo{err: errors.New("connection reset")}
	tours := &aggTourRepo{}
	agg := NewRatingAggregator(reviews, tours, zap.NewNop())

	err := agg.Recompute(context.Background(), uuid.New())

	require.Error(t, err)
	assert.Zero(t, tours.calls)
}

type memReviewStore struct {
	repository.ReviewRepository
	items map[uuid.UUID]*entity.Review
}

func (s *memReviewStore) FindByID(_ context.Context, id uuid.UUID) (*entity.Review, error) {
	return s.items[id], nil
}

func (s *memReviewStore) Create(_ context.Context, r *entity.Review) error {
	s.items[r.ID] = r
	return nil
}

func (s *memReviewStore) Delete(_ context.Context, id uuid.UUID) error {
	delete(s.items, id)
	return nil
}

// Review writes and deletes both trigger a recompute through the CRUD hooks;
// this pins the hook plumbing itself.
func TestCrudHooks(t *testing.T) {
	store := &memReviewStore{items: make(map[uuid.UUID]*entity.Review)}

	var writes, deletes int
	crud := NewCrud[entity.Review](store, "no review found").
		WithAfterWrite(func(_ context.Context, _ *entity.Review) error {
			writes++
			return nil
		}).
		WithAfterDelete(func(_ context.Context, _ *entity.Review) error {
			deletes++
			return nil
		})

	review := &entity.Review{Base: entity.Base{ID: uuid.New()}, Rating: 4}
	require.NoError(t, crud.CreateOne(context.Background(), review))
	assert.Equal(t, 1, writes)

	require.NoError(t, crud.DeleteOne(context.Background(), review.ID))
	assert.Equal(t, 1, deletes)

	err := crud.DeleteOne(context.Background(), review.ID)
	require.Error(t, err)
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Code)
}
