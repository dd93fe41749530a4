package usecase

import (
	"context"
	"net/http"
	"testing"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type reviewRepoStub struct {
	repository.ReviewRepository
	reviews map[uuid.UUID]*entity.Review
}

func (s *reviewRepoStub) Create(_ context.Context, review *entity.Review) error {
	s.reviews[review.ID] = review
	return nil
}

func (s *reviewRepoStub) FindByID(_ context.Context, id uuid.UUID) (*entity.Review, error) {
	return s.reviews[id], nil
}

func (s *reviewRepoStub) FindByUserAndTour(_ context.Context, userID, tourID uuid.UUID) (*entity.Review, error) {
	for _, r := range s.reviews {
		if r.UserID == userID && r.TourID == tourID {
			return r, nil
		}
	}
	return nil, nil
}

func (s *reviewRepoStub) Update(_ context.Context, review *entity.Review) error {
	s.reviews[review.ID] = review
	return nil
}

func (s *reviewRepoStub) Delete(_ context.Context, id uuid.UUID) error {
	delete(s.reviews, id)
	return nil
}

func (s *reviewRepoStub) AggregateByTour(_ context.Context, tourID uuid.UUID) (float64, int, error) {
	var sum, count int
	for _, r := range s.reviews {
		if r.TourID == tourID {
			sum += r.Rating
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}

type ratedTourRepo struct {
	tourRepoStub
	lastAverage  float64
	lastQuantity int
}

func (s *ratedTourRepo) UpdateRating(_ context.Context, _ uuid.UUID, average float64, quantity int) error {
	s.lastAverage = average
	s.lastQuantity = quantity
	return nil
}

type reviewFixture struct {
	service ReviewService
	reviews *reviewRepoStub
	tours   *ratedTourRepo
}

func newReviewFixture() *reviewFixture {
	reviews := &reviewRepoStub{reviews: make(map[uuid.UUID]*entity.Review)}
	tours := &ratedTourRepo{tourRepoStub: tourRepoStub{tours: make(map[uuid.UUID]*entity.Tour)}}
	repo := &repository.Repository{Review: reviews, Tour: tours}
	rating := NewRatingAggregator(reviews, tours, zap.NewNop())

	return &reviewFixture{
		service: NewReviewService(repo, rating, zap.NewNop()),
		reviews: reviews,
		tours:   tours,
	}
}

func (f *reviewFixture) seedTour() *entity.Tour {
	tour := &entity.Tour{Base: entity.Base{ID: uuid.New()}, Title: "Pyramids Day Trip", Price: 100}
	f.tours.tours[tour.ID] = tour
	return tour
}

func TestReviewService_Create_RecomputesRating(t *testing.T) {
	f := newReviewFixture()
	tour := f.seedTour()

	_, err := f.service.Create(context.Background(), uuid.New(), &request.CreateReviewRequest{
		Rating: 5,
		TourID: tour.ID.String(),
	})
	require.NoError(t, err)

	assert.InDelta(t, 5, f.tours.lastAverage, 0.001)
	assert.Equal(t, 1, f.tours.lastQuantity)

	_, err = f.service.Create(context.Background(), uuid.New(), &request.CreateReviewRequest{
		Rating: 4,
		TourID: tour.ID.String(),
	})
	require.NoError(t, err)

	assert.InDelta(t, 4.5, f.tours.lastAverage, 0.001)
	assert.Equal(t, 2, f.tours.lastQuantity)
}

func TestReviewService_Create_OnePerTour(t *testing.T) {
	f := newReviewFixture()
	tour := f.seedTour()
	userID := uuid.New()

	_, err := f.service.Create(context.Background(), userID, &request.CreateReviewRequest{
		Rating: 5,
		TourID: tour.ID.String(),
	})
	require.NoError(t, err)

	_, err = f.service.Create(context.Background(), userID, &request.CreateReviewRequest{
		Rating: 3,
		TourID: tour.ID.String(),
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, appErrorCode(t, err))
}

func TestReviewService_Create_MissingTour(t *testing.T) {
	f := newReviewFixture()

	_, err := f.service.Create(context.Background(), uuid.New(), &request.CreateReviewRequest{
		Rating: 5,
		TourID: uuid.New().String(),
	})

	assert.Equal(t, http.StatusNotFound, appErrorCode(t, err))
}

func TestReviewService_Update_OwnerOnly(t *testing.T) {
	f := newReviewFixture()
	tour := f.seedTour()
	ownerID := uuid.New()

	created, err := f.service.Create(context.Background(), ownerID, &request.CreateReviewRequest{
		Rating: 5,
		TourID: tour.ID.String(),
	})
	require.NoError(t, err)
	reviewID := uuid.MustParse(created.ID)

	rating := 3
	_, err = f.service.Update(context.Background(), reviewID, uuid.New(), &request.UpdateReviewRequest{Rating: &rating})
	assert.Equal(t, http.StatusForbidden, appErrorCode(t, err))

	resp, err := f.service.Update(context.Background(), reviewID, ownerID, &request.UpdateReviewRequest{Rating: &rating})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Rating)
	assert.InDelta(t, 3, f.tours.lastAverage, 0.001)
}

func TestReviewService_Delete(t *testing.T) {
	f := newReviewFixture()
	tour := f.seedTour()
	ownerID := uuid.New()

	created, err := f.service.Create(context.Background(), ownerID, &request.CreateReviewRequest{
		Rating: 5,
		TourID: tour.ID.String(),
	})
	require.NoError(t, err)
	reviewID := uuid.MustParse(created.ID)

	err = f.service.Delete(context.Background(), reviewID, uuid.New(), entity.RoleUser)
	assert.Equal(t, http.StatusForbidden, appErrorCode(t, err))

	// admins can moderate anyone's review, and the rating resets with it
	require.NoError(t, f.service.Delete(context.Background(), reviewID, uuid.New(), entity.RoleAdmin))
	assert.Empty(t, f.reviews.reviews)
	assert.InDelta(t, 0, f.tours.lastAverage, 0.001)
	assert.Equal(t, 0, f.tours.lastQuantity)
}
