package repository

import (
	"context"
	"testing"
	"time"

	"tour-booking/internal/data/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestDraftRepo(t *testing.T, ttl time.Duration) (DraftRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return NewDraftRepository(rdb, ttl, zap.NewNop()), mr
}

func TestDraftRepository_RoundTrip(t *testing.T) {
	repo, _ := newTestDraftRepo(t, 30*time.Minute)
	userID := uuid.New()

	draft := &entity.BookingDraft{
		TourID:        uuid.New(),
		TourType:      entity.TourTypeFamily,
		Date:          "2030-05-10",
		Time:          "10:00",
		Participants:  entity.Participants{Adults: 2, Youth: 1},
		PaymentMethod: entity.PaymentMethodCard,
	}

	require.NoError(t, repo.Set(context.Background(), userID, draft))

	got, err := repo.Get(context.Background(), userID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, draft.TourID, got.TourID)
	assert.Equal(t, entity.TourTypeFamily, got.TourType)
	assert.Equal(t, 3, got.Participants.Total())
	assert.Equal(t, entity.PaymentMethodCard, got.PaymentMethod)
}

func TestDraftRepository_MissingDraftIsNil(t *testing.T) {
	repo, _ := newTestDraftRepo(t, 30*time.Minute)

	got, err := repo.Get(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDraftRepository_KeyedPerUser(t *testing.T) {
	repo, _ := newTestDraftRepo(t, 30*time.Minute)
	alice := uuid.New()
	bob := uuid.New()

	require.NoError(t, repo.Set(context.Background(), alice, &entity.BookingDraft{TourType: entity.TourTypePrivate}))
	require.NoError(t, repo.Set(context.Background(), bob, &entity.BookingDraft{TourType: entity.TourTypeCollective}))

	got, err := repo.Get(context.Background(), alice)
	require.NoError(t, err)
	assert.Equal(t, entity.TourTypePrivate, got.TourType)

	got, err = repo.Get(context.Background(), bob)
	require.NoError(t, err)
	assert.Equal(t, entity.TourTypeCollective, got.TourType)
}

func TestDraftRepository_Clear(t *testing.T) {
	repo, _ := newTestDraftRepo(t, 30*time.Minute)
	userID := uuid.New()

	require.NoError(t, repo.Set(context.Background(), userID, &entity.BookingDraft{TourType: entity.TourTypePrivate}))
	require.NoError(t, repo.Clear(context.Background(), userID))

	got, err := repo.Get(context.Background(), userID)
	require.NoError(t, err)
	assert.Nil(t, got)

	// clearing an already-empty draft is not an error
	require.NoError(t, repo.Clear(context.Background(), userID))
}

func TestDraftRepository_Expiry(t *testing.T) {
	repo, mr := newTestDraftRepo(t, time.Minute)
	userID := uuid.New()

	require.NoError(t, repo.Set(context.Background(), userID, &entity.BookingDraft{TourType: entity.TourTypePrivate}))

	mr.FastForward(2 * time.Minute)

	got, err := repo.Get(context.Background(), userID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
