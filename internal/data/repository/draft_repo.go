package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tour-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// DraftRepository holds the in-progress booking for each user between the
// add-details step and checkout. Drafts are keyed per user so two users
// booking at the same time never see each other's details.
type DraftRepository interface {
	Get(ctx context.Context, userID uuid.UUID) (*entity.BookingDraft, error)
	Set(ctx context.Context, userID uuid.UUID, draft *entity.BookingDraft) error
	Clear(ctx context.Context, userID uuid.UUID) error
}

type draftRepository struct {
	rdb *redis.Client
	ttl time.Duration
	log *zap.Logger
}

func NewDraftRepository(rdb *redis.Client, ttl time.Duration, log *zap.Logger) DraftRepository {
	return &draftRepository{
		rdb: rdb,
		ttl: ttl,
		log: log.With(zap.String("repository", "booking_draft")),
	}
}

func draftKey(userID uuid.UUID) string {
	return fmt.Sprintf("booking_draft:%s", userID.String())
}

func (r *draftRepository) Get(ctx context.Context, userID uuid.UUID) (*entity.BookingDraft, error) {
	data, err := r.rdb.Get(ctx, draftKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to load booking draft", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("load booking draft: %w", err)
	}

	var draft entity.BookingDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		r.log.Error("Failed to decode booking draft", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("decode booking draft: %w", err)
	}

	return &draft, nil
}

func (r *draftRepository) Set(ctx context.Context, userID uuid.UUID, draft *entity.BookingDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("encode booking draft: %w", err)
	}

	if err := r.rdb.Set(ctx, draftKey(userID), data, r.ttl).Err(); err != nil {
		r.log.Error("Failed to store booking draft", zap.Error(err), zap.String("user_id", userID.String()))
		return fmt.Errorf("store booking draft: %w", err)
	}

	return nil
}

func (r *draftRepository) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := r.rdb.Del(ctx, draftKey(userID)).Err(); err != nil {
		r.log.Error("Failed to clear booking draft", zap.Error(err), zap.String("user_id", userID.String()))
		return fmt.Errorf("clear booking draft: %w", err)
	}
	return nil
}
