package repository

import (
	"tour-booking/pkg/database"
	"tour-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Repository struct {
	User    UserRepository
	Tour    TourRepository
	Review  ReviewRepository
	Booking BookingRepository
	Contact ContactRepository
	Draft   DraftRepository
}

func NewRepository(db database.PgxIface, rdb *redis.Client, cfg *utils.Config, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Tour:    NewTourRepository(db, log),
		Review:  NewReviewRepository(db, log),
		Booking: NewBookingRepository(db, log),
		Contact: NewContactRepository(db, log),
		Draft:   NewDraftRepository(rdb, cfg.Redis.DraftTTL, log),
	}
}
