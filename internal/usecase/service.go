package usecase

import (
	"tour-booking/internal/data/repository"
	"tour-booking/pkg/mailer"
	"tour-booking/pkg/payment"
	"tour-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	User     UserService
	Tour     TourService
	Review   ReviewService
	Booking  BookingService
	Wishlist WishlistService
	Contact  ContactService
}

func NewService(repo *repository.Repository, gateway payment.Gateway, mail mailer.Mailer, config *utils.Config, log *zap.Logger) *Service {
	rating := NewRatingAggregator(repo.Review, repo.Tour, log)

	return &Service{
		Auth:     NewAuthService(repo, mail, config, log),
		User:     NewUserService(repo, mail, config, log),
		Tour:     NewTourService(repo, mail, config, log),
		Review:   NewReviewService(repo, rating, log),
		Booking:  NewBookingService(repo, gateway, config, log),
		Wishlist: NewWishlistService(repo, config, log),
		Contact:  NewContactService(repo, mail, log),
	}
}
