package usecase

import (
	"context"
	"fmt"

	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"
	"tour-booking/internal/dto/response"
	"tour-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type WishlistService interface {
	Add(ctx context.Context, userID uuid.UUID, req *request.WishlistAddRequest) error
	Remove(ctx context.Context, userID, tourID uuid.UUID) error
	Get(ctx context.Context, userID uuid.UUID) ([]response.TourResponse, error)
}

type wishlistService struct {
	repo *repository.Repository
	cfg  *utils.Config
	log  *zap.Logger
}

func NewWishlistService(repo *repository.Repository, cfg *utils.Config, log *zap.Logger) WishlistService {
	return &wishlistService{
		repo: repo,
		cfg:  cfg,
		log:  log.With(zap.String("service", "wishlist")),
	}
}

// Add has set semantics: adding a tour twice is a no-op.
func (s *wishlistService) Add(ctx context.Context, userID uuid.UUID, req *request.WishlistAddRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return utils.NewBadRequest(utils.FormatValidationErrors(errs))
	}

	tourID, err := uuid.Parse(req.TourID)
	if err != nil {
		return utils.NewBadRequest("invalid tour id format")
	}

	tour, err := s.repo.Tour.FindByID(ctx, tourID)
	if err != nil {
		return fmt.Errorf("find wishlist tour: %w", err)
	}
	if tour == nil {
		return utils.NewNotFound(fmt.Sprintf("no tour found with id: %s", req.TourID))
	}

	return s.repo.User.AddToWishlist(ctx, userID, tourID)
}

func (s *wishlistService) Remove(ctx context.Context, userID, tourID uuid.UUID) error {
	return s.repo.User.RemoveFromWishlist(ctx, userID, tourID)
}

func (s *wishlistService) Get(ctx context.Context, userID uuid.UUID) ([]response.TourResponse, error) {
	tours, err := s.repo.User.FindWishlist(ctx, userID)
	if err != nil {
		return nil, err
	}
	return response.ToursToResponse(tours, s.cfg.App.BaseURL), nil
}
