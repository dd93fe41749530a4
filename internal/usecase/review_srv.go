package usecase

import (
	"context"
	"fmt"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/query"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"
	"tour-booking/internal/dto/response"
	"tour-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService interface {
	GetAll(ctx context.Context, opts *query.Options) (*response.ListResponse[response.ReviewResponse], error)
	GetOne(ctx context.Context, id uuid.UUID) (*response.ReviewResponse, error)
	Create(ctx context.Context, userID uuid.UUID, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	Update(ctx context.Context, id, callerID uuid.UUID, req *request.UpdateReviewRequest) (*response.ReviewResponse, error)
	Delete(ctx context.Context, id, callerID uuid.UUID, callerRole entity.UserRole) error
}

type reviewService struct {
	repo   *repository.Repository
	crud   *Crud[entity.Review]
	rating *RatingAggregator
	log    *zap.Logger
}

func NewReviewService(repo *repository.Repository, rating *RatingAggregator, log *zap.Logger) ReviewService {
	s := &reviewService{
		repo:   repo,
		rating: rating,
		log:    log.With(zap.String("service", "review")),
	}

	// every review mutation recomputes the tour's rating before responding
	recompute := func(ctx context.Context, r *entity.Review) error {
		return rating.Recompute(ctx, r.TourID)
	}
	s.crud = NewCrud[entity.Review](repo.Review, "no review found").
		WithAfterWrite(recompute).
		WithAfterDelete(recompute)

	return s
}

func (s *reviewService) GetAll(ctx context.Context, opts *query.Options) (*response.ListResponse[response.ReviewResponse], error) {
	result, err := s.crud.GetAll(ctx, opts)
	if err != nil {
		return nil, err
	}

	pagination := result.Pagination
	return response.NewListResponse(response.ReviewsToResponse(result.Items), &pagination), nil
}

func (s *reviewService) GetOne(ctx context.Context, id uuid.UUID) (*response.ReviewResponse, error) {
	review, err := s.crud.GetOne(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) Create(ctx context.Context, userID uuid.UUID, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, utils.NewBadRequest(utils.FormatValidationErrors(errs))
	}

	tourID, err := uuid.Parse(req.TourID)
	if err != nil {
		return nil, utils.NewBadRequest("invalid tour id format")
	}

	tour, err := s.repo.Tour.FindByID(ctx, tourID)
	if err != nil {
		return nil, fmt.Errorf("find reviewed tour: %w", err)
	}
	if tour == nil {
		return nil, utils.NewNotFound(fmt.Sprintf("no tour found with id: %s", req.TourID))
	}

	existing, err := s.repo.Review.FindByUserAndTour(ctx, userID, tourID)
	if err != nil {
		return nil, fmt.Errorf("check existing review: %w", err)
	}
	if existing != nil {
		return nil, utils.NewBadRequest("you already created a review before for this tour")
	}

	now := time.Now()
	review := &entity.Review{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:  req.Title,
		Rating: req.Rating,
		UserID: userID,
		TourID: tourID,
	}

	if err := s.crud.CreateOne(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("tour_id", tourID.String()),
		zap.Int("rating", review.Rating),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) Update(ctx context.Context, id, callerID uuid.UUID, req *request.UpdateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, utils.NewBadRequest(utils.FormatValidationErrors(errs))
	}

	review, err := s.crud.GetOne(ctx, id)
	if err != nil {
		return nil, err
	}

	if review.UserID != callerID {
		return nil, utils.NewForbidden("you are not allowed to update this review")
	}

	if req.Title != nil {
		review.Title = req.Title
	}
	if req.Rating != nil {
		review.Rating = *req.Rating
	}

	if err := s.crud.UpdateOne(ctx, review); err != nil {
		return nil, fmt.Errorf("update review: %w", err)
	}

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) Delete(ctx context.Context, id, callerID uuid.UUID, callerRole entity.UserRole) error {
	review, err := s.crud.GetOne(ctx, id)
	if err != nil {
		return err
	}

	if callerRole != entity.RoleAdmin && review.UserID != callerID {
		return utils.NewForbidden("you are not allowed to delete this review")
	}

	return s.crud.DeleteOne(ctx, id)
}
