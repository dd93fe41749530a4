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
	"tour-booking/pkg/mailer"
	"tour-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TourService interface {
	GetAll(ctx context.Context, opts *query.Options) (*response.ListResponse[response.TourResponse], error)
	GetOne(ctx context.Context, id uuid.UUID, withReviews bool) (*response.TourResponse, error)
	Create(ctx context.Context, guideID uuid.UUID, req *request.CreateTourRequest) (*response.TourResponse, error)
	Update(ctx context.Context, id, callerID uuid.UUID, callerRole entity.UserRole, req *request.UpdateTourRequest) (*response.TourResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Admin approval workflow
	GetPendingRequests(ctx context.Context) ([]response.TourResponse, error)
	ApproveRequest(ctx context.Context, tourID uuid.UUID) (*response.TourResponse, error)
	RejectRequest(ctx context.Context, tourID uuid.UUID) (*response.TourResponse, error)
}

type tourService struct {
	repo   *repository.Repository
	crud   *Crud[entity.Tour]
	mailer mailer.Mailer
	cfg    *utils.Config
	log    *zap.Logger
}

func NewTourService(repo *repository.Repository, mail mailer.Mailer, cfg *utils.Config, log *zap.Logger) TourService {
	return &tourService{
		repo:   repo,
		crud:   NewCrud[entity.Tour](repo.Tour, "no tour found"),
		mailer: mail,
		cfg:    cfg,
		log:    log.With(zap.String("service", "tour")),
	}
}

func (s *tourService) GetAll(ctx context.Context, opts *query.Options) (*response.ListResponse[response.TourResponse], error) {
	result, err := s.crud.GetAll(ctx, opts)
	if err != nil {
		return nil, err
	}

	pagination := result.Pagination
	return response.NewListResponse(response.ToursToResponse(result.Items, s.cfg.App.BaseURL), &pagination), nil
}

func (s *tourService) GetOne(ctx context.Context, id uuid.UUID, withReviews bool) (*response.TourResponse, error) {
	tour, err := s.crud.GetOne(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := response.TourToResponse(tour, s.cfg.App.BaseURL)

	if withReviews {
		reviews, err := s.repo.Review.FindByTour(ctx, id)
		if err != nil {
			return nil, err
		}
		resp.Reviews = response.ReviewsToResponse(reviews)
	}

	return &resp, nil
}

// Create submits a new tour as a pending request; an admin has to approve it
// before it counts as published.
func (s *tourService) Create(ctx context.Context, guideID uuid.UUID, req *request.CreateTourRequest) (*response.TourResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, utils.NewBadRequest(utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.Tour.FindByTitle(ctx, req.Title)
	if err != nil {
		return nil, fmt.Errorf("check title uniqueness: %w", err)
	}
	if existing != nil {
		return nil, utils.NewBadRequest("tour is already exists with same title name, enter another one")
	}

	now := time.Now()
	tour := &entity.Tour{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:             req.Title,
		City:              req.City,
		Description:       req.Description,
		Price:             req.Price,
		Limit:             req.Limit,
		AvailabilityTimes: req.AvailabilityTimes,
		StartLocation:     req.StartLocation,
		Program:           req.Program,
		BringItems:        derefString(req.BringItems),
		NotBringItems:     derefString(req.NotBringItems),
		SuitableFor:       derefString(req.SuitableFor),
		Durations:         req.Durations,
		MaxGuests:         req.MaxGuests,
		MinimumAge:        req.MinimumAge,
		ImageCover:        &req.ImageCover,
		Gallery:           req.Gallery,
		TourGuideID:       guideID,
		Status:            entity.TourStatusPending,
	}

	if err := s.crud.CreateOne(ctx, tour); err != nil {
		return nil, fmt.Errorf("create tour: %w", err)
	}

	s.log.Info("Tour request created",
		zap.String("tour_id", tour.ID.String()),
		zap.String("guide_id", guideID.String()),
	)

	resp := response.TourToResponse(tour, s.cfg.App.BaseURL)
	return &resp, nil
}

func (s *tourService) Update(ctx context.Context, id, callerID uuid.UUID, callerRole entity.UserRole, req *request.UpdateTourRequest) (*response.TourResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, utils.NewBadRequest(utils.FormatValidationErrors(errs))
	}

	tour, err := s.crud.GetOne(ctx, id)
	if err != nil {
		return nil, err
	}

	if callerRole != entity.RoleAdmin && tour.TourGuideID != callerID {
		return nil, utils.NewForbidden("you are not allowed to update this tour")
	}

	if req.Title != nil {
		tour.Title = *req.Title
	}
	if req.City != nil {
		tour.City = *req.City
	}
	if req.Description != nil {
		tour.Description = *req.Description
	}
	if req.Price != nil {
		tour.Price = *req.Price
	}
	if req.Limit != nil {
		tour.Limit = *req.Limit
	}
	if req.AvailabilityTimes != nil {
		tour.AvailabilityTimes = req.AvailabilityTimes
	}
	if req.StartLocation != nil {
		tour.StartLocation = *req.StartLocation
	}
	if req.Program != nil {
		tour.Program = *req.Program
	}
	if req.BringItems != nil {
		tour.BringItems = *req.BringItems
	}
	if req.NotBringItems != nil {
		tour.NotBringItems = *req.NotBringItems
	}
	if req.SuitableFor != nil {
		tour.SuitableFor = *req.SuitableFor
	}
	if req.Durations != nil {
		tour.Durations = *req.Durations
	}
	if req.MaxGuests != nil {
		tour.MaxGuests = *req.MaxGuests
	}
	if req.MinimumAge != nil {
		tour.MinimumAge = *req.MinimumAge
	}
	if req.ImageCover != nil {
		tour.ImageCover = req.ImageCover
	}
	if req.Gallery != nil {
		tour.Gallery = req.Gallery
	}

	if err := s.crud.UpdateOne(ctx, tour); err != nil {
		return nil, fmt.Errorf("update tour: %w", err)
	}

	resp := response.TourToResponse(tour, s.cfg.App.BaseURL)
	return &resp, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (s *tourService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.crud.DeleteOne(ctx, id)
}

func (s *tourService) GetPendingRequests(ctx context.Context) ([]response.TourResponse, error) {
	tours, err := s.repo.Tour.FindByStatus(ctx, entity.TourStatusPending)
	if err != nil {
		return nil, fmt.Errorf("list tour requests: %w", err)
	}
	return response.ToursToResponse(tours, s.cfg.App.BaseURL), nil
}

// ApproveRequest publishes a pending tour. The owning guide is notified by
// email; a failed send rolls the status back to pending and surfaces a 500.
func (s *tourService) ApproveRequest(ctx context.Context, tourID uuid.UUID) (*response.TourResponse, error) {
	return s.decideRequest(ctx, tourID, true)
}

func (s *tourService) RejectRequest(ctx context.Context, tourID uuid.UUID) (*response.TourResponse, error) {
	return s.decideRequest(ctx, tourID, false)
}

func (s *tourService) decideRequest(ctx context.Context, tourID uuid.UUID, approved bool) (*response.TourResponse, error) {
	tour, err := s.repo.Tour.FindByID(ctx, tourID)
	if err != nil {
		return nil, fmt.Errorf("find tour request: %w", err)
	}
	if tour == nil {
		return nil, utils.NewBadRequest("tour not found")
	}

	previous := tour.Status
	status := entity.TourStatusRejected
	if approved {
		status = entity.TourStatusApproved
	}

	if err := s.repo.Tour.UpdateStatus(ctx, tourID, status); err != nil {
		return nil, fmt.Errorf("update tour status: %w", err)
	}
	tour.Status = status

	guide, err := s.repo.User.FindByID(ctx, tour.TourGuideID)
	if err != nil {
		return nil, fmt.Errorf("find tour guide: %w", err)
	}

	if guide != nil {
		if err := s.mailer.SendTourDecision(guide.Email, guide.FullName, tour.Title, approved); err != nil {
			if revErr := s.repo.Tour.UpdateStatus(ctx, tourID, previous); revErr != nil {
				s.log.Error("Failed to revert tour status after email failure", zap.Error(revErr))
			}
			return nil, utils.NewInternal("There is an error in sending email", err)
		}
	}

	s.log.Info("Tour request decided",
		zap.String("tour_id", tourID.String()),
		zap.String("status", string(status)),
	)

	resp := response.TourToResponse(tour, s.cfg.App.BaseURL)
	return &resp, nil
}
