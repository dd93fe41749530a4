package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/query"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"
	"tour-booking/internal/dto/response"
	"tour-booking/pkg/payment"
	"tour-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	taxRate        = 0.20
	serviceFeeRate = 0.05
)

type BookingService interface {
	// checkout workflow, in step order
	AddDetails(ctx context.Context, userID uuid.UUID, req *request.BookingDetailsRequest) error
	Checkout(ctx context.Context, userID uuid.UUID, req *request.BookingCheckoutRequest) error
	CheckoutSession(ctx context.Context, userID uuid.UUID) (*response.CheckoutSessionResponse, error)
	ConfirmCheckout(ctx context.Context, event *payment.CheckoutEvent) error
	Cancel(ctx context.Context, id, userID uuid.UUID) error

	// read side
	GetAll(ctx context.Context, opts *query.Options) (*response.ListResponse[response.BookingResponse], error)
	GetOne(ctx context.Context, id, callerID uuid.UUID, callerRole entity.UserRole) (*response.BookingResponse, error)
	Update(ctx context.Context, id, callerID uuid.UUID, callerRole entity.UserRole, req *request.UpdateBookingRequest) (*response.BookingResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Past(ctx context.Context, userID uuid.UUID) ([]response.BookingResponse, error)
	Upcoming(ctx context.Context, userID uuid.UUID) ([]response.BookingResponse, error)
}

type bookingService struct {
	repo    *repository.Repository
	crud    *Crud[entity.Booking]
	gateway payment.Gateway
	cfg     *utils.Config
	log     *zap.Logger
}

func NewBookingService(repo *repository.Repository, gateway payment.Gateway, cfg *utils.Config, log *zap.Logger) BookingService {
	return &bookingService{
		repo:    repo,
		crud:    NewCrud[entity.Booking](repo.Booking, "no booking found"),
		gateway: gateway,
		cfg:     cfg,
		log:     log.With(zap.String("service", "booking")),
	}
}

// AddDetails starts (or restarts) the caller's booking draft.
func (s *bookingService) AddDetails(ctx context.Context, userID uuid.UUID, req *request.BookingDetailsRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return utils.NewBadRequest(utils.FormatValidationErrors(errs))
	}

	draft := &entity.BookingDraft{
		TourType:     entity.TourType(req.TourType),
		Date:         req.Date,
		Time:         req.Time,
		Participants: entity.Participants{
			Adults:   req.Participants.Adults,
			Youth:    req.Participants.Youth,
			Children: req.Participants.Children,
		},
	}

	return s.repo.Draft.Set(ctx, userID, draft)
}

// Checkout records the payment method and tour on the caller's draft.
func (s *bookingService) Checkout(ctx context.Context, userID uuid.UUID, req *request.BookingCheckoutRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return utils.NewBadRequest(utils.FormatValidationErrors(errs))
	}

	tourID, err := uuid.Parse(req.TourID)
	if err != nil {
		return utils.NewBadRequest("invalid tour id format")
	}

	draft, err := s.repo.Draft.Get(ctx, userID)
	if err != nil {
		return err
	}
	if draft == nil {
		return utils.NewBadRequest("no booking details found, add booking details first")
	}

	draft.TourID = tourID
	draft.PaymentMethod = entity.PaymentMethod(req.PaymentMethod)

	return s.repo.Draft.Set(ctx, userID, draft)
}

// CheckoutSession prices the draft and opens a hosted checkout session with
// the payment provider. The booking itself is not persisted until the
// provider's webhook confirms payment.
func (s *bookingService) CheckoutSession(ctx context.Context, userID uuid.UUID) (*response.CheckoutSessionResponse, error) {
	draft, err := s.repo.Draft.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if draft == nil || draft.TourID == uuid.Nil {
		return nil, utils.NewBadRequest("no booking details found, add booking details first")
	}

	tour, err := s.repo.Tour.FindByID(ctx, draft.TourID)
	if err != nil {
		return nil, fmt.Errorf("find booked tour: %w", err)
	}
	if tour == nil {
		return nil, utils.NewNotFound(fmt.Sprintf("there is no tour with id: %s", draft.TourID.String()))
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find booking user: %w", err)
	}
	if user == nil {
		return nil, utils.NewNotFound("user not found")
	}

	base, taxes, serviceFee := priceBooking(tour.Price, draft.TourType, draft.Participants)
	total := base + taxes + serviceFee

	session, err := s.gateway.CreateCheckoutSession(ctx, payment.CheckoutParams{
		Amount:        int64(math.Round(total * 100)),
		Currency:      s.cfg.Payment.Currency,
		ProductName:   tour.Title,
		Description:   tour.Description,
		CustomerEmail: user.Email,
		ReferenceID:   tour.ID.String(),
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Checkout session created",
		zap.String("user_id", userID.String()),
		zap.String("tour_id", tour.ID.String()),
		zap.Float64("total", total),
	)

	return &response.CheckoutSessionResponse{
		SessionID:  session.ID,
		SessionURL: session.URL,
		TotalPrice: total,
		Taxes:      taxes,
		ServiceFee: serviceFee,
	}, nil
}

// priceBooking computes the base price, taxes and service fee for a draft.
// A private tour is priced flat; otherwise per participant.
func priceBooking(tourPrice float64, tourType entity.TourType, participants entity.Participants) (base, taxes, serviceFee float64) {
	if tourType == entity.TourTypePrivate {
		base = tourPrice
	} else {
		base = tourPrice * float64(participants.Total())
	}
	return base, base * taxRate, base * serviceFeeRate
}

// ConfirmCheckout turns a verified checkout-completed event into a persisted
// booking and clears the draft that produced it.
func (s *bookingService) ConfirmCheckout(ctx context.Context, event *payment.CheckoutEvent) error {
	user, err := s.repo.User.FindByEmail(ctx, event.CustomerEmail)
	if err != nil {
		return fmt.Errorf("resolve webhook user: %w", err)
	}
	if user == nil {
		return fmt.Errorf("no user for webhook email %s", event.CustomerEmail)
	}

	tourID, err := uuid.Parse(event.ReferenceID)
	if err != nil {
		return fmt.Errorf("invalid webhook tour reference %q: %w", event.ReferenceID, err)
	}
	tour, err := s.repo.Tour.FindByID(ctx, tourID)
	if err != nil {
		return fmt.Errorf("resolve webhook tour: %w", err)
	}
	if tour == nil {
		return fmt.Errorf("no tour for webhook reference %s", event.ReferenceID)
	}

	draft, err := s.repo.Draft.Get(ctx, user.ID)
	if err != nil {
		return err
	}
	if draft == nil {
		return fmt.Errorf("no booking draft for user %s", user.ID.String())
	}

	date, err := time.Parse("2006-01-02", draft.Date)
	if err != nil {
		return fmt.Errorf("invalid draft date %q: %w", draft.Date, err)
	}

	total := float64(event.AmountTotal) / 100
	_, taxes, serviceFee := priceBooking(tour.Price, draft.TourType, draft.Participants)

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:        user.ID,
		TourID:        tour.ID,
		TourType:      draft.TourType,
		Date:          date,
		Time:          draft.Time,
		Participants:  draft.Participants,
		TotalPrice:    total,
		Taxes:         taxes,
		ServiceFee:    serviceFee,
		PaymentMethod: draft.PaymentMethod,
		PaymentStatus: entity.PaymentStatusCompleted,
		BookingStatus: entity.BookingStatusConfirmed,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		return err
	}

	if err := s.repo.Draft.Clear(ctx, user.ID); err != nil {
		s.log.Warn("Failed to clear booking draft after confirmation",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
	}

	s.log.Info("Booking confirmed",
		zap.String("booking_id", booking.ID.String()),
		zap.String("user_id", user.ID.String()),
		zap.String("tour_id", tour.ID.String()),
		zap.Float64("total", total),
	)

	return nil
}

// Cancel marks the caller's own booking cancelled. A booking that does not
// exist or belongs to someone else is reported as not found.
func (s *bookingService) Cancel(ctx context.Context, id, userID uuid.UUID) error {
	booking, err := s.repo.Booking.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("find booking to cancel: %w", err)
	}
	if booking == nil {
		return utils.NewNotFound(fmt.Sprintf("no booking found with id: %s", id.String()))
	}

	return s.repo.Booking.UpdateStatus(ctx, id, booking.PaymentStatus, entity.BookingStatusCancelled)
}

func (s *bookingService) GetAll(ctx context.Context, opts *query.Options) (*response.ListResponse[response.BookingResponse], error) {
	result, err := s.crud.GetAll(ctx, opts)
	if err != nil {
		return nil, err
	}

	pagination := result.Pagination
	return response.NewListResponse(response.BookingsToResponse(result.Items), &pagination), nil
}

func (s *bookingService) GetOne(ctx context.Context, id, callerID uuid.UUID, callerRole entity.UserRole) (*response.BookingResponse, error) {
	booking, err := s.crud.GetOne(ctx, id)
	if err != nil {
		return nil, err
	}

	if callerRole != entity.RoleAdmin && booking.UserID != callerID {
		return nil, utils.NewNotFound(fmt.Sprintf("no booking found with id: %s", id.String()))
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) Update(ctx context.Context, id, callerID uuid.UUID, callerRole entity.UserRole, req *request.UpdateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, utils.NewBadRequest(utils.FormatValidationErrors(errs))
	}

	booking, err := s.crud.GetOne(ctx, id)
	if err != nil {
		return nil, err
	}

	if callerRole != entity.RoleAdmin && booking.UserID != callerID {
		return nil, utils.NewNotFound(fmt.Sprintf("no booking found with id: %s", id.String()))
	}

	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return nil, utils.NewBadRequest("invalid booking date format")
		}
		booking.Date = date
	}
	if req.Time != nil {
		booking.Time = *req.Time
	}
	if req.TourType != nil {
		booking.TourType = entity.TourType(*req.TourType)
	}
	if req.Participants != nil {
		booking.Participants = entity.Participants{
			Adults:   req.Participants.Adults,
			Youth:    req.Participants.Youth,
			Children: req.Participants.Children,
		}
	}

	if err := s.crud.UpdateOne(ctx, booking); err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.crud.DeleteOne(ctx, id)
}

func (s *bookingService) Past(ctx context.Context, userID uuid.UUID) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindPastByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return response.BookingsToResponse(bookings), nil
}

func (s *bookingService) Upcoming(ctx context.Context, userID uuid.UUID) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindUpcomingByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return response.BookingsToResponse(bookings), nil
}
