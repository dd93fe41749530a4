package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"
	"tour-booking/pkg/payment"
	"tour-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Stubs embed the repository interfaces so only the methods a test exercises
// need an implementation; anything else panics loudly.

type stubDraftRepo struct {
	drafts map[uuid.UUID]*entity.BookingDraft
}

func newStubDraftRepo() *stubDraftRepo {
	return &stubDraftRepo{drafts: make(map[uuid.UUID]*entity.BookingDraft)}
}

func (s *stubDraftRepo) Get(_ context.Context, userID uuid.UUID) (*entity.BookingDraft, error) {
	return s.drafts[userID], nil
}

func (s *stubDraftRepo) Set(_ context.Context, userID uuid.UUID, draft *entity.BookingDraft) error {
	s.drafts[userID] = draft
	return nil
}

func (s *stubDraftRepo) Clear(_ context.Context, userID uuid.UUID) error {
	delete(s.drafts, userID)
	return nil
}

type stubTourRepo struct {
	repository.TourRepository
	tours map[uuid.UUID]*entity.Tour
}

func (s *stubTourRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Tour, error) {
	return s.tours[id], nil
}

type stubUserRepo struct {
	repository.UserRepository
	users map[uuid.UUID]*entity.User
}

func (s *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return s.users[id], nil
}

func (s *stubUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

type stubBookingRepo struct {
	repository.BookingRepository
	bookings map[uuid.UUID]*entity.Booking
	created  []*entity.Booking
}

func newStubBookingRepo() *stubBookingRepo {
	return &stubBookingRepo{bookings: make(map[uuid.UUID]*entity.Booking)}
}

func (s *stubBookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	s.bookings[booking.ID] = booking
	s.created = append(s.created, booking)
	return nil
}

func (s *stubBookingRepo) FindByIDAndUser(_ context.Context, id, userID uuid.UUID) (*entity.Booking, error) {
	b, ok := s.bookings[id]
	if !ok || b.UserID != userID {
		return nil, nil
	}
	return b, nil
}

func (s *stubBookingRepo) UpdateStatus(_ context.Context, id uuid.UUID, paymentStatus entity.PaymentStatus, status entity.BookingStatus) error {
	b, ok := s.bookings[id]
	if !ok {
		return errors.New("booking not found")
	}
	b.PaymentStatus = paymentStatus
	b.BookingStatus = status
	return nil
}

type stubGateway struct {
	lastParams payment.CheckoutParams
	session    *payment.CheckoutSession
	err        error
}

func (s *stubGateway) CreateCheckoutSession(_ context.Context, params payment.CheckoutParams) (*payment.CheckoutSession, error) {
	s.lastParams = params
	if s.err != nil {
		return nil, s.err
	}
	return s.session, nil
}

func (s *stubGateway) VerifyEvent(_ []byte, _ string) (*payment.CheckoutEvent, error) {
	return nil, errors.New("not used")
}

type bookingFixture struct {
	service  BookingService
	drafts   *stubDraftRepo
	tours    *stubTourRepo
	users    *stubUserRepo
	bookings *stubBookingRepo
	gateway  *stubGateway
}

func newBookingFixture() *bookingFixture {
	drafts := newStubDraftRepo()
	tours := &stubTourRepo{tours: make(map[uuid.UUID]*entity.Tour)}
	users := &stubUserRepo{users: make(map[uuid.UUID]*entity.User)}
	bookings := newStubBookingRepo()
	gateway := &stubGateway{session: &payment.CheckoutSession{ID: "cs_test_1", URL: "https://checkout.test/cs_test_1"}}

	repo := &repository.Repository{
		User:    users,
		Tour:    tours,
		Booking: bookings,
		Draft:   drafts,
	}
	cfg := &utils.Config{Payment: utils.PaymentConfig{Currency: "egp"}}

	return &bookingFixture{
		service:  NewBookingService(repo, gateway, cfg, zap.NewNop()),
		drafts:   drafts,
		tours:    tours,
		users:    users,
		bookings: bookings,
		gateway:  gateway,
	}
}

func appErrorCode(t *testing.T, err error) int {
	t.Helper()
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	return appErr.Code
}

func TestPriceBooking(t *testing.T) {
	tests := []struct {
		name         string
		price        float64
		tourType     entity.TourType
		participants entity.Participants
		wantBase     float64
		wantTaxes    float64
		wantFee      float64
	}{
		{
			name:      "private_is_flat_rate",
			price:     1000,
			tourType:  entity.TourTypePrivate,
			wantBase:  1000,
			wantTaxes: 200,
			wantFee:   50,
		},
		{
			name:         "family_is_per_participant",
			price:        100,
			tourType:     entity.TourTypeFamily,
			participants: entity.Participants{Adults: 2, Youth: 1},
			wantBase:     300,
			wantTaxes:    60,
			wantFee:      15,
		},
		{
			name:         "collective_counts_children",
			price:        50,
			tourType:     entity.TourTypeCollective,
			participants: entity.Participants{Adults: 1, Children: 3},
			wantBase:     200,
			wantTaxes:    40,
			wantFee:      10,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			base, taxes, fee := priceBooking(tc.price, tc.tourType, tc.participants)
			assert.InDelta(t, tc.wantBase, base, 0.001)
			assert.InDelta(t, tc.wantTaxes, taxes, 0.001)
			assert.InDelta(t, tc.wantFee, fee, 0.001)
		})
	}
}

func TestBookingService_AddDetails(t *testing.T) {
	f := newBookingFixture()
	userID := uuid.New()

	err := f.service.AddDetails(context.Background(), userID, &request.BookingDetailsRequest{
		TourType:     "family",
		Date:         "2030-05-10",
		Time:         "10:00",
		Participants: request.ParticipantsRequest{Adults: 2, Youth: 1},
	})
	require.NoError(t, err)

	draft := f.drafts.drafts[userID]
	require.NotNil(t, draft)
	assert.Equal(t, entity.TourTypeFamily, draft.TourType)
	assert.Equal(t, "2030-05-10", draft.Date)
	assert.Equal(t, 3, draft.Participants.Total())
}

func TestBookingService_AddDetails_InvalidDate(t *testing.T) {
	f := newBookingFixture()

	err := f.service.AddDetails(context.Background(), uuid.New(), &request.BookingDetailsRequest{
		TourType: "family",
		Date:     "10/05/2030",
		Time:     "10:00",
	})

	assert.Equal(t, http.StatusBadRequest, appErrorCode(t, err))
}

func TestBookingService_Checkout_WithoutDraft(t *testing.T) {
	f := newBookingFixture()

	err := f.service.Checkout(context.Background(), uuid.New(), &request.BookingCheckoutRequest{
		TourID:        uuid.New().String(),
		PaymentMethod: "visa or mastercard",
	})

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, appErrorCode(t, err))
}

func TestBookingService_Checkout_RecordsTourAndPaymentMethod(t *testing.T) {
	f := newBookingFixture()
	userID := uuid.New()
	tourID := uuid.New()
	f.drafts.drafts[userID] = &entity.BookingDraft{TourType: entity.TourTypePrivate, Date: "2030-05-10", Time: "10:00"}

	err := f.service.Checkout(context.Background(), userID, &request.BookingCheckoutRequest{
		TourID:        tourID.String(),
		PaymentMethod: "carrier_billing",
	})
	require.NoError(t, err)

	draft := f.drafts.drafts[userID]
	assert.Equal(t, tourID, draft.TourID)
	assert.Equal(t, entity.PaymentMethodCarrier, draft.PaymentMethod)
}

func TestBookingService_CheckoutSession(t *testing.T) {
	f := newBookingFixture()
	userID := uuid.New()
	tourID := uuid.New()

	f.users.users[userID] = &entity.User{Base: entity.Base{ID: userID}, Email: "traveler@example.com"}
	f.tours.tours[tourID] = &entity.Tour{
		Base:        entity.Base{ID: tourID},
		Title:       "Nile Cruise",
		Description: "Three days on the river",
		Price:       1000,
	}
	f.drafts.drafts[userID] = &entity.BookingDraft{
		TourID:        tourID,
		TourType:      entity.TourTypePrivate,
		Date:          "2030-05-10",
		Time:          "10:00",
		PaymentMethod: entity.PaymentMethodCard,
	}

	resp, err := f.service.CheckoutSession(context.Background(), userID)
	require.NoError(t, err)

	// 1000 base + 20% taxes + 5% service fee, in minor units
	assert.Equal(t, int64(125000), f.gateway.lastParams.Amount)
	assert.Equal(t, "egp", f.gateway.lastParams.Currency)
	assert.Equal(t, "traveler@example.com", f.gateway.lastParams.CustomerEmail)
	assert.Equal(t, tourID.String(), f.gateway.lastParams.ReferenceID)

	assert.Equal(t, "cs_test_1", resp.SessionID)
	assert.InDelta(t, 1250, resp.TotalPrice, 0.001)
	assert.InDelta(t, 200, resp.Taxes, 0.001)
	assert.InDelta(t, 50, resp.ServiceFee, 0.001)
}

func TestBookingService_CheckoutSession_WithoutDraft(t *testing.T) {
	f := newBookingFixture()

	_, err := f.service.CheckoutSession(context.Background(), uuid.New())

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, appErrorCode(t, err))
}

func TestBookingService_CheckoutSession_TourGone(t *testing.T) {
	f := newBookingFixture()
	userID := uuid.New()
	f.drafts.drafts[userID] = &entity.BookingDraft{TourID: uuid.New(), TourType: entity.TourTypePrivate}

	_, err := f.service.CheckoutSession(context.Background(), userID)

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, appErrorCode(t, err))
}

func TestBookingService_ConfirmCheckout(t *testing.T) {
	f := newBookingFixture()
	userID := uuid.New()
	tourID := uuid.New()

	f.users.users[userID] = &entity.User{Base: entity.Base{ID: userID}, Email: "traveler@example.com"}
	f.tours.tours[tourID] = &entity.Tour{Base: entity.Base{ID: tourID}, Title: "Nile Cruise", Price: 1000}
	f.drafts.drafts[userID] = &entity.BookingDraft{
		TourID:        tourID,
		TourType:      entity.TourTypePrivate,
		Date:          "2030-05-10",
		Time:          "10:00",
		PaymentMethod: entity.PaymentMethodCard,
	}

	err := f.service.ConfirmCheckout(context.Background(), &payment.CheckoutEvent{
		ReferenceID:   tourID.String(),
		CustomerEmail: "traveler@example.com",
		AmountTotal:   125000,
	})
	require.NoError(t, err)

	require.Len(t, f.bookings.created, 1)
	booking := f.bookings.created[0]
	assert.Equal(t, userID, booking.UserID)
	assert.Equal(t, tourID, booking.TourID)
	assert.Equal(t, entity.PaymentStatusCompleted, booking.PaymentStatus)
	assert.Equal(t, entity.BookingStatusConfirmed, booking.BookingStatus)
	assert.InDelta(t, 1250, booking.TotalPrice, 0.001)
	assert.Equal(t, "2030-05-10", booking.Date.Format("2006-01-02"))

	// draft is consumed once the booking lands
	assert.Nil(t, f.drafts.drafts[userID])
}

func TestBookingService_ConfirmCheckout_UnknownEmail(t *testing.T) {
	f := newBookingFixture()

	err := f.service.ConfirmCheckout(context.Background(), &payment.CheckoutEvent{
		ReferenceID:   uuid.New().String(),
		CustomerEmail: "ghost@example.com",
	})

	assert.Error(t, err)
	assert.Empty(t, f.bookings.created)
}

func TestBookingService_Cancel(t *testing.T) {
	f := newBookingFixture()
	userID := uuid.New()
	bookingID := uuid.New()
	f.bookings.bookings[bookingID] = &entity.Booking{
		Base:          entity.Base{ID: bookingID},
		UserID:        userID,
		PaymentStatus: entity.PaymentStatusCompleted,
		BookingStatus: entity.BookingStatusConfirmed,
	}

	err := f.service.Cancel(context.Background(), bookingID, userID)
	require.NoError(t, err)

	booking := f.bookings.bookings[bookingID]
	assert.Equal(t, entity.BookingStatusCancelled, booking.BookingStatus)
	assert.Equal(t, entity.PaymentStatusCompleted, booking.PaymentStatus)
}

func TestBookingService_Cancel_NotOwner(t *testing.T) {
	f := newBookingFixture()
	bookingID := uuid.New()
	f.bookings.bookings[bookingID] = &entity.Booking{
		Base:   entity.Base{ID: bookingID},
		UserID: uuid.New(),
	}

	err := f.service.Cancel(context.Background(), bookingID, uuid.New())

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, appErrorCode(t, err))
}
