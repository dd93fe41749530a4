package usecase

import (
	"context"
	"net/http"
	"testing"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"
	"tour-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type tourRepoStub struct {
	repository.TourRepository
	tours map[uuid.UUID]*entity.Tour
}

func (s *tourRepoStub) Create(_ context.Context, tour *entity.Tour) error {
	s.tours[tour.ID] = tour
	return nil
}

func (s *tourRepoStub) FindByID(_ context.Context, id uuid.UUID) (*entity.Tour, error) {
	return s.tours[id], nil
}

func (s *tourRepoStub) FindByTitle(_ context.Context, title string) (*entity.Tour, error) {
	for _, tour := range s.tours {
		if tour.Title == title {
			return tour, nil
		}
	}
	return nil, nil
}

func (s *tourRepoStub) Update(_ context.Context, tour *entity.Tour) error {
	s.tours[tour.ID] = tour
	return nil
}

func (s *tourRepoStub) UpdateStatus(_ context.Context, id uuid.UUID, status entity.TourStatus) error {
	s.tours[id].Status = status
	return nil
}

type tourFixture struct {
	service TourService
	tours   *tourRepoStub
	users   *stubUserRepo
	mail    *stubMailer
}

func newTourFixture(mailFails bool) *tourFixture {
	tours := &tourRepoStub{tours: make(map[uuid.UUID]*entity.Tour)}
	users := &stubUserRepo{users: make(map[uuid.UUID]*entity.User)}
	mail := &stubMailer{fail: mailFails}
	repo := &repository.Repository{Tour: tours, User: users}
	cfg := &utils.Config{App: utils.AppConfig{BaseURL: "http://localhost:8080"}}

	return &tourFixture{
		service: NewTourService(repo, mail, cfg, zap.NewNop()),
		tours:   tours,
		users:   users,
		mail:    mail,
	}
}

func validCreateTourRequest() *request.CreateTourRequest {
	return &request.CreateTourRequest{
		Title:             "A three day private cruise down the Nile",
		City:              "Aswan",
		Description:       "Sail between Aswan and Luxor with stops at Kom Ombo and Edfu.",
		Price:             1000,
		Limit:             8,
		AvailabilityTimes: []string{"09:00", "14:00"},
		StartLocation:     "Aswan Corniche dock",
		Program:           "Day one Aswan, day two Kom Ombo and Edfu, day three Luxor.",
		Durations:         "3 days",
		MaxGuests:         8,
		MinimumAge:        6,
		ImageCover:        "cover.jpg",
		Gallery:           []string{"deck.jpg", "temple.jpg"},
	}
}

func TestTourService_Create_PendingByDefault(t *testing.T) {
	f := newTourFixture(false)
	guideID := uuid.New()

	resp, err := f.service.Create(context.Background(), guideID, validCreateTourRequest())
	require.NoError(t, err)

	assert.Equal(t, entity.TourStatusPending, resp.Status)

	stored, err := f.tours.FindByTitle(context.Background(), resp.Title)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, guideID, stored.TourGuideID)
}

func TestTourService_Create_DuplicateTitle(t *testing.T) {
	f := newTourFixture(false)

	_, err := f.service.Create(context.Background(), uuid.New(), validCreateTourRequest())
	require.NoError(t, err)

	_, err = f.service.Create(context.Background(), uuid.New(), validCreateTourRequest())
	assert.Equal(t, http.StatusBadRequest, appErrorCode(t, err))
}

func seedPendingTour(f *tourFixture) (*entity.Tour, *entity.User) {
	guideID := uuid.New()
	guide := &entity.User{Base: entity.Base{ID: guideID}, Email: "guide@example.com", Role: entity.RoleTourGuide}
	f.users.users[guideID] = guide

	tour := &entity.Tour{
		Base:        entity.Base{ID: uuid.New()},
		Title:       "A three day private cruise down the Nile",
		TourGuideID: guideID,
		Status:      entity.TourStatusPending,
	}
	f.tours.tours[tour.ID] = tour
	return tour, guide
}

func TestTourService_ApproveRequest(t *testing.T) {
	f := newTourFixture(false)
	tour, _ := seedPendingTour(f)

	resp, err := f.service.ApproveRequest(context.Background(), tour.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.TourStatusApproved, resp.Status)
	assert.Equal(t, entity.TourStatusApproved, f.tours.tours[tour.ID].Status)
	assert.Equal(t, []string{"tour_decision"}, f.mail.sent)
}

func TestTourService_RejectRequest(t *testing.T) {
	f := newTourFixture(false)
	tour, _ := seedPendingTour(f)

	resp, err := f.service.RejectRequest(context.Background(), tour.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.TourStatusRejected, resp.Status)
	assert.Equal(t, entity.TourStatusRejected, f.tours.tours[tour.ID].Status)
}

// the guide must learn about a decision for it to stick
func TestTourService_ApproveRequest_EmailFailureReverts(t *testing.T) {
	f := newTourFixture(true)
	tour, _ := seedPendingTour(f)

	_, err := f.service.ApproveRequest(context.Background(), tour.ID)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, appErrorCode(t, err))
	assert.Equal(t, entity.TourStatusPending, f.tours.tours[tour.ID].Status)
}

func TestTourService_Update_OwnerOnly(t *testing.T) {
	f := newTourFixture(false)
	tour, guide := seedPendingTour(f)

	newTitle := "A four day private cruise down the Nile"
	_, err := f.service.Update(context.Background(), tour.ID, uuid.New(), entity.RoleTourGuide, &request.UpdateTourRequest{Title: &newTitle})
	assert.Equal(t, http.StatusForbidden, appErrorCode(t, err))

	resp, err := f.service.Update(context.Background(), tour.ID, guide.ID, entity.RoleTourGuide, &request.UpdateTourRequest{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, newTitle, resp.Title)
}

func TestTourService_Update_AdminOverride(t *testing.T) {
	f := newTourFixture(false)
	tour, _ := seedPendingTour(f)

	price := 1500.0
	resp, err := f.service.Update(context.Background(), tour.ID, uuid.New(), entity.RoleAdmin, &request.UpdateTourRequest{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, price, resp.Price)
}
