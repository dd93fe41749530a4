package usecase

import (
	"context"
	"net/http"
	"testing"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type userRepoStub struct {
	repository.UserRepository
	users map[uuid.UUID]*entity.User
}

func (s *userRepoStub) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return s.users[id], nil
}

func (s *userRepoStub) Update(_ context.Context, user *entity.User) error {
	s.users[user.ID] = user
	return nil
}

func (s *userRepoStub) Delete(_ context.Context, id uuid.UUID) error {
	delete(s.users, id)
	return nil
}

type guideTourRepo struct {
	repository.TourRepository
	deletedGuides []uuid.UUID
}

func (s *guideTourRepo) DeleteByGuide(_ context.Context, guideID uuid.UUID) (int64, error) {
	s.deletedGuides = append(s.deletedGuides, guideID)
	return 2, nil
}

func newUserFixture(mailFails bool) (UserService, *userRepoStub, *guideTourRepo, *stubMailer) {
	users := &userRepoStub{users: make(map[uuid.UUID]*entity.User)}
	tours := &guideTourRepo{}
	mail := &stubMailer{fail: mailFails}
	repo := &repository.Repository{User: users, Tour: tours}
	cfg := &utils.Config{JWT: utils.JWTConfig{Secret: "test-secret", ExpiryHours: 1}}

	return NewUserService(repo, mail, cfg, zap.NewNop()), users, tours, mail
}

func TestUserService_Delete_CascadesGuideTours(t *testing.T) {
	service, users, tours, _ := newUserFixture(false)
	guideID := uuid.New()
	users.users[guideID] = &entity.User{Base: entity.Base{ID: guideID}, Role: entity.RoleTourGuide}

	require.NoError(t, service.Delete(context.Background(), guideID))

	assert.NotContains(t, users.users, guideID)
	assert.Equal(t, []uuid.UUID{guideID}, tours.deletedGuides)
}

func TestUserService_Delete_PlainUserKeepsToursAlone(t *testing.T) {
	service, users, tours, _ := newUserFixture(false)
	userID := uuid.New()
	users.users[userID] = &entity.User{Base: entity.Base{ID: userID}, Role: entity.RoleUser}

	require.NoError(t, service.Delete(context.Background(), userID))

	assert.Empty(t, tours.deletedGuides)
}

func TestUserService_ApproveGuideRequest(t *testing.T) {
	service, users, _, mail := newUserFixture(false)
	userID := uuid.New()
	users.users[userID] = &entity.User{
		Base:          entity.Base{ID: userID},
		Email:         "guide@example.com",
		Role:          entity.RoleUser,
		RequestStatus: entity.RequestStatusPending,
	}

	resp, err := service.ApproveGuideRequest(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, entity.RoleTourGuide, resp.Role)
	assert.Equal(t, entity.RequestStatusApproved, users.users[userID].RequestStatus)
	assert.True(t, users.users[userID].IsApproved)
	assert.Equal(t, []string{"guide_approval"}, mail.sent)
}

// an approval whose email never reached the guide is rolled back to pending
func TestUserService_ApproveGuideRequest_EmailFailureReverts(t *testing.T) {
	service, users, _, _ := newUserFixture(true)
	userID := uuid.New()
	users.users[userID] = &entity.User{
		Base:          entity.Base{ID: userID},
		Email:         "guide@example.com",
		RequestStatus: entity.RequestStatusPending,
	}

	_, err := service.ApproveGuideRequest(context.Background(), userID)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, appErrorCode(t, err))
	assert.Equal(t, entity.RequestStatusPending, users.users[userID].RequestStatus)
	assert.False(t, users.users[userID].IsApproved)
}

func TestUserService_RejectGuideRequest(t *testing.T) {
	service, users, _, _ := newUserFixture(false)
	userID := uuid.New()
	idNumber := "29801011234567"
	users.users[userID] = &entity.User{
		Base:          entity.Base{ID: userID},
		Email:         "guide@example.com",
		Role:          entity.RoleTourGuide,
		IDNumber:      &idNumber,
		RequestStatus: entity.RequestStatusPending,
	}

	resp, err := service.RejectGuideRequest(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, entity.RoleUser, resp.Role)
	user := users.users[userID]
	assert.Nil(t, user.IDNumber)
	assert.Equal(t, entity.RequestStatusRejected, user.RequestStatus)
	assert.False(t, user.IsApproved)
}

func TestUserService_ApproveGuideRequest_Missing(t *testing.T) {
	service, _, _, _ := newUserFixture(false)

	_, err := service.ApproveGuideRequest(context.Background(), uuid.New())

	assert.Equal(t, http.StatusBadRequest, appErrorCode(t, err))
}
