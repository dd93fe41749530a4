package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"
	"tour-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type authUserRepo struct {
	repository.UserRepository
	users       map[uuid.UUID]*entity.User
	activations []uuid.UUID
}

func (s *authUserRepo) FindByEmailOrPhone(_ context.Context, identifier string) (*entity.User, error) {
	for _, u := range s.users {
		if u.Email == identifier || u.PhoneNumber == identifier {
			return u, nil
		}
	}
	return nil, nil
}

func (s *authUserRepo) FindBySignupCode(_ context.Context, hashedCode string) (*entity.User, error) {
	for _, u := range s.users {
		if u.SignupCode != nil && *u.SignupCode == hashedCode {
			return u, nil
		}
	}
	return nil, nil
}

func (s *authUserRepo) Update(_ context.Context, user *entity.User) error {
	s.users[user.ID] = user
	return nil
}

func (s *authUserRepo) SetActive(_ context.Context, id uuid.UUID, active bool) error {
	if active {
		s.activations = append(s.activations, id)
	}
	s.users[id].Active = active
	return nil
}

func newAuthFixture() (AuthService, *authUserRepo) {
	users := &authUserRepo{users: make(map[uuid.UUID]*entity.User)}
	repo := &repository.Repository{User: users}
	cfg := &utils.Config{JWT: utils.JWTConfig{Secret: "test-secret", ExpiryHours: 1}}

	return NewAuthService(repo, &stubMailer{}, cfg, zap.NewNop()), users
}

func seedUserWithSignupCode(users *authUserRepo, code string, expiresAt time.Time) *entity.User {
	hashed := utils.HashCode(code)
	user := &entity.User{
		Base:                entity.Base{ID: uuid.New()},
		FullName:            "Omar Hassan",
		Email:               "omar@example.com",
		SignupCode:          &hashed,
		SignupCodeExpiresAt: &expiresAt,
	}
	users.users[user.ID] = user
	return user
}

func TestAuthService_SignupVerifyCode(t *testing.T) {
	service, users := newAuthFixture()
	user := seedUserWithSignupCode(users, "4821", time.Now().Add(3*time.Minute))

	resp, err := service.SignupVerifyCode(context.Background(), &request.VerifyCodeRequest{Code: "4821"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user.ID.String(), resp.User.ID)

	stored := users.users[user.ID]
	assert.Nil(t, stored.SignupCode)
	assert.Nil(t, stored.SignupCodeExpiresAt)
	assert.True(t, stored.SignupCodeVerified)
}

func TestAuthService_SignupVerifyCode_Expired(t *testing.T) {
	service, users := newAuthFixture()
	seedUserWithSignupCode(users, "4821", time.Now().Add(-time.Minute))

	_, err := service.SignupVerifyCode(context.Background(), &request.VerifyCodeRequest{Code: "4821"})

	assert.Equal(t, http.StatusBadRequest, appErrorCode(t, err))
}

func TestAuthService_SignupVerifyCode_WrongCode(t *testing.T) {
	service, users := newAuthFixture()
	seedUserWithSignupCode(users, "4821", time.Now().Add(3*time.Minute))

	_, err := service.SignupVerifyCode(context.Background(), &request.VerifyCodeRequest{Code: "9999"})

	assert.Equal(t, http.StatusBadRequest, appErrorCode(t, err))
}

func TestAuthService_Login(t *testing.T) {
	service, users := newAuthFixture()
	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)

	userID := uuid.New()
	users.users[userID] = &entity.User{
		Base:         entity.Base{ID: userID},
		Email:        "omar@example.com",
		PhoneNumber:  "01234567890",
		PasswordHash: hash,
		Active:       true,
	}

	tests := []struct {
		name       string
		identifier string
	}{
		{name: "by_email", identifier: "omar@example.com"},
		{name: "by_phone", identifier: "01234567890"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := service.Login(context.Background(), &request.LoginRequest{
				Email:    tc.identifier,
				Password: "secret123",
			})
			require.NoError(t, err)
			assert.NotEmpty(t, resp.Token)
			assert.Equal(t, userID.String(), resp.User.ID)
		})
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	service, users := newAuthFixture()
	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)

	userID := uuid.New()
	users.users[userID] = &entity.User{
		Base:         entity.Base{ID: userID},
		Email:        "omar@example.com",
		PasswordHash: hash,
		Active:       true,
	}

	_, loginErr := service.Login(context.Background(), &request.LoginRequest{
		Email:    "omar@example.com",
		Password: "wrong-pass",
	})

	assert.Equal(t, http.StatusUnauthorized, appErrorCode(t, loginErr))
}

// logging in brings a deactivated account back
func TestAuthService_Login_Reactivates(t *testing.T) {
	service, users := newAuthFixture()
	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)

	userID := uuid.New()
	users.users[userID] = &entity.User{
		Base:         entity.Base{ID: userID},
		Email:        "omar@example.com",
		PasswordHash: hash,
		Active:       false,
	}

	resp, loginErr := service.Login(context.Background(), &request.LoginRequest{
		Email:    "omar@example.com",
		Password: "secret123",
	})
	require.NoError(t, loginErr)

	assert.True(t, resp.User.Active)
	assert.Equal(t, []uuid.UUID{userID}, users.activations)
}
