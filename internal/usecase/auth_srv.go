package usecase

import (
	"context"
	"fmt"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"
	"tour-booking/internal/dto/response"
	"tour-booking/pkg/mailer"
	"tour-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const verificationCodeTTL = 3 * time.Minute

type AuthService interface {
	Signup(ctx context.Context, req *request.SignupRequest) (*response.UserResponse, error)
	SignupVerifyCode(ctx context.Context, req *request.VerifyCodeRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	TourGuideSignup(ctx context.Context, userID uuid.UUID, req *request.TourGuideSignupRequest) (*response.UserResponse, error)
	ForgotPassword(ctx context.Context, req *request.ForgotPasswordRequest) error
	VerifyResetCode(ctx context.Context, req *request.VerifyCodeRequest) error
	ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) (*response.AuthResponse, error)
}

type authService struct {
	repo   *repository.Repository
	mailer mailer.Mailer
	cfg    *utils.Config
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, mail mailer.Mailer, cfg *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		mailer: mail,
		cfg:    cfg,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Signup(ctx context.Context, req *request.SignupRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, utils.NewBadRequest(utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email uniqueness: %w", err)
	}
	if existing != nil {
		return nil, utils.NewBadRequest("email is already exist")
	}

	phone := ""
	if req.PhoneNumber != nil {
		phone = *req.PhoneNumber
		byPhone, err := s.repo.User.FindByEmailOrPhone(ctx, phone)
		if err != nil {
			return nil, fmt.Errorf("check phone uniqueness: %w", err)
		}
		if byPhone != nil {
			return nil, utils.NewBadRequest("this phone is already exist")
		}
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	code, hashedCode, err := utils.GenerateVerificationCode()
	if err != nil {
		return nil, fmt.Errorf("generate verification code: %w", err)
	}

	now := time.Now()
	expiresAt := now.Add(verificationCodeTTL)
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		FullName:            req.FullName,
		Email:               req.Email,
		PasswordHash:        passwordHash,
		PhoneNumber:         phone,
		Role:                entity.RoleUser,
		Active:              true,
		SignupCode:          &hashedCode,
		SignupCodeExpiresAt: &expiresAt,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	if err := s.mailer.SendVerificationCode(user.Email, user.FullName, code); err != nil {
		user.SignupCode = nil
		user.SignupCodeExpiresAt = nil
		user.SignupCodeVerified = false
		if updErr := s.repo.User.Update(ctx, user); updErr != nil {
			s.log.Error("Failed to clear signup code after email failure", zap.Error(updErr))
		}
		return nil, utils.NewInternal("There is an error in sending email", err)
	}

	s.log.Info("User signed up", zap.String("user_id", user.ID.String()), zap.String("email", user.Email))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *authService) SignupVerifyCode(ctx context.Context, req *request.VerifyCodeRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, utils.NewBadRequest(utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindBySignupCode(ctx, utils.HashCode(req.Code))
	if err != nil {
		return nil, fmt.Errorf("find user by signup code: %w", err)
	}
	if user == nil || user.SignupCodeExpiresAt == nil || user.SignupCodeExpiresAt.Before(time.Now()) {
		return nil, utils.NewBadRequest("verification code is invalid or expired")
	}

	user.SignupCode = nil
	user.SignupCodeExpiresAt = nil
	user.SignupCodeVerified = true
	if err := s.repo.User.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("mark signup code verified: %w", err)
	}

	token, err := utils.CreateToken(user.ID, s.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("create token: %w", err)
	}

	resp := response.AuthToResponse(user, token)
	return &resp, nil
}

// Login accepts an email address or a phone number as the identifier. A
// deactivated account is reactivated by logging in.
func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, utils.NewBadRequest(utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmailOrPhone(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("find user for login: %w", err)
	}
	if user == nil || !utils.CheckPassword(user.PasswordHash, req.Password) {
		return nil, utils.NewUnauthorized("incorrect email or password")
	}

	if !user.Active {
		if err := s.repo.User.SetActive(ctx, user.ID, true); err != nil {
			return nil, fmt.Errorf("reactivate user: %w", err)
		}
		user.Active = true
	}

	token, err := utils.CreateToken(user.ID, s.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("create token: %w", err)
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))

	resp := response.AuthToResponse(user, token)
	return &resp, nil
}

func (s *authService) TourGuideSignup(ctx context.Context, userID uuid.UUID, req *request.TourGuideSignupRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, utils.NewBadRequest(utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user for guide signup: %w", err)
	}
	if user == nil {
		return nil, utils.NewNotFound("user not found")
	}

	user.IDNumber = &req.IDNumber
	user.City = &req.City
	user.Language = &req.Language
	user.Description = &req.Description
	user.IDPhotos = req.IDPhotos
	user.Role = entity.RoleTourGuide
	user.RequestStatus = entity.RequestStatusPending
	user.IsApproved = false

	if err := s.repo.User.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("save guide signup: %w", err)
	}

	s.log.Info("Tour guide signup submitted", zap.String("user_id", user.ID.String()))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *authService) ForgotPassword(ctx context.Context, req *request.ForgotPasswordRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return utils.NewBadRequest(utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return fmt.Errorf("find user for password reset: %w", err)
	}
	if user == nil {
		return utils.NewNotFound(fmt.Sprintf("there is no user with this email: %s", req.Email))
	}

	code, hashedCode, err := utils.GenerateVerificationCode()
	if err != nil {
		return fmt.Errorf("generate reset code: %w", err)
	}

	expiresAt := time.Now().Add(verificationCodeTTL)
	user.ResetCode = &hashedCode
	user.ResetCodeExpiresAt = &expiresAt
	user.ResetCodeVerified = false
	if err := s.repo.User.Update(ctx, user); err != nil {
		return fmt.Errorf("save reset code: %w", err)
	}

	if err := s.mailer.SendPasswordResetCode(user.Email, user.FullName, code); err != nil {
		user.ResetCode = nil
		user.ResetCodeExpiresAt = nil
		user.ResetCodeVerified = false
		if updErr := s.repo.User.Update(ctx, user); updErr != nil {
			s.log.Error("Failed to clear reset code after email failure", zap.Error(updErr))
		}
		return utils.NewInternal("There is an error in sending email", err)
	}

	return nil
}

func (s *authService) VerifyResetCode(ctx context.Context, req *request.VerifyCodeRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return utils.NewBadRequest(utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByResetCode(ctx, utils.HashCode(req.Code))
	if err != nil {
		return fmt.Errorf("find user by reset code: %w", err)
	}
	if user == nil || user.ResetCodeExpiresAt == nil || user.ResetCodeExpiresAt.Before(time.Now()) {
		return utils.NewBadRequest("reset code is invalid or expired")
	}

	user.ResetCodeVerified = true
	if err := s.repo.User.Update(ctx, user); err != nil {
		return fmt.Errorf("mark reset code verified: %w", err)
	}

	return nil
}

func (s *authService) ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, utils.NewBadRequest(utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("find user for password reset: %w", err)
	}
	if user == nil {
		return nil, utils.NewNotFound(fmt.Sprintf("there is no user with this email: %s", req.Email))
	}
	if !user.ResetCodeVerified {
		return nil, utils.NewBadRequest("reset code was not verified")
	}

	passwordHash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.User.UpdatePassword(ctx, user.ID, passwordHash); err != nil {
		return nil, fmt.Errorf("save new password: %w", err)
	}

	user.ResetCode = nil
	user.ResetCodeExpiresAt = nil
	user.ResetCodeVerified = false
	if err := s.repo.User.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("clear reset code: %w", err)
	}

	token, err := utils.CreateToken(user.ID, s.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("create token: %w", err)
	}

	s.log.Info("Password reset", zap.String("user_id", user.ID.String()))

	resp := response.AuthToResponse(user, token)
	return &resp, nil
}
