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

type UserService interface {
	// Admin CRUD
	GetAll(ctx context.Context, opts *query.Options) (*response.ListResponse[response.UserResponse], error)
	GetOne(ctx context.Context, id uuid.UUID) (*response.UserResponse, error)
	Create(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *request.UpdateUserRequest) (*response.UserResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	UpdatePassword(ctx context.Context, id uuid.UUID, req *request.UpdatePasswordRequest) error

	// Guide join requests
	GetGuideRequests(ctx context.Context) ([]response.UserResponse, error)
	ApproveGuideRequest(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
	RejectGuideRequest(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)

	// Self-service
	UpdateMe(ctx context.Context, userID uuid.UUID, req *request.UpdateMeRequest) (*response.UserResponse, error)
	ChangeMyPassword(ctx context.Context, userID uuid.UUID, req *request.ChangeMyPasswordRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, userID uuid.UUID) error
}

type userService struct {
	repo   *repository.Repository
	crud   *Crud[entity.User]
	mailer mailer.Mailer
	cfg    *utils.Config
	log    *zap.Logger
}

func NewUserService(repo *repository.Repository, mail mailer.Mailer, cfg *utils.Config, log *zap.Logger) UserService {
	s := &userService{
		repo:   repo,
		mailer: mail,
		cfg:    cfg,
		log:    log.With(zap.String("service", "user")),
	}

	// deleting a guide takes their tours with them
	s.crud = NewCrud[entity.User](repo.User, "no user found").
		WithAfterDelete(func(ctx context.Context, u *entity.User) error {
			if u.Role != entity.RoleTourGuide {
				return nil
			}
			deleted, err := repo.Tour.DeleteByGuide(ctx, u.ID)
			if err != nil {
				return fmt.Errorf("cascade guide tours: %w", err)
			}
			s.log.Info("Deleted guide tours with guide",
				zap.String("user_id", u.ID.String()),
				zap.Int64("tours", deleted),
			)
			return nil
		})

	return s
}

func (s *userService) GetAll(ctx context.Context, opts *query.Options) (*response.ListResponse[response.UserResponse], error) {
	result, err := s.crud.GetAll(ctx, opts)
	if err != nil {
		return nil, err
	}

	pagination := result.Pagination
	return response.NewListResponse(response.UsersToResponse(result.Items), &pagination), nil
}

func (s *userService) GetOne(ctx context.Context, id uuid.UUID) (*response.UserResponse, error) {
	user, err := s.crud.GetOne(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) Create(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error) {
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

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := entity.RoleUser
	if req.Role != "" {
		role = entity.UserRole(req.Role)
		if !role.Valid() {
			return nil, utils.NewBadRequest("invalid role")
		}
	}

	phone := ""
	if req.PhoneNumber != nil {
		phone = *req.PhoneNumber
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: passwordHash,
		PhoneNumber:  phone,
		Role:         role,
		Active:       true,
		ProfileImg:   req.ProfileImg,
	}

	if err := s.crud.CreateOne(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) Update(ctx context.Context, id uuid.UUID, req *request.UpdateUserRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, utils.NewBadRequest(utils.FormatValidationErrors(errs))
	}

	user, err := s.crud.GetOne(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = *req.PhoneNumber
	}
	if req.Role != nil {
		role := entity.UserRole(*req.Role)
		if !role.Valid() {
			return nil, utils.NewBadRequest("invalid role")
		}
		user.Role = role
	}
	if req.ProfileImg != nil {
		user.ProfileImg = req.ProfileImg
	}

	if err := s.crud.UpdateOne(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.crud.DeleteOne(ctx, id)
}

func (s *userService) UpdatePassword(ctx context.Context, id uuid.UUID, req *request.UpdatePasswordRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return utils.NewBadRequest(utils.FormatValidationErrors(errs))
	}

	user, err := s.crud.GetOne(ctx, id)
	if err != nil {
		return err
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.repo.User.UpdatePassword(ctx, user.ID, passwordHash)
}

func (s *userService) GetGuideRequests(ctx context.Context) ([]response.UserResponse, error) {
	users, err := s.repo.User.FindPendingGuideRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("list guide requests: %w", err)
	}
	return response.UsersToResponse(users), nil
}

// ApproveGuideRequest flips the user into an approved tour guide. If the
// notification email fails the approval is rolled back to pending and the
// caller gets a 500.
func (s *userService) ApproveGuideRequest(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find guide request: %w", err)
	}
	if user == nil {
		return nil, utils.NewBadRequest("tour guide not found")
	}

	user.Role = entity.RoleTourGuide
	user.RequestStatus = entity.RequestStatusApproved
	user.IsApproved = true
	if err := s.repo.User.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("approve guide request: %w", err)
	}

	if err := s.mailer.SendGuideApproval(user.Email, user.FullName, true); err != nil {
		user.RequestStatus = entity.RequestStatusPending
		user.IsApproved = false
		if updErr := s.repo.User.Update(ctx, user); updErr != nil {
			s.log.Error("Failed to revert guide approval after email failure", zap.Error(updErr))
		}
		return nil, utils.NewInternal("There is an error in sending email", err)
	}

	s.log.Info("Guide request approved", zap.String("user_id", user.ID.String()))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) RejectGuideRequest(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find guide request: %w", err)
	}
	if user == nil {
		return nil, utils.NewBadRequest("tour guide not found")
	}

	user.IDNumber = nil
	user.City = nil
	user.Language = nil
	user.Description = nil
	user.IDPhotos = nil
	user.RequestStatus = entity.RequestStatusRejected
	user.IsApproved = false
	user.Role = entity.RoleUser
	if err := s.repo.User.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("reject guide request: %w", err)
	}

	if err := s.mailer.SendGuideApproval(user.Email, user.FullName, false); err != nil {
		return nil, utils.NewInternal("There is an error in sending email", err)
	}

	s.log.Info("Guide request rejected", zap.String("user_id", user.ID.String()))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) UpdateMe(ctx context.Context, userID uuid.UUID, req *request.UpdateMeRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, utils.NewBadRequest(utils.FormatValidationErrors(errs))
	}

	return s.Update(ctx, userID, &request.UpdateUserRequest{
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		ProfileImg:  req.ProfileImg,
	})
}

func (s *userService) ChangeMyPassword(ctx context.Context, userID uuid.UUID, req *request.ChangeMyPasswordRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, utils.NewBadRequest(utils.FormatValidationErrors(errs))
	}

	user, err := s.crud.GetOne(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !utils.CheckPassword(user.PasswordHash, req.CurrentPassword) {
		return nil, utils.NewUnauthorized("current password is incorrect")
	}

	passwordHash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.User.UpdatePassword(ctx, user.ID, passwordHash); err != nil {
		return nil, err
	}

	token, err := utils.CreateToken(user.ID, s.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("create token: %w", err)
	}

	resp := response.AuthToResponse(user, token)
	return &resp, nil
}

// Logout deactivates the account; logging back in reactivates it.
func (s *userService) Logout(ctx context.Context, userID uuid.UUID) error {
	return s.repo.User.SetActive(ctx, userID, false)
}
