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

type ContactService interface {
	Create(ctx context.Context, req *request.ContactMessageRequest) (*response.ContactMessageResponse, error)
	GetAll(ctx context.Context, opts *query.Options) (*response.ListResponse[response.ContactMessageResponse], error)
	GetOne(ctx context.Context, id uuid.UUID) (*response.ContactMessageResponse, error)
	Reply(ctx context.Context, id uuid.UUID, req *request.ContactReplyRequest) (*response.ContactMessageResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type contactService struct {
	repo   *repository.Repository
	crud   *Crud[entity.ContactMessage]
	mailer mailer.Mailer
	log    *zap.Logger
}

func NewContactService(repo *repository.Repository, mail mailer.Mailer, log *zap.Logger) ContactService {
	return &contactService{
		repo:   repo,
		crud:   NewCrud[entity.ContactMessage](repo.Contact, "no contact message found"),
		mailer: mail,
		log:    log.With(zap.String("service", "contact")),
	}
}

func (s *contactService) Create(ctx context.Context, req *request.ContactMessageRequest) (*response.ContactMessageResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, utils.NewBadRequest(utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	msg := &entity.ContactMessage{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Message:     req.Message,
	}

	if err := s.crud.CreateOne(ctx, msg); err != nil {
		return nil, fmt.Errorf("create contact message: %w", err)
	}

	resp := response.ContactMessageToResponse(msg)
	return &resp, nil
}

func (s *contactService) GetAll(ctx context.Context, opts *query.Options) (*response.ListResponse[response.ContactMessageResponse], error) {
	result, err := s.crud.GetAll(ctx, opts)
	if err != nil {
		return nil, err
	}

	pagination := result.Pagination
	return response.NewListResponse(response.ContactMessagesToResponse(result.Items), &pagination), nil
}

func (s *contactService) GetOne(ctx context.Context, id uuid.UUID) (*response.ContactMessageResponse, error) {
	msg, err := s.crud.GetOne(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := response.ContactMessageToResponse(msg)
	return &resp, nil
}

// Reply stores the admin's answer and emails it to the sender. A failed send
// rolls the replied flag back so the message shows up as unanswered again.
func (s *contactService) Reply(ctx context.Context, id uuid.UUID, req *request.ContactReplyRequest) (*response.ContactMessageResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, utils.NewBadRequest(utils.FormatValidationErrors(errs))
	}

	msg, err := s.crud.GetOne(ctx, id)
	if err != nil {
		return nil, err
	}

	msg.AdminReplied = true
	msg.AdminReply = &req.Reply
	if err := s.repo.Contact.Update(ctx, msg); err != nil {
		return nil, fmt.Errorf("save contact reply: %w", err)
	}

	if err := s.mailer.SendContactReply(msg.Email, msg.FullName, req.Reply); err != nil {
		msg.AdminReplied = false
		if updErr := s.repo.Contact.Update(ctx, msg); updErr != nil {
			s.log.Error("Failed to revert contact reply after email failure", zap.Error(updErr))
		}
		return nil, utils.NewInternal("There is an error in sending email", err)
	}

	s.log.Info("Contact message replied", zap.String("message_id", id.String()))

	resp := response.ContactMessageToResponse(msg)
	return &resp, nil
}

func (s *contactService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.crud.DeleteOne(ctx, id)
}
