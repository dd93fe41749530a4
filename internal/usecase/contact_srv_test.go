package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubMailer records sends and can be told to fail; shared across the
// service tests in this package.
type stubMailer struct {
	fail bool
	sent []string
}

func (m *stubMailer) record(kind string) error {
	if m.fail {
		return errors.New("smtp: connection refused")
	}
	m.sent = append(m.sent, kind)
	return nil
}

func (m *stubMailer) SendVerificationCode(_, _, _ string) error { return m.record("verification") }
func (m *stubMailer) SendPasswordResetCode(_, _, _ string) error {
	return m.record("password_reset")
}
func (m *stubMailer) SendGuideApproval(_, _ string, _ bool) error { return m.record("guide_approval") }
func (m *stubMailer) SendTourDecision(_, _, _ string, _ bool) error {
	return m.record("tour_decision")
}
func (m *stubMailer) SendContactReply(_, _, _ string) error { return m.record("contact_reply") }

type stubContactRepo struct {
	repository.ContactRepository
	messages map[uuid.UUID]*entity.ContactMessage
	updates  int
}

func (s *stubContactRepo) Create(_ context.Context, msg *entity.ContactMessage) error {
	s.messages[msg.ID] = msg
	return nil
}

func (s *stubContactRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.ContactMessage, error) {
	return s.messages[id], nil
}

func (s *stubContactRepo) Update(_ context.Context, msg *entity.ContactMessage) error {
	s.messages[msg.ID] = msg
	s.updates++
	return nil
}

func newContactFixture(mailFails bool) (ContactService, *stubContactRepo, *stubMailer) {
	contacts := &stubContactRepo{messages: make(map[uuid.UUID]*entity.ContactMessage)}
	mail := &stubMailer{fail: mailFails}
	repo := &repository.Repository{Contact: contacts}

	return NewContactService(repo, mail, zap.NewNop()), contacts, mail
}

func TestContactService_Create(t *testing.T) {
	service, contacts, _ := newContactFixture(false)

	resp, err := service.Create(context.Background(), &request.ContactMessageRequest{
		FullName:    "Sara Ahmed",
		PhoneNumber: "01234567890",
		Email:       "sara@example.com",
		Message:     "Do you run tours in Luxor during winter?",
	})
	require.NoError(t, err)

	assert.Len(t, contacts.messages, 1)
	assert.Equal(t, "sara@example.com", resp.Email)
	assert.False(t, resp.AdminReplied)
}

func TestContactService_Create_Invalid(t *testing.T) {
	service, _, _ := newContactFixture(false)

	_, err := service.Create(context.Background(), &request.ContactMessageRequest{
		FullName: "x",
		Email:    "not-an-email",
	})

	assert.Equal(t, http.StatusBadRequest, appErrorCode(t, err))
}

func TestContactService_Reply(t *testing.T) {
	service, contacts, mail := newContactFixture(false)
	id := uuid.New()
	contacts.messages[id] = &entity.ContactMessage{
		Base:     entity.Base{ID: id},
		FullName: "Sara Ahmed",
		Email:    "sara@example.com",
		Message:  "Do you run tours in Luxor during winter?",
	}

	resp, err := service.Reply(context.Background(), id, &request.ContactReplyRequest{
		Reply: "Yes, the winter season runs November through March.",
	})
	require.NoError(t, err)

	assert.True(t, resp.AdminReplied)
	assert.True(t, contacts.messages[id].AdminReplied)
	assert.Equal(t, []string{"contact_reply"}, mail.sent)
}

// a reply whose email never went out must not look answered
func TestContactService_Reply_EmailFailureReverts(t *testing.T) {
	service, contacts, _ := newContactFixture(true)
	id := uuid.New()
	contacts.messages[id] = &entity.ContactMessage{
		Base:  entity.Base{ID: id},
		Email: "sara@example.com",
	}

	_, err := service.Reply(context.Background(), id, &request.ContactReplyRequest{
		Reply: "Yes, the winter season runs November through March.",
	})

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, appErrorCode(t, err))
	assert.False(t, contacts.messages[id].AdminReplied)
	assert.Equal(t, 2, contacts.updates)
}

func TestContactService_Reply_Missing(t *testing.T) {
	service, _, _ := newContactFixture(false)

	_, err := service.Reply(context.Background(), uuid.New(), &request.ContactReplyRequest{
		Reply: "Yes, the winter season runs November through March.",
	})

	assert.Equal(t, http.StatusNotFound, appErrorCode(t, err))
}
