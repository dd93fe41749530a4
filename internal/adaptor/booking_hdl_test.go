package adaptor

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tour-booking/internal/usecase"
	"tour-booking/pkg/payment"
	"tour-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubBookingService struct {
	usecase.BookingService
	confirmErr error
	confirmed  []*payment.CheckoutEvent
}

func (s *stubBookingService) ConfirmCheckout(_ context.Context, event *payment.CheckoutEvent) error {
	s.confirmed = append(s.confirmed, event)
	return s.confirmErr
}

type webhookGateway struct {
	event *payment.CheckoutEvent
	err   error
}

func (g *webhookGateway) CreateCheckoutSession(_ context.Context, _ payment.CheckoutParams) (*payment.CheckoutSession, error) {
	return nil, errors.New("not used")
}

func (g *webhookGateway) VerifyEvent(_ []byte, _ string) (*payment.CheckoutEvent, error) {
	return g.event, g.err
}

func newWebhookRequest() *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/webhook-checkout", strings.NewReader(`{}`))
	req.Header.Set("Stripe-Signature", "t=1,v1=deadbeef")
	return req
}

func TestWebhook_BadSignature(t *testing.T) {
	service := &stubBookingService{}
	handler := NewBookingHandler(service, &utils.Config{}, zap.NewNop()).
		WithGateway(&webhookGateway{err: errors.New("verify webhook signature: no valid signature")})

	rec := httptest.NewRecorder()
	handler.Webhook(rec, newWebhookRequest())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, service.confirmed)
}

func TestWebhook_ConfirmsCheckout(t *testing.T) {
	service := &stubBookingService{}
	event := &payment.CheckoutEvent{
		ReferenceID:   "7b0c2c7a-52f5-49e8-9d3f-1f2a4a9be111",
		CustomerEmail: "traveler@example.com",
		AmountTotal:   125000,
	}
	handler := NewBookingHandler(service, &utils.Config{}, zap.NewNop()).
		WithGateway(&webhookGateway{event: event})

	rec := httptest.NewRecorder()
	handler.Webhook(rec, newWebhookRequest())

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "you pay for tour successfully")
	require.Len(t, service.confirmed, 1)
	assert.Equal(t, event, service.confirmed[0])
}

// once the signature checks out the provider always gets a 201, even when the
// event cannot be resolved, so it stops retrying
func TestWebhook_ResolutionFailureStillAccepted(t *testing.T) {
	service := &stubBookingService{confirmErr: errors.New("no user for webhook email ghost@example.com")}
	handler := NewBookingHandler(service, &utils.Config{}, zap.NewNop()).
		WithGateway(&webhookGateway{event: &payment.CheckoutEvent{ReferenceID: "x"}})

	rec := httptest.NewRecorder()
	handler.Webhook(rec, newWebhookRequest())

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Len(t, service.confirmed, 1)
}

func TestWebhook_IgnoredEventTypeStillAccepted(t *testing.T) {
	service := &stubBookingService{}
	handler := NewBookingHandler(service, &utils.Config{}, zap.NewNop()).
		WithGateway(&webhookGateway{})

	rec := httptest.NewRecorder()
	handler.Webhook(rec, newWebhookRequest())

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, service.confirmed)
}
