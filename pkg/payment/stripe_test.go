package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/stripe/stripe-go/v76"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tour-booking/pkg/utils"
)

const testWebhookSecret = "whsec_test_secret"

func newTestGateway() Gateway {
	return NewStripeGateway(utils.PaymentConfig{
		SecretKey:     "sk_test_key",
		WebhookSecret: testWebhookSecret,
		Currency:      "egp",
	}, zap.NewNop())
}

// signPayload produces a Stripe-Signature header the way Stripe's servers do:
// t=<unix>,v1=<hex hmac-sha256(secret, "<unix>.<payload>")>
func signPayload(payload []byte, secret string, at time.Time) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", at.Unix(), payload)
	return fmt.Sprintf("t=%d,v1=%s", at.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func eventPayload(eventType string) []byte {
	return []byte(fmt.Sprintf(`{
		"id": "evt_test_1",
		"object": "event",
		"api_version": %q,
		"type": %q,
		"data": {
			"object": {
				"id": "cs_test_1",
				"object": "checkout.session",
				"client_reference_id": "7b0c2c7a-52f5-49e8-9d3f-1f2a4a9be111",
				"customer_email": "traveler@example.com",
				"amount_total": 125000
			}
		}
	}`, stripe.APIVersion, eventType))
}

func TestVerifyEvent_CheckoutCompleted(t *testing.T) {
	g := newTestGateway()
	payload := eventPayload("checkout.session.completed")
	sig := signPayload(payload, testWebhookSecret, time.Now())

	event, err := g.VerifyEvent(payload, sig)
	require.NoError(t, err)
	require.NotNil(t, event)

	assert.Equal(t, "7b0c2c7a-52f5-49e8-9d3f-1f2a4a9be111", event.ReferenceID)
	assert.Equal(t, "traveler@example.com", event.CustomerEmail)
	assert.Equal(t, int64(125000), event.AmountTotal)
}

func TestVerifyEvent_BadSignature(t *testing.T) {
	g := newTestGateway()
	payload := eventPayload("checkout.session.completed")
	sig := signPayload(payload, "whsec_wrong_secret", time.Now())

	event, err := g.VerifyEvent(payload, sig)

	require.Error(t, err)
	assert.Nil(t, event)
}

func TestVerifyEvent_StaleTimestamp(t *testing.T) {
	g := newTestGateway()
	payload := eventPayload("checkout.session.completed")
	sig := signPayload(payload, testWebhookSecret, time.Now().Add(-time.Hour))

	event, err := g.VerifyEvent(payload, sig)

	require.Error(t, err)
	assert.Nil(t, event)
}

func TestVerifyEvent_IgnoresOtherEventTypes(t *testing.T) {
	g := newTestGateway()
	payload := eventPayload("payment_intent.succeeded")
	sig := signPayload(payload, testWebhookSecret, time.Now())

	event, err := g.VerifyEvent(payload, sig)

	require.NoError(t, err)
	assert.Nil(t, event)
}
