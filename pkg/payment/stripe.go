package payment

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"

	"tour-booking/pkg/utils"
)

type stripeGateway struct {
	sc  *client.API
	cfg utils.PaymentConfig
	log *zap.Logger
}

func NewStripeGateway(cfg utils.PaymentConfig, log *zap.Logger) Gateway {
	sc := &client.API{}
	sc.Init(cfg.SecretKey, nil)

	return &stripeGateway{
		sc:  sc,
		cfg: cfg,
		log: log.With(zap.String("gateway", "stripe")),
	}
}

func (g *stripeGateway) CreateCheckoutSession(ctx context.Context, params CheckoutParams) (*CheckoutSession, error) {
	sessionParams := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(params.Currency),
					UnitAmount: stripe.Int64(params.Amount),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(params.ProductName),
						Description: stripe.String(params.Description),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:        stripe.String(g.cfg.SuccessURL),
		CancelURL:         stripe.String(g.cfg.CancelURL),
		CustomerEmail:     stripe.String(params.CustomerEmail),
		ClientReferenceID: stripe.String(params.ReferenceID),
	}
	sessionParams.Context = ctx

	session, err := g.sc.CheckoutSessions.New(sessionParams)
	if err != nil {
		g.log.Error("Failed to create checkout session", zap.Error(err))
		return nil, fmt.Errorf("create checkout session: %w", err)
	}

	return &CheckoutSession{ID: session.ID, URL: session.URL}, nil
}

func (g *stripeGateway) VerifyEvent(payload []byte, signature string) (*CheckoutEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, g.cfg.WebhookSecret)
	if err != nil {
		return nil, fmt.Errorf("verify webhook signature: %w", err)
	}

	if event.Type != "checkout.session.completed" {
		return nil, nil
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return nil, fmt.Errorf("decode checkout session event: %w", err)
	}

	return &CheckoutEvent{
		ReferenceID:   session.ClientReferenceID,
		CustomerEmail: session.CustomerEmail,
		AmountTotal:   session.AmountTotal,
	}, nil
}
