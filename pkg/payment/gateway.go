package payment

import "context"

// CheckoutParams describes a hosted checkout session to create. Amount is in
// the currency's minor units. ReferenceID correlates the session back to the
// booked tour when the provider confirms payment.
type CheckoutParams struct {
	Amount        int64
	Currency      string
	ProductName   string
	Description   string
	CustomerEmail string
	ReferenceID   string
}

type CheckoutSession struct {
	ID  string
	URL string
}

// CheckoutEvent is a provider notification that a checkout session completed.
type CheckoutEvent struct {
	ReferenceID   string
	CustomerEmail string
	AmountTotal   int64
}

// Gateway abstracts the payment provider so services can be tested against a
// stub. VerifyEvent must fail closed: any signature problem is an error.
type Gateway interface {
	CreateCheckoutSession(ctx context.Context, params CheckoutParams) (*CheckoutSession, error)
	VerifyEvent(payload []byte, signature string) (*CheckoutEvent, error)
}
