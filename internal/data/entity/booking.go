package entity

import (
	"time"

	"github.com/google/uuid"
)

type TourType string

const (
	TourTypePrivate    TourType = "private"
	TourTypeFamily     TourType = "family"
	TourTypeCollective TourType = "collective"
)

type PaymentMethod string

const (
	PaymentMethodCard    PaymentMethod = "visa or mastercard"
	PaymentMethodCarrier PaymentMethod = "carrier_billing"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
	PaymentStatusFailed    PaymentStatus = "failed"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Participants struct {
	Adults   int `db:"adults" json:"adults"`
	Youth    int `db:"youth" json:"youth"`
	Children int `db:"children" json:"children"`
}

func (p Participants) Total() int {
	return p.Adults + p.Youth + p.Children
}

// Booking is only ever persisted after the payment provider confirms payment;
// everything before that lives in a BookingDraft.
type Booking struct {
	Base
	UserID        uuid.UUID     `db:"user_id"`
	TourID        uuid.UUID     `db:"tour_id"`
	TourType      TourType      `db:"tour_type"`
	Date          time.Time     `db:"date"`
	Time          string        `db:"time"`
	Participants  Participants  `db:"participants"`
	TotalPrice    float64       `db:"total_price"`
	Taxes         float64       `db:"taxes"`
	ServiceFee    float64       `db:"service_fee"`
	PaymentMethod PaymentMethod `db:"payment_method"`
	PaymentStatus PaymentStatus `db:"payment_status"`
	BookingStatus BookingStatus `db:"booking_status"`
}

// BookingDraft is the transient state accumulated across the detail-entry,
// payment-method, and checkout-session steps. It is keyed per user in the
// draft store, never shared between users.
type BookingDraft struct {
	TourID        uuid.UUID     `json:"tourId,omitempty"`
	TourType      TourType      `json:"tourType"`
	Date          string        `json:"date"`
	Time          string        `json:"time"`
	Participants  Participants  `json:"participants"`
	PaymentMethod PaymentMethod `json:"paymentMethod,omitempty"`
}
