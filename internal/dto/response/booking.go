package response

import (
	"time"

	"tour-booking/internal/data/entity"
)

type BookingResponse struct {
	ID            string               `json:"id"`
	User          string               `json:"user"`
	Tour          string               `json:"tour"`
	TourType      entity.TourType      `json:"tourType"`
	Date          time.Time            `json:"date"`
	Time          string               `json:"time"`
	Participants  entity.Participants  `json:"participants"`
	TotalPrice    float64              `json:"totalPrice"`
	Taxes         float64              `json:"taxes"`
	ServiceFee    float64              `json:"serviceFee"`
	PaymentMethod entity.PaymentMethod `json:"paymentMethod"`
	PaymentStatus entity.PaymentStatus `json:"paymentStatus"`
	BookingStatus entity.BookingStatus `json:"bookingStatus"`
	CreatedAt     time.Time            `json:"createdAt"`
}

type CheckoutSessionResponse struct {
	SessionID  string  `json:"sessionId"`
	SessionURL string  `json:"sessionUrl"`
	TotalPrice float64 `json:"totalPrice"`
	Taxes      float64 `json:"taxes"`
	ServiceFee float64 `json:"serviceFee"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:            booking.ID.String(),
		User:          booking.UserID.String(),
		Tour:          booking.TourID.String(),
		TourType:      booking.TourType,
		Date:          booking.Date,
		Time:          booking.Time,
		Participants:  booking.Participants,
		TotalPrice:    booking.TotalPrice,
		Taxes:         booking.Taxes,
		ServiceFee:    booking.ServiceFee,
		PaymentMethod: booking.PaymentMethod,
		PaymentStatus: booking.PaymentStatus,
		BookingStatus: booking.BookingStatus,
		CreatedAt:     booking.CreatedAt,
	}
}

func BookingsToResponse(bookings []*entity.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, BookingToResponse(b))
	}
	return out
}
