package request

type ParticipantsRequest struct {
	Adults   int `json:"adults" validate:"gte=0"`
	Youth    int `json:"youth" validate:"gte=0"`
	Children int `json:"children" validate:"gte=0"`
}

type BookingDetailsRequest struct {
	TourType     string              `json:"tourType" validate:"required,oneof=private family collective"`
	Date         string              `json:"date" validate:"required,datetime=2006-01-02"`
	Time         string              `json:"time" validate:"required"`
	Participants ParticipantsRequest `json:"participants"`
}

type BookingCheckoutRequest struct {
	TourID        string `json:"tourId" validate:"required,uuid4"`
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof='visa or mastercard' carrier_billing"`
}

type UpdateBookingRequest struct {
	Date         *string              `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Time         *string              `json:"time,omitempty"`
	TourType     *string              `json:"tourType,omitempty" validate:"omitempty,oneof=private family collective"`
	Participants *ParticipantsRequest `json:"participants,omitempty"`
}
