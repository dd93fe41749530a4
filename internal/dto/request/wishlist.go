package request

type WishlistAddRequest struct {
	TourID string `json:"tourId" validate:"required,uuid4"`
}
