package request

type CreateReviewRequest struct {
	Title  *string `json:"title,omitempty" validate:"omitempty,max=200"`
	Rating int     `json:"rating" validate:"required,gte=1,lte=5"`
	TourID string  `json:"tour" validate:"required,uuid4"`
}

type UpdateReviewRequest struct {
	Title  *string `json:"title,omitempty" validate:"omitempty,max=200"`
	Rating *int    `json:"rating,omitempty" validate:"omitempty,gte=1,lte=5"`
}
