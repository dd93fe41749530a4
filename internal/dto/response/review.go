package response

import (
	"time"

	"tour-booking/internal/data/entity"
)

type ReviewResponse struct {
	ID        string    `json:"id"`
	Title     *string   `json:"title,omitempty"`
	Rating    int       `json:"rating"`
	User      string    `json:"user"`
	Tour      string    `json:"tour"`
	CreatedAt time.Time `json:"createdAt"`
}

func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID.String(),
		Title:     review.Title,
		Rating:    review.Rating,
		User:      review.UserID.String(),
		Tour:      review.TourID.String(),
		CreatedAt: review.CreatedAt,
	}
}

func ReviewsToResponse(reviews []*entity.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, ReviewToResponse(r))
	}
	return out
}
