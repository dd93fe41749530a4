package response

import (
	"time"

	"tour-booking/internal/data/entity"
)

type TourResponse struct {
	ID                string            `json:"id"`
	Title             string            `json:"title"`
	City              string            `json:"city"`
	Description       string            `json:"description"`
	Price             float64           `json:"price"`
	Limit             int               `json:"limit"`
	AvailabilityTimes []string          `json:"availabilityTimes"`
	StartLocation     string            `json:"startLocation"`
	Program           string            `json:"program"`
	BringItems        string            `json:"bringItems,omitempty"`
	NotBringItems     string            `json:"notBringItems,omitempty"`
	SuitableFor       string            `json:"suitableFor,omitempty"`
	Durations         string            `json:"durations"`
	MaxGuests         int               `json:"maxGuests"`
	MinimumAge        int               `json:"minimumAge"`
	ImageCover        *string           `json:"imageCover,omitempty"`
	Gallery           []string          `json:"gallery,omitempty"`
	TourGuide         string            `json:"tourGuide"`
	Status            entity.TourStatus `json:"status"`
	RatingsAverage    float64           `json:"ratingsAverage"`
	RatingsQuantity   int               `json:"ratingsQuantity"`
	CreatedAt         time.Time         `json:"createdAt"`
	Reviews           []ReviewResponse  `json:"reviews,omitempty"`
}

// TourToResponse prefixes stored image names with the public base URL.
func TourToResponse(tour *entity.Tour, baseURL string) TourResponse {
	resp := TourResponse{
		ID:                tour.ID.String(),
		Title:             tour.Title,
		City:              tour.City,
		Description:       tour.Description,
		Price:             tour.Price,
		Limit:             tour.Limit,
		AvailabilityTimes: tour.AvailabilityTimes,
		StartLocation:     tour.StartLocation,
		Program:           tour.Program,
		BringItems:        tour.BringItems,
		NotBringItems:     tour.NotBringItems,
		SuitableFor:       tour.SuitableFor,
		Durations:         tour.Durations,
		MaxGuests:         tour.MaxGuests,
		MinimumAge:        tour.MinimumAge,
		TourGuide:         tour.TourGuideID.String(),
		Status:            tour.Status,
		RatingsAverage:    tour.RatingsAverage,
		RatingsQuantity:   tour.RatingsQuantity,
		CreatedAt:         tour.CreatedAt,
	}

	if tour.ImageCover != nil {
		cover := imageURL(baseURL, "tours", *tour.ImageCover)
		resp.ImageCover = &cover
	}
	for _, img := range tour.Gallery {
		resp.Gallery = append(resp.Gallery, imageURL(baseURL, "tours", img))
	}

	return resp
}

func ToursToResponse(tours []*entity.Tour, baseURL string) []TourResponse {
	out := make([]TourResponse, 0, len(tours))
	for _, t := range tours {
		out = append(out, TourToResponse(t, baseURL))
	}
	return out
}

func imageURL(baseURL, folder, name string) string {
	if baseURL == "" {
		return name
	}
	return baseURL + "/" + folder + "/" + name
}
