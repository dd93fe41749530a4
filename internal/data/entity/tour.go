package entity

import (
	"github.com/google/uuid"
)

type TourStatus string

const (
	TourStatusPending  TourStatus = "pending"
	TourStatusApproved TourStatus = "approved"
	TourStatusRejected TourStatus = "rejected"
)

type Tour struct {
	Base
	Title             string     `db:"title"`
	City              string     `db:"city"`
	Description       string     `db:"description"`
	Price             float64    `db:"price"`
	Limit             int        `db:"guest_limit"`
	AvailabilityTimes []string   `db:"availability_times"`
	StartLocation     string     `db:"start_location"`
	Program           string     `db:"program"`
	BringItems        string     `db:"bring_items"`
	NotBringItems     string     `db:"not_bring_items"`
	SuitableFor       string     `db:"suitable_for"`
	Durations         string     `db:"durations"`
	MaxGuests         int        `db:"max_guests"`
	MinimumAge        int        `db:"minimum_age"`
	ImageCover        *string    `db:"image_cover"`
	Gallery           []string   `db:"gallery"`
	TourGuideID       uuid.UUID  `db:"tour_guide_id"`
	Status            TourStatus `db:"status"`

	// written only by the rating aggregator
	RatingsAverage  float64 `db:"ratings_average"`
	RatingsQuantity int     `db:"ratings_quantity"`
}
