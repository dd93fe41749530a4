package request

type CreateTourRequest struct {
	Title             string   `json:"title" validate:"required,min=32,max=1000"`
	City              string   `json:"city" validate:"required"`
	Description       string   `json:"description" validate:"required,min=10,max=4000"`
	Price             float64  `json:"price" validate:"required,gt=0"`
	Limit             int      `json:"limit" validate:"required,gt=0"`
	AvailabilityTimes []string `json:"availabilityTimes" validate:"required,min=1"`
	StartLocation     string   `json:"startLocation" validate:"required"`
	Program           string   `json:"program" validate:"required,min=32,max=2000"`
	BringItems        *string  `json:"bringItems,omitempty"`
	NotBringItems     *string  `json:"notBringItems,omitempty"`
	SuitableFor       *string  `json:"suitableFor,omitempty"`
	Durations         string   `json:"durations" validate:"required"`
	MaxGuests         int      `json:"maxGuests" validate:"required,gt=0"`
	MinimumAge        int      `json:"minimumAge" validate:"required,gte=0"`
	ImageCover        string   `json:"imageCover" validate:"required"`
	Gallery           []string `json:"gallery" validate:"required,min=1"`
}

type UpdateTourRequest struct {
	Title             *string  `json:"title,omitempty" validate:"omitempty,min=32,max=1000"`
	City              *string  `json:"city,omitempty"`
	Description       *string  `json:"description,omitempty" validate:"omitempty,min=10,max=4000"`
	Price             *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Limit             *int     `json:"limit,omitempty" validate:"omitempty,gt=0"`
	AvailabilityTimes []string `json:"availabilityTimes,omitempty"`
	StartLocation     *string  `json:"startLocation,omitempty"`
	Program           *string  `json:"program,omitempty" validate:"omitempty,min=32,max=2000"`
	BringItems        *string  `json:"bringItems,omitempty"`
	NotBringItems     *string  `json:"notBringItems,omitempty"`
	SuitableFor       *string  `json:"suitableFor,omitempty"`
	Durations         *string  `json:"durations,omitempty"`
	MaxGuests         *int     `json:"maxGuests,omitempty" validate:"omitempty,gt=0"`
	MinimumAge        *int     `json:"minimumAge,omitempty" validate:"omitempty,gte=0"`
	ImageCover        *string  `json:"imageCover,omitempty"`
	Gallery           []string `json:"gallery,omitempty"`
}
