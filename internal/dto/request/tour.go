package request

type CreateTourRequest struct {
	Title          string  `json:"title" validate:"required,min=1,max=500"`
	Description    *string `json:"description,omitempty"`
	Destination    string  `json:"destination" validate:"required,min=1,max=255"`
	Price          float64 `json:"price" validate:"required,gt=0"`
	Duration       int     `json:"duration" validate:"required,gt=0"`
	AvailableSpots int     `json:"availableSpots" validate:"min=0"`
	StartDate      *string `json:"startDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate        *string `json:"endDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ImageURL       *string `json:"imageUrl,omitempty" validate:"omitempty,url"`
	IsActive       *bool   `json:"isActive,omitempty"`
}

type UpdateTourRequest struct {
	Title          *string  `json:"title,omitempty" validate:"omitempty,min=1,max=500"`
	Description    *string  `json:"description,omitempty"`
	Destination    *string  `json:"destination,omitempty" validate:"omitempty,min=1,max=255"`
	Price          *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Duration       *int     `json:"duration,omitempty" validate:"omitempty,gt=0"`
	AvailableSpots *int     `json:"availableSpots,omitempty" validate:"omitempty,min=0"`
	StartDate      *string  `json:"startDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate        *string  `json:"endDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ImageURL       *string  `json:"imageUrl,omitempty" validate:"omitempty,url"`
	IsActive       *bool    `json:"isActive,omitempty"`
}

// TourListRequest captures the browse query parameters
type TourListRequest struct {
	Page            int
	PerPage         int
	Search          string
	Destination     string
	IncludeInactive bool
}
