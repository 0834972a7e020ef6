package request

type CreateBookingRequest struct {
	TourID          string `json:"tourId" validate:"required,uuid4"`
	NumberOfPersons int    `json:"numberOfPersons" validate:"required,gt=0"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Confirmed Cancelled"`
}
