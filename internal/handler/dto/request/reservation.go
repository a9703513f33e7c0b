package request

import (
	"reservation-service/internal/usecase"
)

type CreateReservationRequest struct {
	RestaurantID    string `json:"restaurantId" binding:"required"`
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	NumberOfGuests  int    `json:"numberOfGuests" binding:"required,min=1,max=2147483647"`
	SpecialRequests string `json:"specialRequests,omitempty" binding:"max=1000"`
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
}

func (r CreateReservationRequest) ToInput() usecase.CreateReservationInput {
	return usecase.CreateReservationInput{
		RestaurantID:    r.RestaurantID,
		Date:            r.Date,
		Time:            r.Time,
		NumberOfGuests:  r.NumberOfGuests,
		SpecialRequests: r.SpecialRequests,
		Name:            r.Name,
		Email:           r.Email,
	}
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
