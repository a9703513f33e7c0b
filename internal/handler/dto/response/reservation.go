package response

import (
	"time"

	"reservation-service/internal/domain/reservation"
	"reservation-service/internal/domain/restaurant"
	"reservation-service/internal/usecase"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID              uuid.UUID `json:"id"`
	RestaurantID    uuid.UUID `json:"restaurantId"`
	RestaurantName  string    `json:"restaurantName"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	NumberOfGuests  int       `json:"numberOfGuests"`
	SpecialRequests *string   `json:"specialRequests,omitempty"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type RestaurantSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ReservationListResponse carries the populated restaurant, null when it no longer exists.
type ReservationListResponse struct {
	ReservationResponse
	Restaurant *RestaurantSummary `json:"restaurant"`
}

func FromReservation(res *reservation.Reservation) *ReservationResponse {
	var requests *string
	if !res.SpecialRequests().IsEmpty() {
		s := res.SpecialRequests().String()
		requests = &s
	}
	return &ReservationResponse{
		ID:              res.ID(),
		RestaurantID:    res.RestaurantID(),
		RestaurantName:  res.RestaurantName(),
		Date:            res.Schedule().DateISO(),
		Time:            res.Schedule().Time(),
		NumberOfGuests:  res.Guests().Int(),
		SpecialRequests: requests,
		Name:            res.Contact().Name(),
		Email:           res.Contact().Email(),
		Status:          res.Status().String(),
		CreatedAt:       res.CreatedAt(),
		UpdatedAt:       res.UpdatedAt(),
	}
}

func FromReservationListItem(item *usecase.ReservationListItem) *ReservationListResponse {
	return &ReservationListResponse{
		ReservationResponse: *FromReservation(item.Reservation),
		Restaurant:          fromRestaurant(item.Restaurant),
	}
}

func FromReservationList(items []*usecase.ReservationListItem) []*ReservationListResponse {
	out := make([]*ReservationListResponse, 0, len(items))
	for _, item := range items {
		out = append(out, FromReservationListItem(item))
	}
	return out
}

func fromRestaurant(r *restaurant.Restaurant) *RestaurantSummary {
	if r == nil {
		return nil
	}
	return &RestaurantSummary{ID: r.ID(), Name: r.Name()}
}
