//go:build unit || e2e

package builder

import (
	"time"

	"reservation-service/internal/domain/reservation"
	"reservation-service/internal/domain/restaurant"
	reqdto "reservation-service/internal/handler/dto/request"
	"reservation-service/internal/usecase"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID              uuid.UUID
	RestaurantID    uuid.UUID
	RestaurantName  string
	Date            string
	Time            string
	NumberOfGuests  int
	SpecialRequests string
	Name            string
	Email           string
	Status          reservation.Status
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ID:              uuid.New(),
		RestaurantID:    uuid.New(),
		RestaurantName:  "Trattoria Roma",
		Date:            "2025-03-14",
		Time:            "19:30",
		NumberOfGuests:  4,
		SpecialRequests: "Window seat",
		Name:            "Jane Doe",
		Email:           "jane@example.com",
		Status:          reservation.StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildRestaurant() *restaurant.Restaurant {
	return restaurant.ReconstructRestaurant(b.RestaurantID, b.RestaurantName, b.CreatedAt, b.UpdatedAt)
}

// BuildDomain returns a persisted reservation, id and timestamps included.
func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	date, err := reservation.ParseDate(b.Date)
	if err != nil {
		panic(err)
	}
	schedule, err := reservation.NewSchedule(date, b.Time)
	if err != nil {
		panic(err)
	}
	guests, err := reservation.NewGuestCount(b.NumberOfGuests)
	if err != nil {
		panic(err)
	}
	requests, err := reservation.NewSpecialRequests(b.SpecialRequests)
	if err != nil {
		panic(err)
	}
	contact, err := reservation.NewContact(b.Name, b.Email)
	if err != nil {
		panic(err)
	}
	return reservation.ReconstructReservation(
		b.ID, b.RestaurantID, b.RestaurantName,
		schedule, guests, requests, contact,
		b.Status, b.CreatedAt, b.UpdatedAt,
	)
}

// BuildNew returns the unsaved reservation as the manager would hand it to the store.
func (b *ReservationBuilder) BuildNew() *reservation.Reservation {
	persisted := b.BuildDomain()
	return reservation.NewReservation(
		b.BuildRestaurant(),
		persisted.Schedule(),
		persisted.Guests(),
		persisted.SpecialRequests(),
		persisted.Contact(),
	)
}

func (b *ReservationBuilder) BuildInput() usecase.CreateReservationInput {
	return usecase.CreateReservationInput{
		RestaurantID:    b.RestaurantID.String(),
		Date:            b.Date,
		Time:            b.Time,
		NumberOfGuests:  b.NumberOfGuests,
		SpecialRequests: b.SpecialRequests,
		Name:            b.Name,
		Email:           b.Email,
	}
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		RestaurantID:    b.RestaurantID.String(),
		Date:            b.Date,
		Time:            b.Time,
		NumberOfGuests:  b.NumberOfGuests,
		SpecialRequests: b.SpecialRequests,
		Name:            b.Name,
		Email:           b.Email,
	}
}

func (b *ReservationBuilder) BuildListItem() *usecase.ReservationListItem {
	return &usecase.ReservationListItem{
		Reservation: b.BuildDomain(),
		Restaurant:  b.BuildRestaurant(),
	}
}
