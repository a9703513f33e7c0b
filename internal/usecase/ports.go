package usecase

//go:generate mockgen -source=ports.go -destination=../../tests/mock/usecase/ports.go -package=usecasemock

import (
	"context"

	"reservation-service/internal/domain/reservation"
	"reservation-service/internal/domain/restaurant"

	"github.com/google/uuid"
)

type RestaurantLookup interface {
	FindByID(ctx context.Context, id uuid.UUID) (*restaurant.Restaurant, error)
}

type ReservationStore interface {
	// Create persists a new reservation and returns it with the store-assigned id.
	Create(ctx context.Context, res *reservation.Reservation) (*reservation.Reservation, error)
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status reservation.Status) (*reservation.Reservation, error)
	// DeleteReturning removes the record and returns its last state in one statement.
	DeleteReturning(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	// ListWithRestaurant returns every reservation ordered by date, newest first.
	ListWithRestaurant(ctx context.Context) ([]*ReservationListItem, error)
}

type Notifier interface {
	Send(ctx context.Context, n Notification) error
}

type ReservationListItem struct {
	Reservation *reservation.Reservation
	// Restaurant is nil when the referenced restaurant no longer exists.
	Restaurant *restaurant.Restaurant
}
