package queries

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Restaurants struct {
	ID        uuid.UUID          `json:"id"`
	Name      string             `json:"name"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

type Reservations struct {
	ID              uuid.UUID          `json:"id"`
	RestaurantID    uuid.UUID          `json:"restaurant_id"`
	RestaurantName  string             `json:"restaurant_name"`
	ReservationDate pgtype.Date        `json:"reservation_date"`
	ReservationTime string             `json:"reservation_time"`
	NumberOfGuests  int32              `json:"number_of_guests"`
	SpecialRequests pgtype.Text        `json:"special_requests"`
	GuestName       string             `json:"guest_name"`
	GuestEmail      string             `json:"guest_email"`
	Status          string             `json:"status"`
	CreatedAt       pgtype.Timestamptz `json:"created_at"`
	UpdatedAt       pgtype.Timestamptz `json:"updated_at"`
}
