package reservation

import (
	"time"

	"reservation-service/internal/domain/restaurant"

	"github.com/google/uuid"
)

type Reservation struct {
	id              uuid.UUID
	restaurantID    uuid.UUID
	restaurantName  string
	schedule        Schedule
	guests          GuestCount
	specialRequests SpecialRequests
	contact         Contact
	status          Status
	createdAt       time.Time
	updatedAt       time.Time
}

// NewReservation builds a pending reservation. The restaurant name is copied so
// that later renames do not change what the guest was told. The id stays nil
// until the store assigns one.
func NewReservation(
	rest *restaurant.Restaurant,
	schedule Schedule,
	guests GuestCount,
	specialRequests SpecialRequests,
	contact Contact,
) *Reservation {
	return &Reservation{
		restaurantID:    rest.ID(),
		restaurantName:  rest.Name(),
		schedule:        schedule,
		guests:          guests,
		specialRequests: specialRequests,
		contact:         contact,
		status:          StatusPending,
	}
}

func ReconstructReservation(
	id, restaurantID uuid.UUID,
	restaurantName string,
	schedule Schedule,
	guests GuestCount,
	specialRequests SpecialRequests,
	contact Contact,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:              id,
		restaurantID:    restaurantID,
		restaurantName:  restaurantName,
		schedule:        schedule,
		guests:          guests,
		specialRequests: specialRequests,
		contact:         contact,
		status:          status,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (r *Reservation) ChangeStatus(next Status, policy StatusPolicy) error {
	if err := policy.CheckTransition(r.status, next); err != nil {
		return err
	}
	r.status = next
	return nil
}

func (r *Reservation) ID() uuid.UUID                    { return r.id }
func (r *Reservation) RestaurantID() uuid.UUID          { return r.restaurantID }
func (r *Reservation) RestaurantName() string           { return r.restaurantName }
func (r *Reservation) Schedule() Schedule               { return r.schedule }
func (r *Reservation) Guests() GuestCount               { return r.guests }
func (r *Reservation) SpecialRequests() SpecialRequests { return r.specialRequests }
func (r *Reservation) Contact() Contact                 { return r.contact }
func (r *Reservation) Status() Status                   { return r.status }
func (r *Reservation) CreatedAt() time.Time             { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time             { return r.updatedAt }
