package converter

import (
	"fmt"
	"time"

	"reservation-service/internal/domain/reservation"
	"reservation-service/internal/domain/restaurant"
	"reservation-service/internal/infra/queries"
	"reservation-service/internal/pkg/pgconv"
)

func ReservationToCreateParams(res *reservation.Reservation) queries.CreateReservationParams {
	return queries.CreateReservationParams{
		RestaurantID:    res.RestaurantID(),
		RestaurantName:  res.RestaurantName(),
		ReservationDate: pgconv.DateToPgtype(res.Schedule().Date()),
		ReservationTime: res.Schedule().Time(),
		NumberOfGuests:  int32(res.Guests().Int()), // bounded by reservation.MaxGuestCount
		SpecialRequests: pgconv.StringToPgtype(res.SpecialRequests().String()),
		GuestName:       res.Contact().Name(),
		GuestEmail:      res.Contact().Email(),
		Status:          res.Status().String(),
	}
}

// ReservationFromRow rebuilds the aggregate through the value-object constructors,
// so a row that violates them surfaces as an error instead of a half-valid entity.
func ReservationFromRow(row queries.Reservations) (*reservation.Reservation, error) {
	schedule, err := reservation.NewSchedule(pgconv.DateFromPgtype(row.ReservationDate), row.ReservationTime)
	if err != nil {
		return nil, fmt.Errorf("reservation %s: %w", row.ID, err)
	}
	guests, err := reservation.NewGuestCount(int(row.NumberOfGuests))
	if err != nil {
		return nil, fmt.Errorf("reservation %s: %w", row.ID, err)
	}
	requests, err := reservation.NewSpecialRequests(pgconv.StringFromPgtype(row.SpecialRequests))
	if err != nil {
		return nil, fmt.Errorf("reservation %s: %w", row.ID, err)
	}
	contact, err := reservation.NewContact(row.GuestName, row.GuestEmail)
	if err != nil {
		return nil, fmt.Errorf("reservation %s: %w", row.ID, err)
	}

	return reservation.ReconstructReservation(
		row.ID,
		row.RestaurantID,
		row.RestaurantName,
		schedule,
		guests,
		requests,
		contact,
		reservation.Status(row.Status),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func RestaurantFromRow(row queries.Restaurants) *restaurant.Restaurant {
	return restaurant.ReconstructRestaurant(
		row.ID,
		row.Name,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

// JoinedRestaurant returns nil when the LEFT JOIN found no restaurant. Only id and
// name are selected, so the timestamps stay zero.
func JoinedRestaurant(row queries.ListReservationsWithRestaurantRow) *restaurant.Restaurant {
	id := pgconv.UUIDPtrFromPgtype(row.JoinedRestaurantID)
	if id == nil {
		return nil
	}
	return restaurant.ReconstructRestaurant(*id, pgconv.StringFromPgtype(row.JoinedRestaurantName), time.Time{}, time.Time{})
}
