package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const reservationColumns = `id, restaurant_id, restaurant_name, reservation_date, reservation_time,
       number_of_guests, special_requests, guest_name, guest_email, status, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (Reservations, error) {
	var i Reservations
	err := row.Scan(
		&i.ID,
		&i.RestaurantID,
		&i.RestaurantName,
		&i.ReservationDate,
		&i.ReservationTime,
		&i.NumberOfGuests,
		&i.SpecialRequests,
		&i.GuestName,
		&i.GuestEmail,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createReservation = `-- name: CreateReservation :one
INSERT INTO reservations (
    restaurant_id, restaurant_name, reservation_date, reservation_time,
    number_of_guests, special_requests, guest_name, guest_email, status
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + reservationColumns

type CreateReservationParams struct {
	RestaurantID    uuid.UUID   `json:"restaurant_id"`
	RestaurantName  string      `json:"restaurant_name"`
	ReservationDate pgtype.Date `json:"reservation_date"`
	ReservationTime string      `json:"reservation_time"`
	NumberOfGuests  int32       `json:"number_of_guests"`
	SpecialRequests pgtype.Text `json:"special_requests"`
	GuestName       string      `json:"guest_name"`
	GuestEmail      string      `json:"guest_email"`
	Status          string      `json:"status"`
}

func (q *Queries) CreateReservation(ctx context.Context, db DBTX, arg CreateReservationParams) (Reservations, error) {
	row := db.QueryRow(ctx, createReservation,
		arg.RestaurantID,
		arg.RestaurantName,
		arg.ReservationDate,
		arg.ReservationTime,
		arg.NumberOfGuests,
		arg.SpecialRequests,
		arg.GuestName,
		arg.GuestEmail,
		arg.Status,
	)
	return scanReservation(row)
}

const getReservationByID = `-- name: GetReservationByID :one
SELECT ` + reservationColumns + `
FROM reservations
WHERE id = $1
`

func (q *Queries) GetReservationByID(ctx context.Context, db DBTX, id uuid.UUID) (Reservations, error) {
	return scanReservation(db.QueryRow(ctx, getReservationByID, id))
}

const updateReservationStatus = `-- name: UpdateReservationStatus :one
UPDATE reservations
SET status = $2, updated_at = NOW()
WHERE id = $1
RETURNING ` + reservationColumns

type UpdateReservationStatusParams struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

func (q *Queries) UpdateReservationStatus(ctx context.Context, db DBTX, arg UpdateReservationStatusParams) (Reservations, error) {
	return scanReservation(db.QueryRow(ctx, updateReservationStatus, arg.ID, arg.Status))
}

const deleteReservationReturning = `-- name: DeleteReservationReturning :one
DELETE FROM reservations
WHERE id = $1
RETURNING ` + reservationColumns

func (q *Queries) DeleteReservationReturning(ctx context.Context, db DBTX, id uuid.UUID) (Reservations, error) {
	return scanReservation(db.QueryRow(ctx, deleteReservationReturning, id))
}

const listReservationsWithRestaurant = `-- name: ListReservationsWithRestaurant :many
SELECT r.id, r.restaurant_id, r.restaurant_name, r.reservation_date, r.reservation_time,
       r.number_of_guests, r.special_requests, r.guest_name, r.guest_email, r.status,
       r.created_at, r.updated_at,
       rs.id AS joined_restaurant_id, rs.name AS joined_restaurant_name
FROM reservations r
LEFT JOIN restaurants rs ON rs.id = r.restaurant_id
ORDER BY r.reservation_date DESC, r.created_at DESC
`

type ListReservationsWithRestaurantRow struct {
	Reservations
	JoinedRestaurantID   pgtype.UUID `json:"joined_restaurant_id"`
	JoinedRestaurantName pgtype.Text `json:"joined_restaurant_name"`
}

func (q *Queries) ListReservationsWithRestaurant(ctx context.Context, db DBTX) ([]ListReservationsWithRestaurantRow, error) {
	rows, err := db.Query(ctx, listReservationsWithRestaurant)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ListReservationsWithRestaurantRow{}
	for rows.Next() {
		var i ListReservationsWithRestaurantRow
		if err := rows.Scan(
			&i.ID,
			&i.RestaurantID,
			&i.RestaurantName,
			&i.ReservationDate,
			&i.ReservationTime,
			&i.NumberOfGuests,
			&i.SpecialRequests,
			&i.GuestName,
			&i.GuestEmail,
			&i.Status,
			&i.CreatedAt,
			&i.UpdatedAt,
			&i.JoinedRestaurantID,
			&i.JoinedRestaurantName,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
