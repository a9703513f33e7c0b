package queries

import (
	"context"

	"github.com/google/uuid"
)

const createRestaurant = `-- name: CreateRestaurant :one
INSERT INTO restaurants (name)
VALUES ($1)
RETURNING id, name, created_at, updated_at
`

func (q *Queries) CreateRestaurant(ctx context.Context, db DBTX, name string) (Restaurants, error) {
	row := db.QueryRow(ctx, createRestaurant, name)
	var i Restaurants
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getRestaurantByID = `-- name: GetRestaurantByID :one
SELECT id, name, created_at, updated_at
FROM restaurants
WHERE id = $1
`

func (q *Queries) GetRestaurantByID(ctx context.Context, db DBTX, id uuid.UUID) (Restaurants, error) {
	row := db.QueryRow(ctx, getRestaurantByID, id)
	var i Restaurants
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
