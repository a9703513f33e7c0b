package restaurant

import (
	"time"

	"github.com/google/uuid"
)

// Restaurant is read-only from the reservation side; only id and name are consumed.
type Restaurant struct {
	id        uuid.UUID
	name      string
	createdAt time.Time
	updatedAt time.Time
}

func ReconstructRestaurant(id uuid.UUID, name string, createdAt, updatedAt time.Time) *Restaurant {
	return &Restaurant{
		id:        id,
		name:      name,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Restaurant) ID() uuid.UUID        { return r.id }
func (r *Restaurant) Name() string         { return r.name }
func (r *Restaurant) CreatedAt() time.Time { return r.createdAt }
func (r *Restaurant) UpdatedAt() time.Time { return r.updatedAt }
