package readstore

import (
	"context"

	"reservation-service/internal/domain/restaurant"
	"reservation-service/internal/infra"
	"reservation-service/internal/infra/converter"
	"reservation-service/internal/infra/queries"
	"reservation-service/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=restaurant.go -destination=../../../tests/mock/readstore/restaurant.go -package=readstoremock

type RestaurantReadQueries interface {
	GetRestaurantByID(ctx context.Context, db queries.DBTX, id uuid.UUID) (queries.Restaurants, error)
}

type RestaurantReadStore struct {
	queries RestaurantReadQueries
	db      queries.DBTX
}

func NewRestaurantReadStore(queries RestaurantReadQueries, db queries.DBTX) *RestaurantReadStore {
	return &RestaurantReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RestaurantReadStore) FindByID(ctx context.Context, id uuid.UUID) (*restaurant.Restaurant, error) {
	row, err := r.queries.GetRestaurantByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("restaurant not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find restaurant by ID", err)
	}
	return converter.RestaurantFromRow(row), nil
}
