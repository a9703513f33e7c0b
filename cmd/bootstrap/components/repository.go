package components

import (
	"reservation-service/internal/infra/queries"
	"reservation-service/internal/infra/readstore"
	"reservation-service/internal/infra/repository"
	"reservation-service/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		// Restaurant
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.RestaurantReadQueries)),
		),
		fx.Annotate(
			readstore.NewRestaurantReadStore,
			fx.As(new(usecase.RestaurantLookup)),
		),
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.ReservationQueries)),
		),
		fx.Annotate(
			repository.NewReservationRepository,
			fx.As(new(usecase.ReservationStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *queries.Queries {
	return queries.New()
}

func NewDBTX(pool *pgxpool.Pool) queries.DBTX {
	return pool
}
