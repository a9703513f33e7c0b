package components

import (
	"reservation-service/internal/domain/reservation"
	"reservation-service/internal/pkg/config"
	"reservation-service/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseManagersModule,
	usecaseValidatorsModule,
)

var usecaseBaseOption = fx.Provide(
	func(cfg config.Config) (reservation.StatusPolicy, error) {
		return reservation.NewStatusPolicy(cfg.Reservation.StatusPolicy)
	},
)

var usecaseManagersModule = fx.Module("usecase/managers",
	fx.Provide(
		usecase.NewReservationManager,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
