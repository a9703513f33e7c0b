package bootstrap

import (
	"reservation-service/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	MailModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
