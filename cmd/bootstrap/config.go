package bootstrap

import (
	"reservation-service/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.NotifyConfig { return cfg.Notify },
		func(cfg config.Config) config.AuthConfig { return cfg.Auth },
	),
)
