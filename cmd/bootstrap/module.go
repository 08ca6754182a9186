package bootstrap

import (
	"manuara-reservas/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	AuthModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
