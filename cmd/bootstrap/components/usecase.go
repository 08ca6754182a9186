package components

import (
	"manuara-reservas/internal/pkg/clock"
	"manuara-reservas/internal/pkg/config"
	"manuara-reservas/internal/usecase/commands"
	"manuara-reservas/internal/usecase/queries"
	"manuara-reservas/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewAnalyticsQueries,
		queries.NewNotificationQueries,
		func(store queries.ReservationReadStore, cfg config.Config) queries.AvailabilityQueries {
			return queries.NewAvailabilityQueries(store, cfg.Availability.HorizonDays)
		},
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		func(u shared.UnitOfWork, q queries.ReservationQueries, clk clock.Clock, cfg config.Config) commands.ReservationCommands {
			return commands.NewReservationUseCase(u, q, clk, cfg.Availability.HorizonDays)
		},
		commands.NewNotificationUseCase,
	),
)
