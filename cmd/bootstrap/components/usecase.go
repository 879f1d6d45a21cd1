package components

import (
	"time"

	"breakfast-deals/internal/domain/reservation"
	"breakfast-deals/internal/pkg/clock"
	"breakfast-deals/internal/pkg/config"
	"breakfast-deals/internal/usecase/commands"
	"breakfast-deals/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		reservation.NewUUIDv7Generator,
		fx.As(new(reservation.IDGenerator)),
	),
	func(clock clock.Clock, ids reservation.IDGenerator) *reservation.Services {
		return &reservation.Services{
			Clock:       clock,
			IDGenerator: ids,
		}
	},
	func(cfg config.Config, loc *time.Location) reservation.CapacityPolicy {
		return reservation.NewCapacityPolicy(cfg.Reservation.SlotCapacity, loc)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewCatalogQueries,
	),
)
