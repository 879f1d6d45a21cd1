package components

import (
	"breakfast-deals/internal/infra/repository"
	"breakfast-deals/internal/pkg/config"
	"breakfast-deals/internal/usecase/commands"
	"breakfast-deals/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewStoreConfig,
		fx.Annotate(
			repository.NewReservationStore,
			fx.As(new(commands.ReservationRepository)),
			fx.As(new(queries.ReservationReader)),
		),
	),
)

func NewStoreConfig(cfg config.Config) config.StoreConfig {
	return cfg.Store
}
