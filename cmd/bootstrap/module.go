package bootstrap

import (
	"breakfast-deals/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	StoreModule,
	EventsModule,
	components.RepositoryModule,
	components.ProviderModule,
	components.UseCaseModule,
	components.HandlerModule,
)
