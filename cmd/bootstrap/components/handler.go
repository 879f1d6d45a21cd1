package components

import (
	"breakfast-deals/internal/handler"
	"breakfast-deals/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCatalogHandler,
		api.NewReservationHandler,
	),
	fx.Invoke(handler.NewRouter),
)
