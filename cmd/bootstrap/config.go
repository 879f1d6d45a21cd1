package bootstrap

import (
	"time"

	"breakfast-deals/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewReservationLocation,
	),
)

// NewReservationLocation is the zone in which reservation dates are compared.
func NewReservationLocation(cfg config.Config) (*time.Location, error) {
	return cfg.Reservation.Location()
}
