package bootstrap

import (
	"context"
	"log/slog"

	"breakfast-deals/internal/infra/events"
	"breakfast-deals/internal/pkg/config"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewPublisher,
	),
)

// NewPublisher connects to the broker when AMQP_URL is set. Without it, or
// when the broker is unreachable, events are dropped.
func NewPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) events.Publisher {
	if cfg.Events.AMQPURL == "" {
		return events.NopPublisher{}
	}

	pub, err := events.NewAMQPPublisher(cfg.Events, logger)
	if err != nil {
		logger.Warn("reservation events disabled", "error", err)
		return events.NopPublisher{}
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub
}
