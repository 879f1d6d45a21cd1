package components

import (
	"context"
	"log/slog"

	"breakfast-deals/internal/domain/image"
	"breakfast-deals/internal/infra/cache"
	"breakfast-deals/internal/infra/provider"
	"breakfast-deals/internal/pkg/clock"
	"breakfast-deals/internal/pkg/config"
	"breakfast-deals/internal/pkg/fallback"
	"breakfast-deals/internal/usecase/queries"

	"go.uber.org/fx"
)

var ProviderModule = fx.Module("provider",
	fx.Provide(
		NewProviderClient,
		NewCatalogSources,
		NewLastKnownCache,
		func() image.Picker { return image.DefaultPicker },
	),
)

func NewProviderClient(cfg config.Config, clk clock.Clock) *provider.Client {
	return provider.NewClient(cfg.Providers, clk)
}

func NewCatalogSources(client *provider.Client, cfg config.Config, pick image.Picker) queries.CatalogSources {
	return queries.CatalogSources{
		HotelsCom:   provider.NewHotelsCom(client, cfg.Providers),
		BookingCom:  provider.NewBookingCom(client, cfg.Providers),
		Hotelbeds:   provider.NewHotelbeds(client, cfg.Providers, pick),
		Spoonacular: provider.NewSpoonacular(client, cfg.Providers),
		Unsplash:    provider.NewUnsplash(client, cfg.Providers),
	}
}

func NewLastKnownCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) fallback.Cache {
	lk := cache.NewLastKnown(cfg.Cache, logger)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			lk.Stop()
			return nil
		},
	})
	return lk
}
