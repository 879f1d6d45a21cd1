package bootstrap

import (
	"context"
	"log/slog"

	"breakfast-deals/internal/infra/db"
	"breakfast-deals/internal/infra/kvstore"
	"breakfast-deals/internal/pkg/config"
	"breakfast-deals/internal/pkg/errs"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewKVStore,
	),
)

// NewKVStore opens the backend selected by STORE_DRIVER.
func NewKVStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (kvstore.Store, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverRedis:
		store := kvstore.NewRedisStore(kvstore.NewRedisClient(cfg.Redis))
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				if err := store.Ping(ctx); err != nil {
					return errs.Wrap(err, "ping redis")
				}
				logger.Info("reservation store ready", "driver", cfg.Store.Driver, "addr", cfg.Redis.Addr)
				return nil
			},
			OnStop: func(_ context.Context) error {
				return store.Close()
			},
		})
		return store, nil

	case config.StoreDriverPostgres:
		pool, cleanup, err := db.Connect(cfg.DB)
		if err != nil {
			return nil, err
		}
		store := kvstore.NewPostgresStore(pool)
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				if err := store.EnsureSchema(ctx); err != nil {
					return err
				}
				logger.Info("reservation store ready", "driver", cfg.Store.Driver, "host", cfg.DB.Host)
				return nil
			},
			OnStop: func(_ context.Context) error {
				cleanup()
				return nil
			},
		})
		return store, nil

	default:
		logger.Warn("using in-memory reservation store, data is lost on restart")
		return kvstore.NewMemoryStore(), nil
	}
}
