package bootstrap

import (
	"context"
	"log/slog"

	"salon-booking/internal/infra/db"
	"salon-booking/internal/infra/docstore"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/errs"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewDocumentStore,
	),
)

// NewDocumentStore picks the backend named by STORE_DRIVER.
func NewDocumentStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (docstore.Store, error) {
	switch cfg.Store.Driver {
	case "postgres":
		pool, cleanup, err := db.Connect(cfg.DB)
		if err != nil {
			return nil, err
		}
		store := docstore.NewPostgresStore(pool)

		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				return store.EnsureSchema(ctx)
			},
			OnStop: func(_ context.Context) error {
				cleanup()
				return nil
			},
		})
		logger.Info("Document store ready", slog.String("driver", "postgres"), slog.String("host", cfg.DB.Host))
		return store, nil

	case "file":
		store, err := docstore.NewFileStore(cfg.Store.DataDir)
		if err != nil {
			return nil, err
		}
		logger.Info("Document store ready", slog.String("driver", "file"), slog.String("dir", cfg.Store.DataDir))
		return store, nil

	default:
		return nil, errs.Newf("unknown store driver %q", cfg.Store.Driver)
	}
}
