package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"tracking-number-generator/internal/infra/db"
	"tracking-number-generator/internal/pkg/config"
	"tracking-number-generator/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

const startupTimeout = 30 * time.Second

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	if cfg.DB.AutoMigrate {
		slog.Info("applying database migrations")
		if err := migrations.RunMigrationsUp(ctx, pool); err != nil {
			cleanup()
			return nil, err
		}
	}

	return pool, nil
}
