package bootstrap

import (
	"context"
	"log/slog"

	"tracking-number-generator/internal/handler/api"
	"tracking-number-generator/internal/infra/repository"
	"tracking-number-generator/internal/infra/seencache"
	sqlc "tracking-number-generator/internal/infra/sqlc/generated"
	"tracking-number-generator/internal/infra/sqlitestore"
	"tracking-number-generator/internal/pkg/clock"
	"tracking-number-generator/internal/pkg/config"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewStore,
	),
)

// StoreResult exposes the authoritative arbiter under the "store" name so the
// repository module can decorate it.
type StoreResult struct {
	fx.Out

	Arbiter seencache.Arbiter `name:"store"`
	Pinger  api.Pinger
}

func NewStore(lc fx.Lifecycle, cfg config.Config, clk clock.Clock) (StoreResult, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverSQLite:
		st, err := sqlitestore.Open(cfg.Store.SQLitePath, clk)
		if err != nil {
			return StoreResult{}, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return st.Close()
			},
		})
		slog.Info("using sqlite store", "path", cfg.Store.SQLitePath)
		return StoreResult{Arbiter: st, Pinger: st}, nil
	default:
		pool, err := NewDB(lc, cfg)
		if err != nil {
			return StoreResult{}, err
		}
		slog.Info("using postgres store", "host", cfg.DB.Host, "database", cfg.DB.DBName)
		return StoreResult{
			Arbiter: repository.NewTrackingNumberRepository(sqlc.New(), pool),
			Pinger:  pool,
		}, nil
	}
}
