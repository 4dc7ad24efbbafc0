package components

import (
	"context"

	"tracking-number-generator/internal/infra/seencache"
	"tracking-number-generator/internal/pkg/config"
	"tracking-number-generator/internal/usecase/commands"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			NewTrackingNumberArbiter,
			fx.ParamTags(``, ``, `name:"store"`),
		),
	),
)

// NewTrackingNumberArbiter fronts the store with the seen-cache unless its
// capacity is configured as zero.
func NewTrackingNumberArbiter(lc fx.Lifecycle, cfg config.Config, store seencache.Arbiter) commands.TrackingNumberArbiter {
	if cfg.Store.SeenCacheCapacity == 0 {
		return store
	}

	cached := seencache.New(store, cfg.Store.SeenCacheTTL, cfg.Store.SeenCacheCapacity)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go cached.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			cached.Stop()
			return nil
		},
	})
	return cached
}
