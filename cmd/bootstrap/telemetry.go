package bootstrap

import (
	"context"

	"tracking-number-generator/internal/infra/telemetry"
	"tracking-number-generator/internal/pkg/config"

	"go.opentelemetry.io/otel/metric"
	"go.uber.org/fx"
)

var TelemetryModule = fx.Module("telemetry",
	fx.Provide(
		NewMeterProvider,
	),
)

func NewMeterProvider(lc fx.Lifecycle, cfg config.Config) (metric.MeterProvider, error) {
	mp, err := telemetry.NewMeterProvider(context.Background(), cfg.Telemetry)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return mp.Shutdown(ctx)
		},
	})

	return mp, nil
}
