package components

import (
	"tracking-number-generator/internal/domain/tracking"
	"tracking-number-generator/internal/infra/telemetry"
	"tracking-number-generator/internal/pkg/clock"
	"tracking-number-generator/internal/pkg/config"
	"tracking-number-generator/internal/usecase/commands"

	"go.opentelemetry.io/otel/metric"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		tracking.NewGenerator,
		fx.As(new(commands.CandidateGenerator)),
	),
	NewIssuanceObserver,
	NewIssuanceOptions,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewTrackingNumberUseCase,
	),
)

func NewIssuanceObserver(mp metric.MeterProvider) (commands.IssuanceObserver, error) {
	m, err := telemetry.NewIssuanceMetrics(mp)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func NewIssuanceOptions(cfg config.Config) commands.IssuanceOptions {
	return commands.IssuanceOptions{
		MaxRetries: cfg.Tracking.MaxRetries,
		Backoff: commands.BackoffPolicy{
			Min: cfg.Tracking.BackoffMin,
			Max: cfg.Tracking.BackoffMax,
		},
		ClaimTimeout: cfg.Tracking.ClaimTimeout,
	}
}
