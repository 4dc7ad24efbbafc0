package telemetry

import (
	"context"
	"time"

	"tracking-number-generator/internal/pkg/errs"
	"tracking-number-generator/internal/usecase/commands"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "tracking-number-generator/internal/infra/telemetry"

// IssuanceMetrics records issuance lifecycle events as OpenTelemetry
// instruments.
type IssuanceMetrics struct {
	attempts metric.Int64Counter
	failures metric.Int64Counter
	duration metric.Float64Histogram
}

func NewIssuanceMetrics(mp metric.MeterProvider) (*IssuanceMetrics, error) {
	meter := mp.Meter(meterName)

	attempts, err := meter.Int64Counter(
		"tracking_number.generation.attempts",
		metric.WithDescription("Tracking number claim attempts started"),
	)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create attempts counter")
	}

	failures, err := meter.Int64Counter(
		"tracking_number.generation.failures",
		metric.WithDescription("Tracking number issuances that ended in failure"),
	)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create failures counter")
	}

	duration, err := meter.Float64Histogram(
		"tracking_number.generation.duration",
		metric.WithDescription("Time from issuance start to its outcome"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create duration histogram")
	}

	return &IssuanceMetrics{attempts: attempts, failures: failures, duration: duration}, nil
}

func (m *IssuanceMetrics) OnAttempt(ctx context.Context, attempt int) {
	m.attempts.Add(ctx, 1, metric.WithAttributes(attribute.Int("attempt", attempt)))
}

func (m *IssuanceMetrics) OnFailure(ctx context.Context, reason commands.FailureReason, _ error, elapsed time.Duration) {
	m.failures.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", string(reason))))
	m.duration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(attribute.String("outcome", "failure")))
}

func (m *IssuanceMetrics) OnSuccess(ctx context.Context, elapsed time.Duration) {
	m.duration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(attribute.String("outcome", "success")))
}
