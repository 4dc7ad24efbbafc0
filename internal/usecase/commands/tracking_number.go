package commands

import (
	"context"
	"log/slog"
	"time"

	"tracking-number-generator/internal/domain/tracking"
	"tracking-number-generator/internal/pkg/clock"
	"tracking-number-generator/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrGenerationExhausted      = errs.New("tracking number generation exhausted")
	ErrGenerationFailed         = errs.New("tracking number generation failed")
	ErrInterruptedDuringBackoff = errs.New("tracking number generation interrupted")
)

const DefaultMaxRetries = 3

type IssuanceOptions struct {
	MaxRetries int
	Backoff    BackoffPolicy
	// ClaimTimeout bounds a single store round trip. Zero means no bound
	// beyond the store's own.
	ClaimTimeout time.Duration
}

func DefaultIssuanceOptions() IssuanceOptions {
	return IssuanceOptions{
		MaxRetries:   DefaultMaxRetries,
		Backoff:      DefaultBackoffPolicy(),
		ClaimTimeout: 5 * time.Second,
	}
}

type TrackingNumberCommands interface {
	IssueTrackingNumber(ctx context.Context, req tracking.IssuanceRequest) (*tracking.IssuanceResult, error)
}

type trackingNumberUseCaseImpl struct {
	generator    CandidateGenerator
	arbiter      TrackingNumberArbiter
	observer     IssuanceObserver
	clock        clock.Clock
	opts         IssuanceOptions
	newRequestID func() uuid.UUID
}

func NewTrackingNumberUseCase(
	generator CandidateGenerator,
	arbiter TrackingNumberArbiter,
	observer IssuanceObserver,
	clk clock.Clock,
	opts IssuanceOptions,
) TrackingNumberCommands {
	if opts.MaxRetries < 1 {
		opts.MaxRetries = DefaultMaxRetries
	}
	if observer == nil {
		observer = NopObserver{}
	}
	return &trackingNumberUseCaseImpl{
		generator:    generator,
		arbiter:      arbiter,
		observer:     observer,
		clock:        clk,
		opts:         opts,
		newRequestID: uuid.New,
	}
}

// IssueTrackingNumber draws candidates until one is claimed, a store error
// occurs, the retry budget is spent or ctx is cancelled. Collisions consume
// an attempt and are followed by a jittered backoff; store errors are never
// retried.
func (uc *trackingNumberUseCaseImpl) IssueTrackingNumber(ctx context.Context, req tracking.IssuanceRequest) (*tracking.IssuanceResult, error) {
	start := uc.clock.Now()
	maxRetries := uc.opts.MaxRetries

	slog.InfoContext(ctx, "issuing tracking number",
		"origin", req.Origin.String(),
		"destination", req.Destination.String(),
		"customer_id", req.CustomerID.String())

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, uc.fail(ctx, start, FailureReasonInterrupted,
				errs.Mark(errs.Wrapf(err, "generation interrupted before attempt %d", attempt), ErrInterruptedDuringBackoff))
		}

		uc.observer.OnAttempt(ctx, attempt)

		candidate := uc.generator.Generate()
		rec := tracking.NewClaimedIdentifier(candidate, req, uc.newRequestID())

		outcome, err := uc.claim(ctx, rec)
		if err != nil {
			return nil, uc.fail(ctx, start, FailureReasonStoreError,
				errs.Mark(errs.Wrapf(err, "failed to claim tracking number on attempt %d", attempt), ErrGenerationFailed))
		}

		switch outcome {
		case tracking.ClaimOutcomeClaimed:
			result := tracking.NewIssuanceResult(rec, req)
			elapsed := uc.clock.Now().Sub(start)
			uc.observer.OnSuccess(ctx, elapsed)
			slog.InfoContext(ctx, "tracking number issued",
				"tracking_number", result.TrackingNumber.String(),
				"request_id", result.RequestID.String(),
				"attempt", attempt,
				"duration_ms", elapsed.Milliseconds())
			return &result, nil
		case tracking.ClaimOutcomeCollision:
			slog.WarnContext(ctx, "tracking number collision",
				"tracking_number", candidate.String(),
				"attempt", attempt,
				"max_attempts", maxRetries)
		default:
			return nil, uc.fail(ctx, start, FailureReasonStoreError,
				errs.Mark(errs.Newf("unexpected claim outcome %q", outcome), ErrGenerationFailed))
		}

		if attempt == maxRetries {
			break
		}
		if err := uc.wait(ctx, attempt); err != nil {
			return nil, uc.fail(ctx, start, FailureReasonInterrupted,
				errs.Mark(errs.Wrapf(err, "generation interrupted while backing off after attempt %d", attempt), ErrInterruptedDuringBackoff))
		}
	}

	return nil, uc.fail(ctx, start, FailureReasonExhausted,
		errs.Mark(errs.Newf("unable to generate unique tracking number after %d attempts", maxRetries), ErrGenerationExhausted))
}

// claim lets an in-flight store operation finish even if ctx is cancelled
// meanwhile, so a claim is never left half-observed.
func (uc *trackingNumberUseCaseImpl) claim(ctx context.Context, rec *tracking.ClaimedIdentifier) (tracking.ClaimOutcome, error) {
	claimCtx := context.WithoutCancel(ctx)
	if uc.opts.ClaimTimeout > 0 {
		var cancel context.CancelFunc
		claimCtx, cancel = context.WithTimeout(claimCtx, uc.opts.ClaimTimeout)
		defer cancel()
	}
	return uc.arbiter.TryClaim(claimCtx, rec)
}

func (uc *trackingNumberUseCaseImpl) wait(ctx context.Context, attempt int) error {
	waitTime := uc.opts.Backoff.Delay(attempt)

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-uc.clock.After(waitTime):
		return nil
	}
}

func (uc *trackingNumberUseCaseImpl) fail(ctx context.Context, start time.Time, reason FailureReason, err error) error {
	elapsed := uc.clock.Now().Sub(start)
	uc.observer.OnFailure(ctx, reason, err, elapsed)
	slog.ErrorContext(ctx, "tracking number generation failed",
		"reason", string(reason),
		"duration_ms", elapsed.Milliseconds(),
		"error", err.Error())
	return err
}
