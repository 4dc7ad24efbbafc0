package commands

import (
	"context"
	"time"

	"tracking-number-generator/internal/domain/tracking"
)

type CandidateGenerator interface {
	Generate() tracking.TrackingNumber
}

// TrackingNumberArbiter atomically records an identifier if it is absent.
// A non-nil error means the store could not answer (StoreError); the outcome
// is meaningless in that case.
type TrackingNumberArbiter interface {
	TryClaim(ctx context.Context, rec *tracking.ClaimedIdentifier) (tracking.ClaimOutcome, error)
}

type FailureReason string

const (
	FailureReasonExhausted   FailureReason = "exhausted"
	FailureReasonStoreError  FailureReason = "store_error"
	FailureReasonInterrupted FailureReason = "interrupted"
)

// IssuanceObserver receives issuance lifecycle events. Implementations must
// be safe for concurrent use and must not block.
type IssuanceObserver interface {
	OnAttempt(ctx context.Context, attempt int)
	OnFailure(ctx context.Context, reason FailureReason, err error, elapsed time.Duration)
	OnSuccess(ctx context.Context, elapsed time.Duration)
}

type NopObserver struct{}

func (NopObserver) OnAttempt(context.Context, int)                                 {}
func (NopObserver) OnFailure(context.Context, FailureReason, error, time.Duration) {}
func (NopObserver) OnSuccess(context.Context, time.Duration)                       {}
