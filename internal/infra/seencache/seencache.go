// Package seencache short-circuits claims of identifiers this instance has
// recently seen in the store. It never reports Claimed on its own: a miss
// always goes to the wrapped arbiter, which stays authoritative.
package seencache

import (
	"context"
	"time"

	"tracking-number-generator/internal/domain/tracking"

	"github.com/jellydator/ttlcache/v3"
)

type Arbiter interface {
	TryClaim(ctx context.Context, rec *tracking.ClaimedIdentifier) (tracking.ClaimOutcome, error)
}

type CachingArbiter struct {
	next Arbiter
	seen *ttlcache.Cache[string, struct{}]
}

func New(next Arbiter, ttl time.Duration, capacity uint64) *CachingArbiter {
	opts := []ttlcache.Option[string, struct{}]{
		ttlcache.WithTTL[string, struct{}](ttl),
		ttlcache.WithDisableTouchOnHit[string, struct{}](),
	}
	if capacity > 0 {
		opts = append(opts, ttlcache.WithCapacity[string, struct{}](capacity))
	}
	return &CachingArbiter{
		next: next,
		seen: ttlcache.New(opts...),
	}
}

func (a *CachingArbiter) TryClaim(ctx context.Context, rec *tracking.ClaimedIdentifier) (tracking.ClaimOutcome, error) {
	key := rec.TrackingNumber().String()
	if a.seen.Has(key) {
		return tracking.ClaimOutcomeCollision, nil
	}

	outcome, err := a.next.TryClaim(ctx, rec)
	if err != nil {
		return outcome, err
	}
	switch outcome {
	case tracking.ClaimOutcomeClaimed, tracking.ClaimOutcomeCollision:
		a.seen.Set(key, struct{}{}, ttlcache.DefaultTTL)
	}
	return outcome, nil
}

func (a *CachingArbiter) Len() int {
	return a.seen.Len()
}

// Start runs expired-entry cleanup until Stop is called. It blocks.
func (a *CachingArbiter) Start() {
	a.seen.Start()
}

func (a *CachingArbiter) Stop() {
	a.seen.Stop()
}
