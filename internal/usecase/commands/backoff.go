package commands

import (
	"math/rand/v2"
	"time"
)

// BackoffPolicy spaces out retries after a collision. The wait before retry
// n (1-based) is drawn uniformly from [Min, Max) and multiplied by n.
type BackoffPolicy struct {
	Min time.Duration
	Max time.Duration
}

func DefaultBackoffPolicy() BackoffPolicy {
	return BackoffPolicy{Min: 10 * time.Millisecond, Max: 50 * time.Millisecond}
}

func (p BackoffPolicy) Delay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	base := p.Min
	if span := p.Max - p.Min; span > 0 {
		base += rand.N(span)
	}
	return base * time.Duration(attempt)
}
