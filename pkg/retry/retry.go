package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Policy is a named, bounded exponential backoff. MaxAttempts counts the
// first try plus retries. Jitter scatters each delay by the given fraction;
// zero keeps delays deterministic.
type Policy struct {
	MaxAttempts uint64
	BaseDelay   time.Duration
	Multiplier  float64
	Jitter      float64
}

// Default is the policy used for post-login session verification: three
// attempts with doubling delays.
func Default() Policy {
	return Policy{
		MaxAttempts: 3,
		BaseDelay:   200 * time.Millisecond,
		Multiplier:  2,
	}
}

// Do runs op until it succeeds, the attempt budget is exhausted, or ctx is
// cancelled. On exhaustion the last error from op is returned; cancellation
// returns the context error.
func (p Policy) Do(ctx context.Context, op func() error) error {
	attempts := p.MaxAttempts
	if attempts == 0 {
		attempts = 1
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = p.BaseDelay
	exp.Multiplier = p.Multiplier
	exp.RandomizationFactor = p.Jitter
	// Bounded by attempts, not wall clock.
	exp.MaxElapsedTime = 0

	b := backoff.WithContext(backoff.WithMaxRetries(exp, attempts-1), ctx)

	return backoff.Retry(op, b)
}
