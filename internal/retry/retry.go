// Package retry runs an operation with exponential backoff.
package retry

import (
	"context"
	"errors"
	"math"
	"time"
)

// ErrExhausted is returned, joined with the last error, when every attempt
// failed.
var ErrExhausted = errors.New("retry: attempts exhausted")

// Policy controls how often and how patiently an operation is retried.
type Policy struct {
	Attempts   int           // Total tries including the first; default 3
	Initial    time.Duration // Delay before the second try; default 20ms
	Max        time.Duration // Delay cap; default 1s
	Multiplier float64       // Growth per try; default 2

	// Retryable reports whether a failure is worth another try.
	// Nil treats every error as retryable.
	Retryable func(error) bool

	// OnRetry is called before each wait with the failed try (1-based),
	// its error and the delay about to be slept.
	OnRetry func(attempt int, err error, wait time.Duration)
}

// DefaultPolicy suits short local writes such as a best-score update.
func DefaultPolicy() Policy {
	return Policy{
		Attempts:   3,
		Initial:    20 * time.Millisecond,
		Max:        time.Second,
		Multiplier: 2,
	}
}

func (p Policy) withDefaults() Policy {
	d := DefaultPolicy()
	if p.Attempts <= 0 {
		p.Attempts = d.Attempts
	}
	if p.Initial <= 0 {
		p.Initial = d.Initial
	}
	if p.Max <= 0 {
		p.Max = d.Max
	}
	if p.Multiplier <= 0 {
		p.Multiplier = d.Multiplier
	}
	return p
}

// Do calls fn until it succeeds, returns a non-retryable error, the attempts
// run out or ctx is done.
func Do(ctx context.Context, p Policy, fn func() error) error {
	p = p.withDefaults()

	var err error
	for attempt := 0; attempt < p.Attempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if p.Retryable != nil && !p.Retryable(err) {
			return err
		}
		if attempt == p.Attempts-1 {
			break
		}

		wait := Backoff(attempt, p.Initial, p.Max, p.Multiplier)
		if p.OnRetry != nil {
			p.OnRetry(attempt+1, err, wait)
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return errors.Join(ctx.Err(), err)
		case <-timer.C:
		}
	}
	return errors.Join(ErrExhausted, err)
}

// Backoff returns the wait after the given failed try (0-based), capped at max.
func Backoff(attempt int, initial, max time.Duration, multiplier float64) time.Duration {
	if attempt <= 0 {
		return min(initial, max)
	}
	d := float64(initial) * math.Pow(multiplier, float64(attempt))
	if d > float64(max) {
		return max
	}
	return time.Duration(d)
}
