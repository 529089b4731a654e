package retry

import (
	"context"
	"fmt"
	"time"
)

// Default values for configuration
const (
	DefaultAttempts      = 3
	DefaultInitialDelay  = 500 * time.Millisecond
	DefaultMaxDelay      = 5 * time.Second
	DefaultBackoffFactor = 2.0
)

// Config defines the retry behavior of Do.
type Config struct {
	// Attempts is the total number of attempts, including the first one.
	// Default: 3
	Attempts int

	// InitialDelay is the delay before the first re-attempt.
	// Default: 500 milliseconds
	InitialDelay time.Duration

	// MaxDelay caps the delay between attempts.
	// Default: 5 seconds
	MaxDelay time.Duration

	// BackoffFactor multiplies the delay after every failed attempt.
	// A factor of 1.0 yields a fixed delay.
	// Default: 2.0
	BackoffFactor float64
}

// DefaultConfig returns the default retry configuration.
func DefaultConfig() Config {
	return Config{
		Attempts:      DefaultAttempts,
		InitialDelay:  DefaultInitialDelay,
		MaxDelay:      DefaultMaxDelay,
		BackoffFactor: DefaultBackoffFactor,
	}
}

// Operation is a zero-argument fallible action to be retried.
// It must be idempotent: Do may invoke it several times, and the
// combinator adds no guarding against duplicate side effects.
type Operation func(ctx context.Context) error

// Do invokes op, re-invoking it with backoff until it succeeds, the
// attempt bound is reached, or the context is cancelled.
//
// On exhaustion the last failure is returned. Context cancellation
// between attempts returns the context error wrapped with the last
// operation failure so callers see both.
func Do(ctx context.Context, cfg Config, op Operation) error {
	if cfg.Attempts <= 0 {
		cfg.Attempts = DefaultAttempts
	}
	if cfg.InitialDelay <= 0 {
		cfg.InitialDelay = DefaultInitialDelay
	}
	if cfg.MaxDelay <= 0 {
		cfg.MaxDelay = DefaultMaxDelay
	}
	if cfg.BackoffFactor < 1.0 {
		cfg.BackoffFactor = DefaultBackoffFactor
	}

	var lastErr error
	delay := cfg.InitialDelay

	for attempt := 1; attempt <= cfg.Attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			if lastErr != nil {
				return fmt.Errorf("%w (context cancelled after: %v)", lastErr, err)
			}
			return err
		}

		lastErr = op(ctx)
		if lastErr == nil {
			return nil
		}

		if attempt == cfg.Attempts {
			break
		}

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return fmt.Errorf("%w (context cancelled after: %v)", lastErr, ctx.Err())
		}

		delay = time.Duration(float64(delay) * cfg.BackoffFactor)
		if delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
	}

	return lastErr
}
