// Package retry provides a generic retry combinator for fallible
// operations.
//
// The combinator re-invokes a zero-argument operation a bounded number
// of times with multiplicative backoff. It is used by the redis package
// to harden connection establishment against transient network
// failures, and is usable for any other idempotent operation.
//
// # Usage
//
//	import "github.com/atlasops/std/v1/retry"
//
//	err := retry.Do(ctx, retry.DefaultConfig(), func(ctx context.Context) error {
//		return dial(ctx)
//	})
//
// A custom policy:
//
//	cfg := retry.Config{
//		Attempts:      5,
//		InitialDelay:  100 * time.Millisecond,
//		BackoffFactor: 2.0,
//		MaxDelay:      2 * time.Second,
//	}
//	err := retry.Do(ctx, cfg, op)
//
// The wrapped operation must be idempotent or internally guarded
// against duplicate side effects; the combinator only bounds and paces
// the invocations.
package retry
