// Package retry provides a small generic retry-with-backoff helper used by
// the remote client (contract calls and log scans) and by the oracle resync
// to ride out transient RPC failures,
// grounded on the original orchestrator's get_with_retry helper.
package retry

import (
	"context"
	"time"
)

// Options configures Do's backoff schedule.
type Options struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
}

// DefaultOptions mirrors the cadence the spec's loops already assume: a
// handful of attempts within a single tick, never blocking past a tick's
// own deadline.
var DefaultOptions = Options{
	MaxAttempts: 4,
	InitialWait: 500 * time.Millisecond,
	MaxWait:     5 * time.Second,
}

// Do calls fn until it succeeds, ctx is done, or MaxAttempts is exhausted,
// doubling the wait between attempts up to MaxWait. It returns the last
// error on exhaustion.
func Do(ctx context.Context, opts Options, fn func(context.Context) error) error {
	if opts.MaxAttempts <= 0 {
		opts = DefaultOptions
	}

	wait := opts.InitialWait
	var lastErr error
	for attempt := 0; attempt < opts.MaxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
			wait *= 2
			if wait > opts.MaxWait {
				wait = opts.MaxWait
			}
		}

		if err := fn(ctx); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return lastErr
}
