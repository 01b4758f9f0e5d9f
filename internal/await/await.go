// Package await retries a readiness check a bounded number of times
package await

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Check reports whether the awaited resource is ready; a nil error means ready
type Check func(ctx context.Context) error

// Options bound the wait
type Options struct {
	// Name identifies the resource in logs and errors
	Name string
	// Attempts is the maximum number of checks; values below 1 mean one attempt
	Attempts int
	// Timeout bounds each individual check
	Timeout time.Duration
	// Interval is the pause between failed attempts
	Interval time.Duration
	// OnFailure is called once with the last error when every attempt fails
	OnFailure func(err error)
	Logger    *slog.Logger
}

// Until runs check until it succeeds, the attempts run out or ctx is done.
// It returns the last check error wrapped with the resource name.
func Until(ctx context.Context, opts Options, check Check) error {
	attempts := opts.Attempts
	if attempts < 1 {
		attempts = 1
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		lastErr = runOnce(ctx, opts.Timeout, check)
		if lastErr == nil {
			if attempt > 1 {
				logger.Info("resource ready", "name", opts.Name, "attempt", attempt)
			}
			return nil
		}

		logger.Debug("resource not ready",
			"name", opts.Name,
			"attempt", attempt,
			"max_attempts", attempts,
			"error", lastErr)

		if attempt == attempts {
			break
		}
		if err := sleep(ctx, opts.Interval); err != nil {
			lastErr = err
			break
		}
	}

	err := fmt.Errorf("%s not ready: %w", opts.Name, lastErr)
	if opts.OnFailure != nil {
		opts.OnFailure(err)
	}
	return err
}

func runOnce(ctx context.Context, timeout time.Duration, check Check) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if timeout <= 0 {
		return check(ctx)
	}
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return check(attemptCtx)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
