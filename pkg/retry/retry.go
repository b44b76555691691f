// Package retry provides exponential backoff retry for fallible operations.
// The backoff doubles after every failed attempt with no cap and no jitter.
// Callers opt in explicitly; nothing in the service retries automatically.
package retry

import (
	"context"
	"time"
)

// Do invokes op up to maxRetries+1 times. On success it returns immediately;
// after the final failed attempt it returns the last error. Between attempts
// it sleeps for the current delay, doubling it each time. The sleep respects
// context cancellation and returns ctx.Err() when interrupted.
func Do(ctx context.Context, op func() error, maxRetries int, initialDelay time.Duration) error {
	_, err := DoValue(ctx, func() (struct{}, error) {
		return struct{}{}, op()
	}, maxRetries, initialDelay)
	return err
}

// DoValue is Do for operations that produce a value.
func DoValue[T any](ctx context.Context, op func() (T, error), maxRetries int, initialDelay time.Duration) (T, error) {
	var zero T
	delay := initialDelay

	for attempt := 0; ; attempt++ {
		value, err := op()
		if err == nil {
			return value, nil
		}

		if attempt == maxRetries {
			return zero, err
		}

		if sleepErr := sleep(ctx, delay); sleepErr != nil {
			return zero, sleepErr
		}
		delay *= 2
	}
}

// sleep blocks for d unless the context is cancelled first.
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
