package retry

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Policy decides whether an error is worth another attempt.
type Policy func(err error) bool

func Always(error) bool { return true }

func WithBackoff[T any](
	ctx context.Context,
	maxRetries int,
	baseDelay time.Duration,
	retriable Policy,
	fn func() (T, error),
) (T, error) {
	var zero T
	if maxRetries <= 0 {
		return zero, fmt.Errorf("maxRetries must be > 0, got %d", maxRetries)
	}
	if retriable == nil {
		retriable = Always
	}
	var lastErr error

	for i := range maxRetries {
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		default:
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !retriable(err) {
			return zero, err
		}

		if i < maxRetries-1 {
			var jitter time.Duration
			if baseDelay > 0 {
				jitter = time.Duration(rand.Int63n(int64(baseDelay))) //nolint:gosec // jitter doesn't need crypto rand
			}
			delay := time.Duration(math.Pow(2, float64(i)))*baseDelay + jitter
			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(delay):
			}
		}
	}
	return zero, fmt.Errorf("after %d attempts: %w", maxRetries, lastErr)
}

// Do is WithBackoff for calls without a result.
func Do(ctx context.Context, maxRetries int, baseDelay time.Duration, retriable Policy, fn func() error) error {
	_, err := WithBackoff(ctx, maxRetries, baseDelay, retriable, func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}
