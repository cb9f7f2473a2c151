package retry

import (
	"context"
	"errors"
	"time"
)

// ErrGiveUp marks an error as non-retryable; Do stops immediately and
// returns the wrapped cause.
var ErrGiveUp = errors.New("retry: give up")

// Schedule yields the delay before attempt n (0-based, called after the
// first failure).
type Schedule func(attempt int) time.Duration

// Fixed returns the same delay for every attempt.
func Fixed(d time.Duration) Schedule {
	return func(int) time.Duration { return d }
}

// Linear grows the delay by step per attempt: step, 2*step, 3*step...
func Linear(step time.Duration) Schedule {
	return func(attempt int) time.Duration { return time.Duration(attempt+1) * step }
}

// Do runs op up to attempts times, sleeping per the schedule between
// failures. It returns nil on the first success, the last error once the
// bound is reached, or the context error if canceled mid-wait.
func Do(ctx context.Context, attempts int, schedule Schedule, op func(ctx context.Context) error) error {
	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = op(ctx)
		if lastErr == nil {
			return nil
		}
		if errors.Is(lastErr, ErrGiveUp) {
			return lastErr
		}

		if attempt == attempts-1 {
			break
		}

		timer := time.NewTimer(schedule(attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	return lastErr
}
