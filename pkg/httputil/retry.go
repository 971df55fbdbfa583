package httputil

import (
	"context"
	"errors"
	"time"
)

// RetryableError marks a transient failure that [Backoff.Do] should retry.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// Backoff is a retry policy. The delay doubles after each failed attempt.
type Backoff struct {
	Attempts int
	Delay    time.Duration
}

// DefaultBackoff makes 3 attempts starting at a 500ms delay.
var DefaultBackoff = Backoff{Attempts: 3, Delay: 500 * time.Millisecond}

// Do runs fn until it succeeds, returns a non-retryable error, or the
// attempts run out. It returns the last error, or ctx.Err() if ctx ends
// while waiting.
func (b Backoff) Do(ctx context.Context, fn func() error) error {
	attempts := max(b.Attempts, 1)
	delay := b.Delay

	var err error
	for i := range attempts {
		if err = fn(); err == nil || !errors.As(err, new(*RetryableError)) {
			return err
		}
		if i == attempts-1 {
			break
		}
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
			delay *= 2
		}
	}
	return err
}
