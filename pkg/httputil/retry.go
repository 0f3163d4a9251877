package httputil

import (
	"context"
	"errors"
	"time"
)

// RetryableError marks a transient failure that [Retry] should attempt
// again. After, when positive, is the wait the server asked for (a
// Retry-After header) and replaces the backoff delay for that attempt.
type RetryableError struct {
	Err   error
	After time.Duration
}

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// Policy controls how often and how patiently [Retry] retries.
type Policy struct {
	Attempts int           // total tries, at least 1
	Delay    time.Duration // first backoff; doubles after each failure
	MaxDelay time.Duration // cap on a single wait; 0 means no cap
}

// DefaultPolicy is three tries starting at one second, never waiting more
// than thirty seconds at a time.
var DefaultPolicy = Policy{Attempts: 3, Delay: time.Second, MaxDelay: 30 * time.Second}

// Retry calls fn until it succeeds, returns an error that is not a
// [RetryableError], or p.Attempts is exhausted. The last error is returned;
// ctx.Err() is returned if ctx ends while waiting.
func Retry(ctx context.Context, p Policy, fn func() error) error {
	attempts := max(p.Attempts, 1)
	delay := p.Delay
	var lastErr error

	for i := range attempts {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		var re *RetryableError
		if !errors.As(lastErr, &re) {
			return lastErr
		}
		if i == attempts-1 {
			break
		}

		wait := delay
		if re.After > 0 {
			wait = re.After
		}
		if p.MaxDelay > 0 && wait > p.MaxDelay {
			wait = p.MaxDelay
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		delay *= 2
	}
	return lastErr
}
