package httputil

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/designlint/pkg/errors"
)

// DefaultTimeout bounds a single request made by NewClient.
const DefaultTimeout = 30 * time.Second

// NewClient returns an HTTP client with DefaultTimeout.
func NewClient() *http.Client {
	return &http.Client{Timeout: DefaultTimeout}
}

// CheckStatus converts a response status into an error. Server errors and
// rate limiting are retryable.
func CheckStatus(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusNotFound:
		return errors.New(errors.ErrCodeNotFound, "status %d", code)
	case code == http.StatusTooManyRequests || code >= 500:
		return &RetryableError{Err: errors.New(errors.ErrCodeNetwork, "status %d", code)}
	default:
		return errors.New(errors.ErrCodeNetwork, "status %d", code)
	}
}

// CheckResponse is CheckStatus for a full response; a retryable error
// carries the wait requested by the Retry-After header.
func CheckResponse(resp *http.Response) error {
	err := CheckStatus(resp.StatusCode)
	if re, ok := err.(*RetryableError); ok {
		re.After = ParseRetryAfter(resp.Header.Get("Retry-After"), time.Now())
	}
	return err
}

// ParseRetryAfter parses a Retry-After value given either as seconds or as
// an HTTP date relative to now. Missing or unparseable values yield 0.
func ParseRetryAfter(v string, now time.Time) time.Duration {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		if secs < 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(v); err == nil {
		if d := t.Sub(now); d > 0 {
			return d
		}
	}
	return 0
}
