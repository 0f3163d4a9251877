// Package observability carries lint, cache and HTTP events from the
// pipeline to whatever the binary registers: log lines in the CLI, in-memory
// [Counters] behind the server's stats endpoint, or both via [FanOutLint].
//
// Until something is registered every hook is a no-op:
//
//	counters := observability.NewCounters()
//	observability.SetLintHooks(observability.FanOutLint(
//	    observability.NewLogHooks(logger), counters))
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Lint Hooks
// =============================================================================

// LintHooks receives events from the lint pipeline.
type LintHooks interface {
	// OnLintStart records the start of one source.
	OnLintStart(ctx context.Context, source string)

	// OnLintComplete records the end of one source. err is set when the
	// source could not be loaded.
	OnLintComplete(ctx context.Context, source string, nodes, violations int, duration time.Duration, err error)

	// OnViolation records one violation by rule type.
	OnViolation(ctx context.Context, source, violationType string)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from HTTP client operations.
type HTTPHooks interface {
	// OnRequest records an outgoing HTTP request.
	OnRequest(ctx context.Context, method, host, path string)

	// OnResponse records an HTTP response.
	OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration)

	// OnError records an HTTP error (network failure, timeout).
	OnError(ctx context.Context, method, host, path string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopLintHooks discards lint events.
type NoopLintHooks struct{}

func (NoopLintHooks) OnLintStart(context.Context, string)                                    {}
func (NoopLintHooks) OnLintComplete(context.Context, string, int, int, time.Duration, error) {}
func (NoopLintHooks) OnViolation(context.Context, string, string)                            {}

// NoopCacheHooks discards cache events.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks discards HTTP client events.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error)                 {}

// =============================================================================
// Registry
// =============================================================================

// registry holds the process-wide hooks. Readers take a snapshot under the
// read lock, so hooks may be swapped while lint runs are in flight.
type registry struct {
	mu    sync.RWMutex
	lint  LintHooks
	cache CacheHooks
	http  HTTPHooks
}

var hooks = newRegistry()

func newRegistry() *registry {
	return &registry{lint: NoopLintHooks{}, cache: NoopCacheHooks{}, http: NoopHTTPHooks{}}
}

func (r *registry) update(fn func(*registry)) {
	r.mu.Lock()
	fn(r)
	r.mu.Unlock()
}

// SetLintHooks replaces the lint hooks. nil is ignored.
func SetLintHooks(h LintHooks) {
	if h != nil {
		hooks.update(func(r *registry) { r.lint = h })
	}
}

// SetCacheHooks replaces the cache hooks. nil is ignored.
func SetCacheHooks(h CacheHooks) {
	if h != nil {
		hooks.update(func(r *registry) { r.cache = h })
	}
}

// SetHTTPHooks replaces the HTTP hooks. nil is ignored.
func SetHTTPHooks(h HTTPHooks) {
	if h != nil {
		hooks.update(func(r *registry) { r.http = h })
	}
}

func Lint() LintHooks {
	hooks.mu.RLock()
	defer hooks.mu.RUnlock()
	return hooks.lint
}

func Cache() CacheHooks {
	hooks.mu.RLock()
	defer hooks.mu.RUnlock()
	return hooks.cache
}

func HTTP() HTTPHooks {
	hooks.mu.RLock()
	defer hooks.mu.RUnlock()
	return hooks.http
}

// Reset restores the no-op hooks. Tests call it between cases.
func Reset() {
	hooks.update(func(r *registry) {
		r.lint, r.cache, r.http = NoopLintHooks{}, NoopCacheHooks{}, NoopHTTPHooks{}
	})
}
