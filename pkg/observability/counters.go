package observability

import (
	"context"
	"maps"
	"sync"
	"time"
)

// Counters tallies lint and cache events in memory. It is safe for
// concurrent use and backs the server's /v1/stats endpoint.
type Counters struct {
	mu          sync.Mutex
	documents   int
	failed      int
	nodes       int
	violations  int
	byType      map[string]int
	cacheHits   int
	cacheMisses int
	started     time.Time
}

// CounterSnapshot is a point-in-time copy of Counters.
type CounterSnapshot struct {
	Documents   int            `json:"documents"`
	Failed      int            `json:"failed"`
	Nodes       int            `json:"nodes"`
	Violations  int            `json:"violations"`
	ByType      map[string]int `json:"by_type"`
	CacheHits   int            `json:"cache_hits"`
	CacheMisses int            `json:"cache_misses"`
	Uptime      string         `json:"uptime"`
}

// NewCounters returns zeroed counters.
func NewCounters() *Counters {
	return &Counters{byType: make(map[string]int), started: time.Now()}
}

func (c *Counters) OnLintStart(context.Context, string) {}

func (c *Counters) OnLintComplete(_ context.Context, _ string, nodes, _ int, _ time.Duration, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.documents++
	if err != nil {
		c.failed++
		return
	}
	c.nodes += nodes
}

// OnViolation counts violations; the total is kept here rather than in
// OnLintComplete so callers that only lint nodes still report them.
func (c *Counters) OnViolation(_ context.Context, _ string, violationType string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.violations++
	c.byType[violationType]++
}

func (c *Counters) OnCacheHit(context.Context, string) {
	c.mu.Lock()
	c.cacheHits++
	c.mu.Unlock()
}

func (c *Counters) OnCacheMiss(context.Context, string) {
	c.mu.Lock()
	c.cacheMisses++
	c.mu.Unlock()
}

func (c *Counters) OnCacheSet(context.Context, string, int) {}

// Snapshot copies the current totals.
func (c *Counters) Snapshot() CounterSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CounterSnapshot{
		Documents:   c.documents,
		Failed:      c.failed,
		Nodes:       c.nodes,
		Violations:  c.violations,
		ByType:      maps.Clone(c.byType),
		CacheHits:   c.cacheHits,
		CacheMisses: c.cacheMisses,
		Uptime:      time.Since(c.started).Round(time.Second).String(),
	}
}

// =============================================================================
// Fan-out
// =============================================================================

type lintFanOut []LintHooks

// FanOutLint returns hooks that forward every event to each of hooks in order.
func FanOutLint(hooks ...LintHooks) LintHooks {
	return lintFanOut(hooks)
}

func (f lintFanOut) OnLintStart(ctx context.Context, source string) {
	for _, h := range f {
		h.OnLintStart(ctx, source)
	}
}

func (f lintFanOut) OnLintComplete(ctx context.Context, source string, nodes, violations int, d time.Duration, err error) {
	for _, h := range f {
		h.OnLintComplete(ctx, source, nodes, violations, d, err)
	}
}

func (f lintFanOut) OnViolation(ctx context.Context, source, violationType string) {
	for _, h := range f {
		h.OnViolation(ctx, source, violationType)
	}
}

type cacheFanOut []CacheHooks

// FanOutCache returns hooks that forward every event to each of hooks in order.
func FanOutCache(hooks ...CacheHooks) CacheHooks {
	return cacheFanOut(hooks)
}

func (f cacheFanOut) OnCacheHit(ctx context.Context, keyType string) {
	for _, h := range f {
		h.OnCacheHit(ctx, keyType)
	}
}

func (f cacheFanOut) OnCacheMiss(ctx context.Context, keyType string) {
	for _, h := range f {
		h.OnCacheMiss(ctx, keyType)
	}
}

func (f cacheFanOut) OnCacheSet(ctx context.Context, keyType string, size int) {
	for _, h := range f {
		h.OnCacheSet(ctx, keyType, size)
	}
}

var (
	_ LintHooks  = (*Counters)(nil)
	_ CacheHooks = (*Counters)(nil)
)
