package observability

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	l := NoopLintHooks{}
	l.OnLintStart(ctx, "home.json")
	l.OnLintComplete(ctx, "home.json", 12, 3, time.Second, nil)
	l.OnViolation(ctx, "home.json", "fill")

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "document")
	c.OnCacheMiss(ctx, "document")
	c.OnCacheSet(ctx, "document", 1024)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "example.com", "/home.json")
	h.OnResponse(ctx, "GET", "example.com", "/home.json", 200, time.Second)
	h.OnError(ctx, "GET", "example.com", "/home.json", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Lint().(NoopLintHooks); !ok {
		t.Error("Lint() should return NoopLintHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customLint := &testLintHooks{}
	SetLintHooks(customLint)
	if Lint() != customLint {
		t.Error("SetLintHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	Reset()
	if _, ok := Lint().(NoopLintHooks); !ok {
		t.Error("Reset() should restore NoopLintHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testLintHooks{}
	SetLintHooks(custom)
	SetLintHooks(nil)

	if Lint() != custom {
		t.Error("SetLintHooks(nil) should be ignored")
	}
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	h := NewLogHooks(logger)
	ctx := context.Background()

	h.OnLintComplete(ctx, "home.json", 10, 2, time.Millisecond, nil)
	h.OnLintComplete(ctx, "broken.json", 0, 0, 0, errors.New("boom"))
	h.OnCacheHit(ctx, "document")

	out := buf.String()
	for _, want := range []string{"lint done", "source=home.json", "lint failed", "boom", "cache hit"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

type testLintHooks struct{ NoopLintHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testHTTPHooks struct{ NoopHTTPHooks }

func TestCounters(t *testing.T) {
	ctx := context.Background()
	c := NewCounters()

	c.OnLintStart(ctx, "home.json")
	c.OnViolation(ctx, "home.json", "fill")
	c.OnViolation(ctx, "home.json", "fill")
	c.OnViolation(ctx, "home.json", "text")
	c.OnLintComplete(ctx, "home.json", 12, 3, time.Millisecond, nil)
	c.OnLintComplete(ctx, "broken.json", 0, 0, 0, errors.New("boom"))
	c.OnCacheHit(ctx, "document")
	c.OnCacheMiss(ctx, "document")
	c.OnCacheMiss(ctx, "document")

	s := c.Snapshot()
	if s.Documents != 2 || s.Failed != 1 || s.Nodes != 12 || s.Violations != 3 {
		t.Errorf("Snapshot() = %+v", s)
	}
	if s.ByType["fill"] != 2 || s.ByType["text"] != 1 {
		t.Errorf("ByType = %v", s.ByType)
	}
	if s.CacheHits != 1 || s.CacheMisses != 2 {
		t.Errorf("cache counts = %d/%d, want 1/2", s.CacheHits, s.CacheMisses)
	}

	s.ByType["fill"] = 100
	if c.Snapshot().ByType["fill"] != 2 {
		t.Error("Snapshot should copy ByType")
	}
}

func TestFanOutLint(t *testing.T) {
	ctx := context.Background()
	a, b := NewCounters(), NewCounters()
	h := FanOutLint(a, b)

	h.OnLintStart(ctx, "home.json")
	h.OnViolation(ctx, "home.json", "radius")
	h.OnLintComplete(ctx, "home.json", 4, 1, 0, nil)

	for i, c := range []*Counters{a, b} {
		if s := c.Snapshot(); s.Documents != 1 || s.Violations != 1 {
			t.Errorf("hooks[%d] = %+v, want 1 document and 1 violation", i, s)
		}
	}
}

func TestFanOutCache(t *testing.T) {
	ctx := context.Background()
	a, b := NewCounters(), NewCounters()
	h := FanOutCache(a, NoopCacheHooks{}, b)

	h.OnCacheHit(ctx, "document")
	h.OnCacheSet(ctx, "document", 10)

	if a.Snapshot().CacheHits != 1 || b.Snapshot().CacheHits != 1 {
		t.Error("cache hit not forwarded to every hook")
	}
}
