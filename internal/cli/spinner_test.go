package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"
)

// syncBuffer guards a bytes.Buffer written by the spinner goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinnerDraws(t *testing.T) {
	var out syncBuffer
	s := newSpinner(context.Background(), &out, "Linting...")
	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.Update("Linting 1/2")
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	got := out.String()
	if !strings.Contains(got, "Linting...") {
		t.Errorf("output %q should contain the initial message", got)
	}
	if !strings.Contains(got, "Linting 1/2") {
		t.Errorf("output %q should contain the updated message", got)
	}
}

func TestSpinnerStopsWithParentContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var out syncBuffer
	s := newSpinner(ctx, &out, "Linting...")
	s.Start()
	cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("spinner should stop when its context is cancelled")
	}
	if !strings.HasSuffix(out.String(), "\r") {
		t.Errorf("line should be cleared, got %q", out.String())
	}
	s.Stop()
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := newSpinner(context.Background(), &syncBuffer{}, "Linting...")
	s.Start()

	s.Stop()
	s.Stop()
	s.Stop()
}

func TestSpinnerStopWithoutStart(t *testing.T) {
	s := newSpinner(context.Background(), &syncBuffer{}, "never started")
	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop without Start should not block")
	}
}

func TestSpinnerStopWithError(t *testing.T) {
	var out syncBuffer
	s := newSpinner(context.Background(), &out, "Linting...")
	s.Start()
	s.StopWithError("Lint failed")

	if !strings.Contains(out.String(), "Lint failed") {
		t.Errorf("output %q should contain the error message", out.String())
	}
}
