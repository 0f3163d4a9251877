package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 80 * time.Millisecond

// Spinner redraws a single status line on w until stopped or until its
// parent context ends. The message may change while it spins.
type Spinner struct {
	w    io.Writer
	ctx  context.Context
	stop context.CancelFunc
	wg   sync.WaitGroup
	once sync.Once

	mu    sync.Mutex
	msg   string
	drawn int // widest line written so far, for clearing
}

func newSpinner(ctx context.Context, w io.Writer, msg string) *Spinner {
	ctx, stop := context.WithCancel(ctx)
	return &Spinner{w: w, ctx: ctx, stop: stop, msg: msg}
}

// Start draws the first frame and keeps animating in the background.
func (s *Spinner) Start() {
	s.wg.Add(1)
	go s.run()
}

func (s *Spinner) run() {
	defer s.wg.Done()
	tick := time.NewTicker(spinnerInterval)
	defer tick.Stop()

	for i := 0; ; i++ {
		s.draw(spinnerFrames[i%len(spinnerFrames)])
		select {
		case <-s.ctx.Done():
			s.clear()
			return
		case <-tick.C:
		}
	}
}

func (s *Spinner) draw(frame string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(s.msg))
	s.drawn = max(s.drawn, len(s.msg)+2)
}

func (s *Spinner) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.drawn > 0 {
		fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", s.drawn))
		s.drawn = 0
	}
}

// Update replaces the message from the next frame on.
func (s *Spinner) Update(msg string) {
	s.mu.Lock()
	s.msg = msg
	s.mu.Unlock()
}

// Stop ends the animation and clears the line. Later calls do nothing.
func (s *Spinner) Stop() {
	s.once.Do(func() {
		s.stop()
		s.wg.Wait()
		s.clear()
	})
}

// StopWithError stops the spinner and leaves msg in its place.
func (s *Spinner) StopWithError(msg string) {
	s.Stop()
	printError(s.w, "%s", msg)
}
