// Package animation provides the timing and interpolation primitives the
// dial renderer animates with.
//
// # Core Components
//
//   - [Scheduler]: owns the set of active tickers and is stepped once per
//     frame by the frame loop. Suspending and resuming it brackets display
//     visibility loss; Resume invalidates in-flight tweens (the resume
//     token) so hands snap to the current time instead of replaying the
//     backlog.
//
//   - [AnimationController]: drives a value from 0.0 to 1.0 with a
//     configurable duration and easing curve.
//
//   - [Tween]: maps the controller's 0-1 value onto any range or type.
//     [LerpAngleForward] interpolates hand angles without reverse sweeps
//     at the 360-degree wraparound.
//
//   - Curves: easing functions like [EaseOut] and [EaseInOut], built from
//     [CubicBezier].
//
// The scheduler is an explicit dependency passed to whoever needs it; there
// is no ambient global registry.
package animation

import (
	"sync"
	"time"
)

// Scheduler advances active tickers. It is driven by the frame loop and
// therefore single-threaded in normal operation, but all methods are safe
// for concurrent use so tests and visibility callbacks may poke it freely.
type Scheduler struct {
	mu         sync.Mutex
	clock      Clock
	tickers    map[*Ticker]struct{}
	suspended  bool
	generation uint64
}

// NewScheduler creates a scheduler reading time from the given clock.
// A nil clock means the package clock (see SetClock).
func NewScheduler(clock Clock) *Scheduler {
	return &Scheduler{
		clock:   clock,
		tickers: make(map[*Ticker]struct{}),
	}
}

// Now returns the scheduler's current time.
func (s *Scheduler) Now() time.Time {
	s.mu.Lock()
	c := s.clock
	s.mu.Unlock()
	if c == nil {
		return Now()
	}
	return c.Now()
}

// Step advances all active tickers to the current time.
// Called once per frame. No-op while suspended.
func (s *Scheduler) Step() {
	s.mu.Lock()
	if s.suspended || len(s.tickers) == 0 {
		s.mu.Unlock()
		return
	}
	// Copy so callbacks may start or stop tickers.
	tickers := make([]*Ticker, 0, len(s.tickers))
	for t := range s.tickers {
		tickers = append(tickers, t)
	}
	s.mu.Unlock()

	now := s.Now()
	for _, t := range tickers {
		t.step(now)
	}
}

// Suspend pauses ticker advancement, typically while the display is
// backgrounded. Idempotent.
func (s *Scheduler) Suspend() {
	s.mu.Lock()
	s.suspended = true
	s.mu.Unlock()
}

// Resume restarts advancement and bumps the generation, cancelling every
// in-flight ticker. Animations started before the suspension complete at
// their target immediately rather than sweeping through the elapsed gap.
func (s *Scheduler) Resume() {
	s.mu.Lock()
	s.suspended = false
	s.generation++
	cancelled := make([]*Ticker, 0, len(s.tickers))
	for t := range s.tickers {
		cancelled = append(cancelled, t)
	}
	s.tickers = make(map[*Ticker]struct{})
	s.mu.Unlock()

	for _, t := range cancelled {
		t.cancel()
	}
}

// Generation returns the resume token. It changes on every Resume; holders
// of stale generations know their interpolated state is no longer valid.
func (s *Scheduler) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// HasActiveTickers returns true if any tickers are active.
func (s *Scheduler) HasActiveTickers() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tickers) > 0
}

func (s *Scheduler) add(t *Ticker) {
	s.mu.Lock()
	s.tickers[t] = struct{}{}
	s.mu.Unlock()
}

func (s *Scheduler) remove(t *Ticker) {
	s.mu.Lock()
	delete(s.tickers, t)
	s.mu.Unlock()
}
