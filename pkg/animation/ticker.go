package animation

import "time"

// Ticker calls a callback on each scheduler step while active.
//
// Ticker is the low-level timing primitive used by [AnimationController];
// most code should use AnimationController directly. The callback receives
// the time elapsed since Start.
type Ticker struct {
	scheduler *Scheduler
	callback  func(elapsed time.Duration)
	onCancel  func()
	isActive  bool
	start     time.Time
}

// NewTicker creates a ticker on the given scheduler. onCancel may be nil;
// it fires when the scheduler invalidates the ticker on Resume.
func (s *Scheduler) NewTicker(callback func(elapsed time.Duration), onCancel func()) *Ticker {
	return &Ticker{
		scheduler: s,
		callback:  callback,
		onCancel:  onCancel,
	}
}

// Start activates the ticker.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = t.scheduler.Now()
	t.scheduler.add(t)
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	t.scheduler.remove(t)
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// step advances the ticker to now.
func (t *Ticker) step(now time.Time) {
	if !t.isActive || t.callback == nil {
		return
	}
	t.callback(now.Sub(t.start))
}

// cancel deactivates the ticker and fires its cancel hook. Called by the
// scheduler when the resume token changes; the scheduler has already
// dropped the ticker from its active set.
func (t *Ticker) cancel() {
	if !t.isActive {
		return
	}
	t.isActive = false
	if t.onCancel != nil {
		t.onCancel()
	}
}
