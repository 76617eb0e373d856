package dial

import (
	"sync"
	"time"

	"github.com/go-dial/dial/pkg/animation"
)

// defaultFrameInterval targets 60 frames per second.
const defaultFrameInterval = time.Second / 60

// FrameLoop drives a scheduler and a frame callback at a fixed cadence.
// Hosts with their own frame source (a display link, requestAnimationFrame)
// skip Start and call Tick from their callback instead.
type FrameLoop struct {
	scheduler *animation.Scheduler
	onFrame   func(now time.Time)
	interval  time.Duration

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// NewFrameLoop wires a scheduler to a per-frame callback. A zero interval
// means 60 Hz.
func NewFrameLoop(scheduler *animation.Scheduler, interval time.Duration, onFrame func(now time.Time)) *FrameLoop {
	if interval <= 0 {
		interval = defaultFrameInterval
	}
	return &FrameLoop{
		scheduler: scheduler,
		onFrame:   onFrame,
		interval:  interval,
	}
}

// Tick runs one frame: the scheduler advances its tickers, then the frame
// callback draws. Tests and host-driven frame sources call this directly.
func (f *FrameLoop) Tick() {
	f.scheduler.Step()
	if f.onFrame != nil {
		f.onFrame(f.scheduler.Now())
	}
}

// Start begins ticking on a background goroutine. Idempotent.
func (f *FrameLoop) Start() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.stop != nil {
		return
	}
	f.stop = make(chan struct{})
	f.done = make(chan struct{})
	go f.run(f.stop, f.done)
}

// Stop halts the loop and waits for the in-flight frame. Idempotent.
func (f *FrameLoop) Stop() {
	f.mu.Lock()
	stop, done := f.stop, f.done
	f.stop, f.done = nil, nil
	f.mu.Unlock()
	if stop == nil {
		return
	}
	close(stop)
	<-done
}

// Suspend pauses animation while the display is hidden. The loop keeps
// ticking; tickers simply do not advance.
func (f *FrameLoop) Suspend() {
	f.scheduler.Suspend()
}

// Resume restarts animation after Suspend. In-flight tweens are cancelled
// at their targets; the next frame snaps rather than replaying the gap.
func (f *FrameLoop) Resume() {
	f.scheduler.Resume()
}

func (f *FrameLoop) run(stop, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			f.Tick()
		}
	}
}
