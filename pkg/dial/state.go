package dial

import (
	"time"

	"github.com/go-dial/dial/pkg/animation"
)

// Animation timing. The second hand moves fast and linear so it reads as a
// mechanical step; minute and hour hands ease. Ring entrances stagger so
// arcs fade in one after another on mount.
const (
	secondHandDuration = 280 * time.Millisecond
	slowHandDuration   = 600 * time.Millisecond
	hoverDuration      = 180 * time.Millisecond
	entranceDuration   = 450 * time.Millisecond
	entranceStagger    = 90 * time.Millisecond
)

// HandAngles are the animated hand positions in degrees. Values are
// unbounded while a tween is in flight (a wraparound sweep passes through
// 365 and beyond) and are normalized to [0, 360) when the tween completes.
type HandAngles struct {
	Hour   float64
	Minute float64
	Second float64
}

// handAnimator eases one hand's angle toward its per-tick target.
type handAnimator struct {
	ctrl   *animation.AnimationController
	tween  *animation.Tween[float64]
	value  float64
	target float64
	seeded bool
}

func newHandAnimator(scheduler *animation.Scheduler, duration time.Duration, curve func(float64) float64) *handAnimator {
	h := &handAnimator{
		ctrl: animation.NewAnimationController(scheduler, duration),
	}
	h.ctrl.Curve = curve
	h.ctrl.AddListener(func() {
		if h.tween != nil {
			h.value = h.tween.Transform(h.ctrl)
		}
		if h.ctrl.Value >= 1 {
			h.value = animation.NormalizeDegrees(h.value)
		}
	})
	return h
}

// SetTarget retargets the hand, sweeping forward from its current animated
// angle. The first target seeds the hand without animation so a fresh
// mount shows the correct time immediately.
func (h *handAnimator) SetTarget(deg float64) {
	deg = animation.NormalizeDegrees(animation.Sanitize(deg, h.value))
	if !h.seeded {
		h.Snap(deg)
		return
	}
	if deg == h.target {
		return
	}
	h.target = deg
	h.tween = animation.TweenAngle(h.value, deg)
	h.ctrl.Stop()
	h.ctrl.Value = 0
	h.ctrl.Forward()
}

// Snap sets the hand directly, cancelling any in-flight tween. Used on
// first mount and when the display resumes after being backgrounded.
func (h *handAnimator) Snap(deg float64) {
	deg = animation.NormalizeDegrees(animation.Sanitize(deg, h.value))
	h.ctrl.Stop()
	h.tween = nil
	h.value = deg
	h.target = deg
	h.seeded = true
}

// Value returns the current animated angle in degrees.
func (h *handAnimator) Value() float64 { return h.value }

func (h *handAnimator) dispose() { h.ctrl.Dispose() }

// RingState is one session arc's animated presentation, keyed by session
// name so reordering the configured session list cannot corrupt it.
type RingState struct {
	hover      *animation.AnimationController
	entrance   *animation.AnimationController
	entranceAt time.Time
	started    bool
	hovered    bool
}

// HoverAmount is the hover-width blend in [0, 1].
func (r *RingState) HoverAmount() float64 { return r.hover.Value }

// Opacity is the entrance fade in [0, 1].
func (r *RingState) Opacity() float64 { return r.entrance.Value }

// Hovered reports whether the session is currently hovered or tapped.
func (r *RingState) Hovered() bool { return r.hovered }

func (r *RingState) setHovered(hovered bool) {
	if r.hovered == hovered {
		return
	}
	r.hovered = hovered
	if hovered {
		r.hover.Forward()
	} else {
		r.hover.Reverse()
	}
}

// AnimationState is all mutable animation data owned by the renderer. It
// is passed into draw calls each frame; the frame pass is its only writer.
type AnimationState struct {
	hourHand   *handAnimator
	minuteHand *handAnimator
	secondHand *handAnimator

	scheduler *animation.Scheduler
	rings     map[string]*RingState
	mounted   time.Time

	// generation mirrors the scheduler's resume token; a mismatch on a
	// frame means the display was backgrounded and hands must snap.
	generation uint64
}

func newAnimationState(scheduler *animation.Scheduler, now time.Time) *AnimationState {
	return &AnimationState{
		hourHand:   newHandAnimator(scheduler, slowHandDuration, animation.EaseOut),
		minuteHand: newHandAnimator(scheduler, slowHandDuration, animation.EaseOut),
		secondHand: newHandAnimator(scheduler, secondHandDuration, animation.LinearCurve),
		scheduler:  scheduler,
		rings:      make(map[string]*RingState),
		mounted:    now,
		generation: scheduler.Generation(),
	}
}

// Hands returns the current animated hand angles.
func (s *AnimationState) Hands() HandAngles {
	return HandAngles{
		Hour:   s.hourHand.Value(),
		Minute: s.minuteHand.Value(),
		Second: s.secondHand.Value(),
	}
}

// Ring returns the animation state for a session, creating it on first
// observation with an entrance slot after the rings created before it.
func (s *AnimationState) Ring(name string) *RingState {
	if r, ok := s.rings[name]; ok {
		return r
	}
	hover := animation.NewAnimationController(s.scheduler, hoverDuration)
	hover.Curve = animation.EaseOut
	entrance := animation.NewAnimationController(s.scheduler, entranceDuration)
	entrance.Curve = animation.EaseOut

	r := &RingState{
		hover:      hover,
		entrance:   entrance,
		entranceAt: s.mounted.Add(time.Duration(len(s.rings)) * entranceStagger),
	}
	s.rings[name] = r
	return r
}

// advanceEntrances starts entrance fades whose stagger slot has arrived.
func (s *AnimationState) advanceEntrances(now time.Time) {
	for _, r := range s.rings {
		if !r.started && !now.Before(r.entranceAt) {
			r.started = true
			r.entrance.Forward()
		}
	}
}

// dispose stops every controller. Safe to call repeatedly.
func (s *AnimationState) dispose() {
	s.hourHand.dispose()
	s.minuteHand.dispose()
	s.secondHand.dispose()
	for _, r := range s.rings {
		r.hover.Dispose()
		r.entrance.Dispose()
	}
	s.rings = make(map[string]*RingState)
}
