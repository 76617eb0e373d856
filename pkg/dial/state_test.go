package dial

import (
	"testing"
	"time"

	"github.com/go-dial/dial/pkg/animation"
	"github.com/go-dial/dial/pkg/dialtest"
)

func newTestState() (*AnimationState, *animation.Scheduler, *dialtest.FakeClock) {
	clock := dialtest.NewFakeClock()
	scheduler := animation.NewScheduler(clock)
	return newAnimationState(scheduler, clock.Now()), scheduler, clock
}

func TestRingEntrancesStagger(t *testing.T) {
	state, scheduler, clock := newTestState()
	first := state.Ring("London")
	second := state.Ring("NewYork")

	// Only the first ring's slot has arrived at mount time.
	state.advanceEntrances(clock.Now())
	if !first.started || second.started {
		t.Fatalf("started = %v/%v, want first only", first.started, second.started)
	}

	clock.Advance(entranceStagger)
	state.advanceEntrances(clock.Now())
	if !second.started {
		t.Fatal("second ring should start one stagger later")
	}

	// The first ring is further along its fade than the second.
	clock.Advance(entranceDuration / 2)
	scheduler.Step()
	if first.Opacity() <= second.Opacity() {
		t.Errorf("opacities %v <= %v, want first ahead", first.Opacity(), second.Opacity())
	}

	clock.Advance(entranceDuration)
	scheduler.Step()
	if first.Opacity() != 1 || second.Opacity() != 1 {
		t.Errorf("opacities = %v/%v, want both 1", first.Opacity(), second.Opacity())
	}
}

func TestHandAnimatorSeedsThenTweens(t *testing.T) {
	state, scheduler, clock := newTestState()
	hand := state.secondHand

	// First target seeds without animation.
	hand.SetTarget(354)
	if hand.Value() != 354 || scheduler.HasActiveTickers() {
		t.Fatalf("seed: value = %v, tickers = %v", hand.Value(), scheduler.HasActiveTickers())
	}

	// Retargeting across the wraparound sweeps forward through 360.
	hand.SetTarget(0)
	clock.Advance(secondHandDuration / 2)
	scheduler.Step()
	if v := hand.Value(); v <= 354 || v >= 360 {
		t.Errorf("mid-tween value = %v, want between 354 and 360", v)
	}

	clock.Advance(secondHandDuration / 2)
	scheduler.Step()
	if hand.Value() != 0 {
		t.Errorf("final value = %v, want 0 after normalization", hand.Value())
	}
}

func TestHandAnimatorSnapCancelsTween(t *testing.T) {
	state, scheduler, clock := newTestState()
	hand := state.minuteHand

	hand.SetTarget(90)
	hand.SetTarget(180)
	clock.Advance(slowHandDuration / 4)
	scheduler.Step()

	hand.Snap(270)
	if hand.Value() != 270 {
		t.Errorf("snap value = %v, want 270", hand.Value())
	}
	clock.Advance(slowHandDuration)
	scheduler.Step()
	if hand.Value() != 270 {
		t.Errorf("value moved after snap: %v", hand.Value())
	}
}

func TestRingHoverTogglesController(t *testing.T) {
	state, scheduler, clock := newTestState()
	ring := state.Ring("London")

	ring.setHovered(true)
	ring.setHovered(true) // no-op
	clock.Advance(hoverDuration)
	scheduler.Step()
	if ring.HoverAmount() != 1 {
		t.Errorf("hover amount = %v, want 1", ring.HoverAmount())
	}

	ring.setHovered(false)
	clock.Advance(hoverDuration)
	scheduler.Step()
	if ring.HoverAmount() != 0 {
		t.Errorf("hover amount = %v, want 0 after leave", ring.HoverAmount())
	}
}

func TestDisposeIsIdempotent(t *testing.T) {
	state, scheduler, _ := newTestState()
	state.Ring("London").setHovered(true)
	state.hourHand.SetTarget(10)
	state.hourHand.SetTarget(40)

	state.dispose()
	state.dispose()
	if scheduler.HasActiveTickers() {
		t.Error("dispose left tickers running")
	}
}

func TestHandTargets(t *testing.T) {
	now := time.Date(2026, 1, 1, 22, 45, 15, 0, time.UTC)
	got := HandTargets(now)
	if got.Second != 90 {
		t.Errorf("second = %v, want 90", got.Second)
	}
	if got.Minute != 271.5 { // 45m15s
		t.Errorf("minute = %v, want 271.5", got.Minute)
	}
	want := (10 + 45.25/60) * 30 // 22h mod 12, 45.25 minutes
	if diff := got.Hour - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("hour = %v, want %v", got.Hour, want)
	}
}
