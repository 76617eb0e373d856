package dial

import (
	stderrors "errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-dial/dial/pkg/animation"
	"github.com/go-dial/dial/pkg/dialtest"
	"github.com/go-dial/dial/pkg/errors"
	"github.com/go-dial/dial/pkg/rendering"
	"github.com/go-dial/dial/pkg/session"
	"github.com/go-dial/dial/pkg/tooltip"
)

type fakeSurface struct {
	canvas rendering.Canvas
	size   rendering.Size
	dpr    float64
	err    error
}

func (s *fakeSurface) Canvas() (rendering.Canvas, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.canvas, nil
}

func (s *fakeSurface) Size() rendering.Size      { return s.size }
func (s *fakeSurface) DevicePixelRatio() float64 { return s.dpr }

// testDial wires a renderer to a capture canvas and a fake clock.
type testDial struct {
	clock   *dialtest.FakeClock
	sched   *animation.Scheduler
	canvas  *dialtest.CaptureCanvas
	surface *fakeSurface
	r       *Renderer
}

func newTestDial(t *testing.T, cfg Config) *testDial {
	t.Helper()
	clock := dialtest.NewFakeClock()
	// 10:15:30 local; inside London, outside NewYork.
	clock.Set(time.Date(2026, 1, 1, 10, 15, 30, 0, time.UTC))
	sched := animation.NewScheduler(clock)
	canvas := dialtest.NewCaptureCanvas(rendering.Size{Width: 300, Height: 300})
	surface := &fakeSurface{canvas: canvas, size: rendering.Size{Width: 300, Height: 300}, dpr: 1}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	r, err := NewRenderer(surface, sched, cfg)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	r.SetSessions([]session.Session{
		{Name: "London", Start: "08:00", End: "16:30", Color: "#2F6FB2"},
		{Name: "NewYork", Start: "13:30", End: "20:00", Color: "#C24F3A"},
	})
	return &testDial{clock: clock, sched: sched, canvas: canvas, surface: surface, r: r}
}

// settle runs frames until entrance fades have completed, then clears the
// capture so assertions see a single steady-state frame.
func (d *testDial) settle() {
	for i := 0; i < 3; i++ {
		d.r.Frame(d.clock.Now())
		d.clock.Advance(300 * time.Millisecond)
		d.sched.Step()
	}
	d.canvas.Reset()
	d.r.Frame(d.clock.Now())
}

func TestNewRendererSurfaceError(t *testing.T) {
	surface := &fakeSurface{err: fmt.Errorf("context lost")}
	_, err := NewRenderer(surface, nil, Config{})
	if err == nil {
		t.Fatal("want error from failed canvas acquisition")
	}
	var de *errors.DialError
	if !stderrors.As(err, &de) || de.Kind != errors.KindRender {
		t.Errorf("error = %v, want DialError with KindRender", err)
	}
}

func TestFrameRendersAllLayers(t *testing.T) {
	d := newTestDial(t, Config{})
	d.settle()

	// Static layer replayed: face disc, rim, ticks, twelve numerals.
	if got := d.canvas.Count("clearCircle"); got != 1 {
		t.Errorf("clearCircle count = %d, want 1", got)
	}
	numerals := 0
	for _, op := range d.canvas.OpsNamed("drawText") {
		if op.Params["text"] == "12" {
			numerals++
		}
	}
	if numerals != 1 {
		t.Errorf("numeral 12 drawn %d times, want 1", numerals)
	}

	// London is active: muted base + partial start cap + progress arc.
	// NewYork is idle: one rounded arc.
	if got := d.canvas.Count("drawArc"); got != 4 {
		t.Errorf("drawArc count = %d, want 4\n%s", got, d.canvas.String())
	}
	caps := 0
	for _, op := range d.canvas.OpsNamed("drawArc") {
		if op.Params["useCenter"] == true {
			caps++
		}
	}
	if caps != 1 {
		t.Errorf("filled cap sectors = %d, want 1", caps)
	}

	// Second hand snapped to wall clock: 30s into the minute is 180
	// degrees, tip straight down from center.
	hands := d.r.state.Hands()
	if hands.Second != 180 {
		t.Errorf("second hand = %v, want 180", hands.Second)
	}
	foundTip := false
	for _, op := range d.canvas.OpsNamed("drawLine") {
		if op.Float("x2") == 150 && op.Float("y2") == 273 {
			foundTip = true
		}
	}
	if !foundTip {
		t.Error("second hand tip not drawn at (150, 273)")
	}
}

func TestFrameAppliesDevicePixelRatio(t *testing.T) {
	d := newTestDial(t, Config{})
	d.surface.dpr = 2
	d.canvas.Reset()
	d.r.Frame(d.clock.Now())
	scales := d.canvas.OpsNamed("scale")
	if len(scales) != 1 || scales[0].Float("sx") != 2 {
		t.Errorf("scale ops = %v, want one scale by 2", scales)
	}
}

func TestStaticLayerCachedUntilResize(t *testing.T) {
	d := newTestDial(t, Config{})
	d.r.Frame(d.clock.Now())
	first := d.r.static
	if first == nil {
		t.Fatal("static layer not recorded")
	}
	d.r.Frame(d.clock.Now())
	if d.r.static != first {
		t.Error("static layer re-recorded without a size or style change")
	}
	d.surface.size = rendering.Size{Width: 400, Height: 400}
	d.r.Frame(d.clock.Now())
	if d.r.static == first {
		t.Error("static layer not re-recorded after resize")
	}
}

func TestMinimalisticStyleSkipsRings(t *testing.T) {
	d := newTestDial(t, Config{Style: StyleMinimalistic})
	d.settle()
	if got := d.canvas.Count("drawArc"); got != 0 {
		t.Errorf("drawArc count = %d, want 0 for minimalistic", got)
	}
	// Hands still render.
	if d.canvas.Count("drawLine") < 3 {
		t.Error("hands missing from minimalistic frame")
	}
}

func TestResolveCadenceAndStateChange(t *testing.T) {
	var changes []string
	d := newTestDial(t, Config{
		OnStateChange: func(st session.ResolvedState) {
			changes = append(changes, sessionName(st.Active))
		},
	})

	d.r.Frame(d.clock.Now())
	if len(changes) != 1 || changes[0] != "London" {
		t.Fatalf("changes after mount = %v, want [London]", changes)
	}

	// Sub-second frames do not re-resolve.
	d.clock.Advance(300 * time.Millisecond)
	d.r.Frame(d.clock.Now())
	if got := d.r.State().SecondsToEnd; got != 22470 {
		t.Errorf("SecondsToEnd = %d, want 22470 from the mount resolve", got)
	}

	// Jump past London's close; the next resolve flips the active session.
	d.clock.Set(time.Date(2026, 1, 1, 16, 30, 0, 0, time.UTC))
	d.r.Frame(d.clock.Now())
	if st := d.r.State(); st.Active == nil || st.Active.Name != "NewYork" {
		t.Errorf("active after 16:30 = %v, want NewYork", st.Active)
	}
	if len(changes) != 2 || changes[1] != "NewYork" {
		t.Errorf("changes = %v, want a second transition to NewYork", changes)
	}
}

func TestHoverWidensRingAndOpensTooltip(t *testing.T) {
	var hovered []string
	d := newTestDial(t, Config{
		OnHoverChange: func(name string, on bool) {
			hovered = append(hovered, fmt.Sprintf("%s=%v", name, on))
		},
	})
	d.settle()

	l := computeLayout(d.surface.size, StyleNormal)
	onLondon := pointOnCircle(l.center, l.amRadius, TimeToAngle(session.TimeOfDay(12*60)))
	d.r.PointerMove(onLondon)

	if !d.r.Tooltips().IsActive(tooltip.KindSession, "London") {
		t.Error("session tooltip not open after hover")
	}
	d.clock.Advance(hoverDuration)
	d.sched.Step()
	if got := d.r.state.Ring("London").HoverAmount(); got != 1 {
		t.Errorf("hover amount = %v, want 1", got)
	}

	d.r.PointerMove(l.center) // center of the dial, not on any ring
	if d.r.Tooltips().IsActive(tooltip.KindSession, "London") {
		t.Error("session tooltip still open after hover left")
	}
	want := []string{"London=true", "London=false"}
	if len(hovered) != 2 || hovered[0] != want[0] || hovered[1] != want[1] {
		t.Errorf("hover callbacks = %v, want %v", hovered, want)
	}
}

func TestTapRouting(t *testing.T) {
	var tapped []string
	d := newTestDial(t, Config{
		OnEventTap: func(id string) { tapped = append(tapped, id) },
	})
	when, _ := session.ParseTimeOfDay("14:00")
	d.r.SetEvents([]EventMarker{{ID: "cpi", Time: when}})
	d.settle()

	l := computeLayout(d.surface.size, StyleNormal)

	marker := EventMarker{Time: when}.position(l.center, l.faceRadius)
	if !d.r.Tap(marker) {
		t.Error("tap on marker should claim the event")
	}
	if !d.r.Tooltips().IsActive(tooltip.KindEvent, "cpi") || len(tapped) != 1 {
		t.Errorf("event tooltip/callback missing: tapped=%v", tapped)
	}

	onLondon := pointOnCircle(l.center, l.amRadius, TimeToAngle(session.TimeOfDay(12*60)))
	if !d.r.Tap(onLondon) {
		t.Error("tap on session arc should claim the event")
	}
	if !d.r.Tooltips().IsActive(tooltip.KindSession, "London") {
		t.Error("session tooltip not open after tap")
	}
	// Opening the session tooltip replaced the event tooltip.
	if d.r.Tooltips().IsActive(tooltip.KindEvent, "cpi") {
		t.Error("event tooltip survived a session open")
	}

	if d.r.Tap(l.center) {
		t.Error("tap on empty face should not claim the event")
	}
	if _, _, open := d.r.Tooltips().Active(); open {
		t.Error("miss tap should close every tooltip")
	}
}

func TestResumeSnapsHandsWithoutSweep(t *testing.T) {
	d := newTestDial(t, Config{})
	d.r.Frame(d.clock.Now())

	// Start a tween toward the next second.
	d.clock.Advance(2 * time.Second)
	d.r.Frame(d.clock.Now())
	if !d.sched.HasActiveTickers() {
		t.Fatal("expected an in-flight hand tween")
	}

	// Background for an hour, then resume.
	d.sched.Suspend()
	d.clock.Advance(time.Hour)
	d.sched.Resume()
	d.r.Frame(d.clock.Now())

	// 11:15:32 local: the hands snap, nothing animates the gap.
	hands := d.r.state.Hands()
	if hands.Second != 192 {
		t.Errorf("second hand = %v, want 192 (32s)", hands.Second)
	}
	if d.sched.HasActiveTickers() {
		t.Error("resume frame should snap, not tween")
	}
	if d.r.state.generation != d.sched.Generation() {
		t.Error("renderer did not adopt the new resume token")
	}
}

func TestBadSessionColorFallsBack(t *testing.T) {
	d := newTestDial(t, Config{})
	d.r.SetSessions([]session.Session{
		{Name: "Tokyo", Start: "00:00", End: "06:00", Color: "not-a-color"},
	})
	d.settle()

	arcs := d.canvas.OpsNamed("drawArc")
	if len(arcs) != 1 {
		t.Fatalf("drawArc count = %d, want 1", len(arcs))
	}
	if got := arcs[0].Params["color"]; got != "#FF4A90D9" {
		t.Errorf("arc color = %v, want the default session tint", got)
	}
}

func TestUnmountIsIdempotent(t *testing.T) {
	d := newTestDial(t, Config{})
	d.settle()
	d.r.Unmount()
	d.r.Unmount()

	d.canvas.Reset()
	d.r.Frame(d.clock.Now())
	if got := len(d.canvas.Ops()); got != 0 {
		t.Errorf("frame after unmount drew %d ops, want 0", got)
	}
	if d.r.Tap(rendering.Offset{X: 150, Y: 72}) {
		t.Error("tap after unmount should be inert")
	}
}

func TestFrameLoopTickStepsAndDraws(t *testing.T) {
	d := newTestDial(t, Config{})
	frames := 0
	loop := NewFrameLoop(d.sched, 0, func(now time.Time) {
		frames++
		d.r.Frame(now)
	})
	loop.Tick()
	loop.Tick()
	if frames != 2 {
		t.Errorf("frames = %d, want 2", frames)
	}
	if len(d.canvas.Ops()) == 0 {
		t.Error("ticks drew nothing")
	}

	loop.Suspend()
	if got := d.sched.Generation(); got != 0 {
		t.Errorf("suspend bumped generation to %d", got)
	}
	loop.Resume()
	if got := d.sched.Generation(); got != 1 {
		t.Errorf("resume generation = %d, want 1", got)
	}
}
