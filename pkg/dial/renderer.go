package dial

import (
	"time"

	"github.com/go-dial/dial/pkg/animation"
	"github.com/go-dial/dial/pkg/errors"
	"github.com/go-dial/dial/pkg/rendering"
	"github.com/go-dial/dial/pkg/session"
	"github.com/go-dial/dial/pkg/tooltip"
)

// resolveInterval is how often the renderer re-runs the session resolver
// and retargets the hands. Frames between resolves only advance tweens.
const resolveInterval = time.Second

// Surface is the host-provided drawing target. Size and DevicePixelRatio
// are in CSS pixels; the renderer applies the pixel-ratio scale itself.
type Surface interface {
	// Canvas returns the drawing context. Called once at mount; an error
	// here fails the mount rather than producing a dial that draws nothing.
	Canvas() (rendering.Canvas, error)
	Size() rendering.Size
	DevicePixelRatio() float64
}

// Config is the renderer's immutable setup. Sessions and event markers are
// mutable and set separately.
type Config struct {
	Style ClockStyle

	// HandColor is the hour/minute/second hand color. Zero means the
	// default light tone.
	HandColor rendering.Color

	// Location is the clock's timezone. Nil means time.Local.
	Location *time.Location

	// TieBreak selects among overlapping active sessions.
	TieBreak session.TieBreak

	// Measurer supplies glyph advances for curved labels. Nil means the
	// built-in bitmap face.
	Measurer GlyphMeasurer

	// Tooltips coordinates this dial's tooltips with the host's. Nil means
	// the renderer owns a private coordinator.
	Tooltips *tooltip.Coordinator

	// OnStateChange fires when the active or upcoming session changes,
	// at most once per resolve tick.
	OnStateChange func(session.ResolvedState)

	// OnHoverChange fires when the pointer enters or leaves a session arc.
	OnHoverChange func(name string, hovered bool)

	// OnEventTap fires when a tap lands on an event marker.
	OnEventTap func(id string)
}

// Renderer owns one dial: its animation state, resolver cadence, cached
// static layer and tooltip wiring. It is not safe for concurrent use; the
// host calls Frame and the pointer methods from one goroutine, usually the
// frame loop's.
type Renderer struct {
	surface   Surface
	canvas    rendering.Canvas
	cfg       Config
	scheduler *animation.Scheduler
	resolver  *session.Resolver
	state     *AnimationState
	tooltips  *tooltip.Coordinator
	measurer  GlyphMeasurer
	handColor rendering.Color

	sessions []session.Session
	markers  []EventMarker

	static      *rendering.DisplayList
	staticSize  rendering.Size
	staticStyle ClockStyle

	resolved     session.ResolvedState
	lastResolve  time.Time
	haveResolved bool

	hoverName string
	badColor  errors.Once
	unmounted bool
}

var defaultHandColor = rendering.Color(0xFFE8EDF6)

// NewRenderer mounts a dial on the surface. It acquires the canvas up
// front and fails the mount if the surface cannot provide one.
func NewRenderer(surface Surface, scheduler *animation.Scheduler, cfg Config) (*Renderer, error) {
	canvas, err := surface.Canvas()
	if err != nil {
		return nil, &errors.DialError{
			Op:   "dial.NewRenderer",
			Kind: errors.KindRender,
			Err:  err,
		}
	}
	if scheduler == nil {
		scheduler = animation.NewScheduler(nil)
	}
	resolver := session.NewResolver(cfg.Location)
	resolver.TieBreak = cfg.TieBreak

	tooltips := cfg.Tooltips
	if tooltips == nil {
		tooltips = &tooltip.Coordinator{}
	}
	measurer := cfg.Measurer
	if measurer == nil {
		measurer = NewFaceMeasurer(nil)
	}
	handColor := cfg.HandColor
	if handColor == 0 {
		handColor = defaultHandColor
	}
	return &Renderer{
		surface:   surface,
		canvas:    canvas,
		cfg:       cfg,
		scheduler: scheduler,
		resolver:  resolver,
		state:     newAnimationState(scheduler, scheduler.Now()),
		tooltips:  tooltips,
		measurer:  measurer,
		handColor: handColor,
	}, nil
}

// SetSessions replaces the configured session list. Ring animation state
// is keyed by name and survives reordering; the next frame re-resolves.
func (r *Renderer) SetSessions(sessions []session.Session) {
	r.sessions = append(r.sessions[:0:0], sessions...)
	r.haveResolved = false
	r.badColor.Reset()
	if r.hoverName != "" && r.findSession(r.hoverName) == nil {
		r.setHover("")
	}
}

// SetEvents replaces the event marker overlay.
func (r *Renderer) SetEvents(markers []EventMarker) {
	r.markers = append(r.markers[:0:0], markers...)
}

// State returns the most recent resolver output.
func (r *Renderer) State() session.ResolvedState { return r.resolved }

// Tooltips returns the coordinator managing this dial's tooltips.
func (r *Renderer) Tooltips() *tooltip.Coordinator { return r.tooltips }

// Frame draws one frame for the given instant. The caller steps the
// scheduler first so tween values are current.
func (r *Renderer) Frame(now time.Time) {
	if r.unmounted {
		return
	}
	local := now
	if r.cfg.Location != nil {
		local = now.In(r.cfg.Location)
	}

	// A generation bump means the display was suspended and tweens were
	// cancelled mid-flight. Snap straight to wall-clock so the hands never
	// replay the backlog.
	if gen := r.scheduler.Generation(); gen != r.state.generation {
		r.state.generation = gen
		targets := HandTargets(local)
		r.state.hourHand.Snap(targets.Hour)
		r.state.minuteHand.Snap(targets.Minute)
		r.state.secondHand.Snap(targets.Second)
		r.haveResolved = false
	}

	if !r.haveResolved || now.Sub(r.lastResolve) >= resolveInterval {
		r.resolve(now, local)
	}
	r.state.advanceEntrances(now)

	size := r.surface.Size()
	if size.IsEmpty() {
		return
	}
	l := computeLayout(size, r.cfg.Style)
	if r.static == nil || r.staticSize != size || r.staticStyle != r.cfg.Style {
		var recorder rendering.PictureRecorder
		r.static = recordStaticLayer(&recorder, size, r.cfg.Style)
		r.staticSize = size
		r.staticStyle = r.cfg.Style
	}

	canvas := r.canvas
	canvas.Save()
	if dpr := r.surface.DevicePixelRatio(); dpr > 0 && dpr != 1 {
		canvas.Scale(dpr, dpr)
	}
	canvas.ClearCircle(l.center, l.faceRadius, rendering.ColorTransparent)
	r.static.Paint(canvas)
	if r.cfg.Style.RingsEnabled() {
		drawSessionRings(canvas, l, r.sessions, r.resolved, r.state, r.measurer, r.sessionColor, r.markers)
	}
	drawHands(canvas, l.center, l.faceRadius, r.state.Hands(), r.handColor, l.params)
	canvas.Restore()
}

func (r *Renderer) resolve(now, local time.Time) {
	next := r.resolver.Resolve(r.sessions, now)
	changed := sessionName(next.Active) != sessionName(r.resolved.Active) ||
		sessionName(next.Next) != sessionName(r.resolved.Next)
	r.resolved = next
	r.lastResolve = now
	r.haveResolved = true

	targets := HandTargets(local)
	r.state.hourHand.SetTarget(targets.Hour)
	r.state.minuteHand.SetTarget(targets.Minute)
	r.state.secondHand.SetTarget(targets.Second)

	if changed && r.cfg.OnStateChange != nil {
		r.cfg.OnStateChange(next)
	}
}

// PointerMove updates hover state for a pointer at p, in CSS pixels.
func (r *Renderer) PointerMove(p rendering.Offset) {
	if r.unmounted || !r.cfg.Style.RingsEnabled() {
		return
	}
	l := computeLayout(r.surface.Size(), r.cfg.Style)
	hit := hitTestSession(l, r.sessions, p)
	if hit == nil {
		r.setHover("")
		return
	}
	r.setHover(hit.Name)
}

// PointerLeave clears hover when the pointer exits the canvas.
func (r *Renderer) PointerLeave() {
	if r.unmounted {
		return
	}
	r.setHover("")
}

// Tap handles a click or touch at p. It reports true when the tap landed
// on a marker or session arc, so the host can suppress default handling;
// a miss clears hover and closes every open tooltip.
func (r *Renderer) Tap(p rendering.Offset) bool {
	if r.unmounted {
		return false
	}
	l := computeLayout(r.surface.Size(), r.cfg.Style)
	if m := hitTestEvent(l, r.markers, p); m != nil {
		r.setHover("")
		r.tooltips.Open(tooltip.KindEvent, m.ID)
		if r.cfg.OnEventTap != nil {
			r.cfg.OnEventTap(m.ID)
		}
		return true
	}
	if s := hitTestSession(l, r.sessions, p); s != nil {
		r.setHover(s.Name)
		return true
	}
	r.setHover("")
	r.tooltips.CloseAll()
	return false
}

// setHover moves hover from the current session to name, animating both
// ring widths and keeping the session tooltip in step. Empty means none.
func (r *Renderer) setHover(name string) {
	if name == r.hoverName {
		return
	}
	if r.hoverName != "" {
		r.state.Ring(r.hoverName).setHovered(false)
		if r.cfg.OnHoverChange != nil {
			r.cfg.OnHoverChange(r.hoverName, false)
		}
		r.tooltips.Close(tooltip.KindSession)
	}
	r.hoverName = name
	if name != "" {
		r.state.Ring(name).setHovered(true)
		if r.cfg.OnHoverChange != nil {
			r.cfg.OnHoverChange(name, true)
		}
		r.tooltips.Open(tooltip.KindSession, name)
	}
}

// Unmount releases animation state and closes tooltips. Calling it more
// than once, or calling Frame afterwards, is a no-op.
func (r *Renderer) Unmount() {
	if r.unmounted {
		return
	}
	r.unmounted = true
	r.setHover("")
	r.tooltips.CloseAll()
	r.state.dispose()
	r.static = nil
}

func (r *Renderer) sessionColor(s *session.Session) rendering.Color {
	if s.Color == "" {
		return defaultSessionTint
	}
	c, err := rendering.ParseColor(s.Color)
	if err != nil {
		r.badColor.Report(s.Name, &errors.DialError{
			Op:   "dial.sessionColor",
			Kind: errors.KindRender,
			Err:  err,
		})
		return defaultSessionTint
	}
	return c
}

func (r *Renderer) findSession(name string) *session.Session {
	for i := range r.sessions {
		if r.sessions[i].Name == name {
			return &r.sessions[i]
		}
	}
	return nil
}

func sessionName(s *session.Session) string {
	if s == nil {
		return ""
	}
	return s.Name
}
