package dial

import (
	"math"

	"github.com/go-dial/dial/pkg/animation"
	"github.com/go-dial/dial/pkg/rendering"
	"github.com/go-dial/dial/pkg/session"
)

// startCapMinCoverage is the initial angular coverage of the progress
// arc's growing start cap, as a fraction of a full round cap.
const startCapMinCoverage = 0.25

// drawSessionRings renders every session arc, the active session's
// progress fill, curved labels and event markers. state supplies per-ring
// hover width and entrance opacity; the caller is its only writer.
func drawSessionRings(canvas rendering.Canvas, l dialLayout, sessions []session.Session, resolved session.ResolvedState, state *AnimationState, measurer GlyphMeasurer, colorOf func(*session.Session) rendering.Color, markers []EventMarker) {
	for i := range sessions {
		s := &sessions[i]
		start, end, err := s.Window()
		if err != nil {
			// Reported once by the resolver; just leave the arc out.
			continue
		}

		ring := RingFor(s)
		ringR := l.ringRadius(ring)
		rs := state.Ring(s.Name)

		width := animation.LerpFloat64(l.baseWidth, l.hoverWidth, rs.HoverAmount())
		width = animation.Sanitize(width, l.baseWidth)
		opacity := animation.Sanitize(rs.Opacity(), 1)
		if opacity <= 0 {
			continue
		}

		color := colorOf(s).WithOpacity(opacity)
		span := SessionArc(start, end, ringR, width)

		if resolved.Active != nil && resolved.Active.Name == s.Name {
			drawActiveArc(canvas, l.center, ringR, span, width, color, progressAngle(s, resolved))
		} else {
			paint := rendering.StrokePaint(color, width)
			paint.Cap = rendering.CapRound
			canvas.DrawArc(l.center, ringR, span.Start, span.Sweep, false, paint)
		}

		drawSessionLabel(canvas, l, ring, ringR, span, s.Name, measurer, opacity)
	}

	drawEventMarkers(canvas, l.center, l.faceRadius, markers, defaultMarkerTint)
}

// progressAngle converts the active session's elapsed time into its
// uncompensated angle from the logical start of the arc.
func progressAngle(s *session.Session, resolved session.ResolvedState) float64 {
	duration, err := s.Duration()
	if err != nil || duration <= 0 {
		return 0
	}
	elapsed := duration - resolved.SecondsToEnd
	if elapsed < 0 {
		elapsed = 0
	}
	logicalSweep := float64(duration) / (minutesPerTurn * 60) * twoPi
	if logicalSweep > twoPi {
		logicalSweep = twoPi
	}
	return animation.Sanitize(float64(elapsed)/float64(duration)*logicalSweep, 0)
}

// drawActiveArc draws the active session in two passes: a muted
// full-length base arc, then the saturated progress fill from the session
// start to now. The progress arc's start cap grows from a quarter of a
// round cap to a full one while progress is still inside the compensation
// threshold; the straight arc appears only once the cap is fully formed,
// so no cap pops in over a not-yet-existing body.
func drawActiveArc(canvas rendering.Canvas, center rendering.Offset, ringR float64, span ArcSpan, width float64, color rendering.Color, progress float64) {
	base := rendering.StrokePaint(color.Lighten(baseToneLighten), width)
	base.Cap = rendering.CapRound
	canvas.DrawArc(center, ringR, span.Start, span.Sweep, false, base)

	if progress <= 0 || span.Sweep <= 0 {
		return
	}
	comp := span.Compensation

	coverage := 1.0
	if comp > 0 {
		coverage = startCapMinCoverage + (1-startCapMinCoverage)*math.Min(progress/comp, 1)
	}
	drawPartialCap(canvas, center, ringR, span.Start, width, coverage, color)

	if progress >= comp {
		sweep := math.Min(progress-comp, span.Sweep)
		paint := rendering.StrokePaint(color, width)
		paint.Cap = rendering.CapButt
		canvas.DrawArc(center, ringR, span.Start, sweep, false, paint)
	}
}

// drawPartialCap draws the growing start cap as a filled sector of the
// cap circle, centered on the backward tangent so it fills the footprint
// the round cap would occupy.
func drawPartialCap(canvas rendering.Canvas, center rendering.Offset, ringR, startAngle, width, coverage float64, color rendering.Color) {
	if coverage <= 0 || width <= 0 {
		return
	}
	if coverage > 1 {
		coverage = 1
	}
	capCenter := pointOnCircle(center, ringR, startAngle)
	backward := startAngle - math.Pi/2
	sweep := coverage * math.Pi
	canvas.DrawArc(capCenter, width/2, backward-sweep/2, sweep, true, rendering.FillPaint(color))
}

func drawSessionLabel(canvas rendering.Canvas, l dialLayout, ring Ring, ringR float64, span ArcSpan, name string, measurer GlyphMeasurer, opacity float64) {
	if name == "" {
		return
	}
	glyphSize := l.params.labelSize * l.faceRadius
	textRadius := labelRadius(ring, ringR, l.baseWidth, glyphSize)
	if labelAngularWidth(name, measurer, glyphSize, textRadius) > span.Footprint() {
		return // label wider than its arc; leave the arc unlabeled
	}
	mid := span.Start + span.Sweep/2
	placements := LayoutCurvedLabel(name, measurer, glyphSize, l.center, textRadius, mid)
	drawCurvedLabel(canvas, placements, rendering.TextStyle{
		Color:    labelColor.WithOpacity(opacity),
		FontSize: glyphSize,
	})
}
