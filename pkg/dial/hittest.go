package dial

import (
	"math"

	"github.com/go-dial/dial/pkg/rendering"
	"github.com/go-dial/dial/pkg/session"
)

// HitTest maps a pointer position, in CSS pixels, to the session arc under
// it, or nil. Hosts that route pointer events themselves can call this
// directly; the Renderer's pointer methods use the same test.
func HitTest(p rendering.Offset, size rendering.Size, style ClockStyle, sessions []session.Session) *session.Session {
	return hitTestSession(computeLayout(size, style), sessions, p)
}

// hitTestSession maps a pointer position to the session arc under it, or
// nil. The test is polar: the pointer must sit inside a ring's hover-width
// band and inside an arc's footprint on that ring. Footprint includes the
// round caps, so a hit just outside the logical window still counts when
// the drawn cap covers it. Cost is O(len(sessions)); only arcs on the
// matching ring are examined.
func hitTestSession(l dialLayout, sessions []session.Session, p rendering.Offset) *session.Session {
	if l.faceRadius <= 0 || !l.style.RingsEnabled() {
		return nil
	}
	dx := p.X - l.center.X
	dy := p.Y - l.center.Y
	dist := math.Hypot(dx, dy)
	angle := normalizeAngle(math.Atan2(dx, -dy))

	ring, ok := ringAt(l, dist)
	if !ok {
		return nil
	}
	ringR := l.ringRadius(ring)

	for i := range sessions {
		s := &sessions[i]
		if RingFor(s) != ring {
			continue
		}
		start, end, err := s.Window()
		if err != nil {
			continue
		}
		span := SessionArc(start, end, ringR, l.hoverWidth)
		if span.ContainsFootprint(angle) {
			return s
		}
	}
	return nil
}

// ringAt returns which ring's hover band, if any, contains a point at the
// given distance from center. The bands never overlap: the gap between the
// ring radii exceeds the hover width at every style's proportions.
func ringAt(l dialLayout, dist float64) (Ring, bool) {
	half := l.hoverWidth / 2
	if math.Abs(dist-l.amRadius) <= half {
		return RingAM, true
	}
	if math.Abs(dist-l.pmRadius) <= half {
		return RingPM, true
	}
	return RingAM, false
}

// hitTestEvent maps a pointer position to the event marker under it, or
// nil. Markers are tested with a slop multiplier so a fingertip can land a
// dot drawn only a few pixels wide.
func hitTestEvent(l dialLayout, markers []EventMarker, p rendering.Offset) *EventMarker {
	if l.faceRadius <= 0 {
		return nil
	}
	hitRadius := markerRadiusRatio * l.faceRadius * markerHitSlop
	for i := range markers {
		m := &markers[i]
		if p.Distance(m.position(l.center, l.faceRadius)) <= hitRadius {
			return m
		}
	}
	return nil
}
