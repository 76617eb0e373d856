package dial

import (
	"github.com/go-dial/dial/pkg/rendering"
	"github.com/go-dial/dial/pkg/session"
)

// Event marker sizing as fractions of the face radius.
const (
	markerRadiusRatio = 0.022
	markerHitSlop     = 2.5 // hit radius multiplier over the drawn dot
)

// EventMarker is an already-resolved economic event overlaid on the dial.
// Fetching and resolving events is the host's concern; the engine only
// places the dot, hit-tests it and reports clicks.
type EventMarker struct {
	// ID identifies the event for tooltip coordination and callbacks.
	ID string
	// Time is the event's wall-clock time of day.
	Time session.TimeOfDay
	// Color overrides the default marker color when non-zero.
	Color rendering.Color
}

// ring places the marker on the ring matching its half-day.
func (m EventMarker) ring() Ring {
	if m.Time.Hour() >= 12 {
		return RingPM
	}
	return RingAM
}

// position returns the marker center on the dial.
func (m EventMarker) position(center rendering.Offset, faceRadius float64) rendering.Offset {
	radius := RingRadius(m.ring(), faceRadius)
	return pointOnCircle(center, radius, TimeToAngle(m.Time))
}

// drawEventMarkers renders event dots on top of the session rings.
func drawEventMarkers(canvas rendering.Canvas, center rendering.Offset, faceRadius float64, markers []EventMarker, fallback rendering.Color) {
	dot := markerRadiusRatio * faceRadius
	for _, m := range markers {
		color := m.Color
		if color == 0 {
			color = fallback
		}
		canvas.DrawCircle(m.position(center, faceRadius), dot, rendering.FillPaint(color))
	}
}
