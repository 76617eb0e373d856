package dial

import (
	"math"

	"github.com/go-dial/dial/pkg/rendering"
	"github.com/go-dial/dial/pkg/session"
)

const (
	// amRingRatio and pmRingRatio fix the two session ring radii as
	// fractions of the face radius.
	amRingRatio = 0.52
	pmRingRatio = 0.75

	twoPi          = 2 * math.Pi
	minutesPerTurn = 12 * 60 // one dial revolution
)

// Ring identifies one of the two concentric session rings.
type Ring int

const (
	// RingAM is the inner ring, for sessions starting before noon.
	RingAM Ring = iota
	// RingPM is the outer ring, for sessions starting at noon or later.
	RingPM
)

// RingFor places a session on a ring by its start hour. This is a display
// rule only; a PM session crossing into AM hours stays on the outer ring.
func RingFor(s *session.Session) Ring {
	start, err := session.ParseTimeOfDay(s.Start)
	if err != nil {
		return RingAM
	}
	if start.Hour() >= 12 {
		return RingPM
	}
	return RingAM
}

// RingRadius returns a ring's radius for the given face radius.
func RingRadius(ring Ring, faceRadius float64) float64 {
	if ring == RingPM {
		return pmRingRatio * faceRadius
	}
	return amRingRatio * faceRadius
}

// TimeToAngle converts a time of day to its dial angle in radians:
// zero at 12 o'clock, increasing clockwise, one turn per 12 hours.
func TimeToAngle(t session.TimeOfDay) float64 {
	minutes := int(t) % minutesPerTurn
	return float64(minutes) / minutesPerTurn * twoPi
}

// AngleToTime inverts TimeToAngle. The pm flag selects which of the two
// times of day sharing the angle is meant.
func AngleToTime(angle float64, pm bool) session.TimeOfDay {
	angle = normalizeAngle(angle)
	minutes := int(math.Round(angle / twoPi * minutesPerTurn))
	minutes %= minutesPerTurn
	if pm {
		minutes += minutesPerTurn
	}
	return session.TimeOfDay(minutes)
}

// normalizeAngle wraps an angle into [0, 2*pi).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a
}

// pointOnCircle returns the point at the given dial angle and radius.
func pointOnCircle(center rendering.Offset, radius, angle float64) rendering.Offset {
	return rendering.Offset{
		X: center.X + radius*math.Sin(angle),
		Y: center.Y - radius*math.Cos(angle),
	}
}

// CapCompensation returns the angle by which a round-capped arc's
// endpoints must be pulled inward so the visual footprint (arc body plus
// both caps) matches the logical span. Zero for degenerate radii.
func CapCompensation(strokeWidth, ringRadius float64) float64 {
	if ringRadius <= 0 || strokeWidth <= 0 {
		return 0
	}
	return (strokeWidth / 2) / ringRadius
}

// ArcSpan is a stroked arc's drawn span after round-cap compensation.
type ArcSpan struct {
	// Start is the compensated start angle in radians.
	Start float64
	// Sweep is the compensated clockwise sweep in radians, >= 0.
	Sweep float64
	// Compensation is the angle pulled in at each end.
	Compensation float64
}

// SessionArc lays a session window onto a ring as a compensated arc span.
// Durations of 12 hours or more wrap the dial and clamp to a full turn.
// Windows too short for two caps collapse to a centered zero-length arc
// (the two round caps still render a dot of the correct footprint).
func SessionArc(start, end session.TimeOfDay, ringRadius, strokeWidth float64) ArcSpan {
	startAngle := TimeToAngle(start)
	duration := int(end) - int(start)
	if duration <= 0 {
		duration += session.MinutesPerDay
	}
	sweep := float64(duration) / minutesPerTurn * twoPi
	if sweep > twoPi {
		sweep = twoPi
	}

	comp := CapCompensation(strokeWidth, ringRadius)
	if sweep <= 2*comp {
		return ArcSpan{
			Start:        normalizeAngle(startAngle + sweep/2),
			Sweep:        0,
			Compensation: comp,
		}
	}
	return ArcSpan{
		Start:        normalizeAngle(startAngle + comp),
		Sweep:        sweep - 2*comp,
		Compensation: comp,
	}
}

// Footprint is the arc's total visual angular coverage: the stroked body
// plus both round caps. By construction it equals the logical duration's
// angle regardless of stroke width.
func (a ArcSpan) Footprint() float64 {
	return a.Sweep + 2*a.Compensation
}

// Contains reports whether a dial angle falls inside the compensated span,
// handling spans that cross 12 o'clock.
func (a ArcSpan) Contains(angle float64) bool {
	if a.Sweep <= 0 {
		return false
	}
	delta := normalizeAngle(angle - a.Start)
	return delta < a.Sweep
}

// ContainsFootprint reports whether a dial angle falls inside the full
// visual footprint, caps included. Hit-testing uses this so the rounded
// ends of an arc are clickable.
func (a ArcSpan) ContainsFootprint(angle float64) bool {
	start := a.Start - a.Compensation
	span := a.Footprint()
	if span <= 0 {
		return false
	}
	if span >= twoPi {
		return true
	}
	delta := normalizeAngle(angle - start)
	return delta < span
}
