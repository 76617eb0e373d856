// Package dial renders trading-session windows on a dual-ring analog
// clock face and resolves pointer input back to sessions.
//
// The dial is a 12-hour face with two concentric session rings: sessions
// starting before noon sit on the inner (AM) ring, the rest on the outer
// (PM) ring. Rendering is split into a cached static layer (face, tick
// marks, numerals) and a dynamic per-frame layer (session arcs, progress
// fill, hands, labels). All angles are radians, zero at 12 o'clock,
// increasing clockwise; hand angles animate in degrees.
package dial

import "fmt"

// ClockStyle selects one of the fixed dial appearances. Styles bundle
// stroke widths, numeral placement and whether session rings exist at all,
// so each style stays visually coherent; they are not independent flags.
type ClockStyle int

const (
	// StyleNormal is the default face with full rings and numerals.
	StyleNormal ClockStyle = iota
	// StyleAesthetic uses thinner strokes and numerals pushed outward.
	StyleAesthetic
	// StyleMinimalistic draws only the face and hands: no session rings,
	// no hover interaction, quarter-hour ticks only.
	StyleMinimalistic
)

// String returns the configuration name of the style.
func (s ClockStyle) String() string {
	switch s {
	case StyleNormal:
		return "normal"
	case StyleAesthetic:
		return "aesthetic"
	case StyleMinimalistic:
		return "minimalistic"
	default:
		return fmt.Sprintf("ClockStyle(%d)", int(s))
	}
}

// ParseClockStyle parses a configuration style name.
func ParseClockStyle(s string) (ClockStyle, error) {
	switch s {
	case "", "normal":
		return StyleNormal, nil
	case "aesthetic":
		return StyleAesthetic, nil
	case "minimalistic":
		return StyleMinimalistic, nil
	default:
		return StyleNormal, fmt.Errorf("clock style %q: want normal, aesthetic or minimalistic", s)
	}
}

// RingsEnabled reports whether the style draws session rings and accepts
// ring hover/hit-testing.
func (s ClockStyle) RingsEnabled() bool {
	return s != StyleMinimalistic
}

// styleParams are the per-style drawing metrics, all expressed as
// fractions of the face radius so the dial scales with its canvas.
type styleParams struct {
	ringWidth      float64 // session arc stroke, resting
	hoverRingWidth float64 // session arc stroke while hovered
	numeralRadius  float64 // distance of numeral centers from dial center
	numeralSize    float64 // numeral glyph size
	labelSize      float64 // curved session label glyph size
	tickLength     float64 // minor tick length
	majorTicksOnly bool    // draw ticks at 12/3/6/9 only
	showNumerals   bool
	handWidth      float64 // minute/hour hand stroke
	secondWidth    float64 // second hand stroke
}

func (s ClockStyle) params() styleParams {
	switch s {
	case StyleAesthetic:
		return styleParams{
			ringWidth:      0.045,
			hoverRingWidth: 0.085,
			numeralRadius:  0.92,
			numeralSize:    0.105,
			labelSize:      0.065,
			tickLength:     0.04,
			showNumerals:   true,
			handWidth:      0.025,
			secondWidth:    0.012,
		}
	case StyleMinimalistic:
		return styleParams{
			numeralRadius:  0.88,
			tickLength:     0.07,
			majorTicksOnly: true,
			handWidth:      0.035,
			secondWidth:    0.015,
		}
	default: // StyleNormal
		return styleParams{
			ringWidth:      0.06,
			hoverRingWidth: 0.105,
			numeralRadius:  0.86,
			numeralSize:    0.125,
			labelSize:      0.07,
			tickLength:     0.055,
			showNumerals:   true,
			handWidth:      0.03,
			secondWidth:    0.014,
		}
	}
}
