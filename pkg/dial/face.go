package dial

import (
	"math"
	"strconv"

	"github.com/go-dial/dial/pkg/rendering"
)

// Dial palette.
var (
	faceBackground     = rendering.Color(0xFF11151C)
	faceRimColor       = rendering.Color(0xFF2A3140)
	tickColor          = rendering.Color(0xFF3A4254)
	numeralColor       = rendering.Color(0xFFB8C2D9)
	labelColor         = rendering.Color(0xFFD7DEEE)
	defaultSessionTint = rendering.Color(0xFF4A90D9)
	defaultMarkerTint  = rendering.Color(0xFFF2C14E)
)

// baseToneLighten is how far the active session's base arc is blended
// toward white to read as the muted track under the progress arc.
const baseToneLighten = 0.55

// dialLayout is the per-frame geometry derived from canvas size and style.
// All values are CSS pixels.
type dialLayout struct {
	style      ClockStyle
	center     rendering.Offset
	faceRadius float64
	amRadius   float64
	pmRadius   float64
	baseWidth  float64
	hoverWidth float64
	params     styleParams
}

func computeLayout(size rendering.Size, style ClockStyle) dialLayout {
	radius := math.Min(size.Width, size.Height) / 2
	p := style.params()
	return dialLayout{
		style:      style,
		center:     rendering.Offset{X: size.Width / 2, Y: size.Height / 2},
		faceRadius: radius,
		amRadius:   RingRadius(RingAM, radius),
		pmRadius:   RingRadius(RingPM, radius),
		baseWidth:  p.ringWidth * radius,
		hoverWidth: p.hoverRingWidth * radius,
		params:     p,
	}
}

// ringRadius returns the layout radius for a ring.
func (l dialLayout) ringRadius(ring Ring) float64 {
	if ring == RingPM {
		return l.pmRadius
	}
	return l.amRadius
}

// recordStaticLayer draws everything that only changes with size or style
// (the face, tick marks and numerals) for caching in a display list.
func recordStaticLayer(recorder *rendering.PictureRecorder, size rendering.Size, style ClockStyle) *rendering.DisplayList {
	canvas := recorder.BeginRecording(size)
	l := computeLayout(size, style)
	p := l.params

	canvas.DrawCircle(l.center, l.faceRadius, rendering.FillPaint(faceBackground))
	canvas.DrawCircle(l.center, l.faceRadius-1, rendering.StrokePaint(faceRimColor, 2))

	drawTicks(canvas, l)

	if p.showNumerals {
		textStyle := rendering.TextStyle{
			Color:    numeralColor,
			FontSize: p.numeralSize * l.faceRadius,
		}
		for hour := 1; hour <= 12; hour++ {
			angle := float64(hour) / 12 * twoPi
			pos := pointOnCircle(l.center, p.numeralRadius*l.faceRadius, angle)
			canvas.DrawText(strconv.Itoa(hour), pos, textStyle)
		}
	}

	return recorder.EndRecording()
}

func drawTicks(canvas rendering.Canvas, l dialLayout) {
	p := l.params
	outer := l.faceRadius * 0.985
	step := 1
	if p.majorTicksOnly {
		step = 15
	}
	for minute := 0; minute < 60; minute += step {
		angle := float64(minute) / 60 * twoPi
		length := p.tickLength * l.faceRadius
		width := 1.0
		if minute%5 == 0 {
			width = 2.0
		} else {
			length *= 0.5
		}
		canvas.DrawLine(
			pointOnCircle(l.center, outer-length, angle),
			pointOnCircle(l.center, outer, angle),
			rendering.StrokePaint(tickColor, width),
		)
	}
}
