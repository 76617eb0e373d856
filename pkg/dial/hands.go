package dial

import (
	"math"
	"time"

	"github.com/go-dial/dial/pkg/rendering"
)

// Hand lengths as fractions of the face radius.
const (
	hourHandLength   = 0.50
	minuteHandLength = 0.72
	secondHandLength = 0.82
	handTailLength   = 0.12 // counterweight behind the center
	centerPinRatio   = 0.035
)

// HandTargets computes the wall-clock target angles, in degrees, for the
// given instant. Interpolation toward these targets is the animator's job;
// targets themselves step once per resolver tick.
func HandTargets(now time.Time) HandAngles {
	s := float64(now.Second())
	m := float64(now.Minute()) + s/60
	h := float64(now.Hour()%12) + m/60
	return HandAngles{
		Hour:   h * 30, // 360 / 12
		Minute: m * 6,  // 360 / 60
		Second: s * 6,
	}
}

// drawHands renders the three hands and the center pin. Hand angles are
// degrees; the canvas works in radians.
func drawHands(canvas rendering.Canvas, center rendering.Offset, faceRadius float64, hands HandAngles, color rendering.Color, p styleParams) {
	drawHand(canvas, center, faceRadius*hourHandLength, faceRadius, hands.Hour, rendering.StrokePaint(color, p.handWidth*faceRadius))
	drawHand(canvas, center, faceRadius*minuteHandLength, faceRadius, hands.Minute, rendering.StrokePaint(color, p.handWidth*faceRadius*0.8))
	drawHand(canvas, center, faceRadius*secondHandLength, faceRadius, hands.Second, rendering.StrokePaint(color, p.secondWidth*faceRadius))
	canvas.DrawCircle(center, centerPinRatio*faceRadius, rendering.FillPaint(color))
}

func drawHand(canvas rendering.Canvas, center rendering.Offset, length, faceRadius, degrees float64, paint rendering.Paint) {
	angle := degrees * math.Pi / 180
	paint.Cap = rendering.CapRound
	tip := pointOnCircle(center, length, angle)
	tail := pointOnCircle(center, handTailLength*faceRadius, angle+math.Pi)
	canvas.DrawLine(tail, tip, paint)
}
