package animation

import (
	"math"

	"github.com/go-dial/dial/pkg/rendering"
)

// Tween interpolates between Begin and End values based on animation progress.
//
// Tween maps the 0-1 range of an [AnimationController] to any value range or
// type. Use the helper constructors ([TweenFloat64], [TweenColor],
// [TweenAngle]) for common cases, or create custom tweens with a Lerp
// function.
type Tween[T any] struct {
	// Begin is the starting value (when t = 0).
	Begin T
	// End is the ending value (when t = 1).
	End T
	// Lerp interpolates between Begin and End at progress t in [0, 1].
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at t (0.0 to 1.0).
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// Transform returns the interpolated value using the controller's current value.
func (tw *Tween[T]) Transform(controller *AnimationController) T {
	return tw.Evaluate(controller.Value)
}

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// LerpColor linearly interpolates between two colors per channel.
func LerpColor(a, b rendering.Color, t float64) rendering.Color {
	aR, aG, aB, aA := a.RGBAF()
	bR, bG, bB, bA := b.RGBAF()
	channel := func(x, y float64) uint8 {
		return uint8(LerpFloat64(x, y, t)*255 + 0.5)
	}
	return rendering.RGBA(channel(aR, bR), channel(aG, bG), channel(aB, bB), channel(aA, bA))
}

// LerpAngleForward interpolates a hand angle in degrees, always sweeping
// forward. If the target lags the current angle by more than 180 degrees
// (e.g. 359 -> 0 at the minute wraparound) the target is lifted by a full
// turn first, so the hand never visibly reverses. The result is unbounded;
// normalize with [NormalizeDegrees] once the tween completes.
func LerpAngleForward(current, target, t float64) float64 {
	for target < current-180 {
		target += 360
	}
	return LerpFloat64(current, target, t)
}

// NormalizeDegrees wraps an angle into [0, 360). Applied after each tween
// completes so interpolated angles do not grow without bound.
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Sanitize replaces NaN or infinite values with a fallback. Interpolation
// targets pass through here so a bad time computation can never leak NaN
// into stroke widths or arc angles, which would corrupt the canvas silently.
func Sanitize(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

// TweenFloat64 creates a tween for float64 values.
func TweenFloat64(begin, end float64) *Tween[float64] {
	return &Tween[float64]{
		Begin: begin,
		End:   end,
		Lerp:  LerpFloat64,
	}
}

// TweenColor creates a tween for color values.
func TweenColor(begin, end rendering.Color) *Tween[rendering.Color] {
	return &Tween[rendering.Color]{
		Begin: begin,
		End:   end,
		Lerp:  LerpColor,
	}
}

// TweenAngle creates a forward-sweeping tween for hand angles in degrees.
func TweenAngle(begin, end float64) *Tween[float64] {
	return &Tween[float64]{
		Begin: begin,
		End:   end,
		Lerp:  LerpAngleForward,
	}
}
