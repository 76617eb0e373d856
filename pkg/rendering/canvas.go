package rendering

// Canvas records or renders drawing commands for the dial.
//
// Angles follow the dial convention used throughout the engine: radians,
// zero at 12 o'clock, increasing clockwise. Implementations translate to
// whatever convention their backend uses.
type Canvas interface {
	// Save pushes the current transform state.
	Save()

	// Restore pops the most recent transform state.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// Scale scales the coordinate system by the given factors.
	Scale(sx, sy float64)

	// Rotate rotates the coordinate system by radians.
	Rotate(radians float64)

	// ClearCircle resets the circular region to the given color. Frame
	// passes clear only the dial's disc, not the whole backing store.
	ClearCircle(center Offset, radius float64, color Color)

	// DrawCircle draws a circle with the provided paint.
	DrawCircle(center Offset, radius float64, paint Paint)

	// DrawArc draws a circular arc of the given radius around center,
	// starting at startAngle and sweeping clockwise by sweepAngle.
	// When useCenter is true the arc is closed through the center,
	// producing a filled sector.
	DrawArc(center Offset, radius float64, startAngle, sweepAngle float64, useCenter bool, paint Paint)

	// DrawLine draws a line segment with the provided paint.
	DrawLine(start, end Offset, paint Paint)

	// DrawText draws text horizontally centered on origin.
	DrawText(text string, origin Offset, style TextStyle)

	// Size returns the size of the canvas in CSS pixels.
	Size() Size
}
