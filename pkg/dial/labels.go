package dial

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/go-dial/dial/pkg/rendering"
)

// letterSpacingRatio is the fixed gap between label glyphs as a fraction
// of the glyph size.
const letterSpacingRatio = 0.18

// labelRadiusFactor offsets the label baseline from the arc edge, as a
// fraction of the glyph size.
const labelRadiusFactor = 0.75

// GlyphPlacement is one positioned, rotated glyph of a curved label.
type GlyphPlacement struct {
	// Glyph is the single rune rendered at this placement.
	Glyph string
	// Angle is the glyph center's dial angle.
	Angle float64
	// Position is the glyph center on the canvas.
	Position rendering.Offset
	// Rotation keeps the glyph tangent to the circle.
	Rotation float64
}

// GlyphMeasurer supplies per-glyph advance widths at a given glyph size.
type GlyphMeasurer interface {
	Advance(r rune, size float64) float64
}

// faceMeasurer scales a font.Face's native advances to the requested size.
type faceMeasurer struct {
	face   font.Face
	native float64 // native glyph height in pixels
}

// NewFaceMeasurer wraps a font.Face as a GlyphMeasurer. A nil face uses
// the bundled fixed-width face.
func NewFaceMeasurer(face font.Face) GlyphMeasurer {
	if face == nil {
		face = basicfont.Face7x13
	}
	metrics := face.Metrics()
	native := float64(metrics.Ascent+metrics.Descent) / 64
	if native <= 0 {
		native = 1
	}
	return &faceMeasurer{face: face, native: native}
}

func (m *faceMeasurer) Advance(r rune, size float64) float64 {
	advance, ok := m.face.GlyphAdvance(r)
	if !ok {
		advance, _ = m.face.GlyphAdvance('?')
	}
	return float64(advance) / 64 * (size / m.native)
}

// LayoutCurvedLabel places a label's glyphs along a circle of textRadius
// around center, centered on midAngle. The total angular width is computed
// from summed glyph advances plus fixed letter spacing before any glyph is
// placed, so the string is centered rather than left-anchored. Each glyph
// is rotated to stay tangent to the circle.
func LayoutCurvedLabel(text string, measurer GlyphMeasurer, glyphSize float64, center rendering.Offset, textRadius, midAngle float64) []GlyphPlacement {
	if text == "" || textRadius <= 0 || glyphSize <= 0 {
		return nil
	}
	if measurer == nil {
		measurer = NewFaceMeasurer(nil)
	}

	runes := []rune(text)
	spacing := glyphSize * letterSpacingRatio / textRadius

	advances := make([]float64, len(runes))
	total := 0.0
	for i, r := range runes {
		advances[i] = measurer.Advance(r, glyphSize) / textRadius
		total += advances[i]
	}
	total += spacing * float64(len(runes)-1)

	placements := make([]GlyphPlacement, 0, len(runes))
	cursor := midAngle - total/2
	for i, r := range runes {
		angle := cursor + advances[i]/2
		placements = append(placements, GlyphPlacement{
			Glyph:    string(r),
			Angle:    normalizeAngle(angle),
			Position: pointOnCircle(center, textRadius, angle),
			Rotation: angle,
		})
		cursor += advances[i] + spacing
	}
	return placements
}

// labelRadius places the label baseline just inside the inner ring or just
// outside the outer ring, clear of the stroked arc.
func labelRadius(ring Ring, ringRadius, strokeWidth, glyphSize float64) float64 {
	offset := strokeWidth/2 + glyphSize*labelRadiusFactor
	if ring == RingAM {
		return ringRadius - offset
	}
	return ringRadius + offset
}

// labelAngularWidth returns the total angular width the label will occupy,
// used by tests and by the renderer to skip labels wider than their arc.
func labelAngularWidth(text string, measurer GlyphMeasurer, glyphSize, textRadius float64) float64 {
	if text == "" || textRadius <= 0 {
		return 0
	}
	if measurer == nil {
		measurer = NewFaceMeasurer(nil)
	}
	total := 0.0
	runes := []rune(text)
	for _, r := range runes {
		total += measurer.Advance(r, glyphSize) / textRadius
	}
	return total + glyphSize*letterSpacingRatio/textRadius*float64(len(runes)-1)
}

// drawCurvedLabel renders a curved label glyph by glyph, rotating the
// canvas so each glyph sits tangent to its circle.
func drawCurvedLabel(canvas rendering.Canvas, placements []GlyphPlacement, style rendering.TextStyle) {
	for _, g := range placements {
		canvas.Save()
		canvas.Translate(g.Position.X, g.Position.Y)
		canvas.Rotate(g.Rotation)
		canvas.DrawText(g.Glyph, rendering.Offset{}, style)
		canvas.Restore()
	}
}
