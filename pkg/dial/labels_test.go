package dial

import (
	"math"
	"testing"

	"github.com/go-dial/dial/pkg/rendering"
)

// fixedMeasurer gives every glyph the same advance, making angular math
// easy to verify by hand.
type fixedMeasurer struct{ advance float64 }

func (m fixedMeasurer) Advance(r rune, size float64) float64 { return m.advance }

func TestLayoutCurvedLabelCentered(t *testing.T) {
	center := rendering.Offset{X: 0, Y: 0}
	mid := math.Pi / 2 // 3 o'clock
	placements := LayoutCurvedLabel("ABC", fixedMeasurer{advance: 10}, 12, center, 100, mid)

	if len(placements) != 3 {
		t.Fatalf("got %d placements, want 3", len(placements))
	}

	// The middle glyph sits exactly on the midpoint angle.
	if math.Abs(placements[1].Angle-mid) > 1e-9 {
		t.Errorf("middle glyph angle = %v, want %v", placements[1].Angle, mid)
	}
	// First and last glyphs are symmetric around the midpoint.
	left := mid - placements[0].Angle
	right := placements[2].Angle - mid
	if math.Abs(left-right) > 1e-9 {
		t.Errorf("asymmetric layout: left %v, right %v", left, right)
	}
	// Glyphs advance clockwise.
	if !(placements[0].Angle < placements[1].Angle && placements[1].Angle < placements[2].Angle) {
		t.Error("glyph angles should increase clockwise")
	}
}

func TestLayoutCurvedLabelTangentRotation(t *testing.T) {
	placements := LayoutCurvedLabel("AB", fixedMeasurer{advance: 10}, 12, rendering.Offset{}, 100, 0)
	for _, g := range placements {
		if math.Abs(g.Rotation-g.Angle) > 1e-9 && math.Abs(g.Rotation-(g.Angle-twoPi)) > 1e-9 {
			t.Errorf("glyph %q rotation %v is not tangent at angle %v", g.Glyph, g.Rotation, g.Angle)
		}
	}
}

func TestLayoutCurvedLabelPositionsOnCircle(t *testing.T) {
	center := rendering.Offset{X: 150, Y: 150}
	placements := LayoutCurvedLabel("London", nil, 12, center, 80, 1.0)
	for _, g := range placements {
		d := center.Distance(g.Position)
		if math.Abs(d-80) > 1e-9 {
			t.Errorf("glyph %q at distance %v, want 80", g.Glyph, d)
		}
	}
}

func TestLayoutCurvedLabelDegenerate(t *testing.T) {
	if got := LayoutCurvedLabel("", nil, 12, rendering.Offset{}, 100, 0); got != nil {
		t.Error("empty text should produce no placements")
	}
	if got := LayoutCurvedLabel("A", nil, 12, rendering.Offset{}, 0, 0); got != nil {
		t.Error("zero radius should produce no placements")
	}
}

func TestLabelAngularWidthMatchesLayout(t *testing.T) {
	m := fixedMeasurer{advance: 10}
	width := labelAngularWidth("ABCD", m, 12, 100)
	placements := LayoutCurvedLabel("ABCD", m, 12, rendering.Offset{}, 100, math.Pi)

	first := placements[0].Angle - 10.0/100/2
	last := placements[3].Angle + 10.0/100/2
	if math.Abs((last-first)-width) > 1e-9 {
		t.Errorf("layout spans %v, angular width reports %v", last-first, width)
	}
}

func TestLabelRadius(t *testing.T) {
	inner := labelRadius(RingAM, 104, 12, 10)
	if inner >= 104 {
		t.Errorf("AM label radius %v should sit inside the ring", inner)
	}
	outer := labelRadius(RingPM, 150, 12, 10)
	if outer <= 150 {
		t.Errorf("PM label radius %v should sit outside the ring", outer)
	}
}
