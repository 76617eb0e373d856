package rendering

import (
	"fmt"
	"strconv"
)

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA constructs a Color from red, green, blue, alpha bytes.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 0xFF)
}

// ParseColor parses an "#RRGGBB" or "#AARRGGBB" hex string, the formats used
// by session configuration.
func ParseColor(s string) (Color, error) {
	if len(s) == 0 || s[0] != '#' {
		return 0, fmt.Errorf("color %q: want #RRGGBB", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", s, err)
	}
	switch len(s) - 1 {
	case 6:
		return Color(0xFF000000 | uint32(v)), nil
	case 8:
		return Color(uint32(v)), nil
	default:
		return 0, fmt.Errorf("color %q: want 6 or 8 hex digits", s)
	}
}

// RGBAF returns normalized color components (0.0 to 1.0).
func (c Color) RGBAF() (r, g, b, a float64) {
	return float64(uint8(c>>16)) / maxByte,
		float64(uint8(c>>8)) / maxByte,
		float64(uint8(c)) / maxByte,
		float64(uint8(c>>24)) / maxByte
}

// WithAlpha returns a copy of the color with the given alpha (0-255).
func (c Color) WithAlpha(a uint8) Color {
	return Color(uint32(a)<<24 | uint32(c)&0x00FFFFFF)
}

// WithOpacity scales the color's alpha by a factor in [0, 1].
func (c Color) WithOpacity(opacity float64) Color {
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	a := float64(uint8(c >> 24)) * opacity
	return c.WithAlpha(uint8(a + 0.5))
}

// Lighten blends the color toward white by amount in [0, 1], preserving
// alpha. Used for the muted base tone under a progress arc.
func (c Color) Lighten(amount float64) Color {
	if amount < 0 {
		amount = 0
	} else if amount > 1 {
		amount = 1
	}
	blend := func(v uint8) uint8 {
		return uint8(float64(v) + (maxByte-float64(v))*amount + 0.5)
	}
	return RGBA(blend(uint8(c>>16)), blend(uint8(c>>8)), blend(uint8(c)), uint8(c>>24))
}

// Common colors.
var (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
)
