package dialtest

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/go-dial/dial/pkg/rendering"
)

// DisplayOp represents a captured canvas drawing operation.
type DisplayOp struct {
	Op     string
	Params map[string]any
}

// CaptureCanvas implements rendering.Canvas and records every operation as
// a DisplayOp. Tests assert on the recorded ops; the demo CLI's dump mode
// prints them.
type CaptureCanvas struct {
	ops  []DisplayOp
	size rendering.Size
}

// NewCaptureCanvas creates a capture canvas reporting the given size.
func NewCaptureCanvas(size rendering.Size) *CaptureCanvas {
	return &CaptureCanvas{size: size}
}

// Ops returns all captured operations in draw order.
func (c *CaptureCanvas) Ops() []DisplayOp { return c.ops }

// Reset discards all captured operations.
func (c *CaptureCanvas) Reset() { c.ops = c.ops[:0] }

// OpsNamed returns the captured operations with the given name, in order.
func (c *CaptureCanvas) OpsNamed(name string) []DisplayOp {
	var out []DisplayOp
	for _, op := range c.ops {
		if op.Op == name {
			out = append(out, op)
		}
	}
	return out
}

// Count returns how many operations with the given name were captured.
func (c *CaptureCanvas) Count(name string) int {
	return len(c.OpsNamed(name))
}

// String formats the captured ops one per line, params in key order.
func (c *CaptureCanvas) String() string {
	var b strings.Builder
	for _, op := range c.ops {
		b.WriteString(op.Op)
		keys := make([]string, 0, len(op.Params))
		for k := range op.Params {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, " %s=%v", k, op.Params[k])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (c *CaptureCanvas) append(op string, kv ...any) {
	params := make(map[string]any, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		params[kv[i].(string)] = kv[i+1]
	}
	c.ops = append(c.ops, DisplayOp{Op: op, Params: params})
}

// round2 keeps captured floats readable and immune to last-bit jitter.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func colorHex(col rendering.Color) string {
	return fmt.Sprintf("#%08X", uint32(col))
}

func paintParams(paint rendering.Paint) []any {
	return []any{
		"color", colorHex(paint.Color),
		"style", paint.Style.String(),
		"strokeWidth", round2(paint.StrokeWidth),
		"cap", paint.Cap.String(),
	}
}

func (c *CaptureCanvas) Save()    { c.append("save") }
func (c *CaptureCanvas) Restore() { c.append("restore") }

func (c *CaptureCanvas) Translate(dx, dy float64) {
	c.append("translate", "dx", round2(dx), "dy", round2(dy))
}

func (c *CaptureCanvas) Scale(sx, sy float64) {
	c.append("scale", "sx", round2(sx), "sy", round2(sy))
}

func (c *CaptureCanvas) Rotate(radians float64) {
	c.append("rotate", "radians", round2(radians))
}

func (c *CaptureCanvas) ClearCircle(center rendering.Offset, radius float64, color rendering.Color) {
	c.append("clearCircle",
		"x", round2(center.X), "y", round2(center.Y),
		"radius", round2(radius), "color", colorHex(color))
}

func (c *CaptureCanvas) DrawCircle(center rendering.Offset, radius float64, paint rendering.Paint) {
	kv := []any{"x", round2(center.X), "y", round2(center.Y), "radius", round2(radius)}
	c.append("drawCircle", append(kv, paintParams(paint)...)...)
}

func (c *CaptureCanvas) DrawArc(center rendering.Offset, radius float64, startAngle, sweepAngle float64, useCenter bool, paint rendering.Paint) {
	kv := []any{
		"x", round2(center.X), "y", round2(center.Y),
		"radius", round2(radius),
		"start", round2(startAngle), "sweep", round2(sweepAngle),
		"useCenter", useCenter,
	}
	c.append("drawArc", append(kv, paintParams(paint)...)...)
}

func (c *CaptureCanvas) DrawLine(start, end rendering.Offset, paint rendering.Paint) {
	kv := []any{
		"x1", round2(start.X), "y1", round2(start.Y),
		"x2", round2(end.X), "y2", round2(end.Y),
	}
	c.append("drawLine", append(kv, paintParams(paint)...)...)
}

func (c *CaptureCanvas) DrawText(text string, origin rendering.Offset, style rendering.TextStyle) {
	c.append("drawText",
		"text", text,
		"x", round2(origin.X), "y", round2(origin.Y),
		"size", round2(style.FontSize), "color", colorHex(style.Color))
}

func (c *CaptureCanvas) Size() rendering.Size { return c.size }

// Float reads a numeric param from a DisplayOp, failing soft with NaN so a
// missing key shows up clearly in test diffs.
func (op DisplayOp) Float(key string) float64 {
	v, ok := op.Params[key].(float64)
	if !ok {
		return math.NaN()
	}
	return v
}
