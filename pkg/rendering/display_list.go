package rendering

// DisplayList is an immutable list of drawing operations.
// It can be replayed onto any Canvas implementation. The renderer records
// the static dial layer (face, tick marks, numerals) into a display list
// once per size or style change and replays it every frame.
type DisplayList struct {
	ops  []displayOp
	size Size
}

// Paint replays the recorded operations onto the provided canvas.
func (d *DisplayList) Paint(canvas Canvas) {
	for _, op := range d.ops {
		op.execute(canvas)
	}
}

// Size returns the size recorded when the display list was created.
func (d *DisplayList) Size() Size {
	return d.size
}

// Len returns the number of recorded operations.
func (d *DisplayList) Len() int {
	return len(d.ops)
}

// PictureRecorder records drawing commands into a display list.
type PictureRecorder struct {
	ops       []displayOp
	recording bool
	size      Size
}

// BeginRecording starts a new recording session.
func (r *PictureRecorder) BeginRecording(size Size) Canvas {
	r.ops = r.ops[:0]
	r.recording = true
	r.size = size
	return &recordingCanvas{recorder: r, size: size}
}

// EndRecording finishes the recording and returns a display list.
func (r *PictureRecorder) EndRecording() *DisplayList {
	if !r.recording {
		return &DisplayList{size: r.size}
	}
	r.recording = false
	ops := make([]displayOp, len(r.ops))
	copy(ops, r.ops)
	return &DisplayList{
		ops:  ops,
		size: r.size,
	}
}

func (r *PictureRecorder) append(op displayOp) {
	if !r.recording {
		return
	}
	r.ops = append(r.ops, op)
}

type displayOp interface {
	execute(canvas Canvas)
}

type recordingCanvas struct {
	recorder *PictureRecorder
	size     Size
}

func (c *recordingCanvas) Save() {
	c.recorder.append(opSave{})
}

func (c *recordingCanvas) Restore() {
	c.recorder.append(opRestore{})
}

func (c *recordingCanvas) Translate(dx, dy float64) {
	c.recorder.append(opTranslate{dx: dx, dy: dy})
}

func (c *recordingCanvas) Scale(sx, sy float64) {
	c.recorder.append(opScale{sx: sx, sy: sy})
}

func (c *recordingCanvas) Rotate(radians float64) {
	c.recorder.append(opRotate{radians: radians})
}

func (c *recordingCanvas) ClearCircle(center Offset, radius float64, color Color) {
	c.recorder.append(opClearCircle{center: center, radius: radius, color: color})
}

func (c *recordingCanvas) DrawCircle(center Offset, radius float64, paint Paint) {
	c.recorder.append(opDrawCircle{center: center, radius: radius, paint: paint})
}

func (c *recordingCanvas) DrawArc(center Offset, radius float64, startAngle, sweepAngle float64, useCenter bool, paint Paint) {
	c.recorder.append(opDrawArc{
		center:     center,
		radius:     radius,
		startAngle: startAngle,
		sweepAngle: sweepAngle,
		useCenter:  useCenter,
		paint:      paint,
	})
}

func (c *recordingCanvas) DrawLine(start, end Offset, paint Paint) {
	c.recorder.append(opDrawLine{start: start, end: end, paint: paint})
}

func (c *recordingCanvas) DrawText(text string, origin Offset, style TextStyle) {
	c.recorder.append(opDrawText{text: text, origin: origin, style: style})
}

func (c *recordingCanvas) Size() Size {
	return c.size
}

type opSave struct{}

func (opSave) execute(canvas Canvas) { canvas.Save() }

type opRestore struct{}

func (opRestore) execute(canvas Canvas) { canvas.Restore() }

type opTranslate struct{ dx, dy float64 }

func (o opTranslate) execute(canvas Canvas) { canvas.Translate(o.dx, o.dy) }

type opScale struct{ sx, sy float64 }

func (o opScale) execute(canvas Canvas) { canvas.Scale(o.sx, o.sy) }

type opRotate struct{ radians float64 }

func (o opRotate) execute(canvas Canvas) { canvas.Rotate(o.radians) }

type opClearCircle struct {
	center Offset
	radius float64
	color  Color
}

func (o opClearCircle) execute(canvas Canvas) { canvas.ClearCircle(o.center, o.radius, o.color) }

type opDrawCircle struct {
	center Offset
	radius float64
	paint  Paint
}

func (o opDrawCircle) execute(canvas Canvas) { canvas.DrawCircle(o.center, o.radius, o.paint) }

type opDrawArc struct {
	center     Offset
	radius     float64
	startAngle float64
	sweepAngle float64
	useCenter  bool
	paint      Paint
}

func (o opDrawArc) execute(canvas Canvas) {
	canvas.DrawArc(o.center, o.radius, o.startAngle, o.sweepAngle, o.useCenter, o.paint)
}

type opDrawLine struct {
	start Offset
	end   Offset
	paint Paint
}

func (o opDrawLine) execute(canvas Canvas) { canvas.DrawLine(o.start, o.end, o.paint) }

type opDrawText struct {
	text   string
	origin Offset
	style  TextStyle
}

func (o opDrawText) execute(canvas Canvas) { canvas.DrawText(o.text, o.origin, o.style) }
