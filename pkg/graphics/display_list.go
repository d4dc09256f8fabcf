package graphics

// DisplayList is one recorded frame. The engine keeps the last one and
// replays it into whatever the host draws with: the raster canvas for the
// window and PNG output, the terminal canvas, or the serializing canvas in
// tests.
type DisplayList struct {
	ops  []func(Canvas)
	size Size
}

// Paint replays the frame onto canvas. A nil list draws nothing.
func (d *DisplayList) Paint(canvas Canvas) {
	if d == nil {
		return
	}
	for _, op := range d.ops {
		op(canvas)
	}
}

// Size is the surface size the frame was recorded at.
func (d *DisplayList) Size() Size {
	return d.size
}

// Len counts the recorded calls, save and restore included.
func (d *DisplayList) Len() int {
	if d == nil {
		return 0
	}
	return len(d.ops)
}

// PictureRecorder captures canvas calls between BeginRecording and
// EndRecording. It is reused frame to frame.
type PictureRecorder struct {
	ops       []func(Canvas)
	size      Size
	recording bool
}

// BeginRecording discards any previous ops and returns the canvas to paint
// the frame into.
func (r *PictureRecorder) BeginRecording(size Size) Canvas {
	r.ops = r.ops[:0]
	r.size = size
	r.recording = true
	return &recordingCanvas{rec: r}
}

// EndRecording freezes the captured ops. Calls made on the recording canvas
// afterwards are dropped.
func (r *PictureRecorder) EndRecording() *DisplayList {
	list := &DisplayList{size: r.size}
	if r.recording {
		list.ops = append(([]func(Canvas))(nil), r.ops...)
		r.recording = false
	}
	return list
}

func (r *PictureRecorder) record(op func(Canvas)) {
	if r.recording {
		r.ops = append(r.ops, op)
	}
}

type recordingCanvas struct {
	rec *PictureRecorder
}

func (c *recordingCanvas) Save() {
	c.rec.record(Canvas.Save)
}

func (c *recordingCanvas) Restore() {
	c.rec.record(Canvas.Restore)
}

func (c *recordingCanvas) Translate(dx, dy float64) {
	c.rec.record(func(dst Canvas) { dst.Translate(dx, dy) })
}

func (c *recordingCanvas) ClipRect(rect Rect) {
	c.rec.record(func(dst Canvas) { dst.ClipRect(rect) })
}

func (c *recordingCanvas) Clear(color Color) {
	c.rec.record(func(dst Canvas) { dst.Clear(color) })
}

func (c *recordingCanvas) DrawRect(rect Rect, paint Paint) {
	c.rec.record(func(dst Canvas) { dst.DrawRect(rect, paint) })
}

func (c *recordingCanvas) DrawCircle(center Offset, radius float64, paint Paint) {
	c.rec.record(func(dst Canvas) { dst.DrawCircle(center, radius, paint) })
}

func (c *recordingCanvas) DrawText(layout *TextLayout, position Offset) {
	c.rec.record(func(dst Canvas) { dst.DrawText(layout, position) })
}

func (c *recordingCanvas) Size() Size {
	return c.rec.size
}
