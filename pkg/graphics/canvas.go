package graphics

// Canvas records or renders drawing commands.
type Canvas interface {
	// Save pushes the current transform and clip state.
	Save()

	// Restore pops the most recent transform and clip state.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// ClipRect restricts future drawing to the given rectangle.
	ClipRect(rect Rect)

	// Clear fills the entire canvas with the given color.
	Clear(color Color)

	// DrawRect draws a rectangle with the provided paint.
	DrawRect(rect Rect, paint Paint)

	// DrawCircle draws a circle with the provided paint.
	DrawCircle(center Offset, radius float64, paint Paint)

	// DrawText draws a pre-shaped text layout at the given position.
	DrawText(layout *TextLayout, position Offset)

	// Size returns the size of the canvas in pixels.
	Size() Size
}

// canvasState is the transform and clip shared by the software canvases.
type canvasState struct {
	origin  Offset
	clip    Rect
	clipped bool
}

// stateStack implements the Save/Restore/Translate/ClipRect bookkeeping
// for canvases that draw immediately instead of recording.
type stateStack struct {
	current canvasState
	saved   []canvasState
}

func (s *stateStack) save() {
	s.saved = append(s.saved, s.current)
}

func (s *stateStack) restore() {
	if len(s.saved) == 0 {
		return
	}
	s.current = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
}

func (s *stateStack) translate(dx, dy float64) {
	s.current.origin.X += dx
	s.current.origin.Y += dy
}

func (s *stateStack) clipRect(rect Rect) {
	global := rect.Translate(s.current.origin.X, s.current.origin.Y)
	if s.current.clipped {
		global = s.current.clip.Intersect(global)
	}
	s.current.clip = global
	s.current.clipped = true
}

// toGlobal maps a local point to device coordinates.
func (s *stateStack) toGlobal(p Offset) Offset {
	return p.Add(s.current.origin)
}

// visible returns the device-space region drawing is limited to.
func (s *stateStack) visible(bounds Rect) Rect {
	if s.current.clipped {
		return bounds.Intersect(s.current.clip)
	}
	return bounds
}
