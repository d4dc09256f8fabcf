package layout

import (
	"github.com/go-drift/ripple/pkg/gestures"
	"github.com/go-drift/ripple/pkg/graphics"
)

// HitTestResult collects hit test entries, deepest first.
type HitTestResult struct {
	Entries []RenderObject
}

// Add inserts a render object into the hit test result list.
func (h *HitTestResult) Add(target RenderObject) {
	h.Entries = append(h.Entries, target)
}

// PointerHandler receives pointer events routed from hit testing.
type PointerHandler interface {
	HandlePointer(event gestures.PointerEvent)
}

// Clickable is implemented by render objects that accept a synthesized click
// from an ancestor that intercepted the pointer sequence.
type Clickable interface {
	PerformClick() bool
}

// PaintContext provides the canvas for painting render objects.
type PaintContext struct {
	Canvas graphics.Canvas
}

// PaintChild paints a child render box at the given offset.
func (p *PaintContext) PaintChild(child RenderBox, offset graphics.Offset) {
	if child == nil {
		return
	}
	p.Canvas.Save()
	p.Canvas.Translate(offset.X, offset.Y)
	child.Paint(p)
	p.Canvas.Restore()
	if c, ok := child.(interface{ ClearNeedsPaint() }); ok {
		c.ClearNeedsPaint()
	}
}
