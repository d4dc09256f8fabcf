package widgets

import (
	"github.com/go-drift/ripple/pkg/gestures"
	"github.com/go-drift/ripple/pkg/graphics"
	"github.com/go-drift/ripple/pkg/layout"
)

// Label is a single line of text inside padding, with an optional
// background and click callback.
//
// A label is a leaf. When it sits under an ancestor that intercepts
// pointers it still receives clicks through PerformClick.
type Label struct {
	Text       string
	Color      graphics.Color
	Background graphics.Color
	Padding    layout.EdgeInsets
	OnClick    func()
}

// CreateRenderObject builds the render box for l.
func (l Label) CreateRenderObject() *RenderLabel {
	r := &RenderLabel{}
	r.SetSelf(r)
	r.Update(l)
	return r
}

// RenderLabel is the render object behind Label.
type RenderLabel struct {
	layout.RenderBoxBase
	label   Label
	text    *graphics.TextLayout
	clicks  int
	pressed map[int64]bool
}

// Update applies a new configuration.
func (r *RenderLabel) Update(l Label) {
	if r.text == nil || l.Text != r.label.Text || l.Color != r.label.Color {
		r.text = graphics.LayoutText(l.Text, l.Color)
	}
	if l.Padding != r.label.Padding || r.text.Text != r.label.Text {
		r.MarkNeedsLayout()
	}
	r.label = l
	r.MarkNeedsPaint()
}

// Text returns the label text.
func (r *RenderLabel) Text() string {
	return r.label.Text
}

// Clicks returns how many clicks the label has received.
func (r *RenderLabel) Clicks() int {
	return r.clicks
}

func (r *RenderLabel) PerformLayout() {
	constraints := r.Constraints()
	p := r.label.Padding
	r.SetSize(constraints.Constrain(graphics.Size{
		Width:  r.text.Size.Width + p.Horizontal(),
		Height: r.text.Size.Height + p.Vertical(),
	}))
}

func (r *RenderLabel) Paint(ctx *layout.PaintContext) {
	size := r.Size()
	if r.label.Background.Alpha8() != 0 {
		ctx.Canvas.DrawRect(graphics.RectFromLTWH(0, 0, size.Width, size.Height), graphics.Paint{
			Color: r.label.Background,
			Style: graphics.PaintStyleFill,
		})
	}
	if r.label.Text == "" {
		return
	}
	ctx.Canvas.Save()
	ctx.Canvas.ClipRect(graphics.RectFromLTWH(0, 0, size.Width, size.Height))
	ctx.Canvas.DrawText(r.text, graphics.Offset{X: r.label.Padding.Left, Y: r.label.Padding.Top})
	ctx.Canvas.Restore()
}

func (r *RenderLabel) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !layout.WithinBounds(position, r.Size()) {
		return false
	}
	result.Add(r)
	return true
}

// HandlePointer turns a down followed by an up on the same pointer into a
// click when the label is hit directly.
func (r *RenderLabel) HandlePointer(event gestures.PointerEvent) {
	switch event.Phase {
	case gestures.PointerPhaseDown:
		if r.pressed == nil {
			r.pressed = make(map[int64]bool)
		}
		r.pressed[event.PointerID] = true
	case gestures.PointerPhaseUp:
		if r.pressed[event.PointerID] {
			delete(r.pressed, event.PointerID)
			if layout.WithinBounds(event.Position, r.Size()) {
				r.PerformClick()
			}
		}
	case gestures.PointerPhaseCancel:
		delete(r.pressed, event.PointerID)
	}
}

// PerformClick runs OnClick and reports whether one was set.
func (r *RenderLabel) PerformClick() bool {
	r.clicks++
	if r.label.OnClick == nil {
		return false
	}
	r.label.OnClick()
	return true
}
