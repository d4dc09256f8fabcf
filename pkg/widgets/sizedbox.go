package widgets

import (
	"github.com/go-drift/ripple/pkg/graphics"
	"github.com/go-drift/ripple/pkg/layout"
)

// SizedBox forces a fixed width and/or height on its optional child.
// A zero dimension follows the child (or the constraints when empty).
type SizedBox struct {
	Width  float64
	Height float64
	Child  layout.RenderBox
}

// CreateRenderObject builds the render box for s.
func (s SizedBox) CreateRenderObject() *RenderSizedBox {
	box := &RenderSizedBox{width: s.Width, height: s.Height}
	box.SetSelf(box)
	box.SetChild(s.Child)
	return box
}

// RenderSizedBox is the render object behind SizedBox.
type RenderSizedBox struct {
	layout.RenderBoxBase
	child  layout.RenderBox
	width  float64
	height float64
}

// Update applies new dimensions.
func (r *RenderSizedBox) Update(s SizedBox) {
	r.width = s.Width
	r.height = s.Height
	r.MarkNeedsLayout()
}

// SetChild replaces the child.
func (r *RenderSizedBox) SetChild(child layout.RenderBox) {
	layout.SetParentOnChild(r.child, nil)
	r.child = child
	layout.SetParentOnChild(r.child, r)
}

func (r *RenderSizedBox) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

func (r *RenderSizedBox) PerformLayout() {
	constraints := r.Constraints()
	desired := graphics.Size{Width: r.width, Height: r.height}

	if r.child == nil {
		r.SetSize(constraints.Constrain(desired))
		return
	}

	constrained := constraints.Constrain(desired)
	childConstraints := constraints
	if r.width > 0 {
		childConstraints.MinWidth = constrained.Width
		childConstraints.MaxWidth = constrained.Width
	}
	if r.height > 0 {
		childConstraints.MinHeight = constrained.Height
		childConstraints.MaxHeight = constrained.Height
	}

	r.child.Layout(childConstraints, true)
	r.child.SetParentData(&layout.BoxParentData{})

	finalSize := r.child.Size()
	if r.width > 0 {
		finalSize.Width = constrained.Width
	}
	if r.height > 0 {
		finalSize.Height = constrained.Height
	}
	r.SetSize(constraints.Constrain(finalSize))
}

func (r *RenderSizedBox) Paint(ctx *layout.PaintContext) {
	if r.child != nil {
		ctx.PaintChild(r.child, graphics.Offset{})
	}
}

func (r *RenderSizedBox) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !layout.WithinBounds(position, r.Size()) {
		return false
	}
	if r.child != nil && r.child.HitTest(position, result) {
		return true
	}
	result.Add(r)
	return true
}

// PerformClick forwards a synthesized click to a clickable child.
func (r *RenderSizedBox) PerformClick() bool {
	if c, ok := r.child.(layout.Clickable); ok {
		return c.PerformClick()
	}
	return false
}
