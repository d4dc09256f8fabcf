package ripple

import (
	"github.com/go-drift/ripple/pkg/animation"
	"github.com/go-drift/ripple/pkg/errors"
	"github.com/go-drift/ripple/pkg/gestures"
	"github.com/go-drift/ripple/pkg/graphics"
	"github.com/go-drift/ripple/pkg/layout"
)

// RenderRipple is the ripple container. It lays out its child as a
// passthrough and intercepts every pointer sequence that hits it. The ripple
// is painted beneath the child, clipped to the container.
type RenderRipple struct {
	layout.RenderBoxBase

	cfg      Config
	paint    graphics.Paint
	children []layout.RenderBox
	child    layout.RenderBox

	controller     *animation.AnimationController
	unsubscribe    []func()
	state          State
	anim           AnimationState
	center         graphics.Offset
	centerSize     graphics.Size
	centerResolved bool
}

// New validates cfg and creates a container.
func New(cfg Config) (*RenderRipple, error) {
	resolved, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}

	r := &RenderRipple{
		cfg: resolved,
		paint: graphics.Paint{
			Color:     resolved.PaintColor(),
			Style:     graphics.PaintStyleFill,
			AntiAlias: true,
		},
		anim:       idleAnimationState(),
		controller: animation.NewAnimationController(Duration),
	}
	r.SetSelf(r)
	r.unsubscribe = append(r.unsubscribe,
		r.controller.AddListener(r.onTick),
		r.controller.AddStatusListener(r.onStatus),
	)
	if resolved.Child != nil {
		r.AddChild(resolved.Child)
	}
	return r, nil
}

// Config returns the resolved configuration.
func (r *RenderRipple) Config() Config {
	return r.cfg
}

// PaintColor returns the ripple color with the configured alpha applied.
func (r *RenderRipple) PaintColor() graphics.Color {
	return r.paint.Color
}

// State returns the interaction state.
func (r *RenderRipple) State() State {
	return r.state
}

// AnimationState returns a snapshot of the current run.
func (r *RenderRipple) AnimationState() AnimationState {
	return r.anim
}

// Progress returns the normalized run position.
func (r *RenderRipple) Progress() float64 {
	return r.anim.Progress
}

// Origin returns the ripple center, or UnsetOrigin when idle.
func (r *RenderRipple) Origin() graphics.Offset {
	return r.anim.Origin
}

// Radius returns the radius the next paint will draw.
func (r *RenderRipple) Radius() float64 {
	return (r.cfg.MaxRadius - r.cfg.MinRadius) * r.anim.Progress
}

// AddChild appends a child to the host child list. Only one child is
// allowed; a second one fails the next layout pass.
func (r *RenderRipple) AddChild(child layout.RenderBox) {
	if child == nil {
		return
	}
	r.children = append(r.children, child)
	if len(r.children) == 1 {
		r.child = child
	}
	layout.SetParentOnChild(child, r)
	r.MarkNeedsLayout()
}

// Children returns a copy of the host child list.
func (r *RenderRipple) Children() []layout.RenderBox {
	out := make([]layout.RenderBox, len(r.children))
	copy(out, r.children)
	return out
}

// Child returns the single child, or nil.
func (r *RenderRipple) Child() layout.RenderBox {
	return r.child
}

// VisitChildren calls visitor for every child in the host list.
func (r *RenderRipple) VisitChildren(visitor func(layout.RenderObject)) {
	for _, c := range r.children {
		visitor(c)
	}
}

// PerformLayout sizes the container to its child. It panics with a
// TooManyChildren error when more than one child was added.
func (r *RenderRipple) PerformLayout() {
	if n := len(r.children); n > 1 {
		panic(errors.TooManyChildren("ripple.PerformLayout", n))
	}
	r.child = nil
	if len(r.children) == 1 {
		r.child = r.children[0]
	}

	constraints := r.Constraints()
	if r.child == nil {
		r.SetSize(constraints.Smallest())
	} else {
		r.child.Layout(constraints, true)
		r.SetSize(constraints.Constrain(r.child.Size()))
		r.child.SetParentData(&layout.BoxParentData{})
	}

	if r.cfg.RecenterOnResize && r.centerResolved && r.Size() != r.centerSize {
		r.centerResolved = false
	}
}

// Paint draws the ripple circle when progress is non-zero, then the child
// on top of it.
func (r *RenderRipple) Paint(ctx *layout.PaintContext) {
	if r.anim.Progress != 0 {
		size := r.Size()
		ctx.Canvas.Save()
		ctx.Canvas.ClipRect(graphics.RectFromLTWH(0, 0, size.Width, size.Height))
		ctx.Canvas.DrawCircle(r.anim.Origin, r.Radius(), r.paint)
		ctx.Canvas.Restore()
	}
	if r.child != nil {
		ctx.PaintChild(r.child, layout.ChildOffset(r.child))
	}
}

// HitTest claims every position inside the container. The child is never
// hit tested; it only sees the click forwarded on pointer up.
func (r *RenderRipple) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !layout.WithinBounds(position, r.Size()) {
		return false
	}
	result.Add(r)
	return true
}

// HandlePointer drives the ripple from pointer events in container
// coordinates.
func (r *RenderRipple) HandlePointer(event gestures.PointerEvent) {
	switch event.Phase {
	case gestures.PointerPhaseDown:
		r.start(event.Position)
	case gestures.PointerPhaseUp:
		r.reset()
		if clickable, ok := r.child.(layout.Clickable); ok {
			clickable.PerformClick()
		}
	case gestures.PointerPhaseCancel:
		r.reset()
	}
}

func (r *RenderRipple) start(position graphics.Offset) {
	origin := position
	if r.cfg.UseCenter {
		origin = r.resolveCenter()
	}

	r.controller.Reset()
	r.anim = AnimationState{Origin: origin, Running: true}
	r.state = StateAnimating
	r.controller.Forward()
	r.MarkNeedsPaint()
}

// resolveCenter returns the cached center, computing it on first use once
// the container has a size.
func (r *RenderRipple) resolveCenter() graphics.Offset {
	if r.centerResolved {
		return r.center
	}
	size := r.Size()
	if size.IsEmpty() {
		return size.Center()
	}
	r.center = size.Center()
	r.centerSize = size
	r.centerResolved = true
	return r.center
}

func (r *RenderRipple) reset() {
	r.controller.Reset()
	r.anim = idleAnimationState()
	r.state = StateIdle
	r.MarkNeedsPaint()
}

func (r *RenderRipple) onTick() {
	if r.state != StateAnimating {
		return
	}
	r.anim.Progress = r.controller.Value
	r.MarkNeedsPaint()
}

func (r *RenderRipple) onStatus(status animation.AnimationStatus) {
	if status == animation.AnimationCompleted {
		r.anim.Running = false
	}
}

// Dispose stops the driver. The container must not be used afterwards.
func (r *RenderRipple) Dispose() {
	for _, fn := range r.unsubscribe {
		fn()
	}
	r.unsubscribe = nil
	r.controller.Dispose()
}
