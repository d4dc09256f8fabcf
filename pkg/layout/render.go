package layout

import (
	"github.com/go-drift/ripple/pkg/graphics"
)

// RenderObject is a node of the render tree: the ripple container, its child,
// or a test box.
type RenderObject interface {
	Layout(constraints Constraints, parentUsesSize bool)
	Size() graphics.Size
	Paint(ctx *PaintContext)
	HitTest(position graphics.Offset, result *HitTestResult) bool
	ParentData() any
	SetParentData(data any)
	MarkNeedsLayout()
	MarkNeedsPaint()
	SetOwner(owner *PipelineOwner)
}

// RenderBox is a RenderObject sized by box constraints.
type RenderBox interface {
	RenderObject
}

// ChildVisitor is implemented by render objects that have children.
type ChildVisitor interface {
	VisitChildren(visitor func(RenderObject))
}

// BoxParentData is the child offset a parent assigns during layout.
type BoxParentData struct {
	Offset graphics.Offset
}

// RenderBoxBase carries the tree links and dirty state every render box
// needs. Embed it and call SetSelf with the outer value; scheduling and
// PerformLayout dispatch go through that value.
type RenderBoxBase struct {
	self   RenderObject
	parent RenderObject
	owner  *PipelineOwner
	depth  int

	size        graphics.Size
	constraints Constraints
	parentData  any

	// boundaryNode is the nearest ancestor (or self) whose size does not
	// depend on its subtree. Layout requests stop there.
	boundaryNode RenderObject
	needsLayout  bool
	needsPaint   bool
}

// boundaryHolder exposes the cached relayout boundary to children.
type boundaryHolder interface {
	relayoutBoundary() RenderObject
}

func (r *RenderBoxBase) relayoutBoundary() RenderObject {
	return r.boundaryNode
}

// SetSelf registers the embedding value and leaves the box dirty so its
// first frame lays it out and paints it.
func (r *RenderBoxBase) SetSelf(self RenderObject) {
	r.self = self
	r.needsLayout = true
	r.needsPaint = true
}

func (r *RenderBoxBase) Size() graphics.Size {
	return r.size
}

// SetSize stores the laid out size. A change repaints.
func (r *RenderBoxBase) SetSize(size graphics.Size) {
	if size != r.size {
		r.size = size
		r.MarkNeedsPaint()
	}
}

// Constraints returns the constraints of the last layout pass.
func (r *RenderBoxBase) Constraints() Constraints {
	return r.constraints
}

func (r *RenderBoxBase) ParentData() any {
	return r.parentData
}

// SetParentData stores data assigned by the parent. When the child offset
// moves, the parent repaints.
func (r *RenderBoxBase) SetParentData(data any) {
	if next, ok := data.(*BoxParentData); ok && r.parent != nil {
		prev, had := r.parentData.(*BoxParentData)
		if !had || prev.Offset != next.Offset {
			r.parent.MarkNeedsPaint()
		}
	}
	r.parentData = data
}

// Depth is the distance from the root, which has depth 0.
func (r *RenderBoxBase) Depth() int {
	return r.depth
}

// Parent returns the parent, or nil for a root.
func (r *RenderBoxBase) Parent() RenderObject {
	return r.parent
}

// SetParent links the box under parent. Both the old and the new parent
// repaint, and the box must be laid out again.
func (r *RenderBoxBase) SetParent(parent RenderObject) {
	old := r.parent
	if old == parent {
		return
	}
	r.parent = parent
	r.depth = 0
	if parent != nil {
		r.depth = depthOf(parent) + 1
	}
	r.boundaryNode = nil
	r.constraints = Constraints{}
	r.needsLayout = true
	r.needsPaint = true

	for _, p := range []RenderObject{old, parent} {
		if p != nil {
			p.MarkNeedsPaint()
		}
	}
}

// SetOwner attaches a root to a pipeline. Pending work is queued at once.
func (r *RenderBoxBase) SetOwner(owner *PipelineOwner) {
	r.owner = owner
	if owner == nil || r.self == nil {
		return
	}
	if r.needsLayout {
		owner.ScheduleLayout(r.self)
	}
	if r.needsPaint {
		owner.SchedulePaint(r.self)
	}
}

func (r *RenderBoxBase) NeedsLayout() bool {
	return r.needsLayout
}

func (r *RenderBoxBase) NeedsPaint() bool {
	return r.needsPaint
}

// ClearNeedsPaint is called once the box has been recorded.
func (r *RenderBoxBase) ClearNeedsPaint() {
	r.needsPaint = false
}

// MarkNeedsLayout flags the box and forwards the request to its relayout
// boundary, which the owner queues.
func (r *RenderBoxBase) MarkNeedsLayout() {
	if r.needsLayout {
		return
	}
	r.needsLayout = true
	switch {
	case r.self == nil:
	case r.parent != nil && r.boundaryNode != r.self:
		r.parent.MarkNeedsLayout()
	case r.owner != nil:
		r.owner.ScheduleLayout(r.self)
	}
}

// MarkNeedsPaint flags the box and every ancestor. Only the root reaches the
// owner, which merges repeated requests into one paint per frame.
func (r *RenderBoxBase) MarkNeedsPaint() {
	r.needsPaint = true
	switch {
	case r.self == nil:
	case r.parent != nil:
		r.parent.MarkNeedsPaint()
	case r.owner != nil:
		r.owner.SchedulePaint(r.self)
	}
}

// Layout runs PerformLayout on the embedding value when the box is dirty or
// its constraints changed.
//
// Tight constraints, a missing parent, or a parent that ignores the size all
// make the box its own relayout boundary. Otherwise it shares its parent's.
func (r *RenderBoxBase) Layout(constraints Constraints, parentUsesSize bool) {
	r.boundaryNode = r.self
	if !constraints.IsTight() && r.parent != nil && parentUsesSize {
		if holder, ok := r.parent.(boundaryHolder); ok {
			r.boundaryNode = holder.relayoutBoundary()
		}
	}

	if !r.needsLayout && constraints == r.constraints {
		return
	}
	r.constraints = constraints
	r.needsLayout = false
	if performer, ok := r.self.(interface{ PerformLayout() }); ok {
		performer.PerformLayout()
	}
}

// SetParentOnChild moves child under parent (or detaches it when parent is
// nil). The previous and new parents are both laid out again.
func SetParentOnChild(child, parent RenderObject) {
	node, ok := child.(interface {
		Parent() RenderObject
		SetParent(RenderObject)
	})
	if child == nil || !ok {
		return
	}
	old := node.Parent()
	if old == parent {
		return
	}
	node.SetParent(parent)
	for _, p := range []RenderObject{old, parent} {
		if p != nil {
			p.MarkNeedsLayout()
		}
	}
}

// ChildOffset returns where the parent placed child, or the zero offset.
func ChildOffset(child RenderObject) graphics.Offset {
	if child == nil {
		return graphics.Offset{}
	}
	data, _ := child.ParentData().(*BoxParentData)
	if data == nil {
		return graphics.Offset{}
	}
	return data.Offset
}

// WithinBounds reports whether position lies in the box of the given size,
// edges included.
func WithinBounds(position graphics.Offset, size graphics.Size) bool {
	return position.X >= 0 && position.X <= size.Width &&
		position.Y >= 0 && position.Y <= size.Height
}
