package layout

import "slices"

// PipelineOwner tracks render objects that need layout or paint.
//
// Layout scheduling works with relayout boundaries: MarkNeedsLayout walks up
// to the nearest boundary, and the boundary is scheduled here. Paint requests
// are deduplicated, so any number of MarkNeedsPaint calls between two frames
// produce a single paint pass.
type PipelineOwner struct {
	dirtyLayout    []RenderObject
	dirtyLayoutSet map[RenderObject]bool
	dirtyPaint     map[RenderObject]struct{}
	needsLayout    bool
	needsPaint     bool
	paintRequests  int
}

// ScheduleLayout marks a relayout boundary as needing layout.
func (p *PipelineOwner) ScheduleLayout(object RenderObject) {
	if p.dirtyLayoutSet == nil {
		p.dirtyLayoutSet = make(map[RenderObject]bool)
	}
	if p.dirtyLayoutSet[object] {
		return
	}
	p.dirtyLayoutSet[object] = true
	p.dirtyLayout = append(p.dirtyLayout, object)
	p.needsLayout = true
	p.needsPaint = true
}

// SchedulePaint marks a render object as needing paint.
func (p *PipelineOwner) SchedulePaint(object RenderObject) {
	p.paintRequests++
	if p.dirtyPaint == nil {
		p.dirtyPaint = make(map[RenderObject]struct{})
	}
	if _, exists := p.dirtyPaint[object]; exists {
		return
	}
	p.dirtyPaint[object] = struct{}{}
	p.needsPaint = true
}

// PaintRequests returns how many times SchedulePaint has been called,
// including requests that were merged into an already pending one.
func (p *PipelineOwner) PaintRequests() int {
	return p.paintRequests
}

// NeedsLayout reports if any render objects need layout.
func (p *PipelineOwner) NeedsLayout() bool {
	return p.needsLayout
}

// NeedsPaint reports if any render objects need paint.
func (p *PipelineOwner) NeedsPaint() bool {
	return p.needsPaint
}

// FlushLayoutForRoot lays out the root with the given constraints, then any
// boundaries scheduled while that pass ran.
func (p *PipelineOwner) FlushLayoutForRoot(root RenderObject, constraints Constraints) {
	if !p.needsLayout || root == nil {
		return
	}
	// Clear first so a panic inside PerformLayout does not leave the same
	// boundaries queued forever.
	p.needsLayout = false
	root.Layout(constraints, false)
	p.flushDirtyBoundaries()

	p.dirtyLayout = nil
	p.dirtyLayoutSet = nil
}

// flushDirtyBoundaries lays out scheduled boundaries parents first, so a
// parent's pass can clean a child before the child is visited.
func (p *PipelineOwner) flushDirtyBoundaries() {
	for len(p.dirtyLayout) > 0 {
		slices.SortFunc(p.dirtyLayout, func(a, b RenderObject) int {
			return depthOf(a) - depthOf(b)
		})

		dirty := p.dirtyLayout
		p.dirtyLayout = nil
		p.dirtyLayoutSet = nil

		for _, node := range dirty {
			if layouter, ok := node.(interface {
				NeedsLayout() bool
				Constraints() Constraints
				Layout(Constraints, bool)
			}); ok && layouter.NeedsLayout() {
				layouter.Layout(layouter.Constraints(), false)
			}
		}
	}
}

func depthOf(obj RenderObject) int {
	if getter, ok := obj.(interface{ Depth() int }); ok {
		return getter.Depth()
	}
	return 0
}

// FlushPaint returns the scheduled objects that still need paint, parents
// first, and clears the paint queue.
func (p *PipelineOwner) FlushPaint() []RenderObject {
	if !p.needsPaint || len(p.dirtyPaint) == 0 {
		p.dirtyPaint = nil
		p.needsPaint = false
		return nil
	}

	dirty := make([]RenderObject, 0, len(p.dirtyPaint))
	for obj := range p.dirtyPaint {
		dirty = append(dirty, obj)
	}
	slices.SortFunc(dirty, func(a, b RenderObject) int {
		return depthOf(a) - depthOf(b)
	})

	result := make([]RenderObject, 0, len(dirty))
	for _, node := range dirty {
		if np, ok := node.(interface{ NeedsPaint() bool }); ok && np.NeedsPaint() {
			result = append(result, node)
		}
	}

	p.dirtyPaint = nil
	p.needsPaint = false
	return result
}
