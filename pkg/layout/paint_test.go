package layout

import (
	"testing"

	"github.com/go-drift/ripple/pkg/graphics"
)

type testRenderBox struct {
	RenderBoxBase
	paintCalls  int
	layoutCalls int
	child       RenderBox
}

func newTestRenderBox() *testRenderBox {
	r := &testRenderBox{}
	r.SetSelf(r)
	return r
}

func (r *testRenderBox) PerformLayout() {
	r.layoutCalls++
	if r.child != nil {
		r.child.Layout(r.Constraints(), true)
	}
	r.SetSize(r.Constraints().Constrain(graphics.Size{Width: 10, Height: 10}))
}

func (r *testRenderBox) Paint(ctx *PaintContext) {
	r.paintCalls++
	ctx.Canvas.DrawRect(graphics.RectFromLTWH(0, 0, 1, 1), graphics.DefaultPaint())
}

func (r *testRenderBox) HitTest(position graphics.Offset, result *HitTestResult) bool {
	return false
}

func TestPaintChild_TranslatesAndRestores(t *testing.T) {
	child := newTestRenderBox()
	canvas := graphics.NewRasterCanvas(20, 20)
	ctx := &PaintContext{Canvas: canvas}

	ctx.PaintChild(child, graphics.Offset{X: 5, Y: 5})

	if child.paintCalls != 1 {
		t.Fatalf("expected child.Paint to be called once, got %d", child.paintCalls)
	}
	if child.NeedsPaint() {
		t.Error("expected needsPaint cleared after painting")
	}
	if a := graphics.FromStdColor(canvas.Image().At(5, 5)).Alpha8(); a == 0 {
		t.Error("expected child drawing at translated offset")
	}
	if a := graphics.FromStdColor(canvas.Image().At(0, 0)).Alpha8(); a != 0 {
		t.Error("expected nothing drawn at the untranslated origin")
	}
}

func TestPaintChild_NilChild(t *testing.T) {
	recorder := &graphics.PictureRecorder{}
	ctx := &PaintContext{Canvas: recorder.BeginRecording(graphics.Size{Width: 10, Height: 10})}
	ctx.PaintChild(nil, graphics.Offset{})
	if recorder.EndRecording().Len() != 0 {
		t.Error("expected no ops for nil child")
	}
}

func TestPipelineOwner_CoalescesPaintRequests(t *testing.T) {
	owner := &PipelineOwner{}
	root := newTestRenderBox()
	root.SetOwner(owner)
	owner.FlushPaint()

	for range 5 {
		root.MarkNeedsPaint()
	}
	if owner.PaintRequests() < 5 {
		t.Fatalf("PaintRequests = %d, want >= 5", owner.PaintRequests())
	}
	dirty := owner.FlushPaint()
	if len(dirty) != 1 || dirty[0] != root {
		t.Fatalf("FlushPaint = %v, want only root", dirty)
	}
	if owner.NeedsPaint() {
		t.Error("expected paint queue cleared")
	}
}

func TestMarkNeedsPaint_PropagatesToRoot(t *testing.T) {
	owner := &PipelineOwner{}
	root := newTestRenderBox()
	child := newTestRenderBox()
	root.child = child
	SetParentOnChild(child, root)
	root.SetOwner(owner)
	owner.FlushLayoutForRoot(root, Tight(graphics.Size{Width: 50, Height: 50}))
	owner.FlushPaint()

	child.MarkNeedsPaint()
	dirty := owner.FlushPaint()
	if len(dirty) != 1 || dirty[0] != root {
		t.Fatalf("FlushPaint = %v, want root scheduled for child paint", dirty)
	}
	if child.Depth() != 1 {
		t.Errorf("child depth = %d, want 1", child.Depth())
	}
}

func TestLayout_SkipsWhenClean(t *testing.T) {
	owner := &PipelineOwner{}
	root := newTestRenderBox()
	root.SetOwner(owner)
	c := Tight(graphics.Size{Width: 30, Height: 40})

	owner.FlushLayoutForRoot(root, c)
	root.Layout(c, false)
	if root.layoutCalls != 1 {
		t.Errorf("layoutCalls = %d, want 1", root.layoutCalls)
	}
	if root.Size() != (graphics.Size{Width: 30, Height: 40}) {
		t.Errorf("size = %+v", root.Size())
	}

	root.MarkNeedsLayout()
	if !owner.NeedsLayout() {
		t.Fatal("expected root scheduled for layout")
	}
	owner.FlushLayoutForRoot(root, c)
	if root.layoutCalls != 2 {
		t.Errorf("layoutCalls = %d, want 2", root.layoutCalls)
	}
}

func TestConstraints(t *testing.T) {
	c := Tight(graphics.Size{Width: 300, Height: 200})
	if !c.IsTight() {
		t.Error("expected tight constraints")
	}
	d := c.Deflate(EdgeInsetsAll(100))
	if d.MaxWidth != 100 || d.MaxHeight != 0 || d.MinHeight != 0 {
		t.Errorf("Deflate = %+v", d)
	}
	got := Loose(graphics.Size{Width: 50, Height: 50}).Constrain(graphics.Size{Width: 80, Height: 10})
	if got != (graphics.Size{Width: 50, Height: 10}) {
		t.Errorf("Constrain = %+v", got)
	}
	if Unbounded().HasBoundedWidth() {
		t.Error("expected unbounded width")
	}
}

func TestMarkNeedsLayout_LooseChildRelaysOutFromParent(t *testing.T) {
	owner := &PipelineOwner{}
	root := newTestRenderBox()
	child := newTestRenderBox()
	root.child = child
	SetParentOnChild(child, root)
	root.SetOwner(owner)
	owner.FlushLayoutForRoot(root, Loose(graphics.Size{Width: 50, Height: 50}))

	child.MarkNeedsLayout()
	if !root.NeedsLayout() || !owner.NeedsLayout() {
		t.Fatal("expected the request to reach the root")
	}
	owner.FlushLayoutForRoot(root, Loose(graphics.Size{Width: 50, Height: 50}))
	if root.layoutCalls != 2 || child.layoutCalls != 2 {
		t.Errorf("layoutCalls root=%d child=%d, want 2 and 2", root.layoutCalls, child.layoutCalls)
	}
}

func TestSetParentOnChild_Detach(t *testing.T) {
	root := newTestRenderBox()
	child := newTestRenderBox()
	SetParentOnChild(child, root)
	if child.Parent() != root || child.Depth() != 1 {
		t.Fatalf("parent = %v depth = %d", child.Parent(), child.Depth())
	}

	root.layoutCalls = 0
	root.Layout(Tight(graphics.Size{Width: 10, Height: 10}), false)
	SetParentOnChild(child, nil)
	if child.Parent() != nil || child.Depth() != 0 {
		t.Errorf("after detach parent = %v depth = %d", child.Parent(), child.Depth())
	}
	if !root.NeedsLayout() {
		t.Error("expected old parent marked for layout")
	}
	if ChildOffset(child) != (graphics.Offset{}) {
		t.Errorf("ChildOffset = %+v, want zero", ChildOffset(child))
	}
}
