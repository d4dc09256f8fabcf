package testing

import (
	"testing"
	"time"

	"github.com/go-drift/ripple/pkg/animation"
	"github.com/go-drift/ripple/pkg/graphics"
	"github.com/go-drift/ripple/pkg/layout"
)

func TestFakeClock_Advance(t *testing.T) {
	clk := NewFakeClock()
	start := clk.Now()

	clk.Advance(100 * time.Millisecond)
	elapsed := clk.Now().Sub(start)

	if elapsed != 100*time.Millisecond {
		t.Errorf("expected 100ms elapsed, got %v", elapsed)
	}
}

func TestFakeClock_Set(t *testing.T) {
	clk := NewFakeClock()
	target := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	clk.Set(target)
	if !clk.Now().Equal(target) {
		t.Errorf("expected %v, got %v", target, clk.Now())
	}
}

func TestTester_InstallsAndRestoresClock(t *testing.T) {
	tester := NewTester()
	if !animation.Now().Equal(tester.Clock().Now()) {
		t.Fatal("fake clock not installed")
	}
	tester.Clock().Advance(time.Hour)
	if !animation.Now().Equal(tester.Clock().Now()) {
		t.Error("animation clock does not follow the fake clock")
	}
	tester.Cleanup()
	if animation.Now().Equal(tester.Clock().Now()) {
		t.Error("fake clock still installed after Cleanup")
	}
}

// growingBox widens by one pixel per animation tick until its controller
// completes.
type growingBox struct {
	layout.RenderBoxBase
	controller *animation.AnimationController
	disposed   bool
}

func newGrowingBox(d time.Duration) *growingBox {
	b := &growingBox{controller: animation.NewAnimationController(d)}
	b.SetSelf(b)
	b.controller.AddListener(b.MarkNeedsPaint)
	return b
}

func (b *growingBox) PerformLayout() {
	b.SetSize(b.Constraints().Smallest())
}

func (b *growingBox) Paint(ctx *layout.PaintContext) {
	ctx.Canvas.DrawRect(graphics.RectFromLTWH(0, 0, 100*b.controller.Value, 10), graphics.Paint{Color: graphics.ColorGreen})
}

func (b *growingBox) HitTest(graphics.Offset, *layout.HitTestResult) bool {
	return false
}

func (b *growingBox) Dispose() {
	b.disposed = true
	b.controller.Dispose()
}

func TestTester_PumpAndSettle(t *testing.T) {
	tester := NewTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 100, Height: 10})
	box := newGrowingBox(100 * time.Millisecond)
	if err := tester.PumpRoot(box); err != nil {
		t.Fatal(err)
	}
	box.controller.Forward()

	if err := tester.PumpAndSettle(time.Second); err != nil {
		t.Fatal(err)
	}
	if !box.controller.IsCompleted() {
		t.Error("controller did not complete")
	}
	rects := FilterOps(tester.DisplayOps(), "drawRect")
	if len(rects) != 1 {
		t.Fatalf("drawRect ops = %d, want 1", len(rects))
	}
	rect := rects[0].Params["rect"].(map[string]any)
	if rect["right"] != 100.0 {
		t.Errorf("right = %v, want 100", rect["right"])
	}
}

func TestTester_PumpAndSettleTimeout(t *testing.T) {
	tester := NewTesterWithT(t)
	box := newGrowingBox(time.Hour)
	tester.PumpRoot(box)
	box.controller.Forward()

	if err := tester.PumpAndSettle(100 * time.Millisecond); err != ErrSettleTimeout {
		t.Errorf("err = %v, want ErrSettleTimeout", err)
	}
}

func TestTester_CleanupDisposesRoot(t *testing.T) {
	tester := NewTester()
	box := newGrowingBox(time.Second)
	tester.PumpRoot(box)
	box.controller.Forward()
	tester.Cleanup()

	if !box.disposed {
		t.Error("root not disposed")
	}
	if animation.HasActiveTickers() {
		t.Error("ticker leaked past Cleanup")
	}
}

func TestTester_NoRoot(t *testing.T) {
	tester := NewTesterWithT(t)
	if err := tester.Pump(); err != ErrNoRoot {
		t.Errorf("Pump err = %v, want ErrNoRoot", err)
	}
	if err := tester.TapAt(graphics.Offset{}, 1); err != ErrNoRoot {
		t.Errorf("TapAt err = %v, want ErrNoRoot", err)
	}
	if ops := tester.DisplayOps(); ops != nil {
		t.Errorf("DisplayOps = %v, want nil", ops)
	}
}

func TestTester_RenderImage(t *testing.T) {
	tester := NewTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 100, Height: 10})
	box := newGrowingBox(100 * time.Millisecond)
	tester.PumpRoot(box)
	box.controller.Forward()
	tester.PumpAndSettle(time.Second)

	img := tester.RenderImage()
	if img.Bounds().Dx() != 100 || img.Bounds().Dy() != 10 {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	if got := graphics.FromStdColor(img.At(50, 5)); got != graphics.ColorGreen {
		t.Errorf("pixel = %v, want green", got)
	}
}
