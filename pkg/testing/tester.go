package testing

import (
	"errors"
	"image"
	"testing"
	"time"

	"github.com/go-drift/ripple/pkg/animation"
	"github.com/go-drift/ripple/pkg/engine"
	"github.com/go-drift/ripple/pkg/graphics"
	"github.com/go-drift/ripple/pkg/layout"
)

const (
	// DefaultTestWidth is the default width of the test surface.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default height of the test surface.
	DefaultTestHeight = 600
	// FrameInterval is the clock step PumpAndSettle takes between frames.
	FrameInterval = 16 * time.Millisecond
)

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: tickers still active")

// ErrNoRoot is returned when an operation needs a root and none was pumped.
var ErrNoRoot = errors.New("no root render object pumped")

// Tester runs a render tree through the engine pipeline with a fake clock.
type Tester struct {
	engine    *engine.Engine
	clock     *FakeClock
	prevClock animation.Clock
	size      graphics.Size
	pointers  map[int]graphics.Offset
}

// NewTester creates a tester and installs its fake clock.
// Call Cleanup when done, or use NewTesterWithT instead.
func NewTester() *Tester {
	clk := NewFakeClock()
	t := &Tester{
		clock:    clk,
		size:     graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight},
		pointers: make(map[int]graphics.Offset),
	}
	t.prevClock = animation.SetClock(clk)
	return t
}

// NewTesterWithT creates a tester that cleans up via t.Cleanup.
// This is the recommended constructor for tests.
func NewTesterWithT(t testing.TB) *Tester {
	tester := NewTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup restores the previous animation clock and disposes the root if
// it supports it.
func (t *Tester) Cleanup() {
	if t.engine != nil {
		if d, ok := t.engine.Root().(interface{ Dispose() }); ok {
			d.Dispose()
		}
		t.engine = nil
	}
	animation.SetClock(t.prevClock)
}

// SetSize sets the surface size, taking effect on the next frame.
func (t *Tester) SetSize(size graphics.Size) {
	t.size = size
	if t.engine != nil {
		t.engine.SetSize(size)
	}
}

// Clock returns the fake clock for advancing time in tests.
func (t *Tester) Clock() *FakeClock {
	return t.clock
}

// Engine returns the engine hosting the current root, or nil.
func (t *Tester) Engine() *engine.Engine {
	return t.engine
}

// PumpRoot installs root and runs one frame.
func (t *Tester) PumpRoot(root layout.RenderBox) error {
	t.engine = engine.New(root, t.size)
	t.pointers = make(map[int]graphics.Offset)
	return t.Pump()
}

// Pump runs a single frame: tickers, layout, paint.
func (t *Tester) Pump() error {
	if t.engine == nil {
		return ErrNoRoot
	}
	return t.engine.Frame()
}

// Advance moves the clock forward by d and pumps one frame.
func (t *Tester) Advance(d time.Duration) error {
	t.clock.Advance(d)
	return t.Pump()
}

// PumpAndSettle pumps frames FrameInterval apart until no ticker is active
// or timeout of fake time has passed.
func (t *Tester) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for elapsed < timeout {
		if err := t.Pump(); err != nil {
			return err
		}
		if !animation.HasActiveTickers() {
			return nil
		}
		t.clock.Advance(FrameInterval)
		elapsed += FrameInterval
	}
	return ErrSettleTimeout
}

// DisplayOps serializes the most recently painted frame.
func (t *Tester) DisplayOps() []DisplayOp {
	if t.engine == nil {
		return nil
	}
	dl := t.engine.DisplayList()
	if dl == nil {
		return nil
	}
	return serializeDisplayList(dl)
}

// RenderImage rasterizes the most recently painted frame.
func (t *Tester) RenderImage() *image.RGBA {
	canvas := graphics.NewRasterCanvas(int(t.size.Width), int(t.size.Height))
	if t.engine != nil {
		t.engine.Render(canvas)
	}
	return canvas.Image()
}

// Stats returns the engine pipeline counters.
func (t *Tester) Stats() engine.Stats {
	if t.engine == nil {
		return engine.Stats{}
	}
	return t.engine.Stats()
}
