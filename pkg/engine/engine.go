// Package engine runs a render tree: it routes pointer events, steps
// animation tickers, flushes layout and records paint once per frame.
package engine

import (
	"sync"
	"time"

	"github.com/go-drift/ripple/pkg/animation"
	"github.com/go-drift/ripple/pkg/errors"
	"github.com/go-drift/ripple/pkg/gestures"
	"github.com/go-drift/ripple/pkg/graphics"
	"github.com/go-drift/ripple/pkg/layout"
)

// Stats counts frame pipeline work.
type Stats struct {
	// Frames is the number of Frame calls that completed.
	Frames int
	// Paints is the number of frames that re-recorded the display list.
	Paints int
	// PaintRequests is the number of MarkNeedsPaint requests that reached
	// the root, including ones merged into a pending paint.
	PaintRequests int
}

// Engine hosts a single root render object on a surface of a given size.
// Hosts normally call every method from their UI loop; the internal lock
// covers hosts that deliver pointer events from another goroutine.
type Engine struct {
	mu sync.Mutex

	root       layout.RenderBox
	size       graphics.Size
	background graphics.Color
	owner      *layout.PipelineOwner
	recorder   graphics.PictureRecorder
	display    *graphics.DisplayList
	trace      *FrameTraceBuffer

	pointerHandlers  map[int64][]layout.PointerHandler
	pointerPositions map[int64]graphics.Offset

	frames int
	paints int
}

// New creates an engine for root on a surface of the given size.
func New(root layout.RenderBox, size graphics.Size) *Engine {
	e := &Engine{
		root:             root,
		size:             size,
		background:       graphics.ColorWhite,
		owner:            &layout.PipelineOwner{},
		trace:            NewFrameTraceBuffer(0, 0),
		pointerHandlers:  make(map[int64][]layout.PointerHandler),
		pointerPositions: make(map[int64]graphics.Offset),
	}
	root.SetOwner(e.owner)
	return e
}

// Root returns the root render object.
func (e *Engine) Root() layout.RenderBox {
	return e.root
}

// Size returns the surface size.
func (e *Engine) Size() graphics.Size {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.size
}

// SetSize resizes the surface; the next frame lays out with the new size.
func (e *Engine) SetSize(size graphics.Size) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.size == size {
		return
	}
	e.size = size
	e.owner.ScheduleLayout(e.root)
	e.root.MarkNeedsPaint()
}

// SetBackgroundColor sets the color each recorded frame is cleared to.
func (e *Engine) SetBackgroundColor(c graphics.Color) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.background = c
	e.root.MarkNeedsPaint()
}

// NeedsFrame reports whether a Frame call would do any work.
func (e *Engine) NeedsFrame() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.owner.NeedsLayout() || e.owner.NeedsPaint() || animation.HasActiveTickers()
}

// HandlePointer routes a pointer event in root coordinates. A down event is
// hit tested and the handlers found are remembered for the rest of that
// pointer's sequence; other phases go to the remembered handlers.
func (e *Engine) HandlePointer(event gestures.PointerEvent) {
	e.mu.Lock()
	pointerID := event.PointerID
	position := event.Position
	var handlers []layout.PointerHandler
	delta := graphics.Offset{}

	if event.Phase != gestures.PointerPhaseDown {
		if last, ok := e.pointerPositions[pointerID]; ok {
			delta = position.Sub(last)
		}
	}
	e.pointerPositions[pointerID] = position

	if event.Phase == gestures.PointerPhaseDown {
		result := &layout.HitTestResult{}
		if e.root.HitTest(position, result) && len(result.Entries) > 0 {
			handlers = collectPointerHandlers(result.Entries)
			if len(handlers) > 0 {
				e.pointerHandlers[pointerID] = handlers
			}
		}
	} else {
		handlers = e.pointerHandlers[pointerID]
	}

	if event.Phase.IsTerminal() {
		delete(e.pointerHandlers, pointerID)
		delete(e.pointerPositions, pointerID)
	}
	e.mu.Unlock()

	event.Delta = delta
	for _, handler := range handlers {
		handler.HandlePointer(event)
	}
}

// Frame runs one pipeline pass: tickers, layout, then paint if anything
// asked for it. A panic during the pass is reported and returned.
func (e *Engine) Frame() (err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer errors.RecoverInto("engine.Frame", &err)

	start := time.Now()
	animation.StepTickers()
	animated := time.Now()
	e.owner.FlushLayoutForRoot(e.root, layout.Tight(e.size))
	laidOut := time.Now()

	painted := false
	if dirty := e.owner.FlushPaint(); len(dirty) > 0 {
		e.record()
		painted = true
	}
	end := time.Now()
	e.frames++

	e.trace.Add(FrameSample{
		Timestamp: start.UnixMilli(),
		FrameMs:   durationToMillis(end.Sub(start)),
		Phases: FramePhaseTimings{
			AnimateMs: durationToMillis(animated.Sub(start)),
			LayoutMs:  durationToMillis(laidOut.Sub(animated)),
			RecordMs:  durationToMillis(end.Sub(laidOut)),
		},
		ActiveTickers:   animation.ActiveTickerCount(),
		RenderNodeCount: countRenderTree(e.root),
		Painted:         painted,
	}, end.Sub(start))
	return nil
}

// FrameTimeline returns the recent frame samples, oldest first.
func (e *Engine) FrameTimeline() FrameTimeline {
	return e.trace.Snapshot()
}

func (e *Engine) record() {
	canvas := e.recorder.BeginRecording(e.size)
	canvas.Clear(e.background)
	e.root.Paint(&layout.PaintContext{Canvas: canvas})
	if c, ok := e.root.(interface{ ClearNeedsPaint() }); ok {
		c.ClearNeedsPaint()
	}
	e.display = e.recorder.EndRecording()
	e.paints++
}

// DisplayList returns the most recently recorded frame, or nil before the
// first paint.
func (e *Engine) DisplayList() *graphics.DisplayList {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.display
}

// Render replays the last recorded frame onto canvas.
func (e *Engine) Render(canvas graphics.Canvas) {
	e.mu.Lock()
	display := e.display
	e.mu.Unlock()
	display.Paint(canvas)
}

// Stats returns pipeline counters.
func (e *Engine) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Stats{
		Frames:        e.frames,
		Paints:        e.paints,
		PaintRequests: e.owner.PaintRequests(),
	}
}

func collectPointerHandlers(entries []layout.RenderObject) []layout.PointerHandler {
	handlers := make([]layout.PointerHandler, 0, len(entries))
	seen := make(map[layout.PointerHandler]struct{})
	for _, entry := range entries {
		if handler, ok := entry.(layout.PointerHandler); ok {
			if _, exists := seen[handler]; exists {
				continue
			}
			seen[handler] = struct{}{}
			handlers = append(handlers, handler)
		}
	}
	return handlers
}
