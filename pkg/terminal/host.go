package terminal

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/ripple/pkg/engine"
	"github.com/go-drift/ripple/pkg/gestures"
	"github.com/go-drift/ripple/pkg/graphics"
	"github.com/go-drift/ripple/pkg/layout"
)

// FrameInterval is the delay between frames in Run.
const FrameInterval = 16 * time.Millisecond

// mousePointer is the pointer ID mouse events are reported under.
const mousePointer = 1

// Host drives an engine from tcell events and presents its frames on the
// screen.
type Host struct {
	screen tcell.Screen
	engine *engine.Engine
	canvas *Canvas

	pressed    bool
	last       graphics.Offset
	shownPaint int

	// OnPointerDown, if set, runs after every pointer down is dispatched.
	OnPointerDown func(graphics.Offset)
}

// NewHost creates a host for root on an initialized screen.
func NewHost(screen tcell.Screen, root layout.RenderBox, background graphics.Color) *Host {
	cols, rows := screen.Size()
	e := engine.New(root, SurfaceSize(cols, rows))
	e.SetBackgroundColor(background)
	return &Host{
		screen:     screen,
		engine:     e,
		canvas:     NewCanvas(screen, background),
		shownPaint: -1,
	}
}

// Engine returns the engine the host drives.
func (h *Host) Engine() *engine.Engine {
	return h.engine
}

// HandleEvent applies one tcell event. It returns false when the event asks
// the host to quit.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		}
	case *tcell.EventResize:
		cols, rows := ev.Size()
		h.engine.SetSize(SurfaceSize(cols, rows))
		h.screen.Sync()
	case *tcell.EventMouse:
		h.handleMouse(ev)
	}
	return true
}

func (h *Host) handleMouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	pos := CellCenter(col, row)
	down := ev.Buttons()&tcell.Button1 != 0

	switch {
	case down && !h.pressed:
		h.pressed = true
		h.send(pos, gestures.PointerPhaseDown)
		if h.OnPointerDown != nil {
			h.OnPointerDown(pos)
		}
	case down && pos != h.last:
		h.send(pos, gestures.PointerPhaseMove)
	case !down && h.pressed:
		h.pressed = false
		h.send(pos, gestures.PointerPhaseUp)
	}
	h.last = pos
}

func (h *Host) send(pos graphics.Offset, phase gestures.PointerPhase) {
	h.engine.HandlePointer(gestures.PointerEvent{
		PointerID: mousePointer,
		Position:  pos,
		Phase:     phase,
	})
}

// Frame runs one engine frame and presents it if it repainted.
func (h *Host) Frame() error {
	if err := h.engine.Frame(); err != nil {
		return err
	}
	if paints := h.engine.Stats().Paints; paints != h.shownPaint {
		h.shownPaint = paints
		h.engine.Render(h.canvas)
		h.screen.Show()
	}
	return nil
}

// Run pumps events and frames until ctx is done or a quit key is pressed.
// A failing frame ends the loop with its error.
func (h *Host) Run(ctx context.Context) error {
	h.screen.EnableMouse()
	defer h.screen.DisableMouse()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	if err := h.Frame(); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !h.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			if err := h.Frame(); err != nil {
				return err
			}
		}
	}
}
