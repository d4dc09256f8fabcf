package cmd

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/go-drift/ripple/pkg/engine"
	"github.com/go-drift/ripple/pkg/gestures"
	"github.com/go-drift/ripple/pkg/graphics"
	"github.com/go-drift/ripple/pkg/ripple"
)

var windowCmd = &Command{
	Name:  "window",
	Short: "Open the demo in a window",
	Long: `Window opens a desktop window hosting the ripple container. Press with
the mouse or a touch to start a ripple; release to end it. Escape quits.`,
	Usage: "ripple window [flags]",
}

func init() {
	windowCmd.Run = runWindow
	RegisterCommand(windowCmd)
}

// mousePointerID keeps mouse events apart from touch IDs, which ebiten
// numbers from zero.
const mousePointerID = -1

// windowGame adapts an engine to ebiten.Game.
type windowGame struct {
	engine  *engine.Engine
	canvas  *graphics.RasterCanvas
	frame   *ebiten.Image
	shown   int
	touches []ebiten.TouchID
	mouse   graphics.Offset
	down    bool
	clicks  int
}

func newWindowGame(scene *sceneFlags, width, height int) (*windowGame, *ripple.RenderRipple, error) {
	g := &windowGame{shown: -1}
	root, err := scene.build(func() { g.clicks++ })
	if err != nil {
		return nil, nil, err
	}
	g.engine = engine.New(root, graphics.Size{Width: float64(width), Height: float64(height)})
	return g, root, nil
}

func (g *windowGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.updateMouse()
	g.updateTouches()
	return g.engine.Frame()
}

func (g *windowGame) updateMouse() {
	x, y := ebiten.CursorPosition()
	pos := graphics.Offset{X: float64(x), Y: float64(y)}
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.down = true
		g.send(mousePointerID, pos, gestures.PointerPhaseDown)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		if g.down {
			g.down = false
			g.send(mousePointerID, pos, gestures.PointerPhaseUp)
		}
	case g.down && pos != g.mouse:
		g.send(mousePointerID, pos, gestures.PointerPhaseMove)
	}
	g.mouse = pos
}

func (g *windowGame) updateTouches() {
	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		x, y := ebiten.TouchPosition(id)
		g.send(int64(id), graphics.Offset{X: float64(x), Y: float64(y)}, gestures.PointerPhaseDown)
	}
	g.touches = inpututil.AppendJustReleasedTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		g.send(int64(id), graphics.Offset{X: float64(x), Y: float64(y)}, gestures.PointerPhaseUp)
	}
}

func (g *windowGame) send(id int64, pos graphics.Offset, phase gestures.PointerPhase) {
	g.engine.HandlePointer(gestures.PointerEvent{PointerID: id, Position: pos, Phase: phase})
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	size := g.engine.Size()
	w, h := int(size.Width), int(size.Height)
	if g.canvas == nil || g.canvas.Image().Bounds() != image.Rect(0, 0, w, h) {
		g.canvas = graphics.NewRasterCanvas(w, h)
		g.frame = ebiten.NewImage(w, h)
		g.shown = -1
	}
	if paints := g.engine.Stats().Paints; paints != g.shown {
		g.shown = paints
		g.engine.Render(g.canvas)
		g.frame.WritePixels(g.canvas.Image().Pix)
	}
	screen.DrawImage(g.frame, nil)
	timeline := g.engine.FrameTimeline()
	frameMs := 0.0
	if n := len(timeline.Samples); n > 0 {
		frameMs = timeline.Samples[n-1].FrameMs
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("clicks: %d\nframe: %.2fms dropped: %d", g.clicks, frameMs, timeline.DroppedFrames))
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.engine.SetSize(graphics.Size{Width: float64(outsideWidth), Height: float64(outsideHeight)})
	return outsideWidth, outsideHeight
}

func runWindow(args []string) error {
	fs := newFlagSet(windowCmd)
	var scene sceneFlags
	scene.register(fs)
	width := fs.Int("width", 480, "window width")
	height := fs.Int("height", 320, "window height")
	if ok, err := parse(fs, args); !ok {
		return err
	}

	game, root, err := newWindowGame(&scene, *width, *height)
	if err != nil {
		return err
	}
	defer root.Dispose()

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("ripple")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(game)
}
