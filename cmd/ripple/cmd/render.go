package cmd

import (
	"fmt"
	"image/png"
	"os"
	"time"

	"github.com/go-drift/ripple/pkg/graphics"
	drifttest "github.com/go-drift/ripple/pkg/testing"
)

var renderCmd = &Command{
	Name:  "render",
	Short: "Render one frame of a press to a PNG file",
	Long: `Render presses the container once and writes the frame shown after
the given time to a PNG file. Time is simulated, so the command returns
immediately.

Examples:
  ripple render -o ripple.png -x 40 -y 300 -at 500ms
  ripple render -config ripple.yaml -center -at 1.5s`,
	Usage: "ripple render [flags]",
}

func init() {
	renderCmd.Run = runRender
	RegisterCommand(renderCmd)
}

func runRender(args []string) error {
	fs := newFlagSet(renderCmd)
	var scene sceneFlags
	scene.register(fs)
	out := fs.String("o", "ripple.png", "output PNG path")
	width := fs.Int("width", 480, "surface width")
	height := fs.Int("height", 320, "surface height")
	x := fs.Float64("x", -1, "press x (default: surface center)")
	y := fs.Float64("y", -1, "press y (default: surface center)")
	at := fs.Duration("at", 750*time.Millisecond, "time after the press to capture")
	if ok, err := parse(fs, args); !ok {
		return err
	}
	if *width <= 0 || *height <= 0 {
		return fmt.Errorf("surface size must be positive, got %dx%d", *width, *height)
	}

	root, err := scene.build(nil)
	if err != nil {
		return err
	}

	tester := drifttest.NewTester()
	defer tester.Cleanup()
	size := graphics.Size{Width: float64(*width), Height: float64(*height)}
	tester.SetSize(size)
	if err := tester.PumpRoot(root); err != nil {
		return err
	}

	press := size.Center()
	if *x >= 0 {
		press.X = *x
	}
	if *y >= 0 {
		press.Y = *y
	}
	if err := tester.SendPointerDown(press, 1); err != nil {
		return err
	}
	if err := tester.Pump(); err != nil {
		return err
	}
	if err := tester.Advance(*at); err != nil {
		return err
	}

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", *out, err)
	}
	if err := png.Encode(f, tester.RenderImage()); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", *out, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Printf("wrote %s (radius %.1f at %v)\n", *out, root.Radius(), *at)
	return nil
}
