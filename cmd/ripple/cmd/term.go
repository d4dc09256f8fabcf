package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/go-drift/ripple/pkg/graphics"
	"github.com/go-drift/ripple/pkg/terminal"
)

var termCmd = &Command{
	Name:  "term",
	Short: "Run the demo in the terminal",
	Long: `Term hosts the ripple container in the terminal. Press and hold the
left mouse button to grow a ripple. Escape or Ctrl-C quits.

With -sound a short tone plays on every press.`,
	Usage: "ripple term [flags]",
}

func init() {
	termCmd.Run = runTerm
	RegisterCommand(termCmd)
}

const (
	toneSampleRate = beep.SampleRate(44100)
	toneFrequency  = 880
	toneLength     = 40 * time.Millisecond
)

// initTone opens the speaker. The returned function plays one short tone.
func initTone() (func(), error) {
	if err := speaker.Init(toneSampleRate, toneSampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return func() {
		sine, err := generators.SineTone(toneSampleRate, toneFrequency)
		if err != nil {
			return
		}
		speaker.Play(beep.Take(toneSampleRate.N(toneLength), sine))
	}, nil
}

func runTerm(args []string) error {
	fs := newFlagSet(termCmd)
	var scene sceneFlags
	scene.register(fs)
	sound := fs.Bool("sound", false, "play a tone on every press")
	if ok, err := parse(fs, args); !ok {
		return err
	}

	var tone func()
	if *sound {
		play, err := initTone()
		if err != nil {
			// Non-fatal, the demo runs without sound.
			log.Printf("audio initialization failed: %v", err)
		} else {
			tone = play
			defer speaker.Close()
		}
	}

	root, err := scene.build(nil)
	if err != nil {
		return err
	}
	defer root.Dispose()

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	host := terminal.NewHost(screen, root, graphics.ColorWhite)
	if tone != nil {
		host.OnPointerDown = func(graphics.Offset) { tone() }
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return host.Run(ctx)
}
