package cmd

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-drift/ripple/pkg/graphics"
)

func TestExecute_UnknownCommand(t *testing.T) {
	if err := Execute([]string{"bogus"}); err == nil {
		t.Error("expected error for unknown command")
	}
}

func TestExecute_Help(t *testing.T) {
	if err := Execute([]string{"render", "-h"}); err != nil {
		t.Errorf("help returned %v", err)
	}
}

func TestRender_WritesPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")
	err := Execute([]string{"render", "-o", out, "-width", "200", "-height", "100", "-x", "20", "-y", "20", "-at", "1500ms"})
	if err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 100 {
		t.Fatalf("bounds = %v", b)
	}
	// A full-size ripple covers the whole surface with black at 20%.
	_, g, _, _ := graphics.FromStdColor(img.At(199, 99)).Components()
	if g < 202 || g > 206 {
		t.Errorf("corner green = %d, want ~204", g)
	}
}

func TestRender_BadConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "ripple.yaml")
	if err := os.WriteFile(cfg, []byte("colorAlpha: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	err := Execute([]string{"render", "-config", cfg, "-o", filepath.Join(dir, "x.png")})
	if err == nil {
		t.Error("expected invalid configuration error")
	}
}

func TestSceneFlags_Defaults(t *testing.T) {
	var f sceneFlags
	f.text = demoText
	root, err := f.build(nil)
	if err != nil {
		t.Fatal(err)
	}
	defer root.Dispose()
	cfg := root.Config()
	if cfg.MinRadius != demoMinRadius || cfg.MaxRadius != demoMaxRadius || root.PaintColor().Alpha8() != 51 {
		t.Errorf("cfg = %+v", cfg)
	}
}
