package graphics

import (
	"image"
	"image/draw"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// RasterCanvas draws immediately into an RGBA image using an anti-aliased
// scanline rasterizer. It backs headless rendering and the windowed demo.
type RasterCanvas struct {
	img     *image.RGBA
	scanner *rasterx.ScannerGV
	filler  *rasterx.Filler
	stroker *rasterx.Stroker
	state   stateStack
}

// NewRasterCanvas allocates a transparent canvas of the given pixel size.
func NewRasterCanvas(width, height int) *RasterCanvas {
	return NewRasterCanvasFor(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewRasterCanvasFor draws into an existing image.
func NewRasterCanvasFor(img *image.RGBA) *RasterCanvas {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	return &RasterCanvas{
		img:     img,
		scanner: scanner,
		filler:  rasterx.NewFiller(w, h, scanner),
		stroker: rasterx.NewStroker(w, h, scanner),
	}
}

// Image returns the backing image.
func (c *RasterCanvas) Image() *image.RGBA {
	return c.img
}

func (c *RasterCanvas) Save() {
	c.state.save()
}

func (c *RasterCanvas) Restore() {
	c.state.restore()
}

func (c *RasterCanvas) Translate(dx, dy float64) {
	c.state.translate(dx, dy)
}

func (c *RasterCanvas) ClipRect(rect Rect) {
	c.state.clipRect(rect)
}

// Clear replaces every pixel, ignoring the clip.
func (c *RasterCanvas) Clear(color Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(color.NRGBA()), image.Point{}, draw.Src)
}

func (c *RasterCanvas) DrawRect(rect Rect, paint Paint) {
	global := rect.Translate(c.state.current.origin.X, c.state.current.origin.Y)
	c.fillAndStroke(paint, func(a rasterx.Adder) {
		rasterx.AddRect(global.Left, global.Top, global.Right, global.Bottom, 0, a)
	})
}

func (c *RasterCanvas) DrawCircle(center Offset, radius float64, paint Paint) {
	if radius <= 0 {
		return
	}
	g := c.state.toGlobal(center)
	c.fillAndStroke(paint, func(a rasterx.Adder) {
		rasterx.AddCircle(g.X, g.Y, radius, a)
	})
}

func (c *RasterCanvas) DrawText(layout *TextLayout, position Offset) {
	if layout == nil || layout.Text == "" {
		return
	}
	clip, ok := c.clip()
	if !ok {
		return
	}
	g := c.state.toGlobal(position)
	face := layout.Face
	if face == nil {
		face = DefaultFace
	}
	d := font.Drawer{
		Dst:  c.img.SubImage(clip).(*image.RGBA),
		Src:  image.NewUniform(layout.Color.NRGBA()),
		Face: face,
		Dot:  fixed.P(int(math.Round(g.X)), int(math.Round(g.Y+layout.Ascent))),
	}
	d.DrawString(layout.Text)
}

func (c *RasterCanvas) Size() Size {
	b := c.img.Bounds()
	return Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// clip returns the current device clip, or false when nothing is visible.
func (c *RasterCanvas) clip() (image.Rectangle, bool) {
	b := c.img.Bounds()
	vis := c.state.visible(RectFromLTWH(float64(b.Min.X), float64(b.Min.Y), float64(b.Dx()), float64(b.Dy())))
	if vis.IsEmpty() {
		return image.Rectangle{}, false
	}
	r := image.Rect(
		int(math.Floor(vis.Left)), int(math.Floor(vis.Top)),
		int(math.Ceil(vis.Right)), int(math.Ceil(vis.Bottom)),
	).Intersect(b)
	return r, !r.Empty()
}

func (c *RasterCanvas) fillAndStroke(paint Paint, path func(rasterx.Adder)) {
	clip, ok := c.clip()
	if !ok || paint.Color.Alpha8() == 0 {
		return
	}
	c.scanner.SetClip(clip)
	if paint.Style == PaintStyleFill || paint.Style == PaintStyleFillAndStroke {
		c.filler.Clear()
		c.filler.SetColor(paint.Color.NRGBA())
		path(c.filler)
		c.filler.Draw()
	}
	if (paint.Style == PaintStyleStroke || paint.Style == PaintStyleFillAndStroke) && paint.StrokeWidth > 0 {
		c.stroker.Clear()
		c.stroker.SetStroke(fixed.Int26_6(paint.StrokeWidth*64), 4*64, rasterx.ButtCap, rasterx.ButtCap, rasterx.FlatGap, rasterx.Miter)
		c.stroker.SetColor(paint.Color.NRGBA())
		path(c.stroker)
		c.stroker.Draw()
	}
}
