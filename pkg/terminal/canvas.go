package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/go-drift/ripple/pkg/graphics"
)

const (
	// CellWidth is the width of one cell in surface units.
	CellWidth = 7.0
	// CellHeight is the height of one cell in surface units.
	CellHeight = 13.0
)

// SurfaceSize returns the surface a cols x rows screen represents.
func SurfaceSize(cols, rows int) graphics.Size {
	return graphics.Size{Width: float64(cols) * CellWidth, Height: float64(rows) * CellHeight}
}

// CellCenter maps a cell to the surface point at its center.
func CellCenter(col, row int) graphics.Offset {
	return graphics.Offset{
		X: (float64(col) + 0.5) * CellWidth,
		Y: (float64(row) + 0.5) * CellHeight,
	}
}

type canvasState struct {
	origin  graphics.Offset
	clip    graphics.Rect
	clipped bool
}

// Canvas draws onto a tcell screen's back buffer. Call Show on the screen
// to present it.
type Canvas struct {
	screen tcell.Screen
	// base is the color assumed under cells whose background is the
	// terminal default.
	base  graphics.Color
	state canvasState
	saved []canvasState
}

// NewCanvas wraps screen. Cells with the terminal default background are
// treated as base when blending.
func NewCanvas(screen tcell.Screen, base graphics.Color) *Canvas {
	return &Canvas{screen: screen, base: base}
}

func (c *Canvas) Save() {
	c.saved = append(c.saved, c.state)
}

func (c *Canvas) Restore() {
	if len(c.saved) == 0 {
		return
	}
	c.state = c.saved[len(c.saved)-1]
	c.saved = c.saved[:len(c.saved)-1]
}

func (c *Canvas) Translate(dx, dy float64) {
	c.state.origin = c.state.origin.Add(graphics.Offset{X: dx, Y: dy})
}

func (c *Canvas) ClipRect(rect graphics.Rect) {
	global := rect.Translate(c.state.origin.X, c.state.origin.Y)
	if c.state.clipped {
		global = c.state.clip.Intersect(global)
	}
	c.state.clip = global
	c.state.clipped = true
}

// Clear blanks every cell to color, ignoring the clip.
func (c *Canvas) Clear(color graphics.Color) {
	style := tcell.StyleDefault.Background(toTcell(color)).Foreground(toTcell(color))
	cols, rows := c.screen.Size()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (c *Canvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	global := rect.Translate(c.state.origin.X, c.state.origin.Y)
	c.fill(global, paint.Color, global.Contains)
}

func (c *Canvas) DrawCircle(center graphics.Offset, radius float64, paint graphics.Paint) {
	if radius <= 0 {
		return
	}
	g := center.Add(c.state.origin)
	bounds := graphics.RectFromCircle(g, radius)
	c.fill(bounds, paint.Color, func(p graphics.Offset) bool {
		return p.Sub(g).Distance() <= radius
	})
}

// DrawText writes one rune per cell starting at the cell containing
// position. The cell background is kept.
func (c *Canvas) DrawText(layout *graphics.TextLayout, position graphics.Offset) {
	if layout == nil || layout.Text == "" {
		return
	}
	g := position.Add(c.state.origin)
	col := int(math.Floor(g.X/CellWidth + 0.5))
	row := int(math.Floor(g.Y/CellHeight + 0.5))
	fg := toTcell(layout.Color)
	for _, r := range layout.Text {
		if c.visible(col, row) {
			_, _, style, _ := c.screen.GetContent(col, row)
			c.screen.SetContent(col, row, r, nil, style.Foreground(fg))
		}
		col++
	}
}

func (c *Canvas) Size() graphics.Size {
	cols, rows := c.screen.Size()
	return SurfaceSize(cols, rows)
}

// fill blends color into every visible cell inside bounds whose center
// satisfies inside.
func (c *Canvas) fill(bounds graphics.Rect, color graphics.Color, inside func(graphics.Offset) bool) {
	alpha := color.Alpha()
	if alpha == 0 {
		return
	}
	cols, rows := c.screen.Size()
	x0 := max(0, int(math.Floor(bounds.Left/CellWidth)))
	y0 := max(0, int(math.Floor(bounds.Top/CellHeight)))
	x1 := min(cols-1, int(math.Ceil(bounds.Right/CellWidth)))
	y1 := min(rows-1, int(math.Ceil(bounds.Bottom/CellHeight)))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if !c.visible(x, y) || !inside(CellCenter(x, y)) {
				continue
			}
			mainc, combc, style, _ := c.screen.GetContent(x, y)
			fg, bg, _ := style.Decompose()
			style = style.
				Background(toTcell(blend(c.fromTcell(bg), color, alpha))).
				Foreground(toTcell(blend(c.fromTcell(fg), color, alpha)))
			c.screen.SetContent(x, y, mainc, combc, style)
		}
	}
}

func (c *Canvas) visible(col, row int) bool {
	if !c.state.clipped {
		return true
	}
	return c.state.clip.Contains(CellCenter(col, row))
}

// blend mixes src over dst by alpha in RGB space.
func blend(dst, src graphics.Color, alpha float64) graphics.Color {
	d := colorful.Color{R: channel(dst, 0), G: channel(dst, 1), B: channel(dst, 2)}
	s := colorful.Color{R: channel(src, 0), G: channel(src, 1), B: channel(src, 2)}
	r, g, b := d.BlendRgb(s, alpha).Clamped().RGB255()
	return graphics.RGB(r, g, b)
}

func channel(c graphics.Color, i int) float64 {
	r, g, b, _ := c.Components()
	return float64([3]uint8{r, g, b}[i]) / 255
}

func toTcell(c graphics.Color) tcell.Color {
	r, g, b, _ := c.Components()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func (c *Canvas) fromTcell(tc tcell.Color) graphics.Color {
	if tc == tcell.ColorDefault {
		return c.base
	}
	r, g, b := tc.RGB()
	if r < 0 {
		return c.base
	}
	return graphics.RGB(uint8(r), uint8(g), uint8(b))
}
