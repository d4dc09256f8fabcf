package graphics

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DefaultFace is the bitmap face used for text layout and raster drawing.
// Glyphs outside its ASCII range advance by the fixed cell width.
var DefaultFace font.Face = basicfont.Face7x13

// TextLayout is a single line of shaped text ready to draw.
type TextLayout struct {
	Text  string
	Color Color
	Face  font.Face
	// Size is the line box: advance width by ascent plus descent.
	Size Size
	// Ascent is the distance from the top of the line box to the baseline.
	Ascent float64
}

// LayoutText measures text with DefaultFace.
func LayoutText(text string, color Color) *TextLayout {
	return LayoutTextWithFace(text, color, DefaultFace)
}

// LayoutTextWithFace measures text with the given face.
func LayoutTextWithFace(text string, color Color, face font.Face) *TextLayout {
	metrics := face.Metrics()
	advance := font.MeasureString(face, text)
	return &TextLayout{
		Text:  text,
		Color: color,
		Face:  face,
		Size: Size{
			Width:  float64(advance.Ceil()),
			Height: float64((metrics.Ascent + metrics.Descent).Ceil()),
		},
		Ascent: float64(metrics.Ascent.Ceil()),
	}
}
