package layout

import (
	"math"

	"github.com/go-drift/ripple/pkg/graphics"
)

// Constraints bound the size a render box may choose during layout.
type Constraints struct {
	MinWidth  float64
	MaxWidth  float64
	MinHeight float64
	MaxHeight float64
}

// Tight returns constraints that only allow the given size.
func Tight(size graphics.Size) Constraints {
	return Constraints{
		MinWidth:  size.Width,
		MaxWidth:  size.Width,
		MinHeight: size.Height,
		MaxHeight: size.Height,
	}
}

// Loose returns constraints from zero up to the given size.
func Loose(size graphics.Size) Constraints {
	return Constraints{MaxWidth: size.Width, MaxHeight: size.Height}
}

// Unbounded returns constraints with no upper limit.
func Unbounded() Constraints {
	return Constraints{MaxWidth: math.Inf(1), MaxHeight: math.Inf(1)}
}

// IsTight reports whether exactly one size satisfies the constraints.
func (c Constraints) IsTight() bool {
	return c.MinWidth >= c.MaxWidth && c.MinHeight >= c.MaxHeight
}

// HasBoundedWidth reports whether MaxWidth is finite.
func (c Constraints) HasBoundedWidth() bool {
	return !math.IsInf(c.MaxWidth, 1)
}

// HasBoundedHeight reports whether MaxHeight is finite.
func (c Constraints) HasBoundedHeight() bool {
	return !math.IsInf(c.MaxHeight, 1)
}

// Constrain clamps size into the allowed range.
func (c Constraints) Constrain(size graphics.Size) graphics.Size {
	return graphics.Size{
		Width:  clamp(size.Width, c.MinWidth, c.MaxWidth),
		Height: clamp(size.Height, c.MinHeight, c.MaxHeight),
	}
}

// Smallest returns the smallest size the constraints allow.
func (c Constraints) Smallest() graphics.Size {
	return c.Constrain(graphics.Size{})
}

// Loosen drops the minimums to zero.
func (c Constraints) Loosen() Constraints {
	return Constraints{MaxWidth: c.MaxWidth, MaxHeight: c.MaxHeight}
}

// Deflate shrinks the constraints by the insets, never below zero.
func (c Constraints) Deflate(insets EdgeInsets) Constraints {
	h, v := insets.Horizontal(), insets.Vertical()
	minW := math.Max(0, c.MinWidth-h)
	minH := math.Max(0, c.MinHeight-v)
	return Constraints{
		MinWidth:  minW,
		MaxWidth:  math.Max(minW, c.MaxWidth-h),
		MinHeight: minH,
		MaxHeight: math.Max(minH, c.MaxHeight-v),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// EdgeInsets are offsets from each side of a box.
type EdgeInsets struct {
	Left, Top, Right, Bottom float64
}

// EdgeInsetsAll returns equal insets on every side.
func EdgeInsetsAll(v float64) EdgeInsets {
	return EdgeInsets{Left: v, Top: v, Right: v, Bottom: v}
}

// EdgeInsetsSymmetric returns horizontal and vertical insets.
func EdgeInsetsSymmetric(horizontal, vertical float64) EdgeInsets {
	return EdgeInsets{Left: horizontal, Top: vertical, Right: horizontal, Bottom: vertical}
}

// Horizontal returns Left + Right.
func (e EdgeInsets) Horizontal() float64 { return e.Left + e.Right }

// Vertical returns Top + Bottom.
func (e EdgeInsets) Vertical() float64 { return e.Top + e.Bottom }
