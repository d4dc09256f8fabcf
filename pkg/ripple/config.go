package ripple

import (
	"math"
	"time"

	"github.com/go-drift/ripple/pkg/errors"
	"github.com/go-drift/ripple/pkg/graphics"
	"github.com/go-drift/ripple/pkg/layout"
)

const (
	// DefaultMinRadius is the minimum radius used when none is configured.
	DefaultMinRadius = 100.0

	// DefaultAlpha is the ripple opacity used when none is configured.
	DefaultAlpha = 50.0 / 255.0

	// MaxRadiusFactor derives an unset MaxRadius from MinRadius.
	MaxRadiusFactor = 10.0

	// Duration is how long a ripple takes to grow to full size.
	Duration = 1500 * time.Millisecond
)

// DefaultColor is the ripple color used when none is configured.
const DefaultColor = graphics.ColorBlack

// Config holds the construction parameters of a ripple container.
type Config struct {
	// Color is the ripple RGB color. Its alpha channel is ignored and
	// replaced by Alpha.
	Color graphics.Color

	// Alpha is the ripple opacity in [0, 1].
	Alpha float64

	// MinRadius is subtracted from MaxRadius to give the fully grown radius.
	MinRadius float64

	// MaxRadius bounds the ripple. Zero means unset and resolves to
	// MaxRadiusFactor * MinRadius.
	MaxRadius float64

	// UseCenter anchors the ripple at the container center instead of the
	// touch point.
	UseCenter bool

	// RecenterOnResize recomputes the cached center when the container
	// changes size. Without it the first center is kept for the lifetime of
	// the container.
	RecenterOnResize bool

	// Child is an optional single child, appended to the child list.
	Child layout.RenderBox
}

// DefaultConfig returns a Config with every default applied.
func DefaultConfig() Config {
	return Config{
		Color:     DefaultColor,
		Alpha:     DefaultAlpha,
		MinRadius: DefaultMinRadius,
	}
}

// Resolve fills in derived defaults and validates the result.
func (c Config) Resolve() (Config, error) {
	const op = "ripple.Config"
	if c.MaxRadius == 0 {
		c.MaxRadius = MaxRadiusFactor * c.MinRadius
	}
	if math.IsNaN(c.Alpha) || c.Alpha < 0 || c.Alpha > 1 {
		return Config{}, errors.InvalidConfiguration(op, "alpha %v outside [0, 1]", c.Alpha)
	}
	if math.IsNaN(c.MinRadius) || c.MinRadius < 0 {
		return Config{}, errors.InvalidConfiguration(op, "min radius %v must be a non-negative number", c.MinRadius)
	}
	if math.IsNaN(c.MaxRadius) || c.MinRadius > c.MaxRadius {
		return Config{}, errors.InvalidConfiguration(op, "min radius %v exceeds max radius %v", c.MinRadius, c.MaxRadius)
	}
	return c, nil
}

// PaintColor returns Color with its alpha channel set from Alpha.
func (c Config) PaintColor() graphics.Color {
	return c.Color.WithAlpha8(graphics.AlphaToByte(c.Alpha))
}

// Builder accumulates a Config fluently. The zero value is not usable;
// start from NewBuilder.
type Builder struct {
	cfg Config
}

// NewBuilder returns a builder seeded with DefaultConfig.
func NewBuilder() *Builder {
	return &Builder{cfg: DefaultConfig()}
}

// Color sets the ripple color.
func (b *Builder) Color(c graphics.Color) *Builder {
	b.cfg.Color = c
	return b
}

// Alpha sets the ripple opacity.
func (b *Builder) Alpha(a float64) *Builder {
	b.cfg.Alpha = a
	return b
}

// MinRadius sets the minimum radius.
func (b *Builder) MinRadius(v float64) *Builder {
	b.cfg.MinRadius = v
	return b
}

// MaxRadius sets the maximum radius.
func (b *Builder) MaxRadius(v float64) *Builder {
	b.cfg.MaxRadius = v
	return b
}

// UseCenter anchors the ripple at the container center.
func (b *Builder) UseCenter(v bool) *Builder {
	b.cfg.UseCenter = v
	return b
}

// RecenterOnResize recomputes the center after a resize.
func (b *Builder) RecenterOnResize(v bool) *Builder {
	b.cfg.RecenterOnResize = v
	return b
}

// Child sets the single child.
func (b *Builder) Child(child layout.RenderBox) *Builder {
	b.cfg.Child = child
	return b
}

// Config returns the accumulated, unvalidated configuration.
func (b *Builder) Config() Config {
	return b.cfg
}

// Build validates the configuration and creates the container.
func (b *Builder) Build() (*RenderRipple, error) {
	return New(b.cfg)
}

// MustBuild is like Build but panics on an invalid configuration.
func (b *Builder) MustBuild() *RenderRipple {
	r, err := b.Build()
	if err != nil {
		panic(err)
	}
	return r
}
