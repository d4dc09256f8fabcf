package ripple

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/ripple/pkg/errors"
	"github.com/go-drift/ripple/pkg/graphics"
	"github.com/go-drift/ripple/pkg/layout"
)

// AttributesMajor is the attribute schema major version this package reads.
const AttributesMajor = "v1"

// Attributes is the declarative form of a Config, as found in a YAML
// document:
//
//	version: v1.0.0
//	color: "#000000"
//	colorAlpha: 0.2
//	minRadius: 100
//	maxRadius: 1500
//	useCenter: false
//
// Missing keys take their defaults. A zero or missing maxRadius means unset.
type Attributes struct {
	Version          string   `yaml:"version,omitempty"`
	Color            string   `yaml:"color,omitempty"`
	ColorAlpha       *float64 `yaml:"colorAlpha,omitempty"`
	MinRadius        *float64 `yaml:"minRadius,omitempty"`
	MaxRadius        float64  `yaml:"maxRadius,omitempty"`
	UseCenter        bool     `yaml:"useCenter,omitempty"`
	RecenterOnResize bool     `yaml:"recenterOnResize,omitempty"`
}

// ParseAttributes decodes a YAML attribute document. Unknown keys are
// rejected so that typos do not silently fall back to defaults.
func ParseAttributes(data []byte) (Attributes, error) {
	var attrs Attributes
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&attrs); err != nil && !stderrors.Is(err, io.EOF) {
		return Attributes{}, &errors.Error{Op: "ripple.ParseAttributes", Kind: errors.KindParsing, Err: err}
	}
	if err := attrs.checkVersion(); err != nil {
		return Attributes{}, err
	}
	return attrs, nil
}

// LoadAttributes reads an attribute file. A missing file yields the zero
// Attributes, which resolve to DefaultConfig.
func LoadAttributes(path string) (Attributes, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return Attributes{}, nil
		}
		return Attributes{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	attrs, err := ParseAttributes(data)
	if err != nil {
		return Attributes{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return attrs, nil
}

func (a Attributes) checkVersion() error {
	if a.Version == "" {
		return nil
	}
	v := a.Version
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return &errors.Error{
			Op:   "ripple.ParseAttributes",
			Kind: errors.KindParsing,
			Err:  &errors.ParseError{Field: "version", Value: a.Version, Reason: "want a semantic version"},
		}
	}
	if semver.Major(v) != AttributesMajor {
		return &errors.Error{
			Op:   "ripple.ParseAttributes",
			Kind: errors.KindParsing,
			Err:  &errors.ParseError{Field: "version", Value: a.Version, Reason: "unsupported major version, want " + AttributesMajor},
		}
	}
	return nil
}

// Config converts the attributes to a validated Config with no child.
func (a Attributes) Config() (Config, error) {
	cfg := DefaultConfig()
	if s := strings.TrimSpace(a.Color); s != "" {
		c, err := graphics.ParseColor(s)
		if err != nil {
			return Config{}, errors.InvalidConfiguration("ripple.Attributes", "color: %v", err)
		}
		cfg.Color = c
	}
	if a.ColorAlpha != nil {
		cfg.Alpha = *a.ColorAlpha
	}
	if a.MinRadius != nil {
		cfg.MinRadius = *a.MinRadius
	}
	cfg.MaxRadius = a.MaxRadius
	cfg.UseCenter = a.UseCenter
	cfg.RecenterOnResize = a.RecenterOnResize
	return cfg.Resolve()
}

// NewFromAttributes builds a container from attributes with an optional child.
func NewFromAttributes(a Attributes, child layout.RenderBox) (*RenderRipple, error) {
	cfg, err := a.Config()
	if err != nil {
		return nil, err
	}
	cfg.Child = child
	return New(cfg)
}
