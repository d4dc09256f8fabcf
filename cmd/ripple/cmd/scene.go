package cmd

import (
	"flag"

	"github.com/go-drift/ripple/pkg/graphics"
	"github.com/go-drift/ripple/pkg/layout"
	"github.com/go-drift/ripple/pkg/ripple"
	"github.com/go-drift/ripple/pkg/widgets"
)

// Demo defaults used when no attribute file is given.
const (
	demoAlpha     = 0.2
	demoMinRadius = 100
	demoMaxRadius = 1500
	demoText      = "Hot and sour soup"
)

// sceneFlags are the flags every subcommand shares.
type sceneFlags struct {
	config    string
	useCenter bool
	text      string
}

func (f *sceneFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.config, "config", "", "YAML ripple attribute file")
	fs.BoolVar(&f.useCenter, "center", false, "grow ripples from the container center")
	fs.StringVar(&f.text, "text", demoText, "label text")
}

// attributes returns the attributes from -config, or the demo defaults.
func (f *sceneFlags) attributes() (ripple.Attributes, error) {
	if f.config != "" {
		attrs, err := ripple.LoadAttributes(f.config)
		if err != nil {
			return ripple.Attributes{}, err
		}
		attrs.UseCenter = attrs.UseCenter || f.useCenter
		return attrs, nil
	}
	alpha, minRadius := demoAlpha, float64(demoMinRadius)
	return ripple.Attributes{
		Color:      "black",
		ColorAlpha: &alpha,
		MinRadius:  &minRadius,
		MaxRadius:  demoMaxRadius,
		UseCenter:  f.useCenter,
	}, nil
}

// build creates the ripple container around a padded label. onClick runs
// when a press is released over the container.
func (f *sceneFlags) build(onClick func()) (*ripple.RenderRipple, error) {
	attrs, err := f.attributes()
	if err != nil {
		return nil, err
	}
	label := widgets.Label{
		Text:    f.text,
		Color:   graphics.ColorBlack,
		Padding: layout.EdgeInsetsAll(100),
		OnClick: onClick,
	}.CreateRenderObject()
	return ripple.NewFromAttributes(attrs, label)
}
