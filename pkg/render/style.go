package render

import "github.com/sketchlab/sketchcast/pkg/sketch"

// Palette holds the stroke colors used by the SVG sink, keyed by entity
// state plus the click highlight and canvas background.
type Palette struct {
	Normal      string `json:"normal"`
	Constrained string `json:"constrained"`
	Error       string `json:"error"`
	Highlight   string `json:"highlight"`
	Background  string `json:"background"`
}

// DefaultPalette mirrors the sketch editor look the animations imitate:
// blue strokes while free, black once constrained, yellow click flashes
// on a white canvas.
var DefaultPalette = Palette{
	Normal:      "#1e88e5",
	Constrained: "#1a1a1a",
	Error:       "#e53935",
	Highlight:   "#fdd835",
	Background:  "#ffffff",
}

// Stroke returns the palette color for an entity state.
func (p Palette) Stroke(s sketch.State) string {
	switch s {
	case sketch.StateConstrained:
		return p.Constrained
	case sketch.StateError:
		return p.Error
	default:
		return p.Normal
	}
}
