package render

import (
	"encoding/json"

	"github.com/sketchlab/sketchcast/pkg/anim"
)

// timelineDocument is the JSON artifact written next to the SVG frames.
// Version bumps when the shape schema changes incompatibly.
type timelineDocument struct {
	Version  int           `json:"version"`
	Scene    string        `json:"scene"`
	Quality  Quality       `json:"quality"`
	Duration float64       `json:"duration"`
	Timeline anim.Timeline `json:"timeline"`
}

const timelineVersion = 1

// RenderJSON serializes a timeline into the JSON document format.
func RenderJSON(tl anim.Timeline, q Quality) ([]byte, error) {
	doc := timelineDocument{
		Version:  timelineVersion,
		Scene:    tl.Scene,
		Quality:  q,
		Duration: tl.Duration(),
		Timeline: tl,
	}
	return json.MarshalIndent(doc, "", "  ")
}
