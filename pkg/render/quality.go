package render

import (
	"math"
	"strings"

	"github.com/sketchlab/sketchcast/pkg/errors"
)

// Quality is a render profile: frame rate and frame size in pixels.
type Quality struct {
	Name   string `json:"name"`
	FPS    int    `json:"fps"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Render profiles. Low is the default for iterating on a scene; High is
// the production profile.
var (
	Low    = Quality{Name: "low", FPS: 15, Width: 854, Height: 480}
	Medium = Quality{Name: "medium", FPS: 30, Width: 1280, Height: 720}
	High   = Quality{Name: "high", FPS: 60, Width: 1920, Height: 1080}
)

// ParseQuality resolves a profile by name. Single-letter abbreviations
// (l, m, h) are accepted.
func ParseQuality(s string) (Quality, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low", "l":
		return Low, nil
	case "medium", "m":
		return Medium, nil
	case "high", "h":
		return High, nil
	default:
		return Quality{}, errors.New(errors.ErrCodeInvalidQuality,
			"unknown quality %q (expected low, medium or high)", s)
	}
}

// FrameCount returns the number of frames a span of the given duration
// occupies at this profile's frame rate, at least one.
func (q Quality) FrameCount(seconds float64) int {
	n := int(math.Round(seconds * float64(q.FPS)))
	if n < 1 {
		return 1
	}
	return n
}
