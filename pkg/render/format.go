package render

import (
	"strings"

	"github.com/sketchlab/sketchcast/pkg/errors"
)

// Format is an output artifact format.
type Format string

// Supported output formats.
const (
	FormatSVG  Format = "svg"
	FormatJSON Format = "json"
)

// ParseFormat resolves a format by name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatSVG:
		return FormatSVG, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat,
			"unknown format %q (expected svg or json)", s)
	}
}

// Ext returns the file extension for the format, without the dot.
func (f Format) Ext() string { return string(f) }
