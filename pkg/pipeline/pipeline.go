// Package pipeline runs the resolve → build → render pipeline.
//
// This is the core of the build tool: scene references from the command
// line are resolved against the registry via fuzzy matching, the selected
// scenes are built into timelines, and the timelines are rendered into
// output artifacts. Centralizing this keeps the CLI and the preview server
// on identical behavior.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Scenes:  []string{"coinLi"},
//	    Quality: "high",
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Run individual stages:
//
//	// Build one scene's timeline
//	tl, err := runner.Build(ctx, def, opts)
//
//	// Render an existing timeline
//	artifacts, err := runner.Render(ctx, tl, opts)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/sketchlab/sketchcast/pkg/anim"
	"github.com/sketchlab/sketchcast/pkg/cache"
	"github.com/sketchlab/sketchcast/pkg/errors"
	"github.com/sketchlab/sketchcast/pkg/match"
	"github.com/sketchlab/sketchcast/pkg/render"
	"github.com/sketchlab/sketchcast/pkg/scene"
)

// Defaults shared by the CLI and the preview server.
const (
	// DefaultQuality is the render profile used when none is given.
	// Low keeps iteration fast; --production switches to high.
	DefaultQuality = "low"

	// DefaultOutDir is the artifact output directory, mirroring the
	// media directory of the sketch editor's renderer.
	DefaultOutDir = "media"
)

// DefaultFormats are the artifact formats rendered when none are given.
var DefaultFormats = []string{string(render.FormatSVG), string(render.FormatJSON)}

// Options contains all configuration for one pipeline run.
// This struct supports JSON serialization for the preview server.
type Options struct {
	// Selection options (fuzzy references, resolved against the registry)
	Paths  []string `json:"paths,omitempty"`
	Files  []string `json:"files,omitempty"`
	Scenes []string `json:"scenes,omitempty"`

	// Render options
	Quality string   `json:"quality,omitempty"`
	Formats []string `json:"formats,omitempty"`
	OutDir  string   `json:"out_dir,omitempty"`

	// Refresh bypasses the cache and overwrites cached entries.
	Refresh bool `json:"refresh,omitempty"`

	// Version invalidates cached timelines across binary releases.
	Version string `json:"version,omitempty"`

	// Runtime options (not serialized)
	Registry *scene.Registry `json:"-"`
	Logger   *log.Logger     `json:"-"`

	// resolved by ValidateAndSetDefaults
	quality   render.Quality
	formats   []render.Format
	validated bool
}

// ValidateAndSetDefaults checks fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if o.Quality == "" {
		o.Quality = DefaultQuality
	}
	q, err := render.ParseQuality(o.Quality)
	if err != nil {
		return err
	}
	o.quality = q

	if len(o.Formats) == 0 {
		o.Formats = DefaultFormats
	}
	o.formats = o.formats[:0]
	for _, f := range o.Formats {
		format, err := render.ParseFormat(f)
		if err != nil {
			return err
		}
		o.formats = append(o.formats, format)
	}

	if o.OutDir == "" {
		o.OutDir = DefaultOutDir
	}
	if err := errors.ValidateOutputPath(o.OutDir); err != nil {
		return err
	}

	if o.Registry == nil {
		o.Registry = scene.Default
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// Selection returns the fuzzy selection axes as a registry selection.
func (o *Options) Selection() scene.Selection {
	return scene.Selection{Paths: o.Paths, Files: o.Files, Scenes: o.Scenes}
}

// RenderQuality returns the resolved render profile.
// ValidateAndSetDefaults must have been called.
func (o *Options) RenderQuality() render.Quality { return o.quality }

// TimelineKeyOpts returns cache key options for timeline building.
func (o *Options) TimelineKeyOpts() cache.TimelineKeyOpts {
	return cache.TimelineKeyOpts{Version: o.Version}
}

// ArtifactKeyOpts returns cache key options for one rendered format.
func (o *Options) ArtifactKeyOpts(format render.Format) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{Quality: o.quality.Name, Format: string(format)}
}

// SceneResult holds the outputs for one rendered scene.
type SceneResult struct {
	// Scene is the scene name.
	Scene string

	// Timeline is the built animation timeline.
	Timeline anim.Timeline

	// TimelineHash is the content hash of the serialized timeline.
	TimelineHash string

	// Artifacts are the rendered outputs keyed by file name
	// (e.g. "CoincidentLine_0003.svg", "CoincidentLine.json").
	Artifacts map[string][]byte

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// JobID identifies this run in logs and artifact metadata.
	JobID string

	// Scenes holds per-scene outputs in registration order.
	Scenes []SceneResult

	// Matches are the fuzzy resolutions performed during selection,
	// including low-confidence ones the caller should surface.
	Matches []match.Match

	// Stats contains timing and size information.
	Stats Stats
}

// LowConfidence returns the subset of matches below the confidence
// threshold.
func (r *Result) LowConfidence() []match.Match {
	var out []match.Match
	for _, m := range r.Matches {
		if m.LowConfidence() {
			out = append(out, m)
		}
	}
	return out
}

// Stats contains pipeline execution statistics.
type Stats struct {
	SceneCount  int
	StepCount   int
	ResolveTime time.Duration
	BuildTime   time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	TimelineHit bool // Whether the built timeline came from cache
	RenderHit   bool // Whether all artifacts came from cache
}
