package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/sketchlab/sketchcast/pkg/anim"
	"github.com/sketchlab/sketchcast/pkg/cache"
	"github.com/sketchlab/sketchcast/pkg/errors"
	"github.com/sketchlab/sketchcast/pkg/observability"
	"github.com/sketchlab/sketchcast/pkg/render"
	"github.com/sketchlab/sketchcast/pkg/scene"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete resolve → build → render pipeline with caching.
// Logging goes through opts.Logger when set, the runner's logger otherwise.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{JobID: uuid.NewString()}
	logger := opts.Logger.With("job", result.JobID)

	// Stage 1: Resolve
	resolveStart := time.Now()
	observability.Pipeline().OnResolveStart(ctx)
	defs, matches, err := opts.Registry.Resolve(opts.Selection())
	observability.Pipeline().OnResolveComplete(ctx, len(defs), time.Since(resolveStart), err)
	if err != nil {
		return nil, err
	}
	result.Matches = matches
	result.Stats.ResolveTime = time.Since(resolveStart)

	if len(defs) == 0 {
		return nil, errors.New(errors.ErrCodeSceneNotFound,
			"no scenes match the given selection")
	}

	for _, m := range matches {
		if m.LowConfidence() {
			logger.Warn("low-confidence match",
				"query", m.Query, "target", m.Target, "score", m.Score)
		}
	}
	logger.Info("resolved scenes",
		"count", len(defs),
		"duration", result.Stats.ResolveTime)

	for _, def := range defs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		sr, err := r.runScene(ctx, def, opts, logger)
		if err != nil {
			return nil, err
		}
		result.Scenes = append(result.Scenes, sr)
		result.Stats.SceneCount++
		result.Stats.StepCount += len(sr.Timeline.Steps)
	}

	return result, nil
}

func (r *Runner) runScene(ctx context.Context, def scene.Definition, opts Options, logger *log.Logger) (SceneResult, error) {
	sr := SceneResult{Scene: def.Name}

	// Stage 2: Build
	buildStart := time.Now()
	observability.Pipeline().OnBuildStart(ctx, def.Name)
	tl, timelineHit, err := r.BuildWithCacheInfo(ctx, def, opts)
	observability.Pipeline().OnBuildComplete(ctx, def.Name, len(tl.Steps), time.Since(buildStart), err)
	if err != nil {
		return sr, err
	}
	sr.Timeline = tl
	sr.CacheInfo.TimelineHit = timelineHit
	buildTime := time.Since(buildStart)

	logger.Info("built timeline",
		"scene", def.Name,
		"steps", len(tl.Steps),
		"duration", buildTime)

	// Stage 3: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, def.Name, opts.Formats)
	artifacts, hash, renderHit, err := r.RenderWithCacheInfo(ctx, tl, opts)
	observability.Pipeline().OnRenderComplete(ctx, def.Name, opts.Formats, time.Since(renderStart), err)
	if err != nil {
		return sr, err
	}
	sr.Artifacts = artifacts
	sr.TimelineHash = hash
	sr.CacheInfo.RenderHit = renderHit
	renderTime := time.Since(renderStart)

	logger.Info("rendered artifacts",
		"scene", def.Name,
		"files", len(artifacts),
		"formats", opts.Formats,
		"duration", renderTime)

	return sr, nil
}

// BuildWithCacheInfo builds a scene timeline with caching and returns
// cache hit info.
func (r *Runner) BuildWithCacheInfo(ctx context.Context, def scene.Definition, opts Options) (anim.Timeline, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return anim.Timeline{}, false, err
	}

	cacheKey := r.Keyer.TimelineKey(def.Name, opts.TimelineKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var tl anim.Timeline
			if err := json.Unmarshal(data, &tl); err == nil {
				observability.Cache().OnCacheHit(ctx, "timeline")
				return tl, true, nil // Cache hit
			}
		}
		observability.Cache().OnCacheMiss(ctx, "timeline")
	}

	tl, err := def.BuildTimeline()
	if err != nil {
		return anim.Timeline{}, false, err
	}

	if data, err := json.Marshal(tl); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLTimeline)
		observability.Cache().OnCacheSet(ctx, "timeline", len(data))
	}

	return tl, false, nil // Cache miss
}

// Build is a convenience wrapper that discards the cache hit info.
func (r *Runner) Build(ctx context.Context, def scene.Definition, opts Options) (anim.Timeline, error) {
	tl, _, err := r.BuildWithCacheInfo(ctx, def, opts)
	return tl, err
}

// RenderWithCacheInfo renders a timeline with caching. It returns the
// artifacts keyed by file name, the timeline content hash, and cache hit
// info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, tl anim.Timeline, opts Options) (map[string][]byte, string, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, "", false, err
	}

	timelineData, err := json.Marshal(tl)
	if err != nil {
		return nil, "", false, errors.Wrap(errors.ErrCodeRender, err, "serialize timeline for cache key")
	}
	timelineHash := cache.Hash(timelineData)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	if !opts.Refresh {
		for _, format := range opts.formats {
			cacheKey := r.Keyer.ArtifactKey(timelineHash, opts.ArtifactKeyOpts(format))
			data, hit, err := r.Cache.Get(ctx, cacheKey)
			if err != nil || !hit {
				allCached = false
				break
			}
			files, err := decodeArtifactBundle(data)
			if err != nil {
				allCached = false
				break
			}
			for name, content := range files {
				artifacts[name] = content
			}
		}
		if allCached {
			observability.Cache().OnCacheHit(ctx, "artifact")
			return artifacts, timelineHash, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	artifacts = make(map[string][]byte)
	for _, format := range opts.formats {
		files, err := renderFormat(tl, format, opts.quality)
		if err != nil {
			return nil, "", false, err
		}
		cacheKey := r.Keyer.ArtifactKey(timelineHash, opts.ArtifactKeyOpts(format))
		if data, err := encodeArtifactBundle(files); err == nil {
			_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
		for name, content := range files {
			artifacts[name] = content
		}
	}

	return artifacts, timelineHash, false, nil // Cache miss
}

// Render is a convenience wrapper that discards hash and cache hit info.
func (r *Runner) Render(ctx context.Context, tl anim.Timeline, opts Options) (map[string][]byte, error) {
	artifacts, _, _, err := r.RenderWithCacheInfo(ctx, tl, opts)
	return artifacts, err
}

// renderFormat renders one format of a timeline into named files.
func renderFormat(tl anim.Timeline, format render.Format, q render.Quality) (map[string][]byte, error) {
	files := make(map[string][]byte)
	switch format {
	case render.FormatSVG:
		for _, kf := range render.Keyframes(tl) {
			name := fmt.Sprintf("%s_%04d.svg", tl.Scene, kf.Index)
			files[name] = render.RenderSVG(kf.Snapshot, render.WithQuality(q))
		}
	case render.FormatJSON:
		data, err := render.RenderJSON(tl, q)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeRender, err, "render %s timeline", tl.Scene)
		}
		files[tl.Scene+".json"] = data
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", format)
	}
	return files, nil
}

// Artifact bundles are cached as one entry per format so a hit restores
// every file of that format at once.

func encodeArtifactBundle(files map[string][]byte) ([]byte, error) {
	return json.Marshal(files)
}

func decodeArtifactBundle(data []byte) (map[string][]byte, error) {
	var files map[string][]byte
	if err := json.Unmarshal(data, &files); err != nil {
		return nil, err
	}
	return files, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
// It must run before validation, which fills a discard logger otherwise.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
