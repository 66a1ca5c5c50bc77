package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/sketchlab/sketchcast/pkg/anim"
	"github.com/sketchlab/sketchcast/pkg/cache"
	"github.com/sketchlab/sketchcast/pkg/errors"
	"github.com/sketchlab/sketchcast/pkg/geom"
	"github.com/sketchlab/sketchcast/pkg/render"
	"github.com/sketchlab/sketchcast/pkg/scene"
	"github.com/sketchlab/sketchcast/pkg/sketch"
)

func testRegistry(t *testing.T) *scene.Registry {
	t.Helper()
	r := scene.NewRegistry()
	r.MustRegister(scene.Definition{
		Name: "TangentCircles",
		File: "design/demo/demo.go",
		Build: func(s *anim.Scene) error {
			a := sketch.NewCircle(geom.V(0, 0), 1)
			b := sketch.NewCircle(geom.V(10, 0), 2)
			s.Create(a)
			s.Create(b)
			return s.Apply(sketch.Tangent, b, a)
		},
	})
	return r
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults error: %v", err)
	}
	if opts.RenderQuality().Name != "low" {
		t.Errorf("default quality = %s, want low", opts.RenderQuality().Name)
	}
	if len(opts.Formats) != 2 {
		t.Errorf("default formats = %v, want svg and json", opts.Formats)
	}
	if opts.OutDir != DefaultOutDir {
		t.Errorf("default out dir = %s, want %s", opts.OutDir, DefaultOutDir)
	}
}

func TestOptionsValidation(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"bad quality", Options{Quality: "ultra"}, errors.ErrCodeInvalidQuality},
		{"bad format", Options{Formats: []string{"gif"}}, errors.ErrCodeInvalidFormat},
		{"bad out dir", Options{OutDir: "../outside"}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.code) {
				t.Errorf("got %v, want %s", err, tt.code)
			}
		})
	}
}

func TestExecuteLogsThroughOptionsLogger(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	var buf bytes.Buffer
	_, err := runner.Execute(context.Background(), Options{
		Scenes:   []string{"TangentCircles"},
		Registry: testRegistry(t),
		Logger:   log.New(&buf),
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if !strings.Contains(buf.String(), "resolved scenes") {
		t.Error("run logging should go through the options logger")
	}
}

func TestExecuteRendersSelectedScene(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	result, err := runner.Execute(context.Background(), Options{
		Scenes:   []string{"tanCir"},
		Registry: testRegistry(t),
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if result.JobID == "" {
		t.Error("result should carry a job ID")
	}
	if len(result.Scenes) != 1 {
		t.Fatalf("got %d scenes, want 1", len(result.Scenes))
	}

	sr := result.Scenes[0]
	if sr.Scene != "TangentCircles" {
		t.Errorf("scene = %s, want TangentCircles", sr.Scene)
	}
	if sr.TimelineHash == "" {
		t.Error("scene result should carry a timeline hash")
	}

	// one JSON document plus one SVG per step boundary
	wantSVGs := len(sr.Timeline.Steps) + 1
	var svgs, jsons int
	for name := range sr.Artifacts {
		switch {
		case strings.HasSuffix(name, ".svg"):
			svgs++
		case strings.HasSuffix(name, ".json"):
			jsons++
		}
	}
	if svgs != wantSVGs {
		t.Errorf("got %d SVG artifacts, want %d", svgs, wantSVGs)
	}
	if jsons != 1 {
		t.Errorf("got %d JSON artifacts, want 1", jsons)
	}

	if len(result.LowConfidence()) == 0 {
		t.Error("abbreviated query should produce a low-confidence match")
	}
	if result.Stats.SceneCount != 1 || result.Stats.StepCount != len(sr.Timeline.Steps) {
		t.Errorf("stats = %+v", result.Stats)
	}
}

func TestExecuteEmptyRegistry(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	_, err := runner.Execute(context.Background(), Options{
		Registry: scene.NewRegistry(),
	})
	if !errors.Is(err, errors.ErrCodeSceneNotFound) {
		t.Errorf("got %v, want SCENE_NOT_FOUND", err)
	}
}

func TestExecuteCaching(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	runner := NewRunner(fc, nil, nil)
	defer runner.Close()

	opts := Options{
		Scenes:   []string{"TangentCircles"},
		Registry: testRegistry(t),
		Version:  "test",
	}

	first, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("first Execute error: %v", err)
	}
	if first.Scenes[0].CacheInfo.TimelineHit || first.Scenes[0].CacheInfo.RenderHit {
		t.Error("first run should miss the cache")
	}

	second, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("second Execute error: %v", err)
	}
	ci := second.Scenes[0].CacheInfo
	if !ci.TimelineHit || !ci.RenderHit {
		t.Errorf("second run should hit the cache: %+v", ci)
	}
	if second.Scenes[0].TimelineHash != first.Scenes[0].TimelineHash {
		t.Error("timeline hash should be stable across runs")
	}

	// Refresh bypasses the cache
	opts.Refresh = true
	third, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("third Execute error: %v", err)
	}
	if third.Scenes[0].CacheInfo.TimelineHit {
		t.Error("refresh run should not hit the cache")
	}
}

func TestBuildReturnsValidatedTimeline(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	reg := testRegistry(t)
	def, _ := reg.Lookup("TangentCircles")

	tl, err := runner.Build(context.Background(), def, Options{Registry: reg})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if tl.Scene != "TangentCircles" {
		t.Errorf("timeline scene = %s", tl.Scene)
	}
	if len(tl.Steps) == 0 {
		t.Error("timeline should have steps")
	}
}

func TestRenderUnknownFormatRejected(t *testing.T) {
	_, err := renderFormat(anim.Timeline{Scene: "X"}, render.Format("gif"), render.Low)
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("got %v, want INVALID_FORMAT", err)
	}
}

func TestWriteArtifacts(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	result, err := runner.Execute(context.Background(), Options{
		Registry: testRegistry(t),
		Formats:  []string{"json"},
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	dir := t.TempDir()
	written, err := WriteArtifacts(dir, result)
	if err != nil {
		t.Fatalf("WriteArtifacts error: %v", err)
	}
	if len(written) != 1 {
		t.Fatalf("got %d files, want 1", len(written))
	}

	want := filepath.Join(dir, "TangentCircles", "TangentCircles.json")
	if written[0] != want {
		t.Errorf("path = %s, want %s", written[0], want)
	}
	if _, err := os.Stat(want); err != nil {
		t.Errorf("artifact not on disk: %v", err)
	}
}
