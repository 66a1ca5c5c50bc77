package plate

import (
	"testing"

	"github.com/sketchlab/sketchcast/pkg/scene"
)

func TestPlateScenesBuild(t *testing.T) {
	for _, name := range []string{"IntakePlate", "BoundaryRedraw", "BoundaryConstraint"} {
		def, ok := scene.Default.Lookup(name)
		if !ok {
			t.Fatalf("scene %s not registered", name)
		}
		tl, err := def.BuildTimeline()
		if err != nil {
			t.Errorf("%s: build error: %v", name, err)
			continue
		}
		if len(tl.Steps) == 0 {
			t.Errorf("%s: timeline has no steps", name)
		}
	}
}

func TestIntakePlateOutlineCloses(t *testing.T) {
	def, _ := scene.Default.Lookup("IntakePlate")
	tl, err := def.BuildTimeline()
	if err != nil {
		t.Fatalf("build error: %v", err)
	}

	// 7 holes, 7 boundary circles, 4 outline segments, final wait
	wantSteps := 7 + 7 + 4 + 1
	if len(tl.Steps) != wantSteps {
		t.Errorf("got %d steps, want %d", len(tl.Steps), wantSteps)
	}
}
