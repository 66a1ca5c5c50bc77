package anim

import (
	"math"
	"testing"

	"github.com/sketchlab/sketchcast/pkg/errors"
	"github.com/sketchlab/sketchcast/pkg/geom"
	"github.com/sketchlab/sketchcast/pkg/sketch"
)

func TestSceneStackingOrder(t *testing.T) {
	s := NewScene("test")
	a := sketch.NewCircle(geom.V(0, 0), 1)
	b := sketch.NewCircle(geom.V(3, 0), 1)
	s.Add(a, b)

	tl := s.Timeline()
	if len(tl.Initial.Shapes) != 2 {
		t.Fatalf("got %d shapes, want 2", len(tl.Initial.Shapes))
	}
	if tl.Initial.Shapes[0].Z >= tl.Initial.Shapes[1].Z {
		t.Error("later-added entity should stack higher")
	}
}

func TestClickRaisesEntity(t *testing.T) {
	s := NewScene("test")
	a := sketch.NewCircle(geom.V(0, 0), 1)
	b := sketch.NewCircle(geom.V(3, 0), 1)
	s.Add(a, b)

	// Clicking the first entity lifts it above the second.
	s.Click(a)

	tl := s.Timeline()
	step := tl.Steps[len(tl.Steps)-1]
	if step.Kind != StepClick {
		t.Fatalf("step kind = %v, want click", step.Kind)
	}
	if step.Snapshot.Shapes[0].Z <= step.Snapshot.Shapes[1].Z {
		t.Error("clicked entity should stack above the rest")
	}
	if !step.Snapshot.Shapes[0].Highlight {
		t.Error("clicked entity should be highlighted in the click step")
	}
	if step.Snapshot.Shapes[1].Highlight {
		t.Error("unclicked entity should not be highlighted")
	}
}

func TestStackingCounterIsPerScene(t *testing.T) {
	// Two scenes clicking entities independently produce identical indices:
	// no counter state leaks between scenes.
	build := func() Timeline {
		s := NewScene("test")
		c := sketch.NewCircle(geom.V(0, 0), 1)
		s.Add(c)
		s.Click(c)
		return s.Timeline()
	}

	one := build()
	two := build()
	z1 := one.Steps[0].Snapshot.Shapes[0].Z
	z2 := two.Steps[0].Snapshot.Shapes[0].Z
	if z1 != z2 {
		t.Errorf("stacking indices differ across scenes: %d vs %d", z1, z2)
	}
}

func TestCreateStepVisibility(t *testing.T) {
	s := NewScene("test")
	c := sketch.NewCircle(geom.V(0, 0), 1)
	s.Create(c)

	tl := s.Timeline()
	if len(tl.Steps) != 1 {
		t.Fatalf("got %d steps, want 1", len(tl.Steps))
	}
	if tl.Initial.Shapes[0].Visible {
		t.Error("entity should be hidden before its create step")
	}
	if !tl.Steps[0].Snapshot.Shapes[0].Visible {
		t.Error("entity should be visible after its create step")
	}
}

func TestUncreateStepVisibility(t *testing.T) {
	s := NewScene("test")
	c := sketch.NewCircle(geom.V(0, 0), 1)
	s.Add(c)
	s.Uncreate(c)

	tl := s.Timeline()
	if tl.Steps[0].Snapshot.Shapes[0].Visible {
		t.Error("entity should be hidden after uncreate")
	}
}

func TestApplyConstraintRecordsClicksAndMove(t *testing.T) {
	s := NewScene("test")
	moving := sketch.NewCircle(geom.V(0, 0), 1)
	fixed := sketch.NewCircle(geom.V(10, 0), 2)
	s.Add(moving, fixed)

	if err := s.Apply(sketch.Tangent, moving, fixed); err != nil {
		t.Fatalf("Apply error: %v", err)
	}

	tl := s.Timeline()
	kinds := make([]StepKind, len(tl.Steps))
	for i, step := range tl.Steps {
		kinds[i] = step.Kind
	}
	want := []StepKind{StepClick, StepClick, StepMove}
	if len(kinds) != len(want) {
		t.Fatalf("step kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("step[%d] = %v, want %v", i, kinds[i], want[i])
		}
	}

	// The move lands the circle tangent to the fixed one.
	dist := fixed.Center().Sub(moving.Center()).Norm()
	if math.Abs(dist-3) > 1e-9 {
		t.Errorf("center distance = %v, want 3", dist)
	}
	if moving.State() != sketch.StateConstrained {
		t.Error("base entity should be constrained after Apply")
	}
	if fixed.State() != sketch.StateConstrained {
		t.Error("target entity should be constrained after Apply")
	}
}

func TestApplyUnsupportedLeavesTimelineUnchanged(t *testing.T) {
	s := NewScene("test")
	p := sketch.NewPoint(geom.V(0, 0))
	a := sketch.NewArc(geom.V(1, 0), 1, 0, 1)
	s.Add(p, a)

	err := s.Apply(sketch.Tangent, p, a)
	if !errors.Is(err, errors.ErrCodeUnsupportedConstraint) {
		t.Fatalf("got %v, want UNSUPPORTED_CONSTRAINT", err)
	}
	if got := len(s.Timeline().Steps); got != 0 {
		t.Errorf("failed Apply recorded %d steps, want 0", got)
	}
}

func TestSceneValidate(t *testing.T) {
	s := NewScene("empty")
	if err := s.Validate(); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("empty scene: got %v, want INVALID_INPUT", err)
	}

	c := sketch.NewCircle(geom.V(0, 0), 1)
	s.Add(c)
	if err := s.Validate(); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("scene without steps: got %v, want INVALID_INPUT", err)
	}

	s.Wait(1)
	if err := s.Validate(); err != nil {
		t.Errorf("playable scene: got %v, want nil", err)
	}
}

func TestTimelineDuration(t *testing.T) {
	s := NewScene("test")
	c := sketch.NewCircle(geom.V(0, 0), 1)
	s.Create(c) // 1.0
	s.Click(c)  // 0.75
	s.Wait(2)   // 2.0

	if got := s.Timeline().Duration(); math.Abs(got-3.75) > 1e-9 {
		t.Errorf("Duration = %v, want 3.75", got)
	}
}

func TestInterpolate(t *testing.T) {
	s := NewScene("test")
	moving := sketch.NewCircle(geom.V(0, 0), 1)
	fixed := sketch.NewCircle(geom.V(10, 0), 2)
	s.Add(moving, fixed)
	if err := s.Apply(sketch.Tangent, moving, fixed); err != nil {
		t.Fatalf("Apply error: %v", err)
	}

	tl := s.Timeline()
	moveStep := tl.Steps[len(tl.Steps)-1]
	before := tl.Steps[len(tl.Steps)-2].Snapshot

	mid := Interpolate(before, moveStep.Snapshot, 0.5)
	// The moving circle's center is halfway along its 7-unit slide.
	if got := mid.Shapes[0].Center; math.Abs(got.X-3.5) > 1e-9 {
		t.Errorf("midpoint center X = %v, want 3.5", got.X)
	}

	if got := Interpolate(before, moveStep.Snapshot, 0); got.Shapes[0].Center != before.Shapes[0].Center {
		t.Error("t=0 should return the from snapshot")
	}
	if got := Interpolate(before, moveStep.Snapshot, 1); got.Shapes[0].Center != moveStep.Snapshot.Shapes[0].Center {
		t.Error("t=1 should return the to snapshot")
	}
}
