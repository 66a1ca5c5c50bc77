package geom

import (
	"math"
	"testing"

	"github.com/sketchlab/sketchcast/pkg/errors"
)

const tol = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < tol
}

func vecAlmostEqual(a, b Vec2) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y)
}

func TestVec2Arithmetic(t *testing.T) {
	a := V(1, 2)
	b := V(3, -1)

	if got := a.Add(b); !vecAlmostEqual(got, V(4, 1)) {
		t.Errorf("Add = %v, want (4, 1)", got)
	}
	if got := a.Sub(b); !vecAlmostEqual(got, V(-2, 3)) {
		t.Errorf("Sub = %v, want (-2, 3)", got)
	}
	if got := a.Scale(2); !vecAlmostEqual(got, V(2, 4)) {
		t.Errorf("Scale = %v, want (2, 4)", got)
	}
	if got := a.Dot(b); !almostEqual(got, 1) {
		t.Errorf("Dot = %v, want 1", got)
	}
	if got := a.Cross(b); !almostEqual(got, -7) {
		t.Errorf("Cross = %v, want -7", got)
	}
}

func TestNorm(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2
		want float64
	}{
		{"unit x", V(1, 0), 1},
		{"3-4-5", V(3, 4), 5},
		{"zero", V(0, 0), 0},
		{"negative components", V(-3, -4), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Norm(); !almostEqual(got, tt.want) {
				t.Errorf("Norm() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	v, err := Normalize(V(3, 4))
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if !vecAlmostEqual(v, V(0.6, 0.8)) {
		t.Errorf("Normalize = %v, want (0.6, 0.8)", v)
	}
	if !almostEqual(v.Norm(), 1) {
		t.Errorf("normalized length = %v, want 1", v.Norm())
	}
}

func TestNormalizeZeroVector(t *testing.T) {
	_, err := Normalize(V(0, 0))
	if err == nil {
		t.Fatal("Normalize(zero) should fail")
	}
	if !errors.Is(err, errors.ErrCodeDegenerate) {
		t.Errorf("error code = %v, want DEGENERATE_GEOMETRY", errors.GetCode(err))
	}

	// Near-zero inputs are degenerate too.
	if _, err := Normalize(V(1e-12, -1e-12)); err == nil {
		t.Error("Normalize(near-zero) should fail")
	}
}

func TestDirectionIsUnit(t *testing.T) {
	pairs := []struct {
		a, b Vec2
	}{
		{V(0, 0), V(5, 0)},
		{V(1, 1), V(-2, 7)},
		{V(-3, 0.5), V(-3, 0.6)},
		{V(100, -100), V(-100, 100)},
	}

	for _, p := range pairs {
		d, err := Direction(p.a, p.b)
		if err != nil {
			t.Fatalf("Direction(%v, %v) error: %v", p.a, p.b, err)
		}
		if !almostEqual(d.Norm(), 1) {
			t.Errorf("norm(Direction(%v, %v)) = %v, want 1", p.a, p.b, d.Norm())
		}
	}
}

func TestDirectionCoincidentPoints(t *testing.T) {
	if _, err := Direction(V(2, 3), V(2, 3)); !errors.Is(err, errors.ErrCodeDegenerate) {
		t.Errorf("Direction of coincident points: got %v, want DEGENERATE_GEOMETRY", err)
	}
}

func TestAngleBetweenPoints(t *testing.T) {
	center := V(0, 0)

	tests := []struct {
		name string
		p, q Vec2
		want float64
	}{
		{"same point is zero", V(1, 0), V(1, 0), 0},
		{"quarter turn ccw", V(1, 0), V(0, 1), math.Pi / 2},
		{"quarter turn cw", V(0, 1), V(1, 0), -math.Pi / 2},
		{"half turn", V(1, 0), V(-1, 0), math.Pi},
		{"radius independent", V(5, 0), V(0, 0.1), math.Pi / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AngleBetweenPoints(tt.p, tt.q, center)
			if err != nil {
				t.Fatalf("AngleBetweenPoints error: %v", err)
			}
			if !almostEqual(got, tt.want) {
				t.Errorf("AngleBetweenPoints = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAngleBetweenPointsDegenerate(t *testing.T) {
	c := V(1, 1)
	if _, err := AngleBetweenPoints(c, V(2, 2), c); !errors.Is(err, errors.ErrCodeDegenerate) {
		t.Errorf("p == center: got %v, want DEGENERATE_GEOMETRY", err)
	}
	if _, err := AngleBetweenPoints(V(2, 2), c, c); !errors.Is(err, errors.ErrCodeDegenerate) {
		t.Errorf("q == center: got %v, want DEGENERATE_GEOMETRY", err)
	}
}

func TestProject(t *testing.T) {
	// Project (1, 1) onto the x-axis.
	got, err := Project(V(1, 1), V(0, 0), V(5, 0))
	if err != nil {
		t.Fatalf("Project error: %v", err)
	}
	if !vecAlmostEqual(got, V(1, 0)) {
		t.Errorf("Project = %v, want (1, 0)", got)
	}

	// Projection may fall outside the segment; the line is infinite.
	got, err = Project(V(-3, 2), V(0, 0), V(1, 0))
	if err != nil {
		t.Fatalf("Project error: %v", err)
	}
	if !vecAlmostEqual(got, V(-3, 0)) {
		t.Errorf("Project = %v, want (-3, 0)", got)
	}
}

func TestProjectDegenerateLine(t *testing.T) {
	if _, err := Project(V(1, 1), V(2, 2), V(2, 2)); !errors.Is(err, errors.ErrCodeDegenerate) {
		t.Errorf("Project onto degenerate line: got %v, want DEGENERATE_GEOMETRY", err)
	}
}

func TestRotate(t *testing.T) {
	got := V(1, 0).Rotate(math.Pi / 2)
	if !vecAlmostEqual(got, V(0, 1)) {
		t.Errorf("Rotate(π/2) = %v, want (0, 1)", got)
	}
}

func TestLerp(t *testing.T) {
	a, b := V(0, 0), V(10, -4)
	if got := a.Lerp(b, 0); !vecAlmostEqual(got, a) {
		t.Errorf("Lerp(0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); !vecAlmostEqual(got, b) {
		t.Errorf("Lerp(1) = %v, want %v", got, b)
	}
	if got := a.Lerp(b, 0.5); !vecAlmostEqual(got, V(5, -2)) {
		t.Errorf("Lerp(0.5) = %v, want (5, -2)", got)
	}
}
