// Package plate holds the intake plate design scenes: a plate is a set of
// holes, each wrapped by a larger boundary circle, with the plate outline
// running tangent between the boundary circles.
package plate

import (
	"github.com/sketchlab/sketchcast/pkg/anim"
	"github.com/sketchlab/sketchcast/pkg/geom"
	"github.com/sketchlab/sketchcast/pkg/scene"
	"github.com/sketchlab/sketchcast/pkg/sketch"
)

const sourceFile = "design/plate/plate.go"

func init() {
	scene.MustRegister(scene.Definition{Name: "IntakePlate", File: sourceFile, Build: intakePlate})
	scene.MustRegister(scene.Definition{Name: "BoundaryRedraw", File: sourceFile, Build: boundaryRedraw})
	scene.MustRegister(scene.Definition{Name: "BoundaryConstraint", File: sourceFile, Build: boundaryConstraint})
}

// plateCircle pairs a hole with its boundary circle.
type plateCircle struct {
	inner *sketch.Circle
	outer *sketch.Circle
}

func newPlateCircle(center geom.Vec2, radius, offset float64) plateCircle {
	return plateCircle{
		inner: sketch.NewCircle(center, radius),
		outer: sketch.NewCircle(center, radius+offset),
	}
}

// boundaryLine returns the outline segment running tangent along the
// outside of two boundary circles.
func boundaryLine(a, b plateCircle) (*sketch.Line, error) {
	seg, err := geom.TangentSegment(a.outer.Descriptor(), b.outer.Descriptor())
	if err != nil {
		return nil, err
	}
	return sketch.NewLine(seg.Start, seg.End), nil
}

func intakePlate(s *anim.Scene) error {
	small := func(at geom.Vec2) plateCircle { return newPlateCircle(at, 0.15, 0.2) }
	medium := func(at geom.Vec2) plateCircle { return newPlateCircle(at, 0.4, 0.2) }

	front := geom.V(-4, -3)
	middle := geom.V(-1.5, 0.25)
	back := geom.V(2.5, 1.5)

	holes := []plateCircle{
		medium(front),
		medium(middle),
		medium(back),
		small(back.Add(geom.V(0.8, 0.75))),
		small(back.Add(geom.V(1, -0.2))),
		small(middle.Add(back).Scale(0.5)),
		small(front.Add(middle).Scale(0.5)),
	}

	for _, h := range holes {
		s.Create(h.inner)
	}
	for _, h := range holes {
		s.Create(h.outer)
	}

	// outline runs tangent between these holes, in order, closing the loop
	boundary := []int{1, 3, 4, 0}
	for i := range boundary {
		a := holes[boundary[i]]
		b := holes[boundary[(i+1)%len(boundary)]]
		line, err := boundaryLine(a, b)
		if err != nil {
			return err
		}
		s.Create(line)
	}

	s.Wait(anim.EndDelay)
	return nil
}

func boundaryRedraw(s *anim.Scene) error {
	left := newPlateCircle(geom.V(-6, -2), 1.75, 0.75)
	right := newPlateCircle(geom.V(6, -2), 1.75, 0.75)
	middle := newPlateCircle(geom.V(0, -0.75), 1, 0.75)

	line, err := boundaryLine(left, right)
	if err != nil {
		return err
	}
	s.Add(left.inner, left.outer, right.inner, right.outer, line, middle.inner)

	s.Create(middle.outer)

	s.Uncreate(line)
	s.Wait(0.25)

	leftLine, err := boundaryLine(left, middle)
	if err != nil {
		return err
	}
	s.Create(leftLine)

	rightLine, err := boundaryLine(middle, right)
	if err != nil {
		return err
	}
	s.Create(rightLine)

	s.Wait(anim.EndDelay)
	return nil
}

func boundaryConstraint(s *anim.Scene) error {
	left := newPlateCircle(geom.V(-6, -2), 1.75, 0.75)
	right := newPlateCircle(geom.V(6, -2), 1.75, 0.75)
	s.Add(left.inner, left.outer, right.inner, right.outer)

	// a sloppy outline sketched near the tangent points
	seg, err := geom.TangentSegment(left.outer.Descriptor(), right.outer.Descriptor())
	if err != nil {
		return err
	}
	line := sketch.NewLine(seg.Start.Add(geom.V(1.75, 0.75)), seg.End.Add(geom.V(-2, 0.5)))
	s.Create(line)

	if err := s.Apply(sketch.Tangent, line, left.outer); err != nil {
		return err
	}
	if err := s.Apply(sketch.Tangent, line, right.outer); err != nil {
		return err
	}

	s.Wait(anim.EndDelay)
	return nil
}
