// Package constraint holds one demo scene per constraint kind, each
// showing the click-click-snap sequence of applying it in a sketch.
package constraint

import (
	"github.com/sketchlab/sketchcast/pkg/anim"
	"github.com/sketchlab/sketchcast/pkg/geom"
	"github.com/sketchlab/sketchcast/pkg/scene"
	"github.com/sketchlab/sketchcast/pkg/sketch"
)

const sourceFile = "design/constraint/constraint.go"

func init() {
	demos := []struct {
		name  string
		build scene.BuildFunc
	}{
		{"CoincidentPoint", coincidentPoint},
		{"CoincidentLine", coincidentLine},
		{"TangentCircles", tangentCircles},
		{"TangentLine", tangentLine},
		{"EqualCircles", equalCircles},
		{"HorizontalLine", horizontalLine},
		{"VerticalLine", verticalLine},
		{"MidpointLine", midpointLine},
		{"ConcentricCircles", concentricCircles},
	}
	for _, d := range demos {
		scene.MustRegister(scene.Definition{Name: d.name, File: sourceFile, Build: d.build})
	}
}

// demo creates the entities, applies the constraint, and holds the result.
func demo(s *anim.Scene, c sketch.Constraint, base, target sketch.Entity) error {
	s.Create(base)
	if target != nil {
		s.Create(target)
	}
	if err := s.Apply(c, base, target); err != nil {
		return err
	}
	s.Wait(anim.EndDelay)
	return nil
}

func coincidentPoint(s *anim.Scene) error {
	p := sketch.NewPoint(geom.V(-2, 1))
	q := sketch.NewPoint(geom.V(2, -1))
	return demo(s, sketch.Coincident, p, q)
}

func coincidentLine(s *anim.Scene) error {
	p := sketch.NewPoint(geom.V(-1, 2))
	l := sketch.NewLine(geom.V(-4, -1), geom.V(4, -1))
	return demo(s, sketch.Coincident, p, l)
}

func tangentCircles(s *anim.Scene) error {
	a := sketch.NewCircle(geom.V(-3, 0), 1)
	b := sketch.NewCircle(geom.V(2.5, 0.5), 1.5)
	return demo(s, sketch.Tangent, a, b)
}

func tangentLine(s *anim.Scene) error {
	l := sketch.NewLine(geom.V(-4, 2.5), geom.V(4, 2.5))
	c := sketch.NewCircle(geom.V(0, -0.5), 1.5)
	return demo(s, sketch.Tangent, l, c)
}

func equalCircles(s *anim.Scene) error {
	a := sketch.NewCircle(geom.V(-2.5, 0), 0.75)
	b := sketch.NewCircle(geom.V(2.5, 0), 1.5)
	return demo(s, sketch.Equal, a, b)
}

func horizontalLine(s *anim.Scene) error {
	l := sketch.NewLine(geom.V(-3, -1), geom.V(3, 1))
	return demo(s, sketch.Horizontal, l, nil)
}

func verticalLine(s *anim.Scene) error {
	l := sketch.NewLine(geom.V(-1, -2.5), geom.V(1, 2.5))
	return demo(s, sketch.Vertical, l, nil)
}

func midpointLine(s *anim.Scene) error {
	p := sketch.NewPoint(geom.V(2, 2))
	l := sketch.NewLine(geom.V(-3, -2), geom.V(3, -2))
	return demo(s, sketch.Midpoint, p, l)
}

func concentricCircles(s *anim.Scene) error {
	a := sketch.NewCircle(geom.V(-2, 1), 0.75)
	b := sketch.NewCircle(geom.V(1.5, -0.5), 2)
	return demo(s, sketch.Concentric, a, b)
}
