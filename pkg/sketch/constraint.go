package sketch

import (
	"math"

	"github.com/sketchlab/sketchcast/pkg/errors"
	"github.com/sketchlab/sketchcast/pkg/geom"
)

// Constraint identifies a relationship kind between sketch entities.
type Constraint string

// Constraint kinds.
const (
	Coincident Constraint = "coincident"
	Tangent    Constraint = "tangent"
	Equal      Constraint = "equal"
	Horizontal Constraint = "horizontal"
	Vertical   Constraint = "vertical"
	Midpoint   Constraint = "midpoint"
	Concentric Constraint = "concentric"
)

// Mutation describes how an entity must change to satisfy a constraint.
// Zero-valued fields mean "no change". Mutations are produced by Solve and
// consumed by the animation layer, which interpolates toward the end state.
type Mutation struct {
	Translate geom.Vec2  // displacement of the whole entity
	Radius    *float64   // new radius for radial entities
	Start     *geom.Vec2 // new start vertex for lines
	End       *geom.Vec2 // new end vertex for lines
}

// IsZero reports whether the mutation changes nothing.
func (m Mutation) IsZero() bool {
	return m.Translate.IsZero() && m.Radius == nil && m.Start == nil && m.End == nil
}

// Apply applies the mutation to e immediately. The animation layer uses
// this for the final frame; tests use it to verify constraint end states.
func (m Mutation) Apply(e Entity) {
	if !m.Translate.IsZero() {
		e.Translate(m.Translate)
	}
	if m.Radius != nil {
		if r, ok := e.(Radial); ok {
			r.SetRadius(*m.Radius)
		}
	}
	if l, ok := e.(*Line); ok {
		if m.Start != nil {
			l.MoveStart(*m.Start)
		}
		if m.End != nil {
			l.MoveEnd(*m.End)
		}
	}
}

// Solver computes the mutation moving base into a constrained position
// relative to target. For unary constraints target is nil.
type Solver func(base, target Entity) (Mutation, error)

// solverKey indexes the dispatch table. An empty target kind marks a unary
// constraint.
type solverKey struct {
	constraint Constraint
	base       Kind
	target     Kind
}

// solvers is the capability table mapping (constraint, base kind, target
// kind) to the solver that computes the base entity's mutation.
var solvers = map[solverKey]Solver{
	{Coincident, KindPoint, KindPoint}:  coincidentPointPoint,
	{Coincident, KindPoint, KindLine}:   coincidentPointLine,
	{Coincident, KindPoint, KindCircle}: coincidentPointCircle,

	{Tangent, KindCircle, KindCircle}: tangentRadialRadial,
	{Tangent, KindCircle, KindArc}:    tangentRadialRadial,
	{Tangent, KindArc, KindCircle}:    tangentRadialRadial,
	{Tangent, KindArc, KindArc}:       tangentRadialRadial,
	{Tangent, KindLine, KindCircle}:   tangentLineRadial,
	{Tangent, KindLine, KindArc}:      tangentLineRadial,
	{Tangent, KindCircle, KindLine}:   tangentRadialLine,
	{Tangent, KindArc, KindLine}:      tangentRadialLine,

	{Equal, KindCircle, KindCircle}: equalRadial,
	{Equal, KindCircle, KindArc}:    equalRadial,
	{Equal, KindArc, KindCircle}:    equalRadial,
	{Equal, KindArc, KindArc}:       equalRadial,

	{Horizontal, KindLine, ""}:         horizontalLine,
	{Horizontal, KindPoint, KindPoint}: horizontalPointPoint,
	{Vertical, KindLine, ""}:           verticalLine,
	{Vertical, KindPoint, KindPoint}:   verticalPointPoint,

	{Midpoint, KindPoint, KindLine}: midpointPointLine,

	{Concentric, KindCircle, KindCircle}: concentricRadial,
	{Concentric, KindCircle, KindArc}:    concentricRadial,
	{Concentric, KindArc, KindCircle}:    concentricRadial,
	{Concentric, KindArc, KindArc}:       concentricRadial,
}

// Solve computes the mutation that moves base to satisfy the constraint
// relative to target. Target is nil for unary constraints (Horizontal and
// Vertical on a single line). It returns an UNSUPPORTED_CONSTRAINT error
// when no solver exists for the entity pair, and propagates
// DEGENERATE_GEOMETRY errors from the geometry helpers.
func Solve(c Constraint, base, target Entity) (Mutation, error) {
	if base == nil {
		return Mutation{}, errors.New(errors.ErrCodeInvalidInput, "constraint %s requires a base entity", c)
	}
	var targetKind Kind
	if target != nil {
		targetKind = target.Kind()
	}
	solver, ok := solvers[solverKey{c, base.Kind(), targetKind}]
	if !ok {
		if targetKind == "" {
			return Mutation{}, errors.New(errors.ErrCodeUnsupportedConstraint, "%s is not defined for %s", c, base.Kind())
		}
		return Mutation{}, errors.New(errors.ErrCodeUnsupportedConstraint, "%s is not defined for %s and %s", c, base.Kind(), targetKind)
	}
	return solver(base, target)
}

// Supported reports whether a solver exists for the given combination.
func Supported(c Constraint, base Kind, target Kind) bool {
	_, ok := solvers[solverKey{c, base, target}]
	return ok
}

func coincidentPointPoint(base, target Entity) (Mutation, error) {
	p := base.(*Point)
	q := target.(*Point)
	return Mutation{Translate: q.Pos().Sub(p.Pos())}, nil
}

func coincidentPointLine(base, target Entity) (Mutation, error) {
	p := base.(*Point)
	l := target.(*Line)
	foot, err := geom.Project(p.Pos(), l.Start(), l.End())
	if err != nil {
		return Mutation{}, err
	}
	return Mutation{Translate: foot.Sub(p.Pos())}, nil
}

func coincidentPointCircle(base, target Entity) (Mutation, error) {
	p := base.(*Point)
	c := target.(*Circle)
	dir, err := geom.Direction(c.Center(), p.Pos())
	if err != nil {
		return Mutation{}, errors.New(errors.ErrCodeDegenerate, "point coincides with circle center %s", c.Center())
	}
	closest := c.Center().Add(dir.Scale(c.Radius()))
	return Mutation{Translate: closest.Sub(p.Pos())}, nil
}

func tangentRadialRadial(base, target Entity) (Mutation, error) {
	b := base.(Radial)
	t := target.(Radial)
	tr, err := geom.CircleTangentTranslation(
		geom.Circle{Center: b.Center(), Radius: b.Radius()},
		geom.Circle{Center: t.Center(), Radius: t.Radius()},
	)
	if err != nil {
		return Mutation{}, err
	}
	return Mutation{Translate: tr}, nil
}

func tangentLineRadial(base, target Entity) (Mutation, error) {
	l := base.(*Line)
	t := target.(Radial)
	tr, err := geom.SegmentTangentTranslation(l.Segment(), geom.Circle{Center: t.Center(), Radius: t.Radius()})
	if err != nil {
		return Mutation{}, err
	}
	return Mutation{Translate: tr}, nil
}

func tangentRadialLine(base, target Entity) (Mutation, error) {
	b := base.(Radial)
	l := target.(*Line)
	foot, err := geom.Project(b.Center(), l.Start(), l.End())
	if err != nil {
		return Mutation{}, err
	}
	toCenter := b.Center().Sub(foot)
	dist := toCenter.Norm()
	if dist < geom.Epsilon {
		return Mutation{}, errors.New(errors.ErrCodeDegenerate, "center %s lies on the line", b.Center())
	}
	// Slide perpendicular to the line until the gap equals the radius.
	return Mutation{Translate: toCenter.Scale((b.Radius() - dist) / dist)}, nil
}

func equalRadial(base, target Entity) (Mutation, error) {
	t := target.(Radial)
	r := t.Radius()
	return Mutation{Radius: &r}, nil
}

func horizontalLine(base, _ Entity) (Mutation, error) {
	return alignLine(base.(*Line), geom.V(1, 0))
}

func verticalLine(base, _ Entity) (Mutation, error) {
	return alignLine(base.(*Line), geom.V(0, 1))
}

// alignLine rotates a line about its midpoint onto the given axis,
// preserving its length. The endpoint order follows the line's current
// orientation along the axis so the rotation is the short way around.
func alignLine(l *Line, axis geom.Vec2) (Mutation, error) {
	length := l.Length()
	if length < geom.Epsilon {
		return Mutation{}, errors.New(errors.ErrCodeDegenerate, "cannot align zero-length line at %s", l.Start())
	}
	sign := math.Copysign(1, l.End().Sub(l.Start()).Dot(axis))
	half := axis.Scale(sign * length / 2)
	mid := l.Midpoint()
	start := mid.Sub(half)
	end := mid.Add(half)
	return Mutation{Start: &start, End: &end}, nil
}

func horizontalPointPoint(base, target Entity) (Mutation, error) {
	p := base.(*Point)
	q := target.(*Point)
	return Mutation{Translate: geom.V(0, q.Pos().Y-p.Pos().Y)}, nil
}

func verticalPointPoint(base, target Entity) (Mutation, error) {
	p := base.(*Point)
	q := target.(*Point)
	return Mutation{Translate: geom.V(q.Pos().X-p.Pos().X, 0)}, nil
}

func midpointPointLine(base, target Entity) (Mutation, error) {
	p := base.(*Point)
	l := target.(*Line)
	return Mutation{Translate: l.Midpoint().Sub(p.Pos())}, nil
}

func concentricRadial(base, target Entity) (Mutation, error) {
	b := base.(Radial)
	t := target.(Radial)
	return Mutation{Translate: t.Center().Sub(b.Center())}, nil
}
