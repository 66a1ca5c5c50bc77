package sketch

import (
	"math"

	"github.com/sketchlab/sketchcast/pkg/geom"
)

// Kind identifies the variant of a sketch entity.
type Kind string

// Entity kinds.
const (
	KindPoint  Kind = "point"
	KindLine   Kind = "line"
	KindCircle Kind = "circle"
	KindArc    Kind = "arc"
)

// State is the visual state of an entity.
type State string

// Entity states.
const (
	StateNormal      State = "normal"
	StateConstrained State = "constrained"
	StateError       State = "error"
)

// Entity is the interface implemented by all sketch entity variants.
type Entity interface {
	// Kind returns the variant tag.
	Kind() Kind

	// State returns the current visual state.
	State() State

	// SetState updates the visual state.
	SetState(State)

	// Translate displaces the whole entity by d.
	Translate(d geom.Vec2)
}

// Radial is implemented by entities with a radius (circles and arcs).
type Radial interface {
	Entity
	Radius() float64
	SetRadius(r float64)
	Center() geom.Vec2
}

// Point is a single sketch vertex.
type Point struct {
	pos   geom.Vec2
	state State
}

// NewPoint creates a point at pos.
func NewPoint(pos geom.Vec2) *Point {
	return &Point{pos: pos, state: StateNormal}
}

func (p *Point) Kind() Kind         { return KindPoint }
func (p *Point) State() State       { return p.state }
func (p *Point) SetState(s State)   { p.state = s }
func (p *Point) Pos() geom.Vec2     { return p.pos }
func (p *Point) MoveTo(q geom.Vec2) { p.pos = q }

// Translate displaces the point by d.
func (p *Point) Translate(d geom.Vec2) { p.pos = p.pos.Add(d) }

// Line is a sketch line segment with a vertex at each end.
type Line struct {
	start, end geom.Vec2
	state      State
}

// NewLine creates a line segment from start to end.
func NewLine(start, end geom.Vec2) *Line {
	return &Line{start: start, end: end, state: StateNormal}
}

func (l *Line) Kind() Kind       { return KindLine }
func (l *Line) State() State     { return l.state }
func (l *Line) SetState(s State) { l.state = s }

func (l *Line) Start() geom.Vec2 { return l.start }
func (l *Line) End() geom.Vec2   { return l.end }

// Segment returns the line as a geometry segment.
func (l *Line) Segment() geom.Segment {
	return geom.Segment{Start: l.start, End: l.end}
}

// Length returns the segment length.
func (l *Line) Length() float64 {
	return l.end.Sub(l.start).Norm()
}

// Direction returns the unit vector from start to end.
// It fails when the endpoints coincide.
func (l *Line) Direction() (geom.Vec2, error) {
	return geom.Direction(l.start, l.end)
}

// Midpoint returns the point halfway between the endpoints.
func (l *Line) Midpoint() geom.Vec2 {
	return l.start.Lerp(l.end, 0.5)
}

// MoveStart moves the start vertex, leaving the end in place.
func (l *Line) MoveStart(p geom.Vec2) { l.start = p }

// MoveEnd moves the end vertex, leaving the start in place.
func (l *Line) MoveEnd(p geom.Vec2) { l.end = p }

// Translate displaces both endpoints by d.
func (l *Line) Translate(d geom.Vec2) {
	l.start = l.start.Add(d)
	l.end = l.end.Add(d)
}

// Circle is a sketch circle with a vertex at its center.
type Circle struct {
	center geom.Vec2
	radius float64
	state  State
}

// NewCircle creates a circle with the given center and radius.
func NewCircle(center geom.Vec2, radius float64) *Circle {
	return &Circle{center: center, radius: radius, state: StateNormal}
}

func (c *Circle) Kind() Kind          { return KindCircle }
func (c *Circle) State() State        { return c.state }
func (c *Circle) SetState(s State)    { c.state = s }
func (c *Circle) Center() geom.Vec2   { return c.center }
func (c *Circle) Radius() float64     { return c.radius }
func (c *Circle) SetRadius(r float64) { c.radius = r }

// Descriptor returns the circle as a geometry descriptor.
func (c *Circle) Descriptor() geom.Circle {
	return geom.Circle{Center: c.center, Radius: c.radius}
}

// Translate displaces the center by d.
func (c *Circle) Translate(d geom.Vec2) { c.center = c.center.Add(d) }

// Arc is a sketch arc with vertices at each end and at the center.
type Arc struct {
	center     geom.Vec2
	radius     float64
	startAngle float64 // angle of the start vertex, radians
	angle      float64 // swept angle, counter-clockwise positive
	state      State
}

// NewArc creates an arc centered at center with the given radius, starting
// at startAngle and sweeping angle radians counter-clockwise.
func NewArc(center geom.Vec2, radius, startAngle, angle float64) *Arc {
	return &Arc{center: center, radius: radius, startAngle: startAngle, angle: angle, state: StateNormal}
}

func (a *Arc) Kind() Kind          { return KindArc }
func (a *Arc) State() State        { return a.state }
func (a *Arc) SetState(s State)    { a.state = s }
func (a *Arc) Center() geom.Vec2   { return a.center }
func (a *Arc) Radius() float64     { return a.radius }
func (a *Arc) SetRadius(r float64) { a.radius = r }
func (a *Arc) StartAngle() float64 { return a.startAngle }
func (a *Arc) Angle() float64      { return a.angle }

// Start returns the start vertex of the arc.
func (a *Arc) Start() geom.Vec2 {
	return a.pointAt(a.startAngle)
}

// End returns the end vertex of the arc.
func (a *Arc) End() geom.Vec2 {
	return a.pointAt(a.startAngle + a.angle)
}

func (a *Arc) pointAt(angle float64) geom.Vec2 {
	return a.center.Add(geom.V(math.Cos(angle), math.Sin(angle)).Scale(a.radius))
}

// Descriptor returns the arc's carrier circle as a geometry descriptor.
func (a *Arc) Descriptor() geom.Circle {
	return geom.Circle{Center: a.center, Radius: a.radius}
}

// Translate displaces the center by d.
func (a *Arc) Translate(d geom.Vec2) { a.center = a.center.Add(d) }
