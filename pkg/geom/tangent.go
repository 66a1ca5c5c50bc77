package geom

import (
	"math"

	"github.com/sketchlab/sketchcast/pkg/errors"
)

// Circle describes a circle by center and radius. Radius must be positive;
// the descriptor itself is not validated, tangent computations report
// degenerate configurations as errors.
type Circle struct {
	Center Vec2    `json:"center"`
	Radius float64 `json:"radius"`
}

// Segment is a line segment between two points.
type Segment struct {
	Start Vec2 `json:"start"`
	End   Vec2 `json:"end"`
}

// Direction returns the unit vector from Start to End.
func (s Segment) Direction() (Vec2, error) {
	return Direction(s.Start, s.End)
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return s.End.Sub(s.Start).Norm()
}

// CircleTangentTranslation computes the vector that slides moving along the
// line joining the centers until the center distance equals the sum of the
// radii, producing external tangency with fixed. Internal tangency is not
// handled. A zero vector is returned when the circles are already tangent.
// It returns a DEGENERATE_GEOMETRY error when the centers coincide.
func CircleTangentTranslation(moving, fixed Circle) (Vec2, error) {
	d := fixed.Center.Sub(moving.Center)
	n, err := Normalize(d)
	if err != nil {
		return Vec2{}, errors.New(errors.ErrCodeDegenerate, "tangency undefined for coincident centers %s", moving.Center)
	}
	return n.Scale(d.Norm() - moving.Radius - fixed.Radius), nil
}

// SegmentTangentTranslation computes the vector that moves the segment
// perpendicular to itself until its distance from the circle's center equals
// the circle's radius. The translation is along the direction from the
// center's projection on the line towards the center, so the segment moves
// toward the circle when it is further than the radius and away otherwise.
// It returns a DEGENERATE_GEOMETRY error when the segment is degenerate or
// the circle's center lies on the line carrying the segment.
func SegmentTangentTranslation(s Segment, c Circle) (Vec2, error) {
	foot, err := Project(c.Center, s.Start, s.End)
	if err != nil {
		return Vec2{}, err
	}
	toCenter := c.Center.Sub(foot)
	dist := toCenter.Norm()
	if dist < Epsilon {
		return Vec2{}, errors.New(errors.ErrCodeDegenerate, "tangency undefined: center %s lies on the line", c.Center)
	}
	return toCenter.Scale((dist - c.Radius) / dist), nil
}

// TangentPoints computes the touch points of the outer tangent line between
// two circles, on the side counter-clockwise from the center line. The first
// point lies on a, the second on b. It returns a DEGENERATE_GEOMETRY error
// when the centers coincide or one circle is contained in the other (no
// outer tangent exists).
func TangentPoints(a, b Circle) (Vec2, Vec2, error) {
	d := b.Center.Sub(a.Center)
	dist := d.Norm()
	if dist < Epsilon {
		return Vec2{}, Vec2{}, errors.New(errors.ErrCodeDegenerate, "tangent points undefined for coincident centers %s", a.Center)
	}

	// Angle between the center line and the radius to the touch point.
	cos := (a.Radius - b.Radius) / dist
	if cos < -1 || cos > 1 {
		return Vec2{}, Vec2{}, errors.New(errors.ErrCodeDegenerate, "no outer tangent: circle contained within the other")
	}
	theta := math.Acos(cos)

	n := d.Scale(1 / dist).Rotate(theta)
	return a.Center.Add(n.Scale(a.Radius)), b.Center.Add(n.Scale(b.Radius)), nil
}

// TangentSegment computes the outer tangent segment between two circles,
// running from the touch point on a to the touch point on b.
func TangentSegment(a, b Circle) (Segment, error) {
	p1, p2, err := TangentPoints(a, b)
	if err != nil {
		return Segment{}, err
	}
	return Segment{Start: p1, End: p2}, nil
}
