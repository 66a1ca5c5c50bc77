package geom

import (
	"fmt"
	"math"

	"github.com/sketchlab/sketchcast/pkg/errors"
)

// Epsilon is the tolerance below which a vector length is treated as zero.
const Epsilon = 1e-9

// Vec2 is a 2D vector. The same type represents absolute positions (points)
// and displacements (vectors); which one is meant is determined by usage.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{v.X + w.X, v.Y + w.Y}
}

// Sub returns v - w.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{v.X - w.X, v.Y - w.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns the dot product of v and w.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the scalar cross product of v and w (the z-component of
// the 3D cross product). Positive when w is counter-clockwise from v.
func (v Vec2) Cross(w Vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Norm returns the Euclidean length of v.
func (v Vec2) Norm() float64 {
	return math.Hypot(v.X, v.Y)
}

// Rotate returns v rotated counter-clockwise by angle radians.
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// Lerp returns the linear interpolation between v and w at parameter t,
// where t=0 yields v and t=1 yields w.
func (v Vec2) Lerp(w Vec2, t float64) Vec2 {
	return v.Add(w.Sub(v).Scale(t))
}

// IsZero reports whether v has length below Epsilon.
func (v Vec2) IsZero() bool {
	return v.Norm() < Epsilon
}

// String returns a compact representation for logs and error messages.
func (v Vec2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// Normalize returns v scaled to unit length.
// It returns a DEGENERATE_GEOMETRY error when v has (near-)zero length;
// callers must guard against zero-length inputs before calling.
func Normalize(v Vec2) (Vec2, error) {
	n := v.Norm()
	if n < Epsilon {
		return Vec2{}, errors.New(errors.ErrCodeDegenerate, "cannot normalize zero-length vector %s", v)
	}
	return v.Scale(1 / n), nil
}

// Direction returns the unit vector pointing from a to b.
// It returns a DEGENERATE_GEOMETRY error when a and b coincide.
func Direction(a, b Vec2) (Vec2, error) {
	d, err := Normalize(b.Sub(a))
	if err != nil {
		return Vec2{}, errors.New(errors.ErrCodeDegenerate, "direction undefined for coincident points %s", a)
	}
	return d, nil
}

// AngleBetweenPoints returns the signed angle subtended at center between
// p and q, in radians. The sign is counter-clockwise positive: the result
// is positive when sweeping from p to q around center goes counter-clockwise.
// The result is 0 when p and q coincide, and in (-π, π] otherwise.
// It returns a DEGENERATE_GEOMETRY error when either point coincides with center.
func AngleBetweenPoints(p, q, center Vec2) (float64, error) {
	u := p.Sub(center)
	v := q.Sub(center)
	if u.IsZero() || v.IsZero() {
		return 0, errors.New(errors.ErrCodeDegenerate, "angle undefined: point coincides with center %s", center)
	}
	return math.Atan2(u.Cross(v), u.Dot(v)), nil
}

// Project returns the orthogonal projection of point p onto the infinite
// line through a and b. It returns a DEGENERATE_GEOMETRY error when a and b
// coincide (the line is undefined).
func Project(p, a, b Vec2) (Vec2, error) {
	ab := b.Sub(a)
	if ab.IsZero() {
		return Vec2{}, errors.New(errors.ErrCodeDegenerate, "projection undefined: line endpoints coincide at %s", a)
	}
	t := p.Sub(a).Dot(ab) / ab.Dot(ab)
	return a.Add(ab.Scale(t)), nil
}
