package anim

import (
	"github.com/sketchlab/sketchcast/pkg/geom"
	"github.com/sketchlab/sketchcast/pkg/sketch"
)

// StepKind identifies what a timeline step animates.
type StepKind string

// Step kinds.
const (
	StepCreate   StepKind = "create"
	StepUncreate StepKind = "uncreate"
	StepClick    StepKind = "click"
	StepMove     StepKind = "move"
	StepWait     StepKind = "wait"
)

// Default step durations in seconds, matching the pacing of the sketch
// editor the animations imitate.
const (
	DurationCreate = 1.0
	DurationClick  = 0.75
	DurationMove   = 1.0
	EndDelay       = 2.0
)

// Shape is the serializable drawing state of one entity at one instant.
// Only the fields for the entity's kind are meaningful.
type Shape struct {
	Kind      sketch.Kind  `json:"kind"`
	State     sketch.State `json:"state"`
	Z         int          `json:"z"`
	Visible   bool         `json:"visible"`
	Highlight bool         `json:"highlight,omitempty"`

	Pos        geom.Vec2 `json:"pos,omitempty"`         // point
	Start      geom.Vec2 `json:"start,omitempty"`       // line
	End        geom.Vec2 `json:"end,omitempty"`         // line
	Center     geom.Vec2 `json:"center,omitempty"`      // circle, arc
	Radius     float64   `json:"radius,omitempty"`      // circle, arc
	StartAngle float64   `json:"start_angle,omitempty"` // arc
	Angle      float64   `json:"angle,omitempty"`       // arc
}

// Snapshot is the drawing state of every entity in a scene at one instant.
// Shape order follows the scene's entity insertion order and is identical
// across all snapshots of a timeline.
type Snapshot struct {
	Shapes []Shape `json:"shapes"`
}

// Step is one animated unit of a timeline. Snapshot holds the state at the
// end of the step; the state at its start is the previous step's snapshot.
type Step struct {
	Kind     StepKind `json:"kind"`
	Label    string   `json:"label,omitempty"`
	Duration float64  `json:"duration"`
	Snapshot Snapshot `json:"snapshot"`
}

// Timeline is the ordered sequence of steps recorded by a scene, starting
// from an initial snapshot of the scene before any step plays.
type Timeline struct {
	Scene   string   `json:"scene"`
	Initial Snapshot `json:"initial"`
	Steps   []Step   `json:"steps"`
}

// Duration returns the total play time of the timeline in seconds.
func (t Timeline) Duration() float64 {
	var total float64
	for _, s := range t.Steps {
		total += s.Duration
	}
	return total
}

// Interpolate blends two snapshots of the same scene at parameter t in
// [0, 1]. Numeric fields interpolate linearly; discrete fields (visibility,
// state, stacking) switch to the target immediately so a shape being
// created is drawn growing rather than popping in at the end.
func Interpolate(from, to Snapshot, t float64) Snapshot {
	if t <= 0 {
		return from
	}
	if t >= 1 || len(from.Shapes) != len(to.Shapes) {
		return to
	}

	shapes := make([]Shape, len(to.Shapes))
	for i := range to.Shapes {
		a, b := from.Shapes[i], to.Shapes[i]
		s := b
		s.Pos = a.Pos.Lerp(b.Pos, t)
		s.Start = a.Start.Lerp(b.Start, t)
		s.End = a.End.Lerp(b.End, t)
		s.Center = a.Center.Lerp(b.Center, t)
		s.Radius = a.Radius + (b.Radius-a.Radius)*t
		s.StartAngle = a.StartAngle + (b.StartAngle-a.StartAngle)*t
		s.Angle = a.Angle + (b.Angle-a.Angle)*t
		shapes[i] = s
	}
	return Snapshot{Shapes: shapes}
}
