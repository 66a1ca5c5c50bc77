package anim

import (
	"fmt"

	"github.com/sketchlab/sketchcast/pkg/errors"
	"github.com/sketchlab/sketchcast/pkg/sketch"
)

// Scene owns a set of sketch entities and records the timeline of their
// animation. Scenes are single-goroutine builders: a scene's Construct
// function calls the step methods in order, then the finished timeline is
// handed to a render sink.
type Scene struct {
	name     string
	entities []sketch.Entity
	visible  map[sketch.Entity]bool
	zIndex   map[sketch.Entity]int
	nextZ    int
	steps    []Step
	initial  *Snapshot
}

// NewScene creates an empty scene with the given name.
func NewScene(name string) *Scene {
	return &Scene{
		name:    name,
		visible: make(map[sketch.Entity]bool),
		zIndex:  make(map[sketch.Entity]int),
	}
}

// Name returns the scene name.
func (s *Scene) Name() string { return s.name }

// Add registers entities with the scene without animating them. Added
// entities are visible immediately and stack in insertion order. Use Create
// for entities that should animate into view.
func (s *Scene) Add(entities ...sketch.Entity) {
	for _, e := range entities {
		s.register(e)
		s.visible[e] = true
	}
}

// register assigns the next stacking index to a new entity.
func (s *Scene) register(e sketch.Entity) {
	if _, ok := s.zIndex[e]; ok {
		return
	}
	s.entities = append(s.entities, e)
	s.zIndex[e] = s.nextZ
	s.nextZ++
}

// raise bumps an entity above everything currently stacked. Click uses
// this so highlights draw over the top.
func (s *Scene) raise(e sketch.Entity) {
	s.zIndex[e] = s.nextZ
	s.nextZ++
}

// Entities returns the registered entities in insertion order.
func (s *Scene) Entities() []sketch.Entity {
	return s.entities
}

// ensureInitial captures the scene state before the first step mutates it.
func (s *Scene) ensureInitial() {
	if s.initial == nil {
		snap := s.snapshot(nil)
		s.initial = &snap
	}
}

// Create animates entities into view, one step per entity.
func (s *Scene) Create(entities ...sketch.Entity) {
	for _, e := range entities {
		s.register(e)
		s.ensureInitial()
		s.visible[e] = true
		s.record(StepCreate, fmt.Sprintf("create %s", e.Kind()), DurationCreate, nil)
	}
}

// Uncreate animates entities out of view, one step per entity.
func (s *Scene) Uncreate(entities ...sketch.Entity) {
	for _, e := range entities {
		s.ensureInitial()
		s.visible[e] = false
		s.record(StepUncreate, fmt.Sprintf("uncreate %s", e.Kind()), DurationCreate, nil)
	}
}

// Click plays the selection highlight on an entity, raising it above the
// rest of the scene for the duration of the flash.
func (s *Scene) Click(e sketch.Entity) {
	s.register(e)
	s.ensureInitial()
	s.raise(e)
	s.record(StepClick, fmt.Sprintf("click %s", e.Kind()), DurationClick, e)
}

// Wait holds the current state for d seconds.
func (s *Scene) Wait(d float64) {
	s.ensureInitial()
	s.record(StepWait, "", d, nil)
}

// Apply animates a constraint: the target then the base entity are clicked,
// the base moves into its solved position, and both entities enter the
// constrained state. Target is nil for unary constraints. The constraint's
// solver errors (unsupported pair, degenerate geometry) are returned
// unchanged and leave the timeline unmodified.
func (s *Scene) Apply(c sketch.Constraint, base, target sketch.Entity) error {
	m, err := sketch.Solve(c, base, target)
	if err != nil {
		return err
	}
	s.register(base)
	if target != nil {
		s.register(target)
	}
	s.ensureInitial()

	if target != nil {
		s.Click(target)
	}
	s.Click(base)

	m.Apply(base)
	base.SetState(sketch.StateConstrained)
	if target != nil {
		target.SetState(sketch.StateConstrained)
	}

	label := fmt.Sprintf("%s %s", c, base.Kind())
	if target != nil {
		label = fmt.Sprintf("%s %s %s", c, base.Kind(), target.Kind())
	}
	s.record(StepMove, label, DurationMove, nil)
	return nil
}

// MustApply is Apply for scene construction code where the entity pair is
// known to be supported; it panics on error.
func (s *Scene) MustApply(c sketch.Constraint, base, target sketch.Entity) {
	if err := s.Apply(c, base, target); err != nil {
		panic(err)
	}
}

// record appends a step capturing the current scene state. highlight, when
// non-nil, marks that entity as flashed in this step's snapshot only.
func (s *Scene) record(kind StepKind, label string, duration float64, highlight sketch.Entity) {
	s.steps = append(s.steps, Step{
		Kind:     kind,
		Label:    label,
		Duration: duration,
		Snapshot: s.snapshot(highlight),
	})
}

// Timeline finalizes and returns the recorded timeline.
func (s *Scene) Timeline() Timeline {
	if s.initial == nil {
		snap := s.snapshot(nil)
		s.initial = &snap
	}
	return Timeline{
		Scene:   s.name,
		Initial: *s.initial,
		Steps:   s.steps,
	}
}

// Validate checks that the scene produced a playable timeline.
func (s *Scene) Validate() error {
	if len(s.entities) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scene %q has no entities", s.name)
	}
	if len(s.steps) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scene %q has no animation steps", s.name)
	}
	return nil
}

// snapshot captures the drawing state of every entity in insertion order.
func (s *Scene) snapshot(highlight sketch.Entity) Snapshot {
	shapes := make([]Shape, len(s.entities))
	for i, e := range s.entities {
		shape := Shape{
			Kind:      e.Kind(),
			State:     e.State(),
			Z:         s.zIndex[e],
			Visible:   s.visible[e],
			Highlight: e == highlight,
		}
		switch v := e.(type) {
		case *sketch.Point:
			shape.Pos = v.Pos()
		case *sketch.Line:
			shape.Start = v.Start()
			shape.End = v.End()
		case *sketch.Circle:
			shape.Center = v.Center()
			shape.Radius = v.Radius()
		case *sketch.Arc:
			shape.Center = v.Center()
			shape.Radius = v.Radius()
			shape.StartAngle = v.StartAngle()
			shape.Angle = v.Angle()
		}
		shapes[i] = shape
	}
	return Snapshot{Shapes: shapes}
}
