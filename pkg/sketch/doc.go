// Package sketch models CAD-style sketch entities and the constraints
// between them.
//
// Entities (Point, Line, Circle, Arc) are tagged variants implementing the
// small [Entity] interface; there is no inheritance hierarchy. Constraint
// behavior lives in a dispatch table keyed by (constraint kind, entity kind)
// pairs: [Solve] looks up the solver for a pair of entities and returns a
// [Mutation] describing how the base entity must move to satisfy the
// constraint. The animation layer turns mutations into motion; this package
// only computes targets.
//
// Entities carry a visual state (normal, constrained, error) matching the
// states a sketch editor displays.
package sketch
