// Package geom provides planar geometry helpers for sketch animations.
//
// All helpers are stateless pure functions over value types. Degenerate
// inputs (zero-length vectors, coincident centers) are reported as
// structured errors rather than recovered heuristically; callers are
// responsible for excluding them before invocation.
//
// The angle convention is counter-clockwise positive throughout.
package geom
