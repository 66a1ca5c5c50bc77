// Package anim builds declarative animation timelines for sketch scenes.
//
// A [Scene] owns sketch entities and records a [Timeline] of steps: entities
// appearing, click highlights, constraint applications and waits. Each step
// captures a [Snapshot] of the full drawing state at its end, so render
// sinks can replay the timeline without re-running any scene logic, and
// interpolate between consecutive snapshots for smooth motion.
//
// Stacking order is explicit per scene: entities stack in insertion order,
// and click highlights raise the clicked entity above everything added so
// far using the scene's own counter. No process-wide state is involved.
package anim
