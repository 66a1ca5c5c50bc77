// Package render turns animation timelines into output artifacts.
//
// # Overview
//
// This package contains the sinks that serialize a scene timeline into
// files on disk. It provides:
//
//   - SVG keyframes: one vector image per timeline step (and, at higher
//     qualities, interpolated in-between frames)
//   - A JSON timeline document for players and tooling
//   - Quality profiles controlling frame rate and frame size
//
// # SVG
//
// [RenderSVG] serializes one snapshot. Entities are drawn in stacking
// order with the sketch palette: entity state picks the stroke color and
// a clicked entity is drawn with a thickened highlight stroke.
//
//	svg := render.RenderSVG(snap, render.WithQuality(render.High))
//
// # Sampling
//
// [Keyframes] yields one snapshot per step boundary. [Frames] samples the
// timeline at the profile's frame rate, interpolating movement between
// step boundaries.
package render
