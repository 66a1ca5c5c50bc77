// Package pkg provides the core libraries for sketchcast animation building.
//
// # Overview
//
// Sketchcast turns CAD-style sketch scenes into animated walkthroughs:
// geometric entities appear, click-highlight, and snap into place as
// constraints are applied. The pkg directory is organized into four areas:
//
//  1. [sketch], [geom], [anim] - Domain logic (entities, constraint solving,
//     tangency geometry, timeline recording)
//  2. [cache], [observability], [errors] - Infrastructure
//  3. [scene], [match] - Scene catalog and fuzzy selection
//  4. [pipeline], [render] - Orchestration (resolve → build → render)
//
// # Architecture
//
// The typical data flow through sketchcast:
//
//	Scene Catalog
//	         ↓
//	scene.Resolve    (fuzzy token matching of names, files, paths)
//	         ↓
//	anim.Timeline    (entity states recorded step by step)
//	         ↓
//	render.RenderSVG / render.RenderJSON
//	         ↓
//	SVG keyframes + JSON timeline on disk
//
// Each stage is cached: timelines by scene name and catalog version,
// artifacts by timeline content hash, quality, and format.
package pkg
