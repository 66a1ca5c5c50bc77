package render

import (
	"bytes"
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/sketchlab/sketchcast/pkg/anim"
	"github.com/sketchlab/sketchcast/pkg/geom"
	"github.com/sketchlab/sketchcast/pkg/sketch"
)

// worldHeight is the height of the visible sketch plane in world units.
// The width follows from the quality profile's aspect ratio, with the
// origin at the center of the frame.
const worldHeight = 8.0

// pointRadius is the drawn radius of a sketch point in world units.
const pointRadius = 0.08

// highlightScale thickens the stroke of a clicked entity.
const highlightScale = 3.5

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	quality Quality
	palette Palette
}

func WithQuality(q Quality) SVGOption { return func(r *svgRenderer) { r.quality = q } }
func WithPalette(p Palette) SVGOption { return func(r *svgRenderer) { r.palette = p } }

// RenderSVG serializes one snapshot into an SVG document. Invisible
// shapes are skipped; the rest are drawn back-to-front by stacking order
// so a raised entity covers what it overlaps.
func RenderSVG(snap anim.Snapshot, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	shapes := visibleShapes(snap)
	slices.SortStableFunc(shapes, func(a, b anim.Shape) int {
		return cmp.Compare(a.Z, b.Z)
	})

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		r.quality.Width, r.quality.Height, r.quality.Width, r.quality.Height)
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill=%q/>`+"\n", r.palette.Background)

	for _, s := range shapes {
		r.renderShape(&buf, s)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{quality: Low, palette: DefaultPalette}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func visibleShapes(snap anim.Snapshot) []anim.Shape {
	shapes := make([]anim.Shape, 0, len(snap.Shapes))
	for _, s := range snap.Shapes {
		if s.Visible {
			shapes = append(shapes, s)
		}
	}
	return shapes
}

// scale returns pixels per world unit.
func (r *svgRenderer) scale() float64 {
	return float64(r.quality.Height) / worldHeight
}

// px maps a world coordinate to pixel space. World y points up, SVG y
// points down; the origin lands at the frame center.
func (r *svgRenderer) px(p geom.Vec2) (float64, float64) {
	s := r.scale()
	return float64(r.quality.Width)/2 + p.X*s, float64(r.quality.Height)/2 - p.Y*s
}

func (r *svgRenderer) strokeWidth(highlight bool) float64 {
	w := float64(r.quality.Height) / 270
	if highlight {
		w *= highlightScale
	}
	return w
}

func (r *svgRenderer) strokeColor(s anim.Shape) string {
	if s.Highlight {
		return r.palette.Highlight
	}
	return r.palette.Stroke(s.State)
}

func (r *svgRenderer) renderShape(buf *bytes.Buffer, s anim.Shape) {
	switch s.Kind {
	case sketch.KindPoint:
		r.renderPoint(buf, s)
	case sketch.KindLine:
		r.renderLine(buf, s)
	case sketch.KindCircle:
		r.renderCircle(buf, s)
	case sketch.KindArc:
		r.renderArc(buf, s)
	}
}

func (r *svgRenderer) renderPoint(buf *bytes.Buffer, s anim.Shape) {
	x, y := r.px(s.Pos)
	radius := pointRadius * r.scale()
	if s.Highlight {
		radius *= highlightScale
	}
	fmt.Fprintf(buf, `  <circle cx="%.2f" cy="%.2f" r="%.2f" fill=%q/>`+"\n",
		x, y, radius, r.strokeColor(s))
}

func (r *svgRenderer) renderLine(buf *bytes.Buffer, s anim.Shape) {
	x1, y1 := r.px(s.Start)
	x2, y2 := r.px(s.End)
	fmt.Fprintf(buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke=%q stroke-width="%.2f" stroke-linecap="round"/>`+"\n",
		x1, y1, x2, y2, r.strokeColor(s), r.strokeWidth(s.Highlight))
}

func (r *svgRenderer) renderCircle(buf *bytes.Buffer, s anim.Shape) {
	x, y := r.px(s.Center)
	fmt.Fprintf(buf, `  <circle cx="%.2f" cy="%.2f" r="%.2f" fill="none" stroke=%q stroke-width="%.2f"/>`+"\n",
		x, y, s.Radius*r.scale(), r.strokeColor(s), r.strokeWidth(s.Highlight))
}

func (r *svgRenderer) renderArc(buf *bytes.Buffer, s anim.Shape) {
	if math.Abs(s.Angle) >= 2*math.Pi-1e-9 {
		r.renderCircle(buf, s)
		return
	}

	start := arcPoint(s, s.StartAngle)
	end := arcPoint(s, s.StartAngle+s.Angle)
	x1, y1 := r.px(start)
	x2, y2 := r.px(end)
	radius := s.Radius * r.scale()

	largeArc := 0
	if math.Abs(s.Angle) > math.Pi {
		largeArc = 1
	}
	// A positive (counter-clockwise) world angle runs clockwise in the
	// y-down pixel space, which is SVG sweep 0.
	sweep := 0
	if s.Angle < 0 {
		sweep = 1
	}

	fmt.Fprintf(buf, `  <path d="M %.2f %.2f A %.2f %.2f 0 %d %d %.2f %.2f" fill="none" stroke=%q stroke-width="%.2f" stroke-linecap="round"/>`+"\n",
		x1, y1, radius, radius, largeArc, sweep, x2, y2,
		r.strokeColor(s), r.strokeWidth(s.Highlight))
}

func arcPoint(s anim.Shape, angle float64) geom.Vec2 {
	return geom.V(
		s.Center.X+s.Radius*math.Cos(angle),
		s.Center.Y+s.Radius*math.Sin(angle),
	)
}
