package core

import (
	"strings"

	"github.com/openclinic/chartgeom/core/geom"
	"github.com/openclinic/chartgeom/schema"
)

// BuildLinePath turns an ordered point sequence into an SVG line path.
// Unsmoothed output is a plain polyline (M x0 y0 L x1 y1 ...). Smoothed
// output emits one cubic segment per consecutive pair, with control points
// at 1/3 and 2/3 of the horizontal distance held at the endpoints' Y values.
// That heuristic favors visual smoothness over curvature accuracy (tangents
// are not continuous across segments) and is kept exactly for render parity
// with charts produced from the same data elsewhere.
//
// Fewer than 2 points returns ""; renderers treat an empty path as nothing
// to draw, not an error.
func BuildLinePath(points []schema.Point, smooth bool) string {
	if len(points) < 2 {
		return ""
	}

	var b strings.Builder
	b.WriteString("M ")
	b.WriteString(geom.Fmt(points[0].X))
	b.WriteString(" ")
	b.WriteString(geom.Fmt(points[0].Y))

	for i := 1; i < len(points); i++ {
		cur, next := points[i-1], points[i]
		if smooth {
			dx := next.X - cur.X
			b.WriteString(" C ")
			b.WriteString(geom.Fmt(cur.X + dx/3))
			b.WriteString(" ")
			b.WriteString(geom.Fmt(cur.Y))
			b.WriteString(", ")
			b.WriteString(geom.Fmt(cur.X + 2*dx/3))
			b.WriteString(" ")
			b.WriteString(geom.Fmt(next.Y))
			b.WriteString(", ")
			b.WriteString(geom.Fmt(next.X))
			b.WriteString(" ")
			b.WriteString(geom.Fmt(next.Y))
		} else {
			b.WriteString(" L ")
			b.WriteString(geom.Fmt(next.X))
			b.WriteString(" ")
			b.WriteString(geom.Fmt(next.Y))
		}
	}
	return b.String()
}

// BuildAreaPath closes a line path against a baseline, forming a fillable
// region: the line path plus a drop to baselineY under the last point, a
// run back under the first point, and a close.
func BuildAreaPath(points []schema.Point, baselineY float64, smooth bool) string {
	line := BuildLinePath(points, smooth)
	if line == "" {
		return ""
	}

	first, last := points[0], points[len(points)-1]
	var b strings.Builder
	b.WriteString(line)
	b.WriteString(" L ")
	b.WriteString(geom.Fmt(last.X))
	b.WriteString(" ")
	b.WriteString(geom.Fmt(baselineY))
	b.WriteString(" L ")
	b.WriteString(geom.Fmt(first.X))
	b.WriteString(" ")
	b.WriteString(geom.Fmt(baselineY))
	b.WriteString(" Z")
	return b.String()
}
