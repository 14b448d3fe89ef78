package core

import (
	"strings"

	"github.com/openclinic/chartgeom/core/geom"
	"github.com/openclinic/chartgeom/schema"
)

// ComputeSectors converts weighted values into pie/donut sector definitions.
// Sectors start at -90 degrees (12 o'clock) and proceed clockwise, each
// spanning value/total of the full circle. With innerRadius == 0 the path is
// a pie wedge; with innerRadius > 0 it traces the outer arc and the inner
// arc in reverse, closing a ring segment.
//
// A zero total produces zero-span sectors rather than an error; callers that
// need visible slices must supply at least one positive value. Negative or
// inverted radii and negative or non-finite values are caller bugs and fail
// fast.
func ComputeSectors(data []schema.DataPoint, center schema.Point, radius, innerRadius float64) ([]schema.Sector, error) {
	if radius < 0 {
		return nil, schema.NewInvalidInput("ComputeSectors", "radius must be >= 0, got %v", radius)
	}
	if innerRadius < 0 || innerRadius > radius {
		return nil, schema.NewInvalidInput("ComputeSectors", "inner radius must be within [0, %v], got %v", radius, innerRadius)
	}

	var total float64
	for _, d := range data {
		if !geom.IsFinite(d.Value) {
			return nil, schema.NewInvalidInput("ComputeSectors", "non-finite value for %q", d.Label)
		}
		if d.Value < 0 {
			return nil, schema.NewInvalidInput("ComputeSectors", "negative value for %q", d.Label)
		}
		total += d.Value
	}

	sectors := make([]schema.Sector, 0, len(data))
	angle := -90.0
	for _, d := range data {
		var span float64
		if total != 0 {
			span = d.Value / total * 360
		}
		start, end := angle, angle+span
		mid := (start + end) / 2

		s := schema.Sector{
			Label:       d.Label,
			Value:       d.Value,
			StartAngle:  start,
			EndAngle:    end,
			InnerRadius: innerRadius,
			OuterRadius: radius,
			Path:        sectorPath(center, radius, innerRadius, start, end),
			LabelPoint:  geom.PolarToCartesian(center, schema.LabelPointFactor*radius, mid),
			Percentage:  span / 360 * 100,
			Color:       d.Color,
		}
		sectors = append(sectors, s)
		angle = end
	}
	return sectors, nil
}

// sectorPath builds the SVG path for one slice. The largeArc flag must be 1
// when the span exceeds 180 degrees so the arc grammar picks the long way
// around. A full-circle span collapses the arc's start and end onto the same
// point, which the arc grammar renders as nothing, so it is drawn as two
// half circles instead.
func sectorPath(center schema.Point, radius, innerRadius, start, end float64) string {
	if end-start >= 360 {
		return fullCirclePath(center, radius, innerRadius, start)
	}

	largeArc := "0"
	if end-start > 180 {
		largeArc = "1"
	}

	outerStart := geom.PolarToCartesian(center, radius, start)
	outerEnd := geom.PolarToCartesian(center, radius, end)

	var b strings.Builder
	if innerRadius == 0 {
		// Pie wedge: center, out to the rim, sweep, back to center.
		b.WriteString("M ")
		writePoint(&b, center)
		b.WriteString(" L ")
		writePoint(&b, outerStart)
		writeArc(&b, radius, largeArc, "1", outerEnd)
		b.WriteString(" Z")
		return b.String()
	}

	// Ring segment: outer arc forward, inner arc in reverse.
	innerStart := geom.PolarToCartesian(center, innerRadius, start)
	innerEnd := geom.PolarToCartesian(center, innerRadius, end)

	b.WriteString("M ")
	writePoint(&b, outerStart)
	writeArc(&b, radius, largeArc, "1", outerEnd)
	b.WriteString(" L ")
	writePoint(&b, innerEnd)
	writeArc(&b, innerRadius, largeArc, "0", innerStart)
	b.WriteString(" Z")
	return b.String()
}

// fullCirclePath draws a disc, or with innerRadius > 0 a ring whose hole is a
// second subpath wound the opposite way.
func fullCirclePath(center schema.Point, radius, innerRadius, start float64) string {
	outerStart := geom.PolarToCartesian(center, radius, start)
	outerMid := geom.PolarToCartesian(center, radius, start+180)

	var b strings.Builder
	b.WriteString("M ")
	writePoint(&b, outerStart)
	writeArc(&b, radius, "1", "1", outerMid)
	writeArc(&b, radius, "1", "1", outerStart)
	b.WriteString(" Z")

	if innerRadius > 0 {
		innerStart := geom.PolarToCartesian(center, innerRadius, start)
		innerMid := geom.PolarToCartesian(center, innerRadius, start+180)
		b.WriteString(" M ")
		writePoint(&b, innerStart)
		writeArc(&b, innerRadius, "1", "0", innerMid)
		writeArc(&b, innerRadius, "1", "0", innerStart)
		b.WriteString(" Z")
	}
	return b.String()
}

func writePoint(b *strings.Builder, p schema.Point) {
	b.WriteString(geom.Fmt(p.X))
	b.WriteString(" ")
	b.WriteString(geom.Fmt(p.Y))
}

func writeArc(b *strings.Builder, r float64, largeArc, sweep string, to schema.Point) {
	b.WriteString(" A ")
	b.WriteString(geom.Fmt(r))
	b.WriteString(" ")
	b.WriteString(geom.Fmt(r))
	b.WriteString(" 0 ")
	b.WriteString(largeArc)
	b.WriteString(" ")
	b.WriteString(sweep)
	b.WriteString(" ")
	writePoint(b, to)
}

// ComputePie runs ComputeSectors with a chart configuration, assigning
// palette colors to points that carry none.
func ComputePie(data []schema.DataPoint, opts schema.PieOptions) ([]schema.Sector, error) {
	sectors, err := ComputeSectors(data, opts.Center, opts.Radius, opts.InnerRadius)
	if err != nil {
		return nil, err
	}
	for i := range sectors {
		if sectors[i].Color == "" {
			sectors[i].Color = schema.PaletteColor(opts.Palette, i)
		}
	}
	return sectors, nil
}
