package core

import (
	"github.com/openclinic/chartgeom/core/geom"
	"github.com/openclinic/chartgeom/schema"
)

// labelRadiusFactor pushes radar axis labels just past the outer ring.
const labelRadiusFactor = 1.12

// ComputeRadar converts N axis values into a closed polygon in
// polar-to-cartesian space plus concentric grid rings. Axis 0 starts at -90
// degrees (top) and axes proceed clockwise with a step of 360/N degrees.
// Grid ring k (1..levels) is a regular N-gon at radius*k/levels.
//
// Data vertices are normalized against the dataset's own maximum, so two
// independently computed radars are not comparable without an explicit
// shared max. That matches the dashboards this engine came from; see
// DESIGN.md for the recorded decision.
func ComputeRadar(data []schema.DataPoint, opts schema.RadarOptions) (schema.RadarGeometry, error) {
	if opts.Radius < 0 {
		return schema.RadarGeometry{}, schema.NewInvalidInput("ComputeRadar", "radius must be >= 0, got %v", opts.Radius)
	}

	rg := schema.RadarGeometry{Center: opts.Center}
	n := len(data)
	if n == 0 {
		return rg, nil
	}

	maxValue := 0.0
	for _, d := range data {
		if !geom.IsFinite(d.Value) {
			return schema.RadarGeometry{}, schema.NewInvalidInput("ComputeRadar", "non-finite value for %q", d.Label)
		}
		if d.Value > maxValue {
			maxValue = d.Value
		}
	}

	levels := opts.Levels
	if levels <= 0 {
		levels = schema.DefaultRadarLevels
	}

	angleStep := 360.0 / float64(n)
	rg.DataPolygon = make([]schema.Point, n)
	rg.AxisEnds = make([]schema.Point, n)
	rg.LabelPoints = make([]schema.Point, n)
	rg.Labels = make([]string, n)

	for i, d := range data {
		angle := float64(i)*angleStep - 90

		var r float64
		if maxValue > 0 {
			r = d.Value / maxValue * opts.Radius
		}
		rg.DataPolygon[i] = geom.PolarToCartesian(opts.Center, r, angle)
		rg.AxisEnds[i] = geom.PolarToCartesian(opts.Center, opts.Radius, angle)
		rg.LabelPoints[i] = geom.PolarToCartesian(opts.Center, labelRadiusFactor*opts.Radius, angle)
		rg.Labels[i] = d.Label
	}

	rg.GridRings = make([][]schema.Point, levels)
	for k := 1; k <= levels; k++ {
		ringRadius := opts.Radius * float64(k) / float64(levels)
		ring := make([]schema.Point, n)
		for i := 0; i < n; i++ {
			angle := float64(i)*angleStep - 90
			ring[i] = geom.PolarToCartesian(opts.Center, ringRadius, angle)
		}
		rg.GridRings[k-1] = ring
	}

	return rg, nil
}
