package core

import (
	"github.com/openclinic/chartgeom/core/geom"
	"github.com/openclinic/chartgeom/schema"
)

// BuildSparkline reduces a single series to a compact inline trend glyph: a
// per-axis min/max scale with no padding, a smoothed line path, and its
// closed area path against the glyph's bottom edge. TrendUp is true when the
// last value is at or above the first; it picks a semantic up/down color and
// claims nothing statistical.
//
// Fewer than 2 values produces empty paths, matching the path builder's
// contract.
func BuildSparkline(values []float64, opts schema.SparklineOptions) (schema.SparklineGeometry, error) {
	if !geom.AllFinite(values) {
		return schema.SparklineGeometry{}, schema.NewInvalidInput("BuildSparkline", "values must be finite")
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return schema.SparklineGeometry{}, schema.NewInvalidInput("BuildSparkline", "width and height must be > 0")
	}

	scale, err := MakeScale(values, [2]float64{0, opts.Height}, schema.ScaleOptions{})
	if err != nil {
		return schema.SparklineGeometry{}, err
	}

	sg := schema.SparklineGeometry{Scale: scale}
	if len(values) == 0 {
		return sg, nil
	}

	sg.Points = make([]schema.Point, len(values))
	xStep := 0.0
	if len(values) > 1 {
		xStep = opts.Width / float64(len(values)-1)
	}
	for i, v := range values {
		sg.Points[i] = schema.Point{X: float64(i) * xStep, Y: sg.Scale.PixelFor(v)}
	}

	sg.Path = BuildLinePath(sg.Points, true)
	sg.AreaPath = BuildAreaPath(sg.Points, opts.Height, true)
	sg.TrendUp = values[len(values)-1] >= values[0]
	return sg, nil
}
