package core

import (
	"github.com/openclinic/chartgeom/core/geom"
	"github.com/openclinic/chartgeom/schema"
)

// ComputeLine reduces a group of parallel series to renderable line/area
// paths sharing a single value scale and an index-aligned x-axis. Series
// within a group must have equal-length data; a mismatch is a caller bug.
// A single-point series yields an empty path by contract, and an empty
// group yields empty geometry.
func ComputeLine(group schema.SeriesGroup, opts schema.LineOptions) (schema.LineGeometry, error) {
	lg := schema.LineGeometry{
		Width:  opts.Width,
		Height: opts.Height,
		Labels: group.Labels,
	}
	if len(group.Series) == 0 {
		return lg, nil
	}

	n := group.Len()
	var all []float64
	for _, s := range group.Series {
		if len(s.Data) != n {
			return schema.LineGeometry{}, schema.NewInvalidInput("ComputeLine",
				"series %q has %d points, want %d", s.Name, len(s.Data), n)
		}
		if !geom.AllFinite(s.Data) {
			return schema.LineGeometry{}, schema.NewInvalidInput("ComputeLine", "series %q has non-finite values", s.Name)
		}
		all = append(all, s.Data...)
	}

	scale, err := MakeScale(all, [2]float64{0, opts.Height}, opts.Scale)
	if err != nil {
		return schema.LineGeometry{}, err
	}
	lg.Scale = scale
	if n > 1 {
		lg.XStep = opts.Width / float64(n-1)
	}

	lg.Series = make([]schema.SeriesPath, len(group.Series))
	for si, s := range group.Series {
		points := make([]schema.Point, n)
		for i, v := range s.Data {
			points[i] = schema.Point{X: float64(i) * lg.XStep, Y: lg.Scale.PixelFor(v)}
		}

		sp := schema.SeriesPath{
			Name:   s.Name,
			Color:  s.Color,
			Path:   BuildLinePath(points, opts.Smooth),
			Points: points,
		}
		if sp.Color == "" {
			sp.Color = schema.PaletteColor(opts.Palette, si)
		}
		if opts.ShowArea {
			sp.AreaPath = BuildAreaPath(points, opts.Height, opts.Smooth)
		}
		lg.Series[si] = sp
	}
	return lg, nil
}
