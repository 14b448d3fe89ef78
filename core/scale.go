package core

import (
	"github.com/openclinic/chartgeom/core/geom"
	"github.com/openclinic/chartgeom/schema"
)

// MakeScale maps a numeric domain onto a pixel range for one axis.
// The domain is [min(values), max(values)*(1+PaddingFactor)]; with
// IncludeZero the domain minimum is extended down to zero. The returned
// scale is inverted for screen coordinates: the domain minimum maps to
// pixelRange[1] and the maximum to pixelRange[0].
//
// Degenerate inputs never fail: an empty values slice yields a scale that
// maps everything to the range midpoint, and all-equal values are given a
// domain span of 1 so interpolation stays defined. Charts must render
// gracefully with no data, so neither case is an error. Non-finite values
// are a caller bug and fail fast.
func MakeScale(values []float64, pixelRange [2]float64, opts schema.ScaleOptions) (schema.Scale, error) {
	if !geom.AllFinite(values) {
		return schema.Scale{}, schema.NewInvalidInput("MakeScale", "values must be finite")
	}

	s := schema.Scale{
		RangeStart: pixelRange[0],
		RangeEnd:   pixelRange[1],
	}

	minVal, maxVal, ok := geom.MinMax(values)
	if !ok {
		s.Degenerate = true
		return s, nil
	}

	if opts.IncludeZero && minVal > 0 {
		minVal = 0
	}
	if opts.PaddingFactor > 0 {
		maxVal *= 1 + opts.PaddingFactor
	}

	s.Min = minVal
	s.Max = maxVal
	return s, nil
}
