package core

import (
	"math"

	"github.com/openclinic/chartgeom/core/geom"
	"github.com/openclinic/chartgeom/schema"
)

// ComputeGaugeArc converts a single value with threshold bands into a
// semicircular arc. Only 180 degrees is drawn, so the circumference is
// pi*radius; DashOffset is consumed by stroke-dash rendering to reveal a
// partial arc proportional to value/opts.MaxValue (clamped to 0-100%).
//
// Threshold color resolution scans from the highest threshold downward and
// returns the first whose Value <= value, falling back to DefaultColor. A
// value exactly on a threshold belongs to that threshold's band, not the one
// below. Thresholds must be ordered by Value ascending.
func ComputeGaugeArc(value float64, opts schema.GaugeOptions) (schema.GaugeGeometry, error) {
	if !geom.IsFinite(value) || !geom.IsFinite(opts.MaxValue) {
		return schema.GaugeGeometry{}, schema.NewInvalidInput("ComputeGaugeArc", "value and max value must be finite")
	}
	if opts.MaxValue <= 0 {
		return schema.GaugeGeometry{}, schema.NewInvalidInput("ComputeGaugeArc", "max value must be > 0, got %v", opts.MaxValue)
	}
	if opts.Radius < 0 {
		return schema.GaugeGeometry{}, schema.NewInvalidInput("ComputeGaugeArc", "radius must be >= 0, got %v", opts.Radius)
	}

	circumference := math.Pi * opts.Radius
	percentage := geom.Clamp(value/opts.MaxValue*100, 0, 100)

	return schema.GaugeGeometry{
		Radius:        opts.Radius,
		Circumference: circumference,
		DashOffset:    circumference - circumference*percentage/100,
		Percentage:    percentage,
		Color:         resolveThresholdColor(value, opts.Thresholds, opts.DefaultColor),
		Path:          gaugePath(opts.Radius),
	}, nil
}

// resolveThresholdColor applies the highest-matching-floor rule.
func resolveThresholdColor(value float64, thresholds []schema.Threshold, fallback string) string {
	for i := len(thresholds) - 1; i >= 0; i-- {
		if thresholds[i].Value <= value {
			return thresholds[i].Color
		}
	}
	return fallback
}

// gaugePath traces the semicircle from 9 o'clock to 3 o'clock through the
// top, in a local (2r x r) box whose center sits at (r, r).
func gaugePath(r float64) string {
	rs := geom.Fmt(r)
	return "M 0 " + rs + " A " + rs + " " + rs + " 0 0 1 " + geom.Fmt(2*r) + " " + rs
}
