// Package geom has low-level numeric and angle helpers for chart geometry.
package geom

import (
	"math"
	"strconv"

	"github.com/openclinic/chartgeom/schema"
)

// Clamp bounds v to the [lo, hi] interval.
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// MinMax returns the minimum and maximum of values. ok is false for an
// empty slice.
func MinMax(values []float64) (minVal, maxVal float64, ok bool) {
	if len(values) == 0 {
		return 0, 0, false
	}
	minVal, maxVal = values[0], values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	return minVal, maxVal, true
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// AllFinite reports whether every value is finite.
func AllFinite(values []float64) bool {
	for _, v := range values {
		if !IsFinite(v) {
			return false
		}
	}
	return true
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// PolarToCartesian converts a polar position around center into pixel space.
// Angles are in degrees with 0 at 3 o'clock; because screen Y grows downward,
// increasing angles proceed clockwise and -90 is 12 o'clock.
func PolarToCartesian(center schema.Point, r, angleDeg float64) schema.Point {
	rad := Radians(angleDeg)
	return schema.Point{
		X: center.X + r*math.Cos(rad),
		Y: center.Y + r*math.Sin(rad),
	}
}

// Fmt renders a coordinate for path strings: rounded to two decimals with
// trailing zeros trimmed, so path output is stable across platforms.
func Fmt(v float64) string {
	r := math.Round(v*100) / 100
	if r == 0 {
		r = 0 // normalize -0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
