package core

import (
	"math"

	"github.com/openclinic/chartgeom/core/geom"
	"github.com/openclinic/chartgeom/schema"
)

// ComputeHeatmap maps a 2-D numeric matrix to discrete color-scale buckets.
// For each cell, ratio = (value-min)/(max-min || 1) over the flattened
// matrix and index = min(floor(ratio*(n-1)), n-1), which guarantees the
// maximum value maps to the last color and never indexes out of bounds even
// at ratio == 1. Flat data (max == min) buckets every cell to the first
// color instead of dividing by zero.
//
// An empty matrix yields empty geometry. An empty color scale or a
// non-finite cell is a caller bug and fails fast.
func ComputeHeatmap(matrix [][]float64, colorScale []string) (schema.HeatmapGeometry, error) {
	if len(colorScale) == 0 {
		return schema.HeatmapGeometry{}, schema.NewInvalidInput("ComputeHeatmap", "color scale must not be empty")
	}

	var flat []float64
	for _, row := range matrix {
		for _, v := range row {
			if !geom.IsFinite(v) {
				return schema.HeatmapGeometry{}, schema.NewInvalidInput("ComputeHeatmap", "non-finite matrix value %v", v)
			}
			flat = append(flat, v)
		}
	}

	hg := schema.HeatmapGeometry{
		Colors:  make([][]string, len(matrix)),
		Indices: make([][]int, len(matrix)),
	}
	minVal, maxVal, ok := geom.MinMax(flat)
	if !ok {
		return hg, nil
	}
	hg.Min = minVal
	hg.Max = maxVal

	span := maxVal - minVal
	if span == 0 {
		span = 1
	}

	last := len(colorScale) - 1
	for i, row := range matrix {
		hg.Colors[i] = make([]string, len(row))
		hg.Indices[i] = make([]int, len(row))
		for j, v := range row {
			ratio := (v - minVal) / span
			idx := int(math.Floor(ratio * float64(last)))
			if idx > last {
				idx = last
			}
			hg.Indices[i][j] = idx
			hg.Colors[i][j] = colorScale[idx]
		}
	}
	return hg, nil
}

// Bucketize returns only the per-cell colors of ComputeHeatmap; it is the
// contract most renderers consume.
func Bucketize(matrix [][]float64, colorScale []string) ([][]string, error) {
	hg, err := ComputeHeatmap(matrix, colorScale)
	if err != nil {
		return nil, err
	}
	return hg.Colors, nil
}

// BucketizeIndex returns only the per-cell bucket indices, for renderers that
// carry their own color tables.
func BucketizeIndex(matrix [][]float64, colorScale []string) ([][]int, error) {
	hg, err := ComputeHeatmap(matrix, colorScale)
	if err != nil {
		return nil, err
	}
	return hg.Indices, nil
}
