package core

import (
	"math"
	"strings"
	"testing"

	"github.com/openclinic/chartgeom/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plainLineOpts() schema.LineOptions {
	return schema.LineOptions{
		Width:   100,
		Height:  100,
		Palette: schema.DefaultPalette,
	}
}

// TestComputeLine verifies point placement on the shared scale and the
// index-aligned x-axis.
func TestComputeLine(t *testing.T) {
	group := schema.SeriesGroup{
		Labels: []string{"Mon", "Tue", "Wed"},
		Series: []schema.MultiSeries{{Name: "admissions", Data: []float64{0, 50, 100}}},
	}

	lg, err := ComputeLine(group, plainLineOpts())
	require.NoError(t, err)

	assert.Equal(t, []string{"Mon", "Tue", "Wed"}, lg.Labels)
	assert.InDelta(t, 50.0, lg.XStep, 1e-9)

	require.Len(t, lg.Series, 1)
	points := lg.Series[0].Points
	require.Len(t, points, 3)
	assert.InDelta(t, 100.0, points[0].Y, 1e-9, "minimum sits on the bottom edge")
	assert.InDelta(t, 0.0, points[2].Y, 1e-9, "maximum sits on the top edge")
	assert.Equal(t, "M 0 100 L 50 50 L 100 0", lg.Series[0].Path)
}

// TestComputeLineSharedScale: every series is mapped against the min/max of
// the whole group, not its own.
func TestComputeLineSharedScale(t *testing.T) {
	group := schema.SeriesGroup{
		Series: []schema.MultiSeries{
			{Name: "low", Data: []float64{0, 10}},
			{Name: "high", Data: []float64{90, 100}},
		},
	}

	lg, err := ComputeLine(group, plainLineOpts())
	require.NoError(t, err)

	assert.Equal(t, 0.0, lg.Scale.Min)
	assert.Equal(t, 100.0, lg.Scale.Max)
	assert.InDelta(t, 100.0, lg.Series[0].Points[0].Y, 1e-9)
	assert.InDelta(t, 0.0, lg.Series[1].Points[1].Y, 1e-9)
}

// TestComputeLineAreaAndColors: ShowArea emits closed area paths and the
// palette fills in missing series colors.
func TestComputeLineAreaAndColors(t *testing.T) {
	group := schema.SeriesGroup{
		Series: []schema.MultiSeries{
			{Name: "a", Data: []float64{1, 2}},
			{Name: "b", Data: []float64{3, 4}, Color: "#abcdef"},
		},
	}
	opts := plainLineOpts()
	opts.ShowArea = true
	opts.Palette = []string{"#111111", "#222222"}

	lg, err := ComputeLine(group, opts)
	require.NoError(t, err)

	assert.Equal(t, "#111111", lg.Series[0].Color)
	assert.Equal(t, "#abcdef", lg.Series[1].Color)
	for _, sp := range lg.Series {
		assert.True(t, strings.HasSuffix(sp.AreaPath, " Z"))
	}

	opts.ShowArea = false
	lg, err = ComputeLine(group, opts)
	require.NoError(t, err)
	assert.Empty(t, lg.Series[0].AreaPath)
}

// TestComputeLineSmoothing: smoothed series use cubic segments.
func TestComputeLineSmoothing(t *testing.T) {
	group := schema.SeriesGroup{
		Series: []schema.MultiSeries{{Name: "a", Data: []float64{0, 100}}},
	}
	opts := plainLineOpts()
	opts.Smooth = true

	lg, err := ComputeLine(group, opts)
	require.NoError(t, err)
	assert.Contains(t, lg.Series[0].Path, " C ")
}

// TestComputeLineDegenerate: empty groups and single-point series render as
// nothing, not as errors.
func TestComputeLineDegenerate(t *testing.T) {
	t.Run("empty group", func(t *testing.T) {
		lg, err := ComputeLine(schema.SeriesGroup{}, plainLineOpts())
		require.NoError(t, err)
		assert.Empty(t, lg.Series)
	})

	t.Run("single point series", func(t *testing.T) {
		group := schema.SeriesGroup{
			Series: []schema.MultiSeries{{Name: "a", Data: []float64{7}}},
		}
		lg, err := ComputeLine(group, plainLineOpts())
		require.NoError(t, err)
		assert.Empty(t, lg.Series[0].Path)
		assert.Zero(t, lg.XStep)
	})
}

// TestComputeLineInvalidInput covers the fail-fast paths.
func TestComputeLineInvalidInput(t *testing.T) {
	t.Run("mismatched series lengths", func(t *testing.T) {
		group := schema.SeriesGroup{
			Series: []schema.MultiSeries{
				{Name: "a", Data: []float64{1, 2, 3}},
				{Name: "b", Data: []float64{1, 2}},
			},
		}
		_, err := ComputeLine(group, plainLineOpts())
		assert.True(t, schema.IsInvalidInput(err))
		assert.Contains(t, err.Error(), `"b"`)
	})

	t.Run("non-finite values", func(t *testing.T) {
		group := schema.SeriesGroup{
			Series: []schema.MultiSeries{{Name: "a", Data: []float64{1, math.Inf(-1)}}},
		}
		_, err := ComputeLine(group, plainLineOpts())
		assert.True(t, schema.IsInvalidInput(err))
	})
}
