package core

import (
	"math"
	"testing"

	"github.com/openclinic/chartgeom/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMakeScaleEndpoints verifies the inverted pixel mapping: domain min to
// the range end, domain max to the range start.
func TestMakeScaleEndpoints(t *testing.T) {
	s, err := MakeScale([]float64{10, 30, 50}, [2]float64{0, 400}, schema.ScaleOptions{})
	require.NoError(t, err)

	assert.Equal(t, 10.0, s.Min)
	assert.Equal(t, 50.0, s.Max)
	assert.InDelta(t, 400.0, s.PixelFor(10), 1e-9)
	assert.InDelta(t, 0.0, s.PixelFor(50), 1e-9)
	assert.InDelta(t, 200.0, s.PixelFor(30), 1e-9)
}

// TestMakeScaleOptions covers the zero-extension and headroom knobs.
func TestMakeScaleOptions(t *testing.T) {
	t.Run("include zero extends positive minimum", func(t *testing.T) {
		s, err := MakeScale([]float64{20, 40}, [2]float64{0, 100}, schema.ScaleOptions{IncludeZero: true})
		require.NoError(t, err)
		assert.Equal(t, 0.0, s.Min)
		assert.Equal(t, 40.0, s.Max)
	})

	t.Run("include zero leaves negative minimum alone", func(t *testing.T) {
		s, err := MakeScale([]float64{-10, 40}, [2]float64{0, 100}, schema.ScaleOptions{IncludeZero: true})
		require.NoError(t, err)
		assert.Equal(t, -10.0, s.Min)
	})

	t.Run("padding adds headroom above the maximum", func(t *testing.T) {
		s, err := MakeScale([]float64{0, 100}, [2]float64{0, 100}, schema.ScaleOptions{PaddingFactor: 0.1})
		require.NoError(t, err)
		assert.InDelta(t, 110.0, s.Max, 1e-9)
	})
}

// TestMakeScaleDegenerate covers the no-data and flat-data fallbacks.
func TestMakeScaleDegenerate(t *testing.T) {
	t.Run("empty values map to the range midpoint", func(t *testing.T) {
		s, err := MakeScale(nil, [2]float64{0, 400}, schema.ScaleOptions{})
		require.NoError(t, err)
		assert.True(t, s.Degenerate)
		assert.InDelta(t, 200.0, s.PixelFor(123), 1e-9)
	})

	t.Run("all-equal values still interpolate", func(t *testing.T) {
		s, err := MakeScale([]float64{7, 7, 7}, [2]float64{0, 100}, schema.ScaleOptions{})
		require.NoError(t, err)
		assert.False(t, s.Degenerate)
		assert.InDelta(t, 100.0, s.PixelFor(7), 1e-9)
	})
}

// TestMakeScaleNonFinite: NaN or infinite values never reach pixel
// coordinates.
func TestMakeScaleNonFinite(t *testing.T) {
	for name, values := range map[string][]float64{
		"NaN":          {math.NaN(), 10},
		"positive Inf": {10, math.Inf(1)},
		"negative Inf": {math.Inf(-1)},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := MakeScale(values, [2]float64{0, 400}, schema.ScaleOptions{})
			assert.True(t, schema.IsInvalidInput(err))
		})
	}
}
