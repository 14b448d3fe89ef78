package core

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/openclinic/chartgeom/internal/contract"
	"github.com/openclinic/chartgeom/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSource is an in-memory DatasetSource recording the requested ref.
type stubSource struct {
	ds      *schema.Dataset
	err     error
	lastRef string
}

func (s *stubSource) Load(ref string) (*schema.Dataset, error) {
	s.lastRef = ref
	if s.err != nil {
		return nil, s.err
	}
	return s.ds, nil
}

// execConfig builds a validated-shape config writing JSON to a temp file so
// executor tests can inspect the output.
func execConfig(t *testing.T) *contract.Config {
	t.Helper()
	return &contract.Config{
		Dataset:    "beds",
		Output:     schema.JSONOut,
		OutputFile: filepath.Join(t.TempDir(), "out.json"),
		Width:      800,
		Height:     400,
		Levels:     5,
		CellSize:   24,
		MaxValue:   100,
		Palette:    schema.DefaultPalette,
		HeatScale:  schema.DefaultHeatScale,
		Precision:  1,
	}
}

func readOutput(t *testing.T, cfg *contract.Config) string {
	t.Helper()
	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	return string(data)
}

// TestDatasetRef: a stored dataset name wins over a file path, and neither is
// an error.
func TestDatasetRef(t *testing.T) {
	ref, err := datasetRef(&contract.Config{Dataset: "beds", DataFile: "beds.json"})
	require.NoError(t, err)
	assert.Equal(t, "beds", ref)

	ref, err = datasetRef(&contract.Config{DataFile: "beds.json"})
	require.NoError(t, err)
	assert.Equal(t, "beds.json", ref)

	_, err = datasetRef(&contract.Config{})
	assert.Error(t, err)
}

// TestExecutePie runs the full load-compute-write pipeline for sectors.
func TestExecutePie(t *testing.T) {
	cfg := execConfig(t)
	source := &stubSource{ds: &schema.Dataset{
		Name: "beds",
		Points: []schema.DataPoint{
			{Label: "Occupied", Value: 60},
			{Label: "Available", Value: 40},
		},
	}}

	require.NoError(t, ExecutePie(cfg, source))
	assert.Equal(t, "beds", source.lastRef)

	out := readOutput(t, cfg)
	assert.Contains(t, out, `"label": "Occupied"`)
	assert.Contains(t, out, `"start_angle": -90`)
	assert.Contains(t, out, `"end_angle": 126`)
}

// TestExecutePieParquet: parquet output demands an explicit file and writes a
// readable one.
func TestExecutePieParquet(t *testing.T) {
	source := &stubSource{ds: &schema.Dataset{
		Name:   "beds",
		Points: []schema.DataPoint{{Label: "Occupied", Value: 60}},
	}}

	t.Run("missing output file", func(t *testing.T) {
		cfg := execConfig(t)
		cfg.Output = schema.ParquetOut
		cfg.OutputFile = ""
		assert.Error(t, ExecutePie(cfg, source))
	})

	t.Run("writes the file", func(t *testing.T) {
		cfg := execConfig(t)
		cfg.Output = schema.ParquetOut
		cfg.OutputFile = filepath.Join(t.TempDir(), "sectors.parquet")
		require.NoError(t, ExecutePie(cfg, source))

		info, err := os.Stat(cfg.OutputFile)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	})
}

// TestExecuteLine: categorical points are promoted into a single series when
// no series group is present.
func TestExecuteLine(t *testing.T) {
	cfg := execConfig(t)
	source := &stubSource{ds: &schema.Dataset{
		Name: "beds",
		Points: []schema.DataPoint{
			{Label: "Mon", Value: 10},
			{Label: "Tue", Value: 20},
		},
	}}

	require.NoError(t, ExecuteLine(cfg, source))

	out := readOutput(t, cfg)
	assert.Contains(t, out, `"name": "values"`)
	assert.Contains(t, out, `"Mon"`)
	assert.Contains(t, out, `"x_step"`)
}

// TestExecuteGauge: the first point carries the gauge value, and an empty
// dataset is an invalid-input error.
func TestExecuteGauge(t *testing.T) {
	t.Run("renders the first point", func(t *testing.T) {
		cfg := execConfig(t)
		source := &stubSource{ds: &schema.Dataset{
			Name:   "occupancy",
			Points: []schema.DataPoint{{Label: "ICU", Value: 75}},
		}}

		require.NoError(t, ExecuteGauge(cfg, source))
		assert.Contains(t, readOutput(t, cfg), `"percentage": 75`)
	})

	t.Run("empty dataset", func(t *testing.T) {
		cfg := execConfig(t)
		source := &stubSource{ds: &schema.Dataset{Name: "occupancy"}}
		err := ExecuteGauge(cfg, source)
		assert.True(t, schema.IsInvalidInput(err))
	})
}

// TestExecuteRadar wires the categorical points through the polygon builder.
func TestExecuteRadar(t *testing.T) {
	cfg := execConfig(t)
	source := &stubSource{ds: &schema.Dataset{
		Name: "capacity",
		Points: []schema.DataPoint{
			{Label: "Staffing", Value: 10},
			{Label: "Beds", Value: 5},
			{Label: "Supplies", Value: 5},
		},
	}}

	require.NoError(t, ExecuteRadar(cfg, source))

	out := readOutput(t, cfg)
	assert.Contains(t, out, `"data_polygon"`)
	assert.Contains(t, out, `"Staffing"`)
}

// TestExecuteHeatmap wires the matrix through the bucketizer.
func TestExecuteHeatmap(t *testing.T) {
	cfg := execConfig(t)
	source := &stubSource{ds: &schema.Dataset{
		Name:   "admissions",
		Matrix: [][]float64{{0, 1}, {0, 1}},
	}}

	require.NoError(t, ExecuteHeatmap(cfg, source))

	out := readOutput(t, cfg)
	assert.Contains(t, out, `"colors"`)
	assert.Contains(t, out, schema.DefaultHeatScale[0])
	assert.Contains(t, out, schema.DefaultHeatScale[len(schema.DefaultHeatScale)-1])
}

// TestExecuteSpark wires point values through the sparkline builder.
func TestExecuteSpark(t *testing.T) {
	cfg := execConfig(t)
	source := &stubSource{ds: &schema.Dataset{
		Name: "census",
		Points: []schema.DataPoint{
			{Label: "w1", Value: 10},
			{Label: "w2", Value: 30},
		},
	}}

	require.NoError(t, ExecuteSpark(cfg, source))
	assert.Contains(t, readOutput(t, cfg), `"trend": "up"`)
}

// TestExecuteSparkSeriesGroup: a series-table dataset feeds its first series
// into the sparkline.
func TestExecuteSparkSeriesGroup(t *testing.T) {
	cfg := execConfig(t)
	source := &stubSource{ds: &schema.Dataset{
		Name: "census",
		Group: schema.SeriesGroup{
			Series: []schema.MultiSeries{{Name: "census", Data: []float64{30, 10}}},
		},
	}}

	require.NoError(t, ExecuteSpark(cfg, source))
	assert.Contains(t, readOutput(t, cfg), `"trend": "down"`)
}

// TestExecuteLoadFailure: source errors surface with the dataset ref attached.
func TestExecuteLoadFailure(t *testing.T) {
	cfg := execConfig(t)
	source := &stubSource{err: errors.New("connection refused")}

	err := ExecuteLine(cfg, source)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"beds"`)
	assert.Contains(t, err.Error(), "connection refused")
}

// TestOptionsFromConfig covers the config-to-options translation rules.
func TestOptionsFromConfig(t *testing.T) {
	t.Run("area kind forces the area path", func(t *testing.T) {
		cfg := execConfig(t)
		cfg.Kind = schema.AreaKind
		assert.True(t, lineOptionsFromConfig(cfg).ShowArea)
	})

	t.Run("donut kind defaults the hole", func(t *testing.T) {
		cfg := execConfig(t)
		cfg.Kind = schema.DonutKind
		cfg.Radius = 100
		opts := pieOptionsFromConfig(cfg)
		assert.InDelta(t, 60.0, opts.InnerRadius, 1e-9)
		assert.InDelta(t, 120.0, opts.Center.X, 1e-9)
	})

	t.Run("explicit inner radius wins over the donut default", func(t *testing.T) {
		cfg := execConfig(t)
		cfg.Kind = schema.DonutKind
		cfg.Radius = 100
		cfg.InnerRadius = 40
		assert.InDelta(t, 40.0, pieOptionsFromConfig(cfg).InnerRadius, 1e-9)
	})

	t.Run("gauge thresholds override the defaults", func(t *testing.T) {
		cfg := execConfig(t)
		cfg.Thresholds = []schema.Threshold{{Value: 0, Color: "#000000"}}
		opts := gaugeOptionsFromConfig(cfg)
		require.Len(t, opts.Thresholds, 1)
		assert.Equal(t, "#000000", opts.Thresholds[0].Color)
	})

	t.Run("radar center tracks the radius", func(t *testing.T) {
		cfg := execConfig(t)
		cfg.Radius = 90
		opts := radarOptionsFromConfig(cfg)
		assert.InDelta(t, 130.0, opts.Center.X, 1e-9)
		assert.Equal(t, 5, opts.Levels)
	})

	t.Run("spark dimensions come from the config", func(t *testing.T) {
		cfg := execConfig(t)
		cfg.Width = 200
		cfg.Height = 40
		opts := sparkOptionsFromConfig(cfg)
		assert.Equal(t, 200.0, opts.Width)
		assert.Equal(t, 40.0, opts.Height)
	})
}
