package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/openclinic/chartgeom/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestLoadJSONDataset round-trips a dataset document.
func TestLoadJSONDataset(t *testing.T) {
	path := writeTempFile(t, "wards.json", `{
		"name": "ward-occupancy",
		"kind": "pie",
		"points": [
			{"label": "ICU", "value": 12},
			{"label": "ER", "value": 30, "color": "#dc2626"}
		]
	}`)

	ds, err := NewFileSource(schema.PieKind).Load(path)
	require.NoError(t, err)

	assert.Equal(t, "ward-occupancy", ds.Name)
	assert.Equal(t, schema.PieKind, ds.Kind)
	require.Len(t, ds.Points, 2)
	assert.Equal(t, "#dc2626", ds.Points[1].Color)
}

// TestLoadJSONDefaultsNameAndKind checks fallbacks for sparse documents.
func TestLoadJSONDefaultsNameAndKind(t *testing.T) {
	path := writeTempFile(t, "triage.json", `{"points": [{"label": "a", "value": 1}]}`)

	ds, err := NewFileSource(schema.DonutKind).Load(path)
	require.NoError(t, err)

	assert.Equal(t, "triage", ds.Name)
	assert.Equal(t, schema.DonutKind, ds.Kind)
}

// TestLoadCSVCategorical parses label,value[,color] rows with a header.
func TestLoadCSVCategorical(t *testing.T) {
	path := writeTempFile(t, "beds.csv", "ward,patients\nICU,12\nER,30\nSurgery,8\n")

	ds, err := NewFileSource(schema.PieKind).Load(path)
	require.NoError(t, err)

	require.Len(t, ds.Points, 3)
	assert.Equal(t, schema.DataPoint{Label: "ICU", Value: 12}, ds.Points[0])
}

// TestLoadCSVSeriesTable parses an index-aligned multi-series table.
func TestLoadCSVSeriesTable(t *testing.T) {
	path := writeTempFile(t, "admissions.csv", "month,admitted,discharged\nJan,40,35\nFeb,52,48\nMar,61,57\n")

	ds, err := NewFileSource(schema.LineKind).Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Jan", "Feb", "Mar"}, ds.Group.Labels)
	require.Len(t, ds.Group.Series, 2)
	assert.Equal(t, "admitted", ds.Group.Series[0].Name)
	assert.Equal(t, []float64{40, 52, 61}, ds.Group.Series[0].Data)
	assert.Equal(t, []float64{35, 48, 57}, ds.Group.Series[1].Data)
}

// TestLoadCSVMatrix parses an all-numeric matrix for heatmaps.
func TestLoadCSVMatrix(t *testing.T) {
	path := writeTempFile(t, "load.csv", "0,10\n5,10\n")

	ds, err := NewFileSource(schema.HeatmapKind).Load(path)
	require.NoError(t, err)

	assert.Equal(t, [][]float64{{0, 10}, {5, 10}}, ds.Matrix)
}

// TestLoadRejectsBadInput covers the common user mistakes.
func TestLoadRejectsBadInput(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		kind    schema.ChartKind
		wantErr string
	}{
		{
			name:    "unknown extension",
			file:    "data.txt",
			content: "x",
			kind:    schema.PieKind,
			wantErr: "unsupported dataset file",
		},
		{
			name:    "bad categorical value",
			file:    "bad.csv",
			content: "ICU,12\nER,oops\n",
			kind:    schema.PieKind,
			wantErr: "invalid value",
		},
		{
			name:    "ragged series row",
			file:    "ragged.csv",
			content: "month,a,b\nJan,1,2\nFeb,3\n",
			kind:    schema.LineKind,
			wantErr: "expected 3 fields",
		},
		{
			name:    "bad matrix cell",
			file:    "matrix.csv",
			content: "1,2\n3,x\n",
			kind:    schema.HeatmapKind,
			wantErr: "invalid matrix value",
		},
		{
			name:    "non-finite json value",
			file:    "inf.json",
			content: `{"points": [{"label": "a", "value": 1e309}]}`,
			kind:    schema.PieKind,
			wantErr: "parse", // 1e309 overflows float64 during decode
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, tt.file, tt.content)
			_, err := NewFileSource(tt.kind).Load(path)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

// TestValidateMismatchedSeries enforces the equal-length hard precondition.
func TestValidateMismatchedSeries(t *testing.T) {
	ds := &schema.Dataset{
		Name: "bad",
		Group: schema.SeriesGroup{Series: []schema.MultiSeries{
			{Name: "a", Data: []float64{1, 2, 3}},
			{Name: "b", Data: []float64{1, 2}},
		}},
	}

	err := Validate(ds)
	assert.True(t, schema.IsInvalidInput(err))
	assert.ErrorContains(t, err, "series \"b\"")
}
