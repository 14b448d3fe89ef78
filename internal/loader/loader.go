// Package loader reads chart datasets from CSV and JSON files.
package loader

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/openclinic/chartgeom/core/geom"
	"github.com/openclinic/chartgeom/internal/contract"
	"github.com/openclinic/chartgeom/schema"
)

// FileSource loads datasets from local files. The chart kind steers CSV
// parsing, since a bare CSV cannot say whether it is categorical rows, a
// series table, or a matrix.
type FileSource struct {
	kind schema.ChartKind
}

var _ contract.DatasetSource = &FileSource{} // Compile-time check

// NewFileSource returns a file-backed dataset source for the given chart kind.
func NewFileSource(kind schema.ChartKind) *FileSource {
	return &FileSource{kind: kind}
}

// Load reads and validates a dataset from path. JSON files must contain a
// serialized dataset document; CSV files are parsed according to the source's
// chart kind.
func (s *FileSource) Load(path string) (*schema.Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return s.loadJSON(path)
	case ".csv":
		return s.loadCSV(path)
	default:
		return nil, fmt.Errorf("unsupported dataset file %q (expected .json or .csv)", path)
	}
}

func (s *FileSource) loadJSON(path string) (*schema.Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	var ds schema.Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse dataset %q: %w", path, err)
	}
	if ds.Kind == "" {
		ds.Kind = s.kind
	}
	if ds.Name == "" {
		ds.Name = datasetNameFromPath(path)
	}
	if err := Validate(&ds); err != nil {
		return nil, err
	}
	return &ds, nil
}

func (s *FileSource) loadCSV(path string) (*schema.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // validated per chart kind below
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV %q: %w", path, err)
	}

	ds := &schema.Dataset{Name: datasetNameFromPath(path), Kind: s.kind}
	switch s.kind {
	case schema.PieKind, schema.DonutKind, schema.GaugeKind, schema.RadarKind:
		ds.Points, err = parseCategoricalRows(rows)
	case schema.LineKind, schema.AreaKind, schema.SparkKind:
		ds.Group, err = parseSeriesTable(rows)
	case schema.HeatmapKind:
		ds.Matrix, err = parseMatrix(rows)
	default:
		err = fmt.Errorf("unsupported chart kind %q for CSV input", s.kind)
	}
	if err != nil {
		return nil, fmt.Errorf("dataset %q: %w", path, err)
	}
	if err := Validate(ds); err != nil {
		return nil, err
	}
	return ds, nil
}

// parseCategoricalRows parses label,value[,color] rows. A first row whose
// value column does not parse is treated as a header and skipped.
func parseCategoricalRows(rows [][]string) ([]schema.DataPoint, error) {
	var points []schema.DataPoint
	for i, row := range rows {
		if len(row) < 2 {
			return nil, fmt.Errorf("row %d: expected label,value[,color], got %d fields", i+1, len(row))
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			if i == 0 {
				continue // header row
			}
			return nil, fmt.Errorf("row %d: invalid value %q", i+1, row[1])
		}
		p := schema.DataPoint{Label: strings.TrimSpace(row[0]), Value: value}
		if len(row) > 2 {
			p.Color = strings.TrimSpace(row[2])
		}
		points = append(points, p)
	}
	return points, nil
}

// parseSeriesTable parses a header row naming each series followed by rows
// of label,value,value,... sharing an index-aligned x-axis.
func parseSeriesTable(rows [][]string) (schema.SeriesGroup, error) {
	var g schema.SeriesGroup
	if len(rows) < 2 {
		return g, fmt.Errorf("series table needs a header row and at least one data row")
	}

	header := rows[0]
	if len(header) < 2 {
		return g, fmt.Errorf("series table header needs a label column and at least one series column")
	}
	g.Series = make([]schema.MultiSeries, len(header)-1)
	for i, name := range header[1:] {
		g.Series[i].Name = strings.TrimSpace(name)
	}

	for i, row := range rows[1:] {
		if len(row) != len(header) {
			return g, fmt.Errorf("row %d: expected %d fields, got %d", i+2, len(header), len(row))
		}
		g.Labels = append(g.Labels, strings.TrimSpace(row[0]))
		for j, field := range row[1:] {
			value, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return g, fmt.Errorf("row %d: invalid value %q", i+2, field)
			}
			g.Series[j].Data = append(g.Series[j].Data, value)
		}
	}
	return g, nil
}

// parseMatrix parses all-numeric rows into a 2-D matrix.
func parseMatrix(rows [][]string) ([][]float64, error) {
	matrix := make([][]float64, len(rows))
	for i, row := range rows {
		matrix[i] = make([]float64, len(row))
		for j, field := range row {
			value, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: invalid matrix value %q", i+1, field)
			}
			matrix[i][j] = value
		}
	}
	return matrix, nil
}

// Validate enforces the dataset-level hard preconditions: finite values
// everywhere and equal-length series within a group. Sparse or empty data
// is allowed; the engine degrades gracefully downstream.
func Validate(ds *schema.Dataset) error {
	for _, p := range ds.Points {
		if !geom.IsFinite(p.Value) {
			return schema.NewInvalidInput("Validate", "dataset %q: non-finite value for %q", ds.Name, p.Label)
		}
	}

	n := ds.Group.Len()
	for _, s := range ds.Group.Series {
		if len(s.Data) != n {
			return schema.NewInvalidInput("Validate", "dataset %q: series %q has %d points, want %d", ds.Name, s.Name, len(s.Data), n)
		}
		if !geom.AllFinite(s.Data) {
			return schema.NewInvalidInput("Validate", "dataset %q: series %q has non-finite values", ds.Name, s.Name)
		}
	}

	for _, row := range ds.Matrix {
		if !geom.AllFinite(row) {
			return schema.NewInvalidInput("Validate", "dataset %q: matrix has non-finite values", ds.Name)
		}
	}
	return nil
}

func datasetNameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// StoreSource loads datasets by name from a dataset store, so saved series
// can be re-rendered without the original file.
type StoreSource struct {
	store contract.DatasetStore
}

var _ contract.DatasetSource = &StoreSource{} // Compile-time check

// NewStoreSource returns a store-backed dataset source.
func NewStoreSource(store contract.DatasetStore) *StoreSource {
	return &StoreSource{store: store}
}

// Load fetches a stored dataset by name and re-validates it.
func (s *StoreSource) Load(name string) (*schema.Dataset, error) {
	ds, err := s.store.Load(name)
	if err != nil {
		return nil, err
	}
	if err := Validate(ds); err != nil {
		return nil, err
	}
	return ds, nil
}
