// Package schema has data models, configs and constants for all parts of chartgeom.
package schema

// Point is a position in pixel space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DataPoint represents a single categorical observation, such as one slice
// of a pie chart or one axis of a radar chart. Label does not have to be
// unique within a series, but legends assume it is.
type DataPoint struct {
	Label string  `json:"label"`           // Category name shown in legends
	Value float64 `json:"value"`           // Observed value; must be finite
	Color string  `json:"color,omitempty"` // Optional explicit color; palette assigns one otherwise
}

// TimeSeriesPoint represents one dated observation in a time series.
// Callers provide points already ordered; the engine never sorts.
type TimeSeriesPoint struct {
	Date  string  `json:"date"`            // ISO8601 or display date string
	Value float64 `json:"value"`           // Observed value; must be finite
	Label string  `json:"label,omitempty"` // Optional display label override
}

// MultiSeries is one named series within a group of parallel series that
// share an implicit index-aligned x-axis. All series in a group must have
// equal-length Data.
type MultiSeries struct {
	Name  string    `json:"name"`
	Data  []float64 `json:"data"`
	Color string    `json:"color"`
}

// SeriesGroup bundles parallel series with their shared category labels.
type SeriesGroup struct {
	Labels []string      `json:"labels,omitempty"` // Optional x-axis category labels
	Series []MultiSeries `json:"series"`
}

// Len returns the shared series length, or 0 for an empty group.
func (g *SeriesGroup) Len() int {
	if len(g.Series) == 0 {
		return 0
	}
	return len(g.Series[0].Data)
}

// Dataset is a named collection of observations as stored and loaded by the
// dataset layer. Exactly one of Points or Group is typically populated,
// depending on the chart kind it feeds.
type Dataset struct {
	Name   string      `json:"name"`
	Kind   ChartKind   `json:"kind"`
	Points []DataPoint `json:"points,omitempty"`
	Group  SeriesGroup `json:"group,omitempty"`
	Matrix [][]float64 `json:"matrix,omitempty"`
}
