package schema

// Custom string types for type safety.
type (
	// ChartKind represents the kind of chart being computed.
	ChartKind string

	// OutputMode represents the format of the output.
	OutputMode string

	// StoreBackend represents the database backend for the dataset store.
	StoreBackend string
)

// All chart kinds supported.
const (
	LineKind    ChartKind = "line"
	AreaKind    ChartKind = "area"
	PieKind     ChartKind = "pie"
	DonutKind   ChartKind = "donut"
	GaugeKind   ChartKind = "gauge"
	RadarKind   ChartKind = "radar"
	HeatmapKind ChartKind = "heatmap"
	SparkKind   ChartKind = "spark"
)

// All output modes supported.
const (
	SVGOut     OutputMode = "svg" // default
	TextOut    OutputMode = "text"
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All dataset store backends supported.
const (
	SQLiteBackend     StoreBackend = "sqlite" // default
	MySQLBackend      StoreBackend = "mysql"
	PostgreSQLBackend StoreBackend = "postgresql"
	NoneBackend       StoreBackend = "none"
)

// DefaultPalette is the fallback categorical palette assigned to series and
// sectors that carry no explicit color. Callers override it via options.
var DefaultPalette = []string{
	"#2563eb", "#16a34a", "#f59e0b", "#dc2626",
	"#7c3aed", "#0891b2", "#db2777", "#65a30d",
}

// DefaultHeatScale is the fallback sequential scale for heatmap bucketizing,
// from coolest to hottest.
var DefaultHeatScale = []string{
	"#eff6ff", "#bfdbfe", "#60a5fa", "#2563eb", "#1e3a8a",
}

// PaletteColor cycles through a palette for series/sector index i.
// An empty palette falls back to DefaultPalette.
func PaletteColor(palette []string, i int) string {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	return palette[i%len(palette)]
}
