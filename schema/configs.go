package schema

// Default geometry knobs shared across chart kinds.
const (
	DefaultChartWidth  = 800.0
	DefaultChartHeight = 400.0
	DefaultRadius      = 120.0
	DefaultGaugeRadius = 80.0
	DefaultRadarLevels = 5
	DefaultSparkWidth  = 120.0
	DefaultSparkHeight = 32.0
	DefaultPadding     = 0.1 // 10% headroom above the data maximum

	// LabelPointFactor places sector label anchors along the bisecting angle.
	LabelPointFactor = 0.75

	// MinLabelPercentage is the conventional floor below which sector labels
	// overlap and become unreadable. The geometry layer only exposes
	// Percentage; enforcing this is the renderer's call.
	MinLabelPercentage = 5.0
)

// ScaleOptions controls domain construction in the scale mapper.
type ScaleOptions struct {
	IncludeZero   bool    // Extend the domain minimum down to zero
	PaddingFactor float64 // Fraction of headroom added above the data maximum
}

// LineOptions is the fully-enumerated configuration for line/area charts.
type LineOptions struct {
	Width    float64  // Plot width in pixels
	Height   float64  // Plot height in pixels
	Smooth   bool     // Cubic smoothing between points
	ShowArea bool     // Emit a closed area path below the line
	Scale    ScaleOptions
	Palette  []string // Per-series stroke colors
}

// DefaultLineOptions returns line chart defaults.
func DefaultLineOptions() LineOptions {
	return LineOptions{
		Width:   DefaultChartWidth,
		Height:  DefaultChartHeight,
		Smooth:  true,
		Scale:   ScaleOptions{IncludeZero: true, PaddingFactor: DefaultPadding},
		Palette: DefaultPalette,
	}
}

// PieOptions is the fully-enumerated configuration for pie/donut charts.
type PieOptions struct {
	Center      Point
	Radius      float64
	InnerRadius float64 // 0 for pie, >0 for donut
	Palette     []string
}

// DefaultPieOptions returns pie chart defaults centered for the default radius.
func DefaultPieOptions() PieOptions {
	return PieOptions{
		Center:  Point{X: DefaultRadius + 20, Y: DefaultRadius + 20},
		Radius:  DefaultRadius,
		Palette: DefaultPalette,
	}
}

// GaugeOptions is the fully-enumerated configuration for gauge charts.
type GaugeOptions struct {
	Radius       float64
	MaxValue     float64
	Thresholds   []Threshold // Ordered by Value ascending
	DefaultColor string      // Used when no threshold floor matches
}

// DefaultGaugeOptions returns gauge defaults with a conventional
// red/orange/green utilization banding.
func DefaultGaugeOptions() GaugeOptions {
	return GaugeOptions{
		Radius:   DefaultGaugeRadius,
		MaxValue: 100,
		Thresholds: []Threshold{
			{Value: 0, Color: "#dc2626", Label: "low"},
			{Value: 70, Color: "#f59e0b", Label: "fair"},
			{Value: 90, Color: "#16a34a", Label: "good"},
		},
		DefaultColor: "#9ca3af",
	}
}

// RadarOptions is the fully-enumerated configuration for radar charts.
type RadarOptions struct {
	Center Point
	Radius float64
	Levels int // Number of concentric grid rings
}

// DefaultRadarOptions returns radar chart defaults.
func DefaultRadarOptions() RadarOptions {
	return RadarOptions{
		Center: Point{X: DefaultRadius + 40, Y: DefaultRadius + 40},
		Radius: DefaultRadius,
		Levels: DefaultRadarLevels,
	}
}

// HeatmapOptions is the fully-enumerated configuration for heatmaps.
type HeatmapOptions struct {
	ColorScale []string // Discrete scale, coolest to hottest
	CellSize   float64  // Rendered cell edge in pixels
}

// DefaultHeatmapOptions returns heatmap defaults.
func DefaultHeatmapOptions() HeatmapOptions {
	return HeatmapOptions{
		ColorScale: DefaultHeatScale,
		CellSize:   24,
	}
}

// SparklineOptions is the fully-enumerated configuration for sparklines.
type SparklineOptions struct {
	Width  float64
	Height float64
}

// DefaultSparklineOptions returns sparkline defaults.
func DefaultSparklineOptions() SparklineOptions {
	return SparklineOptions{Width: DefaultSparkWidth, Height: DefaultSparkHeight}
}
