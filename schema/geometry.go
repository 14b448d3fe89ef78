package schema

// Scale is a linear mapping from a numeric data domain onto a pixel range.
// It is recomputed on every render pass and never cached across calls.
// The range is inverted for screen coordinates: the domain minimum maps to
// RangeEnd and the maximum to RangeStart, so larger values land higher on
// screen (smaller Y).
type Scale struct {
	Min        float64 // Domain minimum after zero/padding adjustments
	Max        float64 // Domain maximum after zero/padding adjustments
	RangeStart float64 // Pixel coordinate the domain maximum maps to
	RangeEnd   float64 // Pixel coordinate the domain minimum maps to
	Degenerate bool    // True when built from no values; PixelFor returns the range midpoint
}

// PixelFor linearly interpolates a domain value into the pixel range.
func (s Scale) PixelFor(v float64) float64 {
	if s.Degenerate {
		return (s.RangeStart + s.RangeEnd) / 2
	}
	span := s.Max - s.Min
	if span == 0 {
		span = 1
	}
	return s.RangeEnd + (v-s.Min)/span*(s.RangeStart-s.RangeEnd)
}

// Sector is a pie or donut slice's full geometric description. It is derived
// from a DataPoint list plus chart radii, owned transiently by the
// calculation call, and never mutated after creation.
type Sector struct {
	Label       string  `json:"label"`
	Value       float64 `json:"value"`
	StartAngle  float64 `json:"start_angle"` // Degrees; -90 is 12 o'clock, clockwise positive
	EndAngle    float64 `json:"end_angle"`
	InnerRadius float64 `json:"inner_radius"` // 0 for pie, >0 for donut
	OuterRadius float64 `json:"outer_radius"`
	Path        string  `json:"path"`        // SVG path tracing the slice or ring segment
	LabelPoint  Point   `json:"label_point"` // Anchor at 0.75*radius along the bisecting angle
	Percentage  float64 `json:"percentage"`  // Share of the total, 0-100
	Color       string  `json:"color"`
}

// Threshold is one band in a value-ordered threshold list for gauge coloring.
type Threshold struct {
	Value float64 `json:"value"`
	Color string  `json:"color"`
	Label string  `json:"label,omitempty"`
}

// GaugeGeometry describes a semicircular gauge arc revealed via the
// stroke-dash technique: a renderer sets stroke-dasharray to Circumference
// and stroke-dashoffset to DashOffset.
type GaugeGeometry struct {
	Radius        float64 `json:"radius"`
	Circumference float64 `json:"circumference"` // pi * radius; only 180 degrees is drawn
	DashOffset    float64 `json:"dash_offset"`
	Percentage    float64 `json:"percentage"` // Clamped to 0-100
	Color         string  `json:"color"`      // Resolved from the threshold bands
	Path          string  `json:"path"`       // Semicircle arc path from 9 o'clock to 3 o'clock
}

// RadarGeometry describes a radar (spider) chart: the data polygon,
// concentric grid rings, axis spokes and label anchors. Axis 0 starts at the
// top and axes proceed clockwise.
type RadarGeometry struct {
	Center      Point     `json:"center"`
	DataPolygon []Point   `json:"data_polygon"` // One vertex per axis, normalized by the dataset's own max
	GridRings   [][]Point `json:"grid_rings"`   // Regular N-gons at radius*k/levels, innermost first
	AxisEnds    []Point   `json:"axis_ends"`    // Outer endpoint of each spoke, drawn from Center
	LabelPoints []Point   `json:"label_points"` // Anchors just outside the outer ring
	Labels      []string  `json:"labels"`
}

// SeriesPath is one series of a line/area chart reduced to renderable paths.
type SeriesPath struct {
	Name     string  `json:"name"`
	Color    string  `json:"color"`
	Path     string  `json:"path"`
	AreaPath string  `json:"area_path,omitempty"`
	Points   []Point `json:"points"`
}

// LineGeometry is a full line/area chart: one path per series sharing a
// single value scale and an index-aligned x-axis.
type LineGeometry struct {
	Series []SeriesPath `json:"series"`
	Scale  Scale        `json:"-"`
	Width  float64      `json:"width"`
	Height float64      `json:"height"`
	Labels []string     `json:"labels,omitempty"`
	XStep  float64      `json:"x_step"` // Horizontal distance between consecutive indices
}

// HeatmapGeometry maps a 2-D numeric matrix to discrete color buckets.
type HeatmapGeometry struct {
	Colors  [][]string `json:"colors"`  // One color per matrix cell
	Indices [][]int    `json:"indices"` // Bucket index per cell, always within the color scale
	Min     float64    `json:"min"`
	Max     float64    `json:"max"`
}

// SparklineGeometry is the compact single-series trend glyph: a smoothed
// line path, its closed area path, and a semantic up/down flag.
type SparklineGeometry struct {
	Path     string  `json:"path"`
	AreaPath string  `json:"area_path"`
	TrendUp  bool    `json:"trend_up"` // last value >= first value; picks a color, not a statistic
	Points   []Point `json:"points"`
	Scale    Scale   `json:"-"`
}
