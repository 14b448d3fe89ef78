package contract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/openclinic/chartgeom/schema"
)

// Default values for configuration.
const (
	DefaultPrecision = 1
	MaxPrecision     = 4
	MaxDimension     = 10000 // Pixel dimensions beyond this are almost certainly a typo
)

// hexColorRe matches 3- or 6-digit hex colors with a leading '#'.
var hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Config holds the runtime configuration for a render.
// This struct remains the "final, validated" config.
type Config struct {
	DataFile string // Path to the dataset file (set by positional arg)
	Dataset  string // Stored dataset name; overrides DataFile when set

	Kind       schema.ChartKind
	Output     schema.OutputMode
	OutputFile string

	Width       float64
	Height      float64
	Radius      float64
	InnerRadius float64
	Levels      int
	Smooth      bool
	ShowArea    bool
	IncludeZero bool
	Padding     float64
	CellSize    float64

	MaxValue   float64 // Gauge full-scale value
	Thresholds []schema.Threshold

	Palette   []string
	HeatScale []string

	Precision int
	UseColors bool // Enable colored labels in table output
	TermWidth int  // Terminal width override (0 = auto-detect)

	StoreBackend schema.StoreBackend
	StoreConnect string // Please use env var as this is plaintext
}

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	DataFileStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Dataset      string  `mapstructure:"dataset"`
	Output       string  `mapstructure:"output"`
	OutputFile   string  `mapstructure:"output-file"`
	Width        float64 `mapstructure:"width"`
	Height       float64 `mapstructure:"height"`
	Radius       float64 `mapstructure:"radius"`
	InnerRadius  float64 `mapstructure:"inner-radius"`
	Levels       int     `mapstructure:"levels"`
	Smooth       bool    `mapstructure:"smooth"`
	Area         bool    `mapstructure:"area"`
	IncludeZero  bool    `mapstructure:"include-zero"`
	Padding      float64 `mapstructure:"padding"`
	CellSize     float64 `mapstructure:"cell-size"`
	Max          float64 `mapstructure:"max"`
	Thresholds   string  `mapstructure:"thresholds"`
	Palette      string  `mapstructure:"palette"`
	HeatScale    string  `mapstructure:"heat-scale"`
	Precision    int     `mapstructure:"precision"`
	Color        string  `mapstructure:"color"`
	TermWidth    int     `mapstructure:"term-width"`
	StoreBackend string  `mapstructure:"store-backend"`
	StoreConnect string  `mapstructure:"store-db-connect"`
}

// ProcessAndValidate performs all complex parsing and validation on the raw
// inputs and populates the final Config struct.
func ProcessAndValidate(cfg *Config, kind schema.ChartKind, input *ConfigRawInput) error {
	cfg.Kind = kind
	cfg.DataFile = input.DataFileStr
	cfg.Dataset = input.Dataset
	cfg.OutputFile = input.OutputFile

	// --- 1. Output mode ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	validOutputs := map[schema.OutputMode]bool{
		schema.SVGOut: true, schema.TextOut: true, schema.CSVOut: true,
		schema.JSONOut: true, schema.ParquetOut: true,
	}
	if !validOutputs[cfg.Output] {
		return fmt.Errorf("invalid output format '%s'. must be svg, text, csv, json, parquet", input.Output)
	}

	// --- 2. Dimensions ---
	if input.Width <= 0 || input.Width > MaxDimension {
		return fmt.Errorf("width must be within (0, %d] (received %v)", MaxDimension, input.Width)
	}
	if input.Height <= 0 || input.Height > MaxDimension {
		return fmt.Errorf("height must be within (0, %d] (received %v)", MaxDimension, input.Height)
	}
	cfg.Width = input.Width
	cfg.Height = input.Height

	if input.Radius < 0 {
		return fmt.Errorf("radius must be >= 0 (received %v)", input.Radius)
	}
	if input.InnerRadius < 0 || (input.Radius > 0 && input.InnerRadius > input.Radius) {
		return fmt.Errorf("inner-radius must be within [0, radius] (received %v)", input.InnerRadius)
	}
	cfg.Radius = input.Radius
	cfg.InnerRadius = input.InnerRadius

	if input.Levels <= 0 {
		return fmt.Errorf("levels must be > 0 (received %d)", input.Levels)
	}
	cfg.Levels = input.Levels

	if input.CellSize <= 0 {
		return fmt.Errorf("cell-size must be > 0 (received %v)", input.CellSize)
	}
	cfg.CellSize = input.CellSize

	// --- 3. Scale knobs ---
	if input.Padding < 0 || input.Padding > 1 {
		return fmt.Errorf("padding must be within [0, 1] (received %v)", input.Padding)
	}
	cfg.Padding = input.Padding
	cfg.Smooth = input.Smooth
	cfg.ShowArea = input.Area
	cfg.IncludeZero = input.IncludeZero

	// --- 4. Gauge knobs ---
	if input.Max <= 0 {
		return fmt.Errorf("max must be > 0 (received %v)", input.Max)
	}
	cfg.MaxValue = input.Max

	thresholds, err := ParseThresholds(input.Thresholds)
	if err != nil {
		return err
	}
	cfg.Thresholds = thresholds

	// --- 5. Colors ---
	palette, err := ParseColorList(input.Palette)
	if err != nil {
		return fmt.Errorf("invalid palette: %w", err)
	}
	if len(palette) == 0 {
		palette = schema.DefaultPalette
	}
	cfg.Palette = palette

	heatScale, err := ParseColorList(input.HeatScale)
	if err != nil {
		return fmt.Errorf("invalid heat-scale: %w", err)
	}
	if len(heatScale) == 0 {
		heatScale = schema.DefaultHeatScale
	}
	cfg.HeatScale = heatScale

	// --- 6. Precision, terminal, color toggle ---
	if input.Precision < 1 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be within [1, %d] (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	if input.TermWidth < 0 {
		return fmt.Errorf("term-width must be >= 0 (received %d)", input.TermWidth)
	}
	cfg.TermWidth = input.TermWidth

	useColors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid color option: %w", err)
	}
	cfg.UseColors = useColors

	// --- 7. Store backend ---
	cfg.StoreBackend = schema.StoreBackend(strings.ToLower(input.StoreBackend))
	validBackends := map[schema.StoreBackend]bool{
		schema.SQLiteBackend: true, schema.MySQLBackend: true,
		schema.PostgreSQLBackend: true, schema.NoneBackend: true,
	}
	if !validBackends[cfg.StoreBackend] {
		return fmt.Errorf("invalid store backend '%s'. must be sqlite, mysql, postgresql, or none", input.StoreBackend)
	}
	if err := ValidateStoreConnectionString(cfg.StoreBackend, input.StoreConnect); err != nil {
		return err
	}
	cfg.StoreConnect = input.StoreConnect

	return nil
}

// ValidateStoreConnectionString validates the format of database connection
// strings for MySQL and PostgreSQL backends.
func ValidateStoreConnectionString(backend schema.StoreBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
	}
	return nil
}

// ParseThresholds parses a "value:color[:label]" comma list, e.g.
// "0:#dc2626:low,70:#f59e0b,90:#16a34a:good". Thresholds must be ordered by
// value ascending because gauge color resolution scans from the highest
// floor downward. An empty string returns nil so chart defaults apply.
func ParseThresholds(s string) ([]schema.Threshold, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var out []schema.Threshold
	for _, part := range strings.Split(s, ",") {
		fields := strings.Split(strings.TrimSpace(part), ":")
		if len(fields) < 2 || len(fields) > 3 {
			return nil, fmt.Errorf("invalid threshold %q (expected value:color[:label])", part)
		}
		value, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid threshold value %q: %w", fields[0], err)
		}
		color := strings.TrimSpace(fields[1])
		if !hexColorRe.MatchString(color) {
			return nil, fmt.Errorf("invalid threshold color %q (expected #rgb or #rrggbb)", color)
		}
		t := schema.Threshold{Value: value, Color: color}
		if len(fields) == 3 {
			t.Label = strings.TrimSpace(fields[2])
		}
		if len(out) > 0 && value <= out[len(out)-1].Value {
			return nil, fmt.Errorf("thresholds must be strictly increasing by value (%v after %v)", value, out[len(out)-1].Value)
		}
		out = append(out, t)
	}
	return out, nil
}

// ParseColorList parses a comma-separated list of hex colors. An empty
// string returns nil so defaults apply.
func ParseColorList(s string) ([]string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var out []string
	for _, part := range strings.Split(s, ",") {
		c := strings.TrimSpace(part)
		if !hexColorRe.MatchString(c) {
			return nil, fmt.Errorf("invalid color %q (expected #rgb or #rrggbb)", c)
		}
		out = append(out, c)
	}
	return out, nil
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
