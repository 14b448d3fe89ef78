package cmd

import (
	"github.com/openclinic/chartgeom/core"
	"github.com/openclinic/chartgeom/schema"
	"github.com/spf13/cobra"
)

// gaugeCmd renders gauge geometry.
var gaugeCmd = &cobra.Command{
	Use:   "gauge [data-file]",
	Short: "Compute semicircular gauge geometry for a single value.",
	Long: `Compute gauge geometry: a semicircular arc revealed with the
stroke-dash technique, plus a color resolved from threshold bands.

The first data point of the dataset carries the gauge value. Thresholds are
value floors scanned from the highest downward; a value exactly on a floor
belongs to that floor's band.

Examples:
  # ICU occupancy against the default 0-100 scale
  chartgeom gauge icu.csv

  # Custom scale and bands
  chartgeom gauge icu.csv --max 200 --thresholds "0:#dc2626:low,140:#f59e0b,180:#16a34a:good"

  # Geometry only, as JSON
  chartgeom gauge icu.csv --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: chartSetup(schema.GaugeKind),
	Run: func(_ *cobra.Command, _ []string) {
		runChart(core.ExecuteGauge, "Cannot compute gauge geometry")
	},
}
