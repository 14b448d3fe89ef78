package cmd

import (
	"github.com/openclinic/chartgeom/core"
	"github.com/openclinic/chartgeom/schema"
	"github.com/spf13/cobra"
)

// lineCmd renders line chart geometry.
var lineCmd = &cobra.Command{
	Use:   "line [data-file]",
	Short: "Compute line chart geometry from a series dataset.",
	Long: `Compute line chart geometry: one SVG path per series on a shared value
scale with an index-aligned x-axis.

Accepts a JSON dataset document or a CSV series table (first column holds
category labels, remaining columns hold one series each). All series in a
dataset must have the same length.

Examples:
  # Render a CSV series table to SVG on stdout
  chartgeom line admissions.csv

  # Smoothed area chart written to a file
  chartgeom line admissions.csv --area --output-file admissions.svg

  # Raw geometry as JSON for a downstream renderer
  chartgeom line admissions.csv --output json

  # Render a stored dataset instead of a file
  chartgeom line --dataset weekly-admissions`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: chartSetup(schema.LineKind),
	Run: func(_ *cobra.Command, _ []string) {
		runChart(core.ExecuteLine, "Cannot compute line geometry")
	},
}

// areaCmd is line with the area fill forced on.
var areaCmd = &cobra.Command{
	Use:   "area [data-file]",
	Short: "Compute area chart geometry from a series dataset.",
	Long: `Compute area chart geometry: line paths plus closed area paths against
the chart baseline. Identical to 'line --area'.

Examples:
  # Render a CSV series table as a filled area chart
  chartgeom area census.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: chartSetup(schema.AreaKind),
	Run: func(_ *cobra.Command, _ []string) {
		runChart(core.ExecuteLine, "Cannot compute area geometry")
	},
}
