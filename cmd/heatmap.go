package cmd

import (
	"github.com/openclinic/chartgeom/core"
	"github.com/openclinic/chartgeom/schema"
	"github.com/spf13/cobra"
)

// heatmapCmd renders heatmap geometry.
var heatmapCmd = &cobra.Command{
	Use:   "heatmap [data-file]",
	Short: "Bucketize a numeric matrix onto a discrete color scale.",
	Long: `Compute heatmap geometry: each matrix cell is assigned a bucket on a
discrete color scale by linear interpolation between the matrix minimum and
maximum. Rows may be ragged.

Accepts a JSON dataset document or a CSV of numeric rows.

Examples:
  # Hourly admissions grid with the built-in blue scale
  chartgeom heatmap admissions-by-hour.csv

  # Custom scale, coolest to hottest
  chartgeom heatmap admissions-by-hour.csv --heat-scale "#eff6ff,#93c5fd,#3b82f6,#1d4ed8"

  # Per-cell colors as CSV rows
  chartgeom heatmap admissions-by-hour.csv --output csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: chartSetup(schema.HeatmapKind),
	Run: func(_ *cobra.Command, _ []string) {
		runChart(core.ExecuteHeatmap, "Cannot compute heatmap geometry")
	},
}
