package cmd

import (
	"github.com/openclinic/chartgeom/core"
	"github.com/openclinic/chartgeom/schema"
	"github.com/spf13/cobra"
)

// pieCmd renders pie chart geometry.
var pieCmd = &cobra.Command{
	Use:   "pie [data-file]",
	Short: "Compute pie chart sector geometry from categorical data.",
	Long: `Compute pie chart geometry: one sector per category with angles, SVG
paths, label anchors and percentage shares.

Sectors start at 12 o'clock and proceed clockwise, each spanning its share of
the total. Accepts a JSON dataset document or a two-column CSV of label,value
rows.

Examples:
  # Render bed occupancy shares to SVG on stdout
  chartgeom pie occupancy.csv

  # Sector table with share labels in the terminal
  chartgeom pie occupancy.csv --output text

  # Export sector records for analytics tooling
  chartgeom pie occupancy.csv --output parquet --output-file sectors.parquet`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: chartSetup(schema.PieKind),
	Run: func(_ *cobra.Command, _ []string) {
		runChart(core.ExecutePie, "Cannot compute pie geometry")
	},
}

// donutCmd is pie with an inner radius.
var donutCmd = &cobra.Command{
	Use:   "donut [data-file]",
	Short: "Compute donut chart sector geometry from categorical data.",
	Long: `Compute donut chart geometry: ring segments instead of pie wedges.

The hole defaults to 60% of the outer radius; pass --inner-radius to size it
explicitly.

Examples:
  # Render with the default hole
  chartgeom donut occupancy.csv

  # A thin ring
  chartgeom donut occupancy.csv --radius 100 --inner-radius 85`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: chartSetup(schema.DonutKind),
	Run: func(_ *cobra.Command, _ []string) {
		runChart(core.ExecutePie, "Cannot compute donut geometry")
	},
}

func init() {
	rootCmd.AddCommand(areaCmd)
	rootCmd.AddCommand(donutCmd)
}
