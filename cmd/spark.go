package cmd

import (
	"github.com/openclinic/chartgeom/core"
	"github.com/openclinic/chartgeom/schema"
	"github.com/spf13/cobra"
)

// sparkCmd renders sparkline geometry.
var sparkCmd = &cobra.Command{
	Use:   "spark [data-file]",
	Short: "Build compact sparkline geometry from a value series.",
	Long: `Compute sparkline geometry: a smoothed inline trend glyph with its
closed area path and an up/down trend flag.

The trend compares the last value against the first; it picks a color, not a
statistic.

Examples:
  # Weekly census trend as a 120x32 glyph
  chartgeom spark census.csv

  # Larger glyph, geometry as JSON
  chartgeom spark census.csv --width 240 --height 48 --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: chartSetup(schema.SparkKind),
	Run: func(_ *cobra.Command, _ []string) {
		runChart(core.ExecuteSpark, "Cannot compute sparkline geometry")
	},
}
