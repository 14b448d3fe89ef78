package cmd

import (
	"github.com/openclinic/chartgeom/core"
	"github.com/openclinic/chartgeom/schema"
	"github.com/spf13/cobra"
)

// radarCmd renders radar chart geometry.
var radarCmd = &cobra.Command{
	Use:   "radar [data-file]",
	Short: "Compute radar chart geometry from categorical data.",
	Long: `Compute radar (spider) chart geometry: a closed data polygon,
concentric grid rings and axis label anchors.

Each category becomes one axis; axis 0 points straight up and axes proceed
clockwise. Vertices are normalized against the dataset's own maximum, so two
radars are only comparable when their data share a scale.

Examples:
  # Department capacity profile
  chartgeom radar capacity.csv

  # Coarser grid
  chartgeom radar capacity.csv --levels 3`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: chartSetup(schema.RadarKind),
	Run: func(_ *cobra.Command, _ []string) {
		runChart(core.ExecuteRadar, "Cannot compute radar geometry")
	},
}
