// Package cmd defines the command-line interface for chartgeom.
package cmd

import (
	"github.com/openclinic/chartgeom/internal/contract"
	"github.com/openclinic/chartgeom/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(lineCmd)
	rootCmd.AddCommand(pieCmd)
	rootCmd.AddCommand(gaugeCmd)
	rootCmd.AddCommand(radarCmd)
	rootCmd.AddCommand(heatmapCmd)
	rootCmd.AddCommand(sparkCmd)
	rootCmd.AddCommand(datasetCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the dataset subcommands to the parent dataset command
	datasetCmd.AddCommand(datasetSaveCmd)
	datasetCmd.AddCommand(datasetListCmd)
	datasetCmd.AddCommand(datasetDeleteCmd)
	datasetCmd.AddCommand(datasetStatusCmd)
	datasetCmd.AddCommand(datasetClearCmd)
	datasetCmd.AddCommand(datasetExportCmd)
	datasetCmd.AddCommand(datasetMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("dataset", "d", "", "Render a stored dataset by name instead of a file")
	rootCmd.PersistentFlags().StringP("output", "o", string(schema.SVGOut), "Output format: svg or text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Float64("width", schema.DefaultChartWidth, "Chart width in pixels")
	rootCmd.PersistentFlags().Float64("height", schema.DefaultChartHeight, "Chart height in pixels")
	rootCmd.PersistentFlags().Float64("radius", 0, "Outer radius in pixels (0 = chart default)")
	rootCmd.PersistentFlags().Float64("inner-radius", 0, "Inner radius in pixels for donut charts")
	rootCmd.PersistentFlags().Int("levels", schema.DefaultRadarLevels, "Number of concentric radar grid rings")
	rootCmd.PersistentFlags().Bool("smooth", true, "Use cubic smoothing between points")
	rootCmd.PersistentFlags().Bool("area", false, "Emit a closed area path below line charts")
	rootCmd.PersistentFlags().Bool("include-zero", false, "Extend the value scale down to zero")
	rootCmd.PersistentFlags().Float64("padding", schema.DefaultPadding, "Fraction of headroom above the data maximum")
	rootCmd.PersistentFlags().Float64("cell-size", 24, "Heatmap cell edge in pixels")
	rootCmd.PersistentFlags().Float64("max", 100, "Gauge full-scale value")
	rootCmd.PersistentFlags().String("thresholds", "", "Gauge thresholds as 'value:color[:label]' comma list, ascending")
	rootCmd.PersistentFlags().String("palette", "", "Comma-separated hex colors for series and sectors")
	rootCmd.PersistentFlags().String("heat-scale", "", "Comma-separated hex colors for heatmap buckets, coolest to hottest")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Int("term-width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("store-backend", string(schema.SQLiteBackend), "Dataset store backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("store-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of datasetSaveCmd to Viper
	datasetSaveCmd.Flags().String("name", "", "Store the dataset under this name (default: file basename)")
	datasetSaveCmd.Flags().String("kind", string(schema.LineKind), "Chart kind steering CSV parsing: line, pie, gauge, radar, heatmap, spark")
	if err := viper.BindPFlags(datasetSaveCmd.Flags()); err != nil {
		contract.LogFatal("Error binding dataset save flags", err)
	}

	// Bind all flags of datasetMigrateCmd to Viper
	datasetMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(datasetMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding dataset migrate flags", err)
	}
}
