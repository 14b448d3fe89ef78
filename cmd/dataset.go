package cmd

import (
	"fmt"

	"github.com/openclinic/chartgeom/internal/contract"
	"github.com/openclinic/chartgeom/internal/datastore"
	"github.com/openclinic/chartgeom/internal/loader"
	"github.com/openclinic/chartgeom/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// storeSetup loads minimal configuration needed for store operations.
// This is used by commands that need store access without full shared setup.
func storeSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get store-related config values
	backend := schema.StoreBackend(viper.GetString("store-backend"))
	connStr := viper.GetString("store-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateStoreConnectionString(backend, connStr); err != nil {
		return err
	}

	// Initialize persistence with the loaded config
	if err := datastore.InitStore(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize dataset store: %w", err)
	}

	cfg.StoreBackend = backend
	cfg.StoreConnect = connStr

	return nil
}

// storeSetupWrapper wraps storeSetup to provide PreRunE for dataset commands.
func storeSetupWrapper(_ *cobra.Command, _ []string) error {
	return storeSetup()
}

// requireStore returns the configured dataset store or fails.
func requireStore() contract.DatasetStore {
	store := datastore.Manager.GetDatasetStore()
	if store == nil {
		contract.LogFatal("No dataset store configured",
			fmt.Errorf("store-backend is %q", cfg.StoreBackend))
	}
	return store
}

// datasetCmd focused on dataset persistence.
//
// Note: Dataset subcommands use minimal initialization (storeSetup) instead of
// the full chart setup. This avoids chart option validation for simple store
// operations.
var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Manage stored datasets (re-render without the original file)",
	Long: `Manage the named-dataset store that lets dashboards re-render saved
series without the original files.

Only input data is stored; computed geometry never is, since it is cheap to
recompute and changes with every option tweak.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  save    - Parse a dataset file and store it under a name
  list    - List stored datasets
  delete  - Remove one stored dataset
  status  - Show store statistics and connection info
  clear   - Remove all stored datasets
  export  - Export dataset summaries to Parquet
  migrate - Run store schema migrations

Examples:
  # Save a CSV series table, then render it by name
  chartgeom dataset save admissions.csv --name weekly-admissions
  chartgeom line --dataset weekly-admissions`,
}

// datasetSaveCmd parses a dataset file and stores it.
var datasetSaveCmd = &cobra.Command{
	Use:   "save <data-file>",
	Short: "Parse a dataset file and store it under a name",
	Long: `Parse a CSV or JSON dataset file and upsert it into the store.

The chart kind steers CSV parsing (categorical rows, series table, or matrix);
JSON documents carry their own kind. The dataset name defaults to the file
basename.

Examples:
  # Store a categorical dataset for pie/radar rendering
  chartgeom dataset save occupancy.csv --kind pie --name bed-occupancy

  # Overwrite an existing dataset with fresh data
  chartgeom dataset save occupancy.csv --kind pie --name bed-occupancy`,
	Args:    cobra.ExactArgs(1),
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		kind := schema.ChartKind(viper.GetString("kind"))
		source := loader.NewFileSource(kind)
		ds, err := source.Load(args[0])
		if err != nil {
			contract.LogFatal("Cannot parse dataset file", err)
		}
		if name := viper.GetString("name"); name != "" {
			ds.Name = name
		}

		if err := requireStore().Save(ds); err != nil {
			contract.LogFatal("Cannot save dataset", err)
		}
		fmt.Printf("Saved dataset %q (%s)\n", ds.Name, ds.Kind)
	},
}

// datasetListCmd lists stored datasets.
var datasetListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List stored datasets",
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		infos, err := requireStore().List()
		if err != nil {
			contract.LogFatal("Cannot list datasets", err)
		}
		datastore.PrintDatasetList(infos)
	},
}

// datasetDeleteCmd removes one stored dataset.
var datasetDeleteCmd = &cobra.Command{
	Use:     "delete <name>",
	Short:   "Remove one stored dataset",
	Args:    cobra.ExactArgs(1),
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if err := requireStore().Delete(args[0]); err != nil {
			contract.LogFatal("Cannot delete dataset", err)
		}
		fmt.Printf("Deleted dataset %q\n", args[0])
	},
}

// datasetStatusCmd shows store status.
var datasetStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display store statistics and connection details",
	Long: `Show detailed information about the dataset store.

Displays:
- Backend type and location
- Total number of stored datasets
- Store size on disk

Examples:
  # Check store status
  chartgeom dataset status`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := requireStore().GetStatus()
		if err != nil {
			contract.LogFatal("Cannot get store status", err)
		}
		datastore.PrintStoreStatus(status)
	},
}

// datasetClearCmd removes all stored datasets.
var datasetClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all stored datasets",
	Long: `Delete all stored datasets from the configured backend.

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the datasets table

Examples:
  # Clear the SQLite store (default)
  chartgeom dataset clear

  # Clear a MySQL store (set connection string via env variable)
  CHARTGEOM_STORE_BACKEND=mysql CHARTGEOM_STORE_DB_CONNECT="..." chartgeom dataset clear`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := datastore.ClearStore(cfg.StoreBackend, datastore.GetDBFilePath(), cfg.StoreConnect); err != nil {
			contract.LogFatal("Failed to clear dataset store", err)
		}
		fmt.Println("Dataset store cleared successfully.")
	},
}

// datasetExportCmd exports dataset summaries to Parquet.
var datasetExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export dataset summaries to a Parquet file",
	Long: `Export summaries of all stored datasets to Parquet for analytics
tooling (Spark, Arrow, Pandas, DuckDB).

Examples:
  # Export to chartgeom.datasets.parquet
  chartgeom dataset export --output-file chartgeom`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := datastore.ExecuteDatasetExport(viper.GetString("output-file")); err != nil {
			contract.LogFatal("Cannot export datasets", err)
		}
	},
}

// datasetMigrateCmd runs store schema migrations.
var datasetMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run dataset store schema migrations",
	Long: `Apply or roll back the dataset store schema.

Examples:
  # Migrate to the latest version
  chartgeom dataset migrate

  # Roll back everything
  chartgeom dataset migrate --target-version 0`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		// Migrations open their own connection; only config loading is needed.
		return loadConfigFile()
	},
	Run: func(_ *cobra.Command, _ []string) {
		backend := schema.StoreBackend(viper.GetString("store-backend"))
		connStr := viper.GetString("store-db-connect")
		if err := contract.ValidateStoreConnectionString(backend, connStr); err != nil {
			contract.LogFatal("Invalid store configuration", err)
		}
		if err := datastore.Migrate(backend, connStr, viper.GetInt("target-version")); err != nil {
			contract.LogFatal("Migration failed", err)
		}
	},
}
