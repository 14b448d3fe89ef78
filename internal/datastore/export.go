package datastore

import (
	"errors"
	"fmt"

	"github.com/openclinic/chartgeom/internal/parquet"
)

// ExecuteDatasetExport performs the actual export of stored dataset
// summaries to a Parquet file.
func ExecuteDatasetExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the dataset store
	store := Manager.GetDatasetStore()
	if store == nil {
		return errors.New("dataset store is not initialized")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get store status: %w", err)
	}

	if status.DatasetCount == 0 {
		return errors.New("no datasets found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total datasets: %d\n", status.DatasetCount)

	// Retrieve all dataset summaries
	infos, err := store.List()
	if err != nil {
		return fmt.Errorf("failed to list datasets: %w", err)
	}

	// Convert to Parquet format and write
	records := parquet.ConvertDatasetInfos(infos)
	datasetsFile := outputFile + ".datasets.parquet"
	if err := parquet.WriteDatasetRecordsParquet(records, datasetsFile); err != nil {
		return fmt.Errorf("failed to write dataset records: %w", err)
	}
	fmt.Printf("Exported %d dataset records to: %s\n", len(records), datasetsFile)

	fmt.Println("\nExport complete! The Parquet file can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
