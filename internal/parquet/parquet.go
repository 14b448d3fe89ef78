// Package parquet provides data structures and functions for exporting
// chartgeom datasets and computed geometry to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/openclinic/chartgeom/internal/contract"
	"github.com/openclinic/chartgeom/schema"
	"github.com/parquet-go/parquet-go"
)

// DatasetRecord represents a stored dataset summary.
// This struct maps to the chartgeom_datasets database table.
type DatasetRecord struct {
	// Name is the unique dataset name
	Name string `parquet:"name,snappy"`

	// Kind is the chart kind the dataset feeds (pie, line, heatmap, ...)
	Kind string `parquet:"kind,snappy"`

	// PointLen is the number of observations in the payload
	PointLen int32 `parquet:"point_len,snappy"`

	// SizeBytes is the serialized payload size
	SizeBytes int64 `parquet:"size_bytes,snappy"`

	// UpdatedAt is when the dataset was last saved (stored as TIMESTAMP with nanosecond precision)
	UpdatedAt time.Time `parquet:"updated_at,snappy"`
}

// SectorRecord represents one computed pie/donut sector.
type SectorRecord struct {
	// Rank is the 1-based position of the sector in input order
	Rank int32 `parquet:"rank,snappy"`

	// Label is the category name for the sector
	Label string `parquet:"label,snappy"`

	// Value is the raw observed value
	Value float64 `parquet:"value,snappy"`

	// Percentage is the sector's share of the total, 0-100
	Percentage float64 `parquet:"percentage,snappy"`

	// StartAngle and EndAngle bound the sweep in degrees, 12 o'clock = -90
	StartAngle float64 `parquet:"start_angle,snappy"`
	EndAngle   float64 `parquet:"end_angle,snappy"`

	// InnerRadius is 0 for pie sectors and positive for donut sectors
	InnerRadius float64 `parquet:"inner_radius,snappy"`

	// OuterRadius is the outer radius the sector was computed against
	OuterRadius float64 `parquet:"outer_radius,snappy"`

	// Color is the assigned fill color (nullable)
	Color *string `parquet:"color,optional,snappy"`

	// ShareLabel classifies the share (Dominant, Major, Minor, Trace)
	ShareLabel string `parquet:"share_label,snappy"`
}

// WriteDatasetRecordsParquet writes a slice of DatasetRecord structs to a Parquet file.
func WriteDatasetRecordsParquet(data []DatasetRecord, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the DatasetRecord struct tags
	writer := parquet.NewGenericWriter[DatasetRecord](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteSectorRecordsParquet writes a slice of SectorRecord structs to a Parquet file.
func WriteSectorRecordsParquet(data []SectorRecord, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the SectorRecord struct tags
	writer := parquet.NewGenericWriter[SectorRecord](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertDatasetInfos converts schema.DatasetInfo to DatasetRecord for Parquet export.
func ConvertDatasetInfos(infos []schema.DatasetInfo) []DatasetRecord {
	result := make([]DatasetRecord, len(infos))
	for i, info := range infos {
		result[i] = DatasetRecord{
			Name:      info.Name,
			Kind:      string(info.Kind),
			PointLen:  int32(info.PointLen),
			SizeBytes: info.SizeBytes,
			UpdatedAt: info.UpdatedAt,
		}
	}
	return result
}

// ConvertSectors converts computed schema.Sector values to SectorRecord for Parquet export.
func ConvertSectors(sectors []schema.Sector) []SectorRecord {
	result := make([]SectorRecord, len(sectors))
	for i, s := range sectors {
		record := SectorRecord{
			Rank:        int32(i + 1),
			Label:       s.Label,
			Value:       s.Value,
			Percentage:  s.Percentage,
			StartAngle:  s.StartAngle,
			EndAngle:    s.EndAngle,
			InnerRadius: s.InnerRadius,
			OuterRadius: s.OuterRadius,
			ShareLabel:  contract.GetPlainShareLabel(s.Percentage),
		}
		if s.Color != "" {
			color := s.Color
			record.Color = &color
		}
		result[i] = record
	}
	return result
}

// MockFetchDatasetRecords generates sample DatasetRecord data for demonstration.
func MockFetchDatasetRecords() []DatasetRecord {
	now := time.Now()

	return []DatasetRecord{
		{
			Name:      "bed-occupancy",
			Kind:      string(schema.PieKind),
			PointLen:  4,
			SizeBytes: 412,
			UpdatedAt: now.Add(-2 * time.Hour),
		},
		{
			Name:      "er-wait-times",
			Kind:      string(schema.SparkKind),
			PointLen:  48,
			SizeBytes: 1330,
			UpdatedAt: now.Add(-30 * time.Minute),
		},
		{
			Name:      "ward-admissions",
			Kind:      string(schema.LineKind),
			PointLen:  84,
			SizeBytes: 2048,
			UpdatedAt: now,
		},
	}
}

// MockFetchSectorRecords generates sample SectorRecord data for demonstration.
func MockFetchSectorRecords() []SectorRecord {
	blue := "#2563eb"
	green := "#16a34a"

	return []SectorRecord{
		{
			Rank:        1,
			Label:       "Occupied",
			Value:       60,
			Percentage:  60,
			StartAngle:  -90,
			EndAngle:    126,
			OuterRadius: 120,
			Color:       &blue,
			ShareLabel:  "Dominant",
		},
		{
			Rank:        2,
			Label:       "Available",
			Value:       40,
			Percentage:  40,
			StartAngle:  126,
			EndAngle:    270,
			OuterRadius: 120,
			Color:       &green,
			ShareLabel:  "Dominant",
		},
		{
			Rank:        3,
			Label:       "Blocked",
			Value:       0,
			Percentage:  0,
			StartAngle:  270,
			EndAngle:    270,
			OuterRadius: 120,
			Color:       nil, // No explicit color - nullable field
			ShareLabel:  "Trace",
		},
	}
}
