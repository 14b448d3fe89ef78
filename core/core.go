// Package core computes chart geometry: scales, paths, sectors, arcs,
// polygons and color buckets. Everything here is pure except the Execute
// entry points, which load a dataset and hand the computed geometry to the
// output layer.
package core

import (
	"errors"
	"fmt"

	"github.com/openclinic/chartgeom/internal/contract"
	"github.com/openclinic/chartgeom/internal/parquet"
	"github.com/openclinic/chartgeom/internal/svgout"
	"github.com/openclinic/chartgeom/schema"
)

// ExecutorFunc defines the function signature for executing different chart kinds.
type ExecutorFunc func(cfg *contract.Config, source contract.DatasetSource) error

// datasetRef resolves which reference to pass to the source: a stored
// dataset name wins over a file path.
func datasetRef(cfg *contract.Config) (string, error) {
	if cfg.Dataset != "" {
		return cfg.Dataset, nil
	}
	if cfg.DataFile != "" {
		return cfg.DataFile, nil
	}
	return "", errors.New("no dataset given: pass a data file argument or --dataset")
}

// ExecuteLine loads a series dataset and renders line/area geometry.
// It serves as the main entry point for the 'line' command.
func ExecuteLine(cfg *contract.Config, source contract.DatasetSource) error {
	ds, err := loadDataset(cfg, source)
	if err != nil {
		return err
	}

	group := ds.Group
	if len(group.Series) == 0 && len(ds.Points) > 0 {
		group = groupFromPoints(ds.Points)
	}

	lg, err := ComputeLine(group, lineOptionsFromConfig(cfg))
	if err != nil {
		return err
	}
	return svgout.PrintLine(lg, cfg)
}

// ExecutePie loads a categorical dataset and renders pie/donut sector
// geometry. It serves as the main entry point for the 'pie' command.
func ExecutePie(cfg *contract.Config, source contract.DatasetSource) error {
	ds, err := loadDataset(cfg, source)
	if err != nil {
		return err
	}

	sectors, err := ComputePie(ds.Points, pieOptionsFromConfig(cfg))
	if err != nil {
		return err
	}

	if cfg.Output == schema.ParquetOut {
		if cfg.OutputFile == "" {
			return errors.New("--output-file is required for parquet output")
		}
		return parquet.WriteSectorRecordsParquet(parquet.ConvertSectors(sectors), cfg.OutputFile)
	}
	return svgout.PrintSectors(sectors, cfg)
}

// ExecuteGauge loads a single-value dataset and renders gauge arc geometry.
// It serves as the main entry point for the 'gauge' command.
func ExecuteGauge(cfg *contract.Config, source contract.DatasetSource) error {
	ds, err := loadDataset(cfg, source)
	if err != nil {
		return err
	}
	if len(ds.Points) == 0 {
		return schema.NewInvalidInput("gauge", "dataset %q has no points", ds.Name)
	}

	gg, err := ComputeGaugeArc(ds.Points[0].Value, gaugeOptionsFromConfig(cfg))
	if err != nil {
		return err
	}
	return svgout.PrintGauge(gg, cfg)
}

// ExecuteRadar loads a categorical dataset and renders radar polygon
// geometry. It serves as the main entry point for the 'radar' command.
func ExecuteRadar(cfg *contract.Config, source contract.DatasetSource) error {
	ds, err := loadDataset(cfg, source)
	if err != nil {
		return err
	}

	rg, err := ComputeRadar(ds.Points, radarOptionsFromConfig(cfg))
	if err != nil {
		return err
	}
	return svgout.PrintRadar(rg, cfg)
}

// ExecuteHeatmap loads a matrix dataset and renders bucketized heatmap
// geometry. It serves as the main entry point for the 'heatmap' command.
func ExecuteHeatmap(cfg *contract.Config, source contract.DatasetSource) error {
	ds, err := loadDataset(cfg, source)
	if err != nil {
		return err
	}

	hg, err := ComputeHeatmap(ds.Matrix, cfg.HeatScale)
	if err != nil {
		return err
	}
	return svgout.PrintHeatmap(hg, cfg)
}

// ExecuteSpark loads a value series and renders sparkline geometry.
// It serves as the main entry point for the 'spark' command.
func ExecuteSpark(cfg *contract.Config, source contract.DatasetSource) error {
	ds, err := loadDataset(cfg, source)
	if err != nil {
		return err
	}

	var values []float64
	switch {
	case len(ds.Points) > 0:
		values = make([]float64, len(ds.Points))
		for i, p := range ds.Points {
			values[i] = p.Value
		}
	case len(ds.Group.Series) > 0:
		values = ds.Group.Series[0].Data
	}

	sg, err := BuildSparkline(values, sparkOptionsFromConfig(cfg))
	if err != nil {
		return err
	}
	return svgout.PrintSpark(sg, cfg)
}

// loadDataset resolves the dataset reference and loads it from the source.
func loadDataset(cfg *contract.Config, source contract.DatasetSource) (*schema.Dataset, error) {
	ref, err := datasetRef(cfg)
	if err != nil {
		return nil, err
	}
	ds, err := source.Load(ref)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset %q: %w", ref, err)
	}
	return ds, nil
}

// groupFromPoints promotes a categorical point list into a single series so
// line charts accept both dataset shapes.
func groupFromPoints(points []schema.DataPoint) schema.SeriesGroup {
	labels := make([]string, len(points))
	data := make([]float64, len(points))
	for i, p := range points {
		labels[i] = p.Label
		data[i] = p.Value
	}
	return schema.SeriesGroup{
		Labels: labels,
		Series: []schema.MultiSeries{{Name: "values", Data: data}},
	}
}

func lineOptionsFromConfig(cfg *contract.Config) schema.LineOptions {
	opts := schema.DefaultLineOptions()
	opts.Width = cfg.Width
	opts.Height = cfg.Height
	opts.Smooth = cfg.Smooth
	opts.ShowArea = cfg.ShowArea || cfg.Kind == schema.AreaKind
	opts.Scale = schema.ScaleOptions{IncludeZero: cfg.IncludeZero, PaddingFactor: cfg.Padding}
	opts.Palette = cfg.Palette
	return opts
}

func pieOptionsFromConfig(cfg *contract.Config) schema.PieOptions {
	opts := schema.DefaultPieOptions()
	if cfg.Radius > 0 {
		opts.Radius = cfg.Radius
	}
	opts.Center = schema.Point{X: opts.Radius + 20, Y: opts.Radius + 20}
	opts.InnerRadius = cfg.InnerRadius
	if cfg.Kind == schema.DonutKind && opts.InnerRadius == 0 {
		// Conventional donut hole when none was requested explicitly
		opts.InnerRadius = opts.Radius * 0.6
	}
	opts.Palette = cfg.Palette
	return opts
}

func gaugeOptionsFromConfig(cfg *contract.Config) schema.GaugeOptions {
	opts := schema.DefaultGaugeOptions()
	if cfg.Radius > 0 {
		opts.Radius = cfg.Radius
	}
	if cfg.MaxValue > 0 {
		opts.MaxValue = cfg.MaxValue
	}
	if len(cfg.Thresholds) > 0 {
		opts.Thresholds = cfg.Thresholds
	}
	return opts
}

func radarOptionsFromConfig(cfg *contract.Config) schema.RadarOptions {
	opts := schema.DefaultRadarOptions()
	if cfg.Radius > 0 {
		opts.Radius = cfg.Radius
	}
	opts.Center = schema.Point{X: opts.Radius + 40, Y: opts.Radius + 40}
	if cfg.Levels > 0 {
		opts.Levels = cfg.Levels
	}
	return opts
}

func sparkOptionsFromConfig(cfg *contract.Config) schema.SparklineOptions {
	opts := schema.DefaultSparklineOptions()
	if cfg.Width > 0 {
		opts.Width = cfg.Width
	}
	if cfg.Height > 0 {
		opts.Height = cfg.Height
	}
	return opts
}
