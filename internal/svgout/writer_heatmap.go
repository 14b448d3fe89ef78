package svgout

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/openclinic/chartgeom/internal/contract"
	"github.com/openclinic/chartgeom/schema"
)

// heatmapCellGap separates cells so the grid reads as discrete buckets.
const heatmapCellGap = 2.0

// PrintHeatmap outputs heatmap geometry, dispatching on the configured
// output format. SVG is the default.
func PrintHeatmap(hg schema.HeatmapGeometry, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, hg)
		}, "JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVHeatmap(w, hg)
		}, "CSV")
	case schema.TextOut:
		return printHeatmapTable(hg, fmtFloat)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			_, err := io.WriteString(w, RenderHeatmapSVG(hg, cfg))
			return err
		}, "SVG")
	}
}

// RenderHeatmapSVG draws one rect per cell on a fixed-size grid. Ragged rows
// are drawn as-is, so shorter rows simply leave trailing cells blank.
func RenderHeatmapSVG(hg schema.HeatmapGeometry, cfg *contract.Config) string {
	cell := float64(cfg.CellSize)
	cols := 0
	for _, row := range hg.Colors {
		if len(row) > cols {
			cols = len(row)
		}
	}
	width := float64(cols)*(cell+heatmapCellGap) + heatmapCellGap
	height := float64(len(hg.Colors))*(cell+heatmapCellGap) + heatmapCellGap

	doc := newSVGDoc(width, height)
	for ri, row := range hg.Colors {
		y := heatmapCellGap + float64(ri)*(cell+heatmapCellGap)
		for ci, color := range row {
			x := heatmapCellGap + float64(ci)*(cell+heatmapCellGap)
			doc.rect(x, y, cell, cell, color)
		}
	}
	return doc.String()
}

// writeCSVHeatmap writes one row per cell with its bucket index and color.
func writeCSVHeatmap(w io.Writer, hg schema.HeatmapGeometry) error {
	header := []string{"row", "col", "bucket", "color"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for ri, row := range hg.Colors {
			for ci, color := range row {
				bucket := ""
				if ri < len(hg.Indices) && ci < len(hg.Indices[ri]) {
					bucket = strconv.Itoa(hg.Indices[ri][ci])
				}
				record := []string{
					strconv.Itoa(ri),
					strconv.Itoa(ci),
					bucket,
					color,
				}
				if err := cw.Write(record); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// printHeatmapTable prints one row per matrix row, with the bucket index of
// every cell joined into a compact cell list.
func printHeatmapTable(hg schema.HeatmapGeometry, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Row", "Cells", "Buckets"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	var cells int
	for ri, row := range hg.Indices {
		buckets := ""
		for ci, idx := range row {
			if ci > 0 {
				buckets += " "
			}
			buckets += strconv.Itoa(idx)
		}
		data = append(data, []string{
			strconv.Itoa(ri),
			strconv.Itoa(len(row)),
			buckets,
		})
		cells += len(row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	fmt.Printf("Showing %d cells (value range: %s to %s)\n",
		cells, fmtFloat(hg.Min), fmtFloat(hg.Max))
	return nil
}
