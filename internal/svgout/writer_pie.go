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

// PrintSectors outputs pie/donut geometry, dispatching on the configured
// output format. SVG is the default.
func PrintSectors(sectors []schema.Sector, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONSectors(w, sectors)
		}, "JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVSectors(w, sectors, fmtFloat)
		}, "CSV")
	case schema.TextOut:
		return printSectorTable(sectors, cfg, fmtFloat)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			_, err := io.WriteString(w, RenderPieSVG(sectors, cfg))
			return err
		}, "SVG")
	}
}

// RenderPieSVG draws each sector path with its fill, labeling slices whose
// share clears the readability floor.
func RenderPieSVG(sectors []schema.Sector, cfg *contract.Config) string {
	size := 2 * (cfg.Radius + 20)
	doc := newSVGDoc(size, size)
	for _, s := range sectors {
		doc.path(s.Path, "#ffffff", s.Color, 1)
	}
	for _, s := range sectors {
		if s.Percentage >= schema.MinLabelPercentage {
			doc.text(s.LabelPoint.X, s.LabelPoint.Y, "middle",
				fmt.Sprintf("%s %.0f%%", s.Label, s.Percentage))
		}
	}
	return doc.String()
}

// writeJSONSectors marshals sectors with their share labels added.
func writeJSONSectors(w io.Writer, sectors []schema.Sector) error {
	type JSONSector struct {
		ShareLabel string `json:"share_label"`
		schema.Sector
	}

	output := make([]JSONSector, len(sectors))
	for i, s := range sectors {
		output[i] = JSONSector{
			ShareLabel: contract.GetPlainShareLabel(s.Percentage),
			Sector:     s,
		}
	}
	return writeJSON(w, output)
}

// writeCSVSectors writes one row per sector.
func writeCSVSectors(w io.Writer, sectors []schema.Sector, fmtFloat func(float64) string) error {
	header := []string{"rank", "label", "value", "percentage", "share", "start_angle", "end_angle", "color"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for i, s := range sectors {
			row := []string{
				strconv.Itoa(i + 1),
				s.Label,
				fmtFloat(s.Value),
				fmtFloat(s.Percentage),
				contract.GetPlainShareLabel(s.Percentage),
				fmtFloat(s.StartAngle),
				fmtFloat(s.EndAngle),
				s.Color,
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// printSectorTable prints the human-readable sector summary.
func printSectorTable(sectors []schema.Sector, cfg *contract.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Rank", "Label", "Value", "Pct", "Share"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := GetMaxTableNameWidth(cfg)
	var data [][]string
	var total float64
	for i, s := range sectors {
		label := contract.GetPlainShareLabel(s.Percentage)
		if cfg.UseColors {
			label = contract.GetColorShareLabel(s.Percentage)
		}
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncateName(s.Label, nameWidth),
			fmtFloat(s.Value),
			fmtFloat(s.Percentage),
			label,
		})
		total += s.Value
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	fmt.Printf("Showing %d sectors (total value: %s)\n", len(sectors), fmtFloat(total))
	return nil
}
