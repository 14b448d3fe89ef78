package svgout

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/openclinic/chartgeom/core/geom"
	"github.com/openclinic/chartgeom/internal/contract"
	"github.com/openclinic/chartgeom/schema"
)

// areaFillOpacity keeps stacked area fills readable when series overlap.
const areaFillOpacity = "0.25"

// PrintLine outputs line/area geometry, dispatching on the configured
// output format. SVG is the default.
func PrintLine(lg schema.LineGeometry, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, lg)
		}, "JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVLine(w, lg, fmtFloat)
		}, "CSV")
	case schema.TextOut:
		return printLineTable(lg, cfg, fmtFloat)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			_, err := io.WriteString(w, RenderLineSVG(lg))
			return err
		}, "SVG")
	}
}

// RenderLineSVG draws a baseline, one stroke path per series, and optional
// translucent area fills underneath.
func RenderLineSVG(lg schema.LineGeometry) string {
	doc := newSVGDoc(lg.Width, lg.Height)
	doc.line(0, lg.Height, lg.Width, lg.Height, "#e5e7eb")
	for _, s := range lg.Series {
		if s.AreaPath != "" {
			fmt.Fprintf(&doc.b, `  <path d="%s" stroke="none" fill="%s" fill-opacity="%s"/>`+"\n",
				s.AreaPath, attrColor(s.Color), areaFillOpacity)
		}
		doc.path(s.Path, s.Color, "", 2)
	}
	if lg.XStep > 0 {
		for i, label := range lg.Labels {
			doc.text(float64(i)*lg.XStep, lg.Height-4, "middle", label)
		}
	}
	return doc.String()
}

// writeCSVLine writes one row per series point, carrying both the raw value
// position on the x-axis and the mapped pixel coordinates.
func writeCSVLine(w io.Writer, lg schema.LineGeometry, fmtFloat func(float64) string) error {
	header := []string{"series", "index", "label", "x", "y"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, s := range lg.Series {
			for i, p := range s.Points {
				label := ""
				if i < len(lg.Labels) {
					label = lg.Labels[i]
				}
				row := []string{
					s.Name,
					strconv.Itoa(i),
					label,
					fmtFloat(p.X),
					fmtFloat(p.Y),
				}
				if err := cw.Write(row); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// printLineTable prints one summary row per series.
func printLineTable(lg schema.LineGeometry, cfg *contract.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Series", "Points", "Min Y", "Max Y", "Color"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := GetMaxTableNameWidth(cfg)
	var data [][]string
	for _, s := range lg.Series {
		var ys []float64
		for _, p := range s.Points {
			ys = append(ys, p.Y)
		}
		minY, maxY, _ := geom.MinMax(ys)
		data = append(data, []string{
			contract.TruncateName(s.Name, nameWidth),
			strconv.Itoa(len(s.Points)),
			fmtFloat(minY),
			fmtFloat(maxY),
			s.Color,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	fmt.Printf("Showing %d series over %d points (%sx%s px)\n",
		len(lg.Series), len(lg.Labels), geom.Fmt(lg.Width), geom.Fmt(lg.Height))
	return nil
}
