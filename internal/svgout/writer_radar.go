package svgout

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/openclinic/chartgeom/internal/contract"
	"github.com/openclinic/chartgeom/schema"
)

// radarFillOpacity keeps the grid visible under the data polygon.
const radarFillOpacity = "0.35"

// PrintRadar outputs radar geometry, dispatching on the configured output
// format. SVG is the default.
func PrintRadar(rg schema.RadarGeometry, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, rg)
		}, "JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVRadar(w, rg, fmtFloat)
		}, "CSV")
	case schema.TextOut:
		return printRadarTable(rg, cfg, fmtFloat)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			_, err := io.WriteString(w, RenderRadarSVG(rg, cfg))
			return err
		}, "SVG")
	}
}

// RenderRadarSVG draws grid rings innermost-first, axis spokes, the data
// polygon, and axis labels.
func RenderRadarSVG(rg schema.RadarGeometry, cfg *contract.Config) string {
	doc := newSVGDoc(2*rg.Center.X, 2*rg.Center.Y)

	for _, ring := range rg.GridRings {
		doc.polygon(formatPolygon(ring), "#e5e7eb", "")
	}
	for _, end := range rg.AxisEnds {
		doc.line(rg.Center.X, rg.Center.Y, end.X, end.Y, "#e5e7eb")
	}

	fill := schema.PaletteColor(cfg.Palette, 0)
	if len(rg.DataPolygon) > 0 {
		fmt.Fprintf(&doc.b, `  <polygon points="%s" stroke="%s" fill="%s" fill-opacity="%s"/>`+"\n",
			strings.Join(formatPolygon(rg.DataPolygon), " "), fill, fill, radarFillOpacity)
	}

	for i, p := range rg.LabelPoints {
		if i < len(rg.Labels) {
			doc.text(p.X, p.Y, "middle", rg.Labels[i])
		}
	}
	return doc.String()
}

// writeCSVRadar writes one row per axis.
func writeCSVRadar(w io.Writer, rg schema.RadarGeometry, fmtFloat func(float64) string) error {
	header := []string{"axis", "label", "x", "y"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for i, p := range rg.DataPolygon {
			label := ""
			if i < len(rg.Labels) {
				label = rg.Labels[i]
			}
			row := []string{
				strconv.Itoa(i),
				label,
				fmtFloat(p.X),
				fmtFloat(p.Y),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// printRadarTable prints one row per axis vertex.
func printRadarTable(rg schema.RadarGeometry, cfg *contract.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Axis", "Label", "X", "Y"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := GetMaxTableNameWidth(cfg)
	var data [][]string
	for i, p := range rg.DataPolygon {
		label := ""
		if i < len(rg.Labels) {
			label = contract.TruncateName(rg.Labels[i], nameWidth)
		}
		data = append(data, []string{
			strconv.Itoa(i),
			label,
			fmtFloat(p.X),
			fmtFloat(p.Y),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	fmt.Printf("Showing %d axes over %d grid rings\n", len(rg.DataPolygon), len(rg.GridRings))
	return nil
}
