package svgout

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/openclinic/chartgeom/core/geom"
	"github.com/openclinic/chartgeom/internal/contract"
	"github.com/openclinic/chartgeom/schema"
)

// gaugeStrokeWidth is the arc thickness; the document box pads for it so
// round line caps are not clipped.
const gaugeStrokeWidth = 12.0

// PrintGauge outputs gauge geometry, dispatching on the configured output
// format. SVG is the default.
func PrintGauge(gg schema.GaugeGeometry, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, gg)
		}, "JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVGauge(w, gg, fmtFloat)
		}, "CSV")
	case schema.TextOut:
		return printGaugeTable(gg, cfg, fmtFloat)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			_, err := io.WriteString(w, RenderGaugeSVG(gg))
			return err
		}, "SVG")
	}
}

// RenderGaugeSVG draws the track semicircle, then the value arc on top using
// the stroke-dash technique, then the percentage readout under the arc.
func RenderGaugeSVG(gg schema.GaugeGeometry) string {
	pad := gaugeStrokeWidth
	doc := newSVGDoc(2*gg.Radius+2*pad, gg.Radius+2*pad)
	fmt.Fprintf(&doc.b, `  <g transform="translate(%s %s)">`+"\n", geom.Fmt(pad), geom.Fmt(pad))
	doc.path(gg.Path, "#e5e7eb", "", gaugeStrokeWidth)
	doc.dashedPath(gg.Path, gg.Color, gaugeStrokeWidth, gg.Circumference, gg.DashOffset)
	doc.text(gg.Radius, gg.Radius, "middle", fmt.Sprintf("%.0f%%", gg.Percentage))
	doc.b.WriteString("  </g>\n")
	return doc.String()
}

// writeCSVGauge writes the single-row gauge summary.
func writeCSVGauge(w io.Writer, gg schema.GaugeGeometry, fmtFloat func(float64) string) error {
	header := []string{"percentage", "color", "circumference", "dash_offset", "radius"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		return cw.Write([]string{
			fmtFloat(gg.Percentage),
			gg.Color,
			fmtFloat(gg.Circumference),
			fmtFloat(gg.DashOffset),
			fmtFloat(gg.Radius),
		})
	})
}

// printGaugeTable prints the single-row human-readable summary.
func printGaugeTable(gg schema.GaugeGeometry, cfg *contract.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Pct", "Color", "Circumference", "Dash Offset"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	data := [][]string{{
		fmtFloat(gg.Percentage),
		gg.Color,
		fmtFloat(gg.Circumference),
		fmtFloat(gg.DashOffset),
	}}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
