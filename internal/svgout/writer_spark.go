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

// sparkFillOpacity keeps the inline fill light enough to read at small sizes.
const sparkFillOpacity = "0.2"

// PrintSpark outputs sparkline geometry, dispatching on the configured
// output format. SVG is the default.
func PrintSpark(sg schema.SparklineGeometry, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONSpark(w, sg)
		}, "JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVSpark(w, sg, fmtFloat)
		}, "CSV")
	case schema.TextOut:
		return printSparkTable(sg, cfg, fmtFloat)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			_, err := io.WriteString(w, RenderSparkSVG(sg, cfg))
			return err
		}, "SVG")
	}
}

// RenderSparkSVG draws the area fill under the stroke path. Sparklines carry
// no axes or labels by design, so the document is just the two paths.
func RenderSparkSVG(sg schema.SparklineGeometry, cfg *contract.Config) string {
	stroke := schema.PaletteColor(cfg.Palette, 0)
	width, height := sparkDocSize(sg)
	doc := newSVGDoc(width, height)
	if sg.AreaPath != "" {
		fmt.Fprintf(&doc.b, `  <path d="%s" stroke="none" fill="%s" fill-opacity="%s"/>`+"\n",
			sg.AreaPath, stroke, sparkFillOpacity)
	}
	doc.path(sg.Path, stroke, "", 1.5)
	return doc.String()
}

// sparkDocSize recovers the document box from the mapped points. The scale's
// pixel range gives the height; the last point's X gives the width.
func sparkDocSize(sg schema.SparklineGeometry) (float64, float64) {
	height := sg.Scale.RangeEnd
	width := 0.0
	if n := len(sg.Points); n > 0 {
		width = sg.Points[n-1].X
	}
	return width, height
}

// writeJSONSpark marshals the geometry with its trend label added.
func writeJSONSpark(w io.Writer, sg schema.SparklineGeometry) error {
	type JSONSpark struct {
		Trend string `json:"trend"`
		schema.SparklineGeometry
	}
	return writeJSON(w, JSONSpark{
		Trend:             contract.GetTrendLabel(sg.TrendUp, false),
		SparklineGeometry: sg,
	})
}

// writeCSVSpark writes one row per mapped point.
func writeCSVSpark(w io.Writer, sg schema.SparklineGeometry, fmtFloat func(float64) string) error {
	header := []string{"index", "x", "y"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for i, p := range sg.Points {
			row := []string{
				strconv.Itoa(i),
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

// printSparkTable prints the single-row sparkline summary.
func printSparkTable(sg schema.SparklineGeometry, cfg *contract.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Points", "Min", "Max", "Trend"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	data := [][]string{{
		strconv.Itoa(len(sg.Points)),
		fmtFloat(sg.Scale.Min),
		fmtFloat(sg.Scale.Max),
		contract.GetTrendLabel(sg.TrendUp, cfg.UseColors),
	}}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
