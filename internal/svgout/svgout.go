// Package svgout renders computed chart geometry to SVG documents and to
// text, CSV and JSON summaries. It is a thin adapter: every function here
// consumes geometry records from the core engine and emits markup or rows,
// never computing coordinates of its own.
package svgout

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/openclinic/chartgeom/core/geom"
	"github.com/openclinic/chartgeom/internal/contract"
	"github.com/openclinic/chartgeom/schema"
)

// writeWithFile handles the common pattern of opening a file, writing to it,
// and cleaning up. It accepts a writer function that takes an io.Writer and
// returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "Wrote %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSVWithHeader handles the common pattern of creating a CSV writer,
// writing a header, and writing data rows.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	if err := writeRows(csvWriter); err != nil {
		return err
	}

	return nil
}

// createFormatters creates the formatter closures shared across output types.
func createFormatters(precision int) (fmtFloat func(float64) string, intFmt string) {
	numFmt := "%.*f"
	intFmt = "%d"
	fmtFloat = func(v float64) string {
		return fmt.Sprintf(numFmt, precision, v)
	}
	return fmtFloat, intFmt
}

// --- SVG primitives ---

// svgDoc accumulates SVG markup for one document.
type svgDoc struct {
	b strings.Builder
}

func newSVGDoc(width, height float64) *svgDoc {
	d := &svgDoc{}
	fmt.Fprintf(&d.b, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		geom.Fmt(width), geom.Fmt(height), geom.Fmt(width), geom.Fmt(height))
	return d
}

func (d *svgDoc) path(def, stroke, fill string, strokeWidth float64) {
	if def == "" {
		return
	}
	fmt.Fprintf(&d.b, `  <path d="%s" stroke="%s" fill="%s" stroke-width="%s"/>`+"\n",
		def, attrColor(stroke), attrColor(fill), geom.Fmt(strokeWidth))
}

// dashedPath emits a stroke-dash path: dasharray covers the whole length and
// dashoffset hides the unfilled remainder. This is how gauge arcs reveal a
// partial sweep.
func (d *svgDoc) dashedPath(def, stroke string, strokeWidth, dashArray, dashOffset float64) {
	if def == "" {
		return
	}
	fmt.Fprintf(&d.b, `  <path d="%s" stroke="%s" fill="none" stroke-width="%s" stroke-linecap="round" stroke-dasharray="%s" stroke-dashoffset="%s"/>`+"\n",
		def, attrColor(stroke), geom.Fmt(strokeWidth), geom.Fmt(dashArray), geom.Fmt(dashOffset))
}

func (d *svgDoc) polygon(points []string, stroke, fill string) {
	if len(points) == 0 {
		return
	}
	fmt.Fprintf(&d.b, `  <polygon points="%s" stroke="%s" fill="%s"/>`+"\n",
		strings.Join(points, " "), attrColor(stroke), attrColor(fill))
}

func (d *svgDoc) line(x1, y1, x2, y2 float64, stroke string) {
	fmt.Fprintf(&d.b, `  <line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s"/>`+"\n",
		geom.Fmt(x1), geom.Fmt(y1), geom.Fmt(x2), geom.Fmt(y2), attrColor(stroke))
}

func (d *svgDoc) rect(x, y, w, h float64, fill string) {
	fmt.Fprintf(&d.b, `  <rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
		geom.Fmt(x), geom.Fmt(y), geom.Fmt(w), geom.Fmt(h), attrColor(fill))
}

func (d *svgDoc) text(x, y float64, anchor, content string) {
	fmt.Fprintf(&d.b, `  <text x="%s" y="%s" text-anchor="%s" font-size="11" font-family="sans-serif">%s</text>`+"\n",
		geom.Fmt(x), geom.Fmt(y), anchor, escapeText(content))
}

func (d *svgDoc) String() string {
	return d.b.String() + "</svg>\n"
}

// attrColor substitutes "none" for empty colors so attributes stay valid.
func attrColor(c string) string {
	if c == "" {
		return "none"
	}
	return c
}

// escapeText escapes the characters SVG text content cannot carry verbatim.
func escapeText(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}

// formatPolygon renders points as an SVG polygon attribute list.
func formatPolygon(points []schema.Point) []string {
	out := make([]string, len(points))
	for i, p := range points {
		out[i] = geom.Fmt(p.X) + "," + geom.Fmt(p.Y)
	}
	return out
}
