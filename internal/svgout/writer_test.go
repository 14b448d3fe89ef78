package svgout

import (
	"bytes"
	"strings"
	"testing"

	"github.com/openclinic/chartgeom/internal/contract"
	"github.com/openclinic/chartgeom/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *contract.Config {
	return &contract.Config{
		Radius:    100,
		CellSize:  16,
		Precision: 1,
		Palette:   schema.DefaultPalette,
	}
}

func TestRenderPieSVG(t *testing.T) {
	sectors := []schema.Sector{
		{
			Label:      "Occupied",
			Value:      60,
			Percentage: 60,
			Path:       "M 120 120 L 120 20 A 100 100 0 0 1 215.11 151.9 Z",
			LabelPoint: schema.Point{X: 163.3, Y: 59.5},
			Color:      "#3b82f6",
		},
		{
			Label:      "Reserved",
			Value:      3,
			Percentage: 3,
			Path:       "M 120 120 L 215.11 151.9 A 100 100 0 0 1 210 160 Z",
			LabelPoint: schema.Point{X: 180, Y: 140},
			Color:      "#ef4444",
		},
	}

	svg := RenderPieSVG(sectors, testConfig())

	assert.True(t, strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg"`))
	assert.Contains(t, svg, `viewBox="0 0 240 240"`)
	assert.Contains(t, svg, `fill="#3b82f6"`)
	assert.Contains(t, svg, "Occupied 60%")
	// Slices under the readability floor get no label.
	assert.NotContains(t, svg, "Reserved")
	assert.True(t, strings.HasSuffix(svg, "</svg>\n"))
}

func TestRenderLineSVG(t *testing.T) {
	lg := schema.LineGeometry{
		Width:  800,
		Height: 400,
		XStep:  400,
		Labels: []string{"Mon", "Tue", "Wed"},
		Series: []schema.SeriesPath{
			{
				Name:     "Admissions",
				Color:    "#3b82f6",
				Path:     "M 0 400 L 400 200 L 800 0",
				AreaPath: "M 0 400 L 400 200 L 800 0 L 800 400 L 0 400 Z",
				Points:   []schema.Point{{X: 0, Y: 400}, {X: 400, Y: 200}, {X: 800, Y: 0}},
			},
		},
	}

	svg := RenderLineSVG(lg)

	assert.Contains(t, svg, `viewBox="0 0 800 400"`)
	assert.Contains(t, svg, `d="M 0 400 L 400 200 L 800 0"`)
	assert.Contains(t, svg, `fill-opacity="0.25"`)
	assert.Contains(t, svg, ">Tue</text>")
}

func TestRenderGaugeSVG(t *testing.T) {
	gg := schema.GaugeGeometry{
		Radius:        80,
		Circumference: 251.33,
		DashOffset:    62.83,
		Percentage:    75,
		Color:         "#16a34a",
		Path:          "M 0 80 A 80 80 0 0 1 160 80",
	}

	svg := RenderGaugeSVG(gg)

	assert.Contains(t, svg, `viewBox="0 0 184 104"`)
	assert.Contains(t, svg, `stroke-dasharray="251.33"`)
	assert.Contains(t, svg, `stroke-dashoffset="62.83"`)
	assert.Contains(t, svg, `stroke="#16a34a"`)
	assert.Contains(t, svg, ">75%</text>")
}

func TestRenderRadarSVG(t *testing.T) {
	rg := schema.RadarGeometry{
		Center: schema.Point{X: 150, Y: 150},
		DataPolygon: []schema.Point{
			{X: 150, Y: 30}, {X: 253.92, Y: 210}, {X: 46.08, Y: 210},
		},
		GridRings: [][]schema.Point{
			{{X: 150, Y: 90}, {X: 201.96, Y: 180}, {X: 98.04, Y: 180}},
		},
		AxisEnds: []schema.Point{
			{X: 150, Y: 30}, {X: 253.92, Y: 210}, {X: 46.08, Y: 210},
		},
		LabelPoints: []schema.Point{{X: 150, Y: 15.6}},
		Labels:      []string{"Staffing"},
	}

	svg := RenderRadarSVG(rg, testConfig())

	assert.Contains(t, svg, `viewBox="0 0 300 300"`)
	assert.Contains(t, svg, `fill-opacity="0.35"`)
	assert.Contains(t, svg, `points="150,30 253.92,210 46.08,210"`)
	assert.Contains(t, svg, ">Staffing</text>")
	// One grid ring and three spokes.
	assert.Equal(t, 2, strings.Count(svg, "<polygon"))
	assert.Equal(t, 3, strings.Count(svg, "<line"))
}

func TestRenderHeatmapSVG(t *testing.T) {
	hg := schema.HeatmapGeometry{
		Colors: [][]string{
			{"#eff6ff", "#1d4ed8"},
			{"#93c5fd"},
		},
	}

	svg := RenderHeatmapSVG(hg, testConfig())

	// Two columns and two rows of 16px cells with 2px gaps.
	assert.Contains(t, svg, `viewBox="0 0 38 38"`)
	assert.Equal(t, 3, strings.Count(svg, "<rect"))
	assert.Contains(t, svg, `fill="#1d4ed8"`)
	assert.Contains(t, svg, `x="20" y="2"`)
	assert.Contains(t, svg, `x="2" y="20"`)
}

func TestRenderSparkSVG(t *testing.T) {
	sg := schema.SparklineGeometry{
		Path:     "M 0 32 L 60 16 L 120 0",
		AreaPath: "M 0 32 L 60 16 L 120 0 L 120 32 L 0 32 Z",
		TrendUp:  true,
		Points:   []schema.Point{{X: 0, Y: 32}, {X: 60, Y: 16}, {X: 120, Y: 0}},
		Scale:    schema.Scale{Min: 10, Max: 40, RangeStart: 0, RangeEnd: 32},
	}

	svg := RenderSparkSVG(sg, testConfig())

	assert.Contains(t, svg, `viewBox="0 0 120 32"`)
	assert.Contains(t, svg, `fill-opacity="0.2"`)
	assert.Contains(t, svg, `stroke-width="1.5"`)
}

func TestWriteCSVSectors(t *testing.T) {
	sectors := []schema.Sector{
		{
			Label:      "Occupied",
			Value:      60,
			Percentage: 60,
			StartAngle: -90,
			EndAngle:   126,
			Color:      "#3b82f6",
		},
	}

	fmtFloat, _ := createFormatters(1)
	var buf bytes.Buffer
	err := writeCSVSectors(&buf, sectors, fmtFloat)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "rank,label,value,percentage,share,start_angle,end_angle,color", lines[0])
	assert.Equal(t, "1,Occupied,60.0,60.0,Dominant,-90.0,126.0,#3b82f6", lines[1])
}

func TestWriteCSVGauge(t *testing.T) {
	gg := schema.GaugeGeometry{
		Radius:        80,
		Circumference: 251.3,
		DashOffset:    62.8,
		Percentage:    75,
		Color:         "#16a34a",
	}

	fmtFloat, _ := createFormatters(1)
	var buf bytes.Buffer
	err := writeCSVGauge(&buf, gg, fmtFloat)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "75.0,#16a34a,251.3,62.8,80.0", lines[1])
}

func TestWriteCSVLine(t *testing.T) {
	lg := schema.LineGeometry{
		Labels: []string{"Mon", "Tue"},
		Series: []schema.SeriesPath{
			{
				Name:   "Admissions",
				Points: []schema.Point{{X: 0, Y: 400}, {X: 800, Y: 0}},
			},
		},
	}

	fmtFloat, _ := createFormatters(0)
	var buf bytes.Buffer
	err := writeCSVLine(&buf, lg, fmtFloat)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Admissions,0,Mon,0,400", lines[1])
	assert.Equal(t, "Admissions,1,Tue,800,0", lines[2])
}

func TestWriteCSVHeatmap(t *testing.T) {
	hg := schema.HeatmapGeometry{
		Colors:  [][]string{{"#eff6ff", "#1d4ed8"}},
		Indices: [][]int{{0, 4}},
	}

	var buf bytes.Buffer
	err := writeCSVHeatmap(&buf, hg)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "0,0,0,#eff6ff", lines[1])
	assert.Equal(t, "0,1,4,#1d4ed8", lines[2])
}

func TestWriteCSVSpark(t *testing.T) {
	sg := schema.SparklineGeometry{
		Points: []schema.Point{{X: 0, Y: 32}, {X: 120, Y: 0}},
	}

	fmtFloat, _ := createFormatters(0)
	var buf bytes.Buffer
	err := writeCSVSpark(&buf, sg, fmtFloat)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "index,x,y", lines[0])
	assert.Equal(t, "1,120,0", lines[2])
}

func TestWriteJSONSectorsShareLabel(t *testing.T) {
	sectors := []schema.Sector{{Label: "Occupied", Percentage: 60}}

	var buf bytes.Buffer
	err := writeJSONSectors(&buf, sectors)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"share_label": "Dominant"`)
}

func TestWriteJSONSparkTrend(t *testing.T) {
	sg := schema.SparklineGeometry{TrendUp: true}

	var buf bytes.Buffer
	err := writeJSONSpark(&buf, sg)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"trend": "up"`)
}
