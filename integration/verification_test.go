//go:build integration

// Package integration contains integration tests for chartgeom.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags integration ./integration
// Or use: make test-integration
package integration

import (
	"bytes"
	"encoding/csv"
	"math"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPieGeometryVerification renders a known dataset through the CLI and
// cross-checks the emitted sector rows against independently computed values.
func TestPieGeometryVerification(t *testing.T) {
	chartgeomPath, err := filepath.Abs("test-bin/chartgeom")
	require.NoError(t, err)
	buildCmd := exec.Command("go", "build", "-o", chartgeomPath, "./cmd/chartgeom")
	buildCmd.Dir = ".." // Project root
	err = buildCmd.Run()
	require.NoError(t, err)
	defer func() { _ = exec.Command("rm", "-rf", "test-bin").Run() }()

	cmd := exec.Command(chartgeomPath, "pie", "integration/testdata/occupancy.csv",
		"--output", "csv", "--store-backend", "none")
	cmd.Dir = ".."
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	err = cmd.Run()
	require.NoError(t, err)

	rows := parseSectorRows(t, stdout.String())
	require.Len(t, rows, 3)

	// Percentages cover the whole circle and angles hand off contiguously.
	var totalPct float64
	prevEnd := -90.0
	for _, row := range rows {
		assert.InDelta(t, prevEnd, row.startAngle, 0.2, "sector %s", row.label)
		totalPct += row.percentage
		prevEnd = row.endAngle
	}
	assert.InDelta(t, 100.0, totalPct, 0.2)
	assert.InDelta(t, 270.0, prevEnd, 0.2)

	// Spot-check the known 60/30/10 split.
	assert.InDelta(t, 60.0, rows[0].percentage, 0.1)
	assert.InDelta(t, -90.0+0.6*360, rows[0].endAngle, 0.2)
	assert.InDelta(t, 10.0, rows[2].percentage, 0.1)
}

type sectorRow struct {
	label      string
	percentage float64
	startAngle float64
	endAngle   float64
}

// parseSectorRows extracts sector rows from the CLI's CSV output.
func parseSectorRows(t *testing.T, output string) []sectorRow {
	t.Helper()

	r := csv.NewReader(strings.NewReader(output))
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.NotEmpty(t, records)

	header := records[0]
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, want := range []string{"label", "percentage", "start_angle", "end_angle"} {
		require.Contains(t, col, want)
	}

	var rows []sectorRow
	for _, rec := range records[1:] {
		rows = append(rows, sectorRow{
			label:      rec[col["label"]],
			percentage: parseFloat(t, rec[col["percentage"]]),
			startAngle: parseFloat(t, rec[col["start_angle"]]),
			endAngle:   parseFloat(t, rec[col["end_angle"]]),
		})
	}
	return rows
}

func parseFloat(t *testing.T, s string) float64 {
	t.Helper()
	v, err := strconv.ParseFloat(s, 64)
	require.NoError(t, err)
	require.False(t, math.IsNaN(v))
	return v
}
