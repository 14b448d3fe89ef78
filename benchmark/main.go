// Package main provides a performance benchmarking tool for the chartgeom CLI.
// It measures geometry computation times across synthetic datasets of increasing
// size and across chart commands, running each test multiple times, treating the
// first successful store-backed run as cold and averaging the rest as warm,
// generating CSV output for performance analysis and documentation.
//
// Prerequisites:
// - chartgeom binary installed and available in PATH
// - A writable working directory for generated datasets
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory where synthetic CSV datasets are generated
package main

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (no-store average, cold run and average of warm runs).
type BenchmarkResult struct {
	Dataset     string
	Command     string
	NoStoreTime string
	ColdTime    string
	WarmTime    string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir      string
	Timeout      time.Duration
	NoStoreRuns  int
	StoreRuns    int
	DatasetSizes []string
	SizePoints   map[string]int
}

func main() {
	// Parse command line arguments
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}
	workDir := os.Args[1]

	config := BenchmarkConfig{
		WorkDir:      workDir,
		Timeout:      2 * time.Minute,
		NoStoreRuns:  3,
		StoreRuns:    4,
		DatasetSizes: []string{"small", "medium", "large", "huge"},
		SizePoints: map[string]int{
			"small":  100,
			"medium": 1000,
			"large":  10000,
			"huge":   100000,
		},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	if err := generateDatasets(config); err != nil {
		fmt.Printf("Dataset generation failed: %v\n", err)
		os.Exit(1)
	}

	// Clear the store using chartgeom dataset clear
	fmt.Printf("Clearing dataset store...\n")
	clearCmd := exec.Command("chartgeom", "dataset", "clear")
	if output, err := clearCmd.CombinedOutput(); err != nil {
		fmt.Printf("Warning: failed to clear store: %v\nOutput: %s\n", err, string(output))
	} else {
		fmt.Printf("Store cleared successfully\n")
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the chartgeom binary and working directory exist
func checkPrerequisites(config BenchmarkConfig) error {
	// Check if chartgeom is available
	if _, err := exec.LookPath("chartgeom"); err != nil {
		return fmt.Errorf("chartgeom binary not found in PATH")
	}

	if err := os.MkdirAll(config.WorkDir, 0o755); err != nil {
		return fmt.Errorf("cannot create working directory %s: %w", config.WorkDir, err)
	}

	return nil
}

// generateDatasets writes one synthetic CSV per chart command and dataset size.
func generateDatasets(config BenchmarkConfig) error {
	fmt.Printf("Generating synthetic datasets in %s\n", config.WorkDir)

	for _, size := range config.DatasetSizes {
		points := config.SizePoints[size]

		if err := writeSeriesCSV(seriesPath(config, size), points); err != nil {
			return err
		}
		if err := writeCategoricalCSV(categoricalPath(config, size), points); err != nil {
			return err
		}
		if err := writeMatrixCSV(matrixPath(config, size), points); err != nil {
			return err
		}
	}

	return nil
}

func seriesPath(config BenchmarkConfig, size string) string {
	return filepath.Join(config.WorkDir, fmt.Sprintf("series_%s.csv", size))
}

func categoricalPath(config BenchmarkConfig, size string) string {
	return filepath.Join(config.WorkDir, fmt.Sprintf("categories_%s.csv", size))
}

func matrixPath(config BenchmarkConfig, size string) string {
	return filepath.Join(config.WorkDir, fmt.Sprintf("matrix_%s.csv", size))
}

// writeSeriesCSV emits a two-series table with a deterministic waveform so
// repeated benchmark runs see identical input.
func writeSeriesCSV(path string, points int) error {
	var b strings.Builder
	b.WriteString("label,admissions,discharges\n")
	for i := 0; i < points; i++ {
		x := float64(i)
		admissions := 50 + 40*math.Sin(x/24)
		discharges := 45 + 35*math.Cos(x/36)
		b.WriteString(fmt.Sprintf("t%d,%.2f,%.2f\n", i, admissions, discharges))
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

// writeCategoricalCSV emits label,value rows. Slice counts are capped because
// pie geometry is bounded by category count rather than raw point count.
func writeCategoricalCSV(path string, points int) error {
	slices := points / 10
	if slices < 4 {
		slices = 4
	}
	if slices > 2000 {
		slices = 2000
	}

	var b strings.Builder
	b.WriteString("label,value\n")
	for i := 0; i < slices; i++ {
		value := 10 + 90*math.Abs(math.Sin(float64(i)/7))
		b.WriteString(fmt.Sprintf("unit-%d,%.2f\n", i, value))
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

// writeMatrixCSV emits a near-square matrix with roughly the requested cell count.
func writeMatrixCSV(path string, points int) error {
	side := int(math.Sqrt(float64(points)))
	if side < 2 {
		side = 2
	}

	var b strings.Builder
	for row := 0; row < side; row++ {
		cells := make([]string, side)
		for col := 0; col < side; col++ {
			v := 50 + 50*math.Sin(float64(row*side+col)/13)
			cells[col] = strconv.FormatFloat(v, 'f', 2, 64)
		}
		b.WriteString(strings.Join(cells, ","))
		b.WriteString("\n")
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

// runBenchmarks executes all benchmark tests across configured dataset sizes
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d sizes, %v timeout, no-store: %d runs, store: %d runs\n",
		len(config.DatasetSizes), config.Timeout, config.NoStoreRuns, config.StoreRuns)

	for _, size := range config.DatasetSizes {
		fmt.Printf("Benchmarking %s datasets (%d points)\n", size, config.SizePoints[size])

		// Line geometry with smoothing and area fill
		result := runBenchmarkSuite(config, size, seriesPath(config, size), "line",
			"line geometry (smoothed, filled)", "--smooth --area")
		results = append(results, result)

		// Pie geometry
		result = runBenchmarkSuite(config, size, categoricalPath(config, size), "pie",
			"pie geometry", "")
		results = append(results, result)

		// Heatmap geometry
		result = runBenchmarkSuite(config, size, matrixPath(config, size), "heatmap",
			"heatmap geometry", "")
		results = append(results, result)
	}

	return results
}

// runBenchmarkSuite runs both no-store and store benchmarks for a command
func runBenchmarkSuite(config BenchmarkConfig, size, dataFile, command, description, extraArgs string) BenchmarkResult {
	fmt.Printf("Running %s on %s\n", description, size)

	// Helper to run a benchmark phase
	runPhase := func(dataRef []string, backend string, numRuns int, phaseName string) (coldTime float64, avgTime string) {
		fmt.Printf("  %s phase (%d runs)\n", phaseName, numRuns)
		cold, times := runBenchmark(config, command, dataRef, extraArgs, backend, numRuns)
		if len(times) == 0 {
			avgTime = "TIMEOUT"
		} else {
			var sum float64
			for _, t := range times {
				sum += t
			}
			avg := sum / float64(len(times))
			avgTime = fmt.Sprintf("%.3fs", avg)
		}
		return cold, avgTime
	}

	// Phase 1: No-store runs straight from the CSV file
	_, noStoreAvg := runPhase([]string{dataFile}, "none", config.NoStoreRuns, "No-store")

	// Phase 2: Store-backed runs rendering the saved dataset by name
	datasetName := fmt.Sprintf("bench-%s-%s", command, size)
	saveCmd := exec.Command("chartgeom", "dataset", "save", dataFile,
		"--kind", command, "--name", datasetName)
	if output, err := saveCmd.CombinedOutput(); err != nil {
		fmt.Printf("  Warning: failed to save dataset %s: %v\nOutput: %s\n", datasetName, err, string(output))
	}
	coldTime, warmAvg := runPhase([]string{"--dataset", datasetName}, "sqlite", config.StoreRuns, "Store")

	coldTimeStr := "TIMEOUT"
	if coldTime > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
	}

	fmt.Printf("  No-store average: %s, Cold time: %s, Warm average: %s\n", noStoreAvg, coldTimeStr, warmAvg)

	return BenchmarkResult{
		Dataset:     size,
		Command:     command,
		NoStoreTime: noStoreAvg,
		ColdTime:    coldTimeStr,
		WarmTime:    warmAvg,
	}
}

// runBenchmark executes a chartgeom command multiple times with the specified store backend and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, command string, dataRef []string, extraArgs, storeBackend string, numRuns int) (coldTime float64, warmTimes []float64) {
	// Prepare command arguments
	args := []string{command}
	args = append(args, dataRef...)
	args = append(args, "--store-backend", storeBackend, "--output", "svg")
	if extraArgs != "" {
		args = append(args, parseArgs(extraArgs)...)
	}

	var times []float64
	for run := 1; run <= numRuns; run++ {
		start := time.Now()

		cmd := exec.Command("chartgeom", args...)

		done := make(chan bool)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && isSuccess(output) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			// Timeout - don't add to times
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

func parseArgs(argsStr string) []string {
	var args []string
	var current strings.Builder
	inQuotes := false

	for _, r := range argsStr {
		switch r {
		case '"':
			inQuotes = !inQuotes
		case ' ':
			if !inQuotes && current.Len() > 0 {
				args = append(args, current.String())
				current.Reset()
			} else if inQuotes {
				current.WriteRune(r)
			}
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		args = append(args, current.String())
	}
	return args
}

// isSuccess checks if command output indicates a completed SVG document
func isSuccess(output []byte) bool {
	outputStr := string(output)

	return strings.Contains(outputStr, "<svg") &&
		strings.Contains(outputStr, "</svg>")
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/chartgeom_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	if err := writer.Write([]string{"dataset", "cmd", "no_store_avg", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write results
	for _, result := range results {
		if err := writer.Write([]string{result.Dataset, result.Command, result.NoStoreTime, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")

	printCommandSummary(results, "line", "Line Geometry:")
	printCommandSummary(results, "pie", "Pie Geometry:")
	printCommandSummary(results, "heatmap", "Heatmap Geometry:")

	fmt.Printf("Benchmark script completed successfully\n")
}

// printCommandSummary displays results for a specific command type
func printCommandSummary(results []BenchmarkResult, command, title string) {
	fmt.Printf("%s\n", title)
	for _, result := range results {
		if result.Command == command {
			fmt.Printf("  %-12s: No-store: %s, Cold: %s, Warm: %s\n", result.Dataset, result.NoStoreTime, result.ColdTime, result.WarmTime)
		}
	}
}
