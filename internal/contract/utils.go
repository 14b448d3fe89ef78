package contract

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
)

// Sector share label constants.
const (
	DominantValue = "Dominant" // Dominant share of the total
	MajorValue    = "Major"    // Major share
	MinorValue    = "Minor"    // Minor but labelable share
	TraceValue    = "Trace"    // Below the label readability floor
)

// Color variables for console output.
var (
	DominantColor = color.New(color.FgRed, color.Bold) // dominantColor flags a slice that dwarfs the rest.
	MajorColor    = color.New(color.FgMagenta)         // majorColor marks a substantial share.
	MinorColor    = color.New(color.FgYellow)          // minorColor marks a readable but small share.
	TraceColor    = color.New(color.FgCyan)            // traceColor marks slices too thin to label.

	TrendUpColor   = color.New(color.FgGreen) // trendUpColor marks a rising sparkline.
	TrendDownColor = color.New(color.FgRed)   // trendDownColor marks a falling sparkline.
)

// GetPlainShareLabel returns a plain text label for a sector's percentage
// share. This is the core logic used for CSV, JSON, and table printing.
// Anything below the 5% readability floor is Trace.
func GetPlainShareLabel(percentage float64) string {
	switch {
	case percentage >= 40:
		return DominantValue
	case percentage >= 20:
		return MajorValue
	case percentage >= 5:
		return MinorValue
	default:
		return TraceValue
	}
}

// GetColorShareLabel returns a colored share label for console output.
// It uses GetPlainShareLabel to determine the string, then applies the
// matching color.
func GetColorShareLabel(percentage float64) string {
	text := GetPlainShareLabel(percentage)

	switch text {
	case DominantValue:
		return DominantColor.Sprint(text)
	case MajorValue:
		return MajorColor.Sprint(text)
	case MinorValue:
		return MinorColor.Sprint(text)
	default: // "Trace"
		return TraceColor.Sprint(text)
	}
}

// GetTrendLabel returns a trend word for sparkline summaries, colored when
// requested.
func GetTrendLabel(trendUp, useColors bool) string {
	if trendUp {
		if useColors {
			return TrendUpColor.Sprint("up")
		}
		return "up"
	}
	if useColors {
		return TrendDownColor.Sprint("down")
	}
	return "down"
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. An empty path falls back to os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetStoreDBFilePath returns the path to the SQLite DB file for the dataset store.
func GetStoreDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".chartgeom_datasets.db"
	}
	return filepath.Join(homeDir, ".chartgeom_datasets.db")
}

// TruncateName truncates a dataset or series name to a maximum width with
// ellipsis suffix. Requires maxWidth > 3 so there is room for the ellipsis
// and at least one character of content.
func TruncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
}
