package svgout

import (
	"os"

	"github.com/openclinic/chartgeom/internal/contract"
	"golang.org/x/term"
)

// GetMaxTableNameWidth calculates the maximum width for labels and series
// names in table output based on terminal width.
func GetMaxTableNameWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.TermWidth > 0 {
		termWidth = cfg.TermWidth
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default for narrow terminals and CI
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the numeric columns plus borders and padding.
	available := termWidth - 50
	if available < 12 {
		return 12
	}
	if available > 48 {
		return 48
	}
	return available
}
