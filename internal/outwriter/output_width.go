package outwriter

import (
	"os"

	"github.com/huangsam/rankviz/internal/contract"
	"golang.org/x/term"
)

// Bounds for the per-axis column width in the score table.
const (
	minAxisWidth = 6
	maxAxisWidth = 24
)

// getTerminalWidth returns the width override or the detected terminal width.
func getTerminalWidth(cfg *contract.Config) int {
	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		return cfg.Width
	}
	detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detectedWidth <= 0 {
		return 80 // Conservative default for narrow terminals and CI
	}
	return detectedWidth
}

// getMaxAxisWidth calculates how many runes each metric header may use
// so that the whole score table fits the terminal.
func getMaxAxisWidth(cfg *contract.Config, axisCount int) int {
	if axisCount == 0 {
		return maxAxisWidth
	}

	// Rank + Config + Tier with borders/padding
	baseWidth := 36

	available := getTerminalWidth(cfg) - baseWidth
	perAxis := available/axisCount - 3 // separator and padding
	if cfg.Detail {
		perAxis -= 8 // raw value in parentheses
	}
	if perAxis < minAxisWidth {
		return minAxisWidth
	}
	if perAxis > maxAxisWidth {
		return maxAxisWidth
	}
	return perAxis
}
