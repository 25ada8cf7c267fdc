package contract

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/rankviz/schema"
)

// Tier label constants.
const (
	TopValue    = "Top"    // Ranks 1-3
	HighValue   = "High"   // Ranks 4-10
	NormalValue = "Normal" // Everything else
)

// Color variables for console output.
var (
	TopColor    = color.New(color.FgGreen, color.Bold) // TopColor marks the leading configurations.
	HighColor   = color.New(color.FgYellow)            // HighColor marks the runner-up band.
	NormalColor = color.New(color.FgWhite)

	ExcellenceColor  = color.New(color.FgGreen)
	NeutralColor     = color.New(color.FgYellow)
	ImprovementColor = color.New(color.FgRed)
)

// GetPlainLabel returns the plain tier label used by CSV, JSON and table output.
func GetPlainLabel(tier schema.Tier) string {
	switch tier {
	case schema.TopTier:
		return TopValue
	case schema.HighTier:
		return HighValue
	default:
		return NormalValue
	}
}

// GetColorLabel returns a colored tier label for console output (table).
func GetColorLabel(tier schema.Tier) string {
	text := GetPlainLabel(tier)

	switch tier {
	case schema.TopTier:
		return TopColor.Sprint(text)
	case schema.HighTier:
		return HighColor.Sprint(text)
	default:
		return NormalColor.Sprint(text)
	}
}

// GetColorScore colors already formatted score text by the zone of score.
func GetColorScore(score float64, text string) string {
	switch schema.ZoneOf(score) {
	case schema.ExcellenceZone:
		return ExcellenceColor.Sprint(text)
	case schema.ImprovementZone:
		return ImprovementColor.Sprint(text)
	default:
		return NeutralColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. An empty path selects os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// NewLogger returns the diagnostics logger. Debug records are only emitted when verbose.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
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

// TruncatePath truncates a file path to a maximum width with ellipsis prefix.
// Requires maxWidth > 3 to leave room for the prefix and at least one character.
func TruncatePath(path string, maxWidth int) string {
	runes := []rune(path)
	if len(runes) > maxWidth && maxWidth > 3 {
		return "..." + string(runes[len(runes)-maxWidth+3:])
	}
	return path
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
