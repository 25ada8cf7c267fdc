package schema

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// ParseDirection converts a loader direction string. Matching is case-sensitive:
// only "lower" selects Lower, and anything else falls back to Higher.
func ParseDirection(s string) Direction {
	if s == string(Lower) {
		return Lower
	}
	return Higher
}

// Symbol returns the arrow used to label an axis.
func (d Direction) Symbol() string {
	if d == Lower {
		return "↓"
	}
	return "↑"
}

// ZoneOf classifies a normalized score into its performance zone.
func ZoneOf(score float64) Zone {
	switch {
	case score >= ExcellenceThreshold:
		return ExcellenceZone
	case score <= ImprovementThreshold:
		return ImprovementZone
	default:
		return NeutralZone
	}
}

// StyleOf returns the line emphasis for a tier.
func StyleOf(tier Tier) LineStyle {
	switch tier {
	case TopTier:
		return LineStyle{Width: 3.5, Dot: 8, Alpha: 0.9, ZOrder: 10}
	case HighTier:
		return LineStyle{Width: 2.5, Dot: 6, Alpha: 0.8, ZOrder: 5}
	default:
		return LineStyle{Width: 1.8, Dot: 4, Alpha: 0.6, ZOrder: 1}
	}
}

// MedalOf returns the legend marker for a ranked configuration.
func MedalOf(rank int, tier Tier) string {
	switch tier {
	case TopTier:
		medals := []string{"🥇", "🥈", "🥉"}
		if rank >= 1 && rank <= len(medals) {
			return medals[rank-1]
		}
		return ""
	case HighTier:
		return "⭐"
	default:
		return ""
	}
}

// ConfigName is the display name of a configuration.
func ConfigName(rank int) string {
	return fmt.Sprintf("Config #%d", rank)
}

// AxisLabel shortens long metric names and appends the direction symbol.
// Names of more than 15 runes keep their first two words on two lines when
// they have at least three words, and are cut to 12 runes otherwise.
func AxisLabel(name string, d Direction) string {
	symbol := d.Symbol()
	runes := []rune(name)
	if len(runes) <= 15 {
		return fmt.Sprintf("%s %s", name, symbol)
	}
	words := strings.Fields(name)
	if len(words) > 2 {
		return fmt.Sprintf("%s %s\n%s", words[0], symbol, words[1])
	}
	return fmt.Sprintf("%s... %s", string(runes[:12]), symbol)
}

// FormatNumber renders a value with K/M suffixes for large magnitudes.
func FormatNumber(value float64, precision int) string {
	switch {
	case math.IsNaN(value) || math.IsInf(value, 0):
		return fmt.Sprint(value)
	case math.Abs(value) >= 1_000_000:
		return fmt.Sprintf("%.*fM", precision, value/1_000_000)
	case math.Abs(value) >= 1_000:
		return fmt.Sprintf("%.*fK", precision, value/1_000)
	default:
		return fmt.Sprintf("%.*f", precision, value)
	}
}

// TruncateText cuts text to maxLength runes, ending with an ellipsis when cut.
// Widths of three or less leave no room for the ellipsis and cut plainly.
func TruncateText(text string, maxLength int) string {
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	if maxLength <= 0 {
		return ""
	}
	if maxLength <= 3 {
		return string(runes[:maxLength])
	}
	return string(runes[:maxLength-3]) + "..."
}

// ShortClassName keeps the last path segment of a fully qualified class name.
func ShortClassName(className string) string {
	if i := strings.LastIndex(className, "/"); i >= 0 {
		return className[i+1:]
	}
	return className
}

// sortedKeys returns the keys of a metric map in lexical order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
