package schema

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
	}{
		{"higher", Higher},
		{"lower", Lower},
		{"Lower", Higher}, // case-sensitive
		{"LOWER", Higher},
		{"", Higher},
		{"descending", Higher},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDirection(tt.in))
		})
	}
}

func TestDirectionSymbol(t *testing.T) {
	assert.Equal(t, "↑", Higher.Symbol())
	assert.Equal(t, "↓", Lower.Symbol())
	assert.Equal(t, "↑", Direction("sideways").Symbol())
}

func TestZoneOf(t *testing.T) {
	assert.Equal(t, ExcellenceZone, ZoneOf(1.0))
	assert.Equal(t, ExcellenceZone, ZoneOf(0.75))
	assert.Equal(t, NeutralZone, ZoneOf(0.5))
	assert.Equal(t, NeutralZone, ZoneOf(0.26))
	assert.Equal(t, ImprovementZone, ZoneOf(0.25))
	assert.Equal(t, ImprovementZone, ZoneOf(0))
}

func TestStyleOf(t *testing.T) {
	top := StyleOf(TopTier)
	high := StyleOf(HighTier)
	normal := StyleOf(NormalTier)

	assert.Equal(t, 3.5, top.Width)
	assert.Greater(t, top.Width, high.Width)
	assert.Greater(t, high.Width, normal.Width)
	assert.Greater(t, top.Alpha, normal.Alpha)
	assert.Greater(t, top.ZOrder, high.ZOrder)
	assert.Equal(t, normal, StyleOf(Tier("bogus")))
}

func TestMedalOf(t *testing.T) {
	assert.Equal(t, "🥇", MedalOf(1, TopTier))
	assert.Equal(t, "🥈", MedalOf(2, TopTier))
	assert.Equal(t, "🥉", MedalOf(3, TopTier))
	assert.Equal(t, "", MedalOf(0, TopTier))
	assert.Equal(t, "⭐", MedalOf(7, HighTier))
	assert.Equal(t, "", MedalOf(42, NormalTier))
}

func TestAxisLabel(t *testing.T) {
	tests := []struct {
		name string
		dir  Direction
		want string
	}{
		{"latency", Lower, "latency ↓"},
		{"throughput", Higher, "throughput ↑"},
		{"exactly15chars!", Higher, "exactly15chars! ↑"},
		{"average response time", Lower, "average ↓\nresponse"},
		{"requestsPerSecondTotal", Higher, "requestsPerS... ↑"},
		{"error rate percent", Lower, "error ↓\nrate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AxisLabel(tt.name, tt.dir))
		})
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "12.35", FormatNumber(12.346, 2))
	assert.Equal(t, "1.50K", FormatNumber(1500, 2))
	assert.Equal(t, "-2.5M", FormatNumber(-2_500_000, 1))
	assert.Equal(t, "999.0", FormatNumber(999, 1))
	assert.Equal(t, "NaN", FormatNumber(math.NaN(), 2))
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "short", TruncateText("short", 20))
	assert.Equal(t, "a very lo...", TruncateText("a very long label", 12))
	assert.Equal(t, "abc", TruncateText("abcdef", 3))
	assert.Equal(t, "a", TruncateText("abcdef", 1))
	assert.Equal(t, "", TruncateText("abcdef", 0))
	assert.Equal(t, "hé", TruncateText("héllo", 2))
}

func TestShortClassName(t *testing.T) {
	assert.Equal(t, "Cart", ShortClassName("com/shop/Cart"))
	assert.Equal(t, "Cart", ShortClassName("Cart"))
}
