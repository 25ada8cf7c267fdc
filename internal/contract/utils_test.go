package contract

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/rankviz/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		tier     schema.Tier
		expected string
	}{
		{schema.TopTier, TopValue},
		{schema.HighTier, HighValue},
		{schema.NormalTier, NormalValue},
		{schema.Tier("unknown"), NormalValue},
	}
	for _, tt := range tests {
		t.Run(string(tt.tier), func(t *testing.T) {
			assert.Equal(t, tt.expected, GetPlainLabel(tt.tier))
		})
	}
}

func TestGetColorLabel(t *testing.T) {
	for _, tier := range schema.AllTiers {
		assert.Contains(t, GetColorLabel(tier), GetPlainLabel(tier))
	}
}

func TestGetColorScore(t *testing.T) {
	assert.Contains(t, GetColorScore(0.9, "0.900"), "0.900")
	assert.Contains(t, GetColorScore(0.5, "0.500"), "0.500")
	assert.Contains(t, GetColorScore(0.1, "0.100"), "0.100")
}

func TestSelectOutputFile(t *testing.T) {
	f, err := SelectOutputFile("")
	require.NoError(t, err)
	assert.Equal(t, os.Stdout, f)

	path := filepath.Join(t.TempDir(), "out.txt")
	f, err = SelectOutputFile(path)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.FileExists(t, path)
}

func TestNewLogger(t *testing.T) {
	var quiet, loud bytes.Buffer
	NewLogger(&quiet, false).Debug("column", "metric", "latency")
	NewLogger(&loud, true).Debug("column", "metric", "latency")

	assert.Empty(t, quiet.String())
	assert.Contains(t, loud.String(), "metric=latency")
}

func TestTruncatePath(t *testing.T) {
	assert.Equal(t, "short.json", TruncatePath("short.json", 20))
	assert.Equal(t, "...results.json", TruncatePath("/very/long/dir/results.json", 15))
	assert.Equal(t, "abcdef", TruncatePath("abcdef", 3))
}

func TestParseBoolString(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
		wantErr  bool
	}{
		{"yes", true, false},
		{"TRUE", true, false},
		{"1", true, false},
		{"no", false, false},
		{"False", false, false},
		{"0", false, false},
		{"maybe", false, true},
		{"", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBoolString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
