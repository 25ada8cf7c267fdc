package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/huangsam/rankviz/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteScoresTable(t *testing.T) {
	cfg := testConfig(schema.TextOut)
	fmtFloat, fmtOptional := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	require.NoError(t, writeScoresTable(sampleView(), cfg, fmtFloat, fmtOptional, time.Millisecond, &buf))
	out := buf.String()

	assert.Contains(t, out, "cfg-a")
	assert.Contains(t, out, "Config #2")
	assert.Contains(t, out, "1.000")
	assert.Contains(t, out, "0.800")
	assert.Contains(t, out, missingCell)
	assert.Contains(t, out, "Showing 2 of 5 configurations (top: 2, high: 0, normal: 0)")
	assert.Contains(t, out, "Normalized 2 metrics in 1ms")
	assert.NotContains(t, out, "degenerate")
}

func TestWriteScoresTableDetailAndExplain(t *testing.T) {
	cfg := testConfig(schema.TextOut)
	cfg.Detail = true
	cfg.Explain = true
	fmtFloat, fmtOptional := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	require.NoError(t, writeScoresTable(sampleView(), cfg, fmtFloat, fmtOptional, 0, &buf))
	out := buf.String()

	assert.Contains(t, out, "1.000 (10.000)")
	assert.Contains(t, out, "0.800 (900.000)")
	assert.Contains(t, out, "- (-)")
	assert.Contains(t, out, "degenerate")
	assert.Contains(t, out, "standard")
}

func TestConfigLabel(t *testing.T) {
	assert.Equal(t, "🥇 cfg-a", configLabel(schema.RowView{Rank: 1, ConfigID: "cfg-a", Medal: "🥇"}))
	assert.Equal(t, "Config #12", configLabel(schema.RowView{Rank: 12}))
}

func TestWriteScoresCSV(t *testing.T) {
	fmtFloat, _ := createFormatters(2)
	var buf bytes.Buffer
	require.NoError(t, writeScoresCSV(&buf, sampleView(), fmtFloat))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4) // header + three present scores
	assert.Equal(t, []string{"rank", "config_id", "tier", "metric", "direction", "raw", "score", "zone"}, records[0])
	assert.Equal(t, []string{"1", "cfg-a", "top", "latency", "lower", "10", "1.00", "excellence"}, records[1])
	assert.Equal(t, []string{"1", "cfg-a", "top", "throughput", "higher", "900", "0.80", "excellence"}, records[2])
	assert.Equal(t, []string{"2", "", "top", "latency", "lower", "30", "0.00", "needs-improvement"}, records[3])
}

func TestWriteScoreResultsJSON(t *testing.T) {
	cfg := testConfig(schema.JSONOut)
	read := withOutputFile(t, cfg, "scores.json")
	require.NoError(t, WriteScoreResults(sampleView(), cfg, 0))

	var got schema.View
	require.NoError(t, json.Unmarshal([]byte(read()), &got))
	assert.Equal(t, 5, got.TotalConfigs)
	require.Len(t, got.Rows, 2)
	assert.Nil(t, got.Rows[1].Scores[1])
	assert.InDelta(t, 0.8, *got.Rows[0].Scores[1], 1e-9)
}

func TestWriteScoreResultsParquet(t *testing.T) {
	cfg := testConfig(schema.ParquetOut)
	read := withOutputFile(t, cfg, "scores.parquet")
	require.NoError(t, WriteScoreResults(sampleView(), cfg, 0))
	assert.True(t, strings.HasPrefix(read(), "PAR1"))
}

func TestGetMaxAxisWidth(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		axes   int
		detail bool
		want   int
	}{
		{"no axes", 80, 0, false, maxAxisWidth},
		{"wide terminal", 400, 2, false, maxAxisWidth},
		{"narrow terminal", 60, 8, false, minAxisWidth},
		{"fits exactly", 136, 5, false, 17},
		{"detail shrinks", 136, 5, true, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(schema.TextOut)
			cfg.Width = tt.width
			cfg.Detail = tt.detail
			assert.Equal(t, tt.want, getMaxAxisWidth(cfg, tt.axes))
		})
	}
}
