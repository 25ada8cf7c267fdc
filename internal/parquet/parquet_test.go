package parquet

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/rankviz/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRows() []schema.ScoreRow {
	return []schema.ScoreRow{
		{Rank: 1, ConfigID: "cfg-a", Tier: schema.TopTier, Metric: "latency", Direction: schema.Lower, Raw: 12.4, Score: 1, Zone: schema.ExcellenceZone},
		{Rank: 1, ConfigID: "cfg-a", Tier: schema.TopTier, Metric: "throughput", Direction: schema.Higher, Raw: 980, Score: 0.2, Zone: schema.ImprovementZone},
		{Rank: 12, Tier: schema.NormalTier, Metric: "latency", Direction: schema.Lower, Raw: 31.5, Score: 0.5, Zone: schema.NeutralZone},
	}
}

func readAll(t *testing.T, r io.ReaderAt) []ScoreRecord {
	t.Helper()
	reader := parquet.NewGenericReader[ScoreRecord](r)
	defer func() { _ = reader.Close() }()

	out := make([]ScoreRecord, reader.NumRows())
	n, err := reader.Read(out)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	return out[:n]
}

func TestScoreRecordStructTags(t *testing.T) {
	s := parquet.SchemaOf(new(ScoreRecord))
	require.NotNil(t, s)

	for _, colName := range []string{"rank", "config_id", "tier", "metric", "direction", "raw", "score", "zone"} {
		col, ok := s.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col)
	}
}

func TestFromScoreRows(t *testing.T) {
	records := FromScoreRows(sampleRows())
	require.Len(t, records, 3)

	assert.Equal(t, int32(1), records[0].Rank)
	require.NotNil(t, records[0].ConfigID)
	assert.Equal(t, "cfg-a", *records[0].ConfigID)
	assert.Equal(t, "lower", records[0].Direction)
	assert.Equal(t, "needs-improvement", records[1].Zone)
	assert.Nil(t, records[2].ConfigID)
}

func TestWriteScoreRecordsRoundTrip(t *testing.T) {
	data := FromScoreRows(sampleRows())

	var buf bytes.Buffer
	require.NoError(t, WriteScoreRecords(&buf, data))
	assert.NotZero(t, buf.Len())

	got := readAll(t, bytes.NewReader(buf.Bytes()))
	require.Len(t, got, len(data))
	for i := range data {
		assert.Equal(t, data[i].Rank, got[i].Rank)
		assert.Equal(t, data[i].Metric, got[i].Metric)
		assert.InDelta(t, data[i].Score, got[i].Score, 1e-12)
		assert.InDelta(t, data[i].Raw, got[i].Raw, 1e-12)
		if data[i].ConfigID == nil {
			assert.Nil(t, got[i].ConfigID)
		} else {
			require.NotNil(t, got[i].ConfigID)
			assert.Equal(t, *data[i].ConfigID, *got[i].ConfigID)
		}
	}
}

func TestWriteScoresParquetFile(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "scores.parquet")
	require.NoError(t, WriteScoresParquet(FromScoreRows(sampleRows()), outputPath))

	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	assert.Len(t, readAll(t, file), 3)
}

func TestWriteScoresParquetEmpty(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "empty.parquet")
	require.NoError(t, WriteScoresParquet([]ScoreRecord{}, outputPath))

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestWriteScoresParquetBadPath(t *testing.T) {
	err := WriteScoresParquet(nil, filepath.Join(t.TempDir(), "missing", "scores.parquet"))
	assert.Error(t, err)
}
