// Package parquet exports normalized rankviz scores to Parquet files
// using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"os"

	"github.com/huangsam/rankviz/schema"
	"github.com/parquet-go/parquet-go"
)

// ScoreRecord is one normalized score in long format.
type ScoreRecord struct {
	// Rank is the 1-based position of the configuration
	Rank int32 `parquet:"rank,snappy"`

	// ConfigID is the optional configuration identifier from the dataset
	ConfigID *string `parquet:"config_id,optional,snappy"`

	// Tier is the presentation band derived from the rank
	Tier string `parquet:"tier,snappy,dict"`

	// Metric is the metric name
	Metric string `parquet:"metric,snappy,dict"`

	// Direction is higher or lower
	Direction string `parquet:"direction,snappy,dict"`

	// Raw is the measured value before normalization
	Raw float64 `parquet:"raw,snappy"`

	// Score is the normalized value in [0,1], 1.0 being best
	Score float64 `parquet:"score,snappy"`

	// Zone is the performance zone of the score
	Zone string `parquet:"zone,snappy,dict"`
}

// FromScoreRows converts flattened view rows into Parquet records.
func FromScoreRows(rows []schema.ScoreRow) []ScoreRecord {
	records := make([]ScoreRecord, len(rows))
	for i, r := range rows {
		rec := ScoreRecord{
			Rank:      int32(r.Rank),
			Tier:      string(r.Tier),
			Metric:    r.Metric,
			Direction: string(r.Direction),
			Raw:       r.Raw,
			Score:     r.Score,
			Zone:      string(r.Zone),
		}
		if r.ConfigID != "" {
			id := r.ConfigID
			rec.ConfigID = &id
		}
		records[i] = rec
	}
	return records
}

// WriteScoreRecords writes records to w. The writer is closed so that the
// Parquet footer is complete, but w itself is left open.
func WriteScoreRecords(w io.Writer, data []ScoreRecord) error {
	writer := parquet.NewGenericWriter[ScoreRecord](w)

	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet: %w", err)
	}
	return nil
}

// WriteScoresParquet writes records to a new Parquet file at outputPath.
func WriteScoresParquet(data []ScoreRecord, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return WriteScoreRecords(file, data)
}
