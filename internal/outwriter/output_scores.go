package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/rankviz/internal/contract"
	"github.com/huangsam/rankviz/internal/parquet"
	"github.com/huangsam/rankviz/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteScoreResults outputs the normalized view, dispatching based on the output format configured.
func WriteScoreResults(view *schema.View, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, fmtOptional := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, view)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScoresCSV(w, view, fmtFloat)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return parquet.WriteScoreRecords(w, parquet.FromScoreRows(view.ScoreRows()))
		}, "Wrote Parquet"); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScoresTable(view, cfg, fmtFloat, fmtOptional, duration, w)
		}, "Wrote table")
	}
	return nil
}

// scoreHeaders builds the table header with one column per axis.
func scoreHeaders(view *schema.View, cfg *contract.Config) []string {
	width := getMaxAxisWidth(cfg, len(view.Axis))
	headers := []string{"Rank", "Config", "Tier"}
	for _, a := range view.Axis {
		headers = append(headers, schema.TruncateText(a.Name, width)+" "+a.Symbol)
	}
	return headers
}

// configLabel prefers the dataset id and falls back to the positional name.
func configLabel(r schema.RowView) string {
	name := r.ConfigID
	if name == "" {
		name = schema.ConfigName(r.Rank)
	}
	if r.Medal != "" {
		return r.Medal + " " + name
	}
	return name
}

// writeScoresTable generates and writes the human-readable score table.
func writeScoresTable(view *schema.View, cfg *contract.Config, fmtFloat func(float64) string, fmtOptional func(*float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header(scoreHeaders(view, cfg))
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, r := range view.Rows {
		label := contract.GetPlainLabel(r.Tier)
		if cfg.UseColors {
			label = contract.GetColorLabel(r.Tier)
		}
		row := []string{strconv.Itoa(r.Rank), configLabel(r), label}
		for i := range view.Axis {
			cell := fmtOptional(r.Scores[i])
			if r.Scores[i] != nil && cfg.UseColors {
				cell = contract.GetColorScore(*r.Scores[i], cell)
			}
			if cfg.Detail {
				raw := missingCell
				if r.Values[i] != nil {
					raw = schema.FormatNumber(*r.Values[i], cfg.Precision)
				}
				cell = fmt.Sprintf("%s (%s)", cell, raw)
			}
			row = append(row, cell)
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if cfg.Explain {
		if err := writeScalingTable(view.Columns, fmtFloat, writer); err != nil {
			return err
		}
	}

	counts := view.TierCounts()
	if _, err := fmt.Fprintf(writer, "Showing %d of %d configurations (top: %d, high: %d, normal: %d)\n",
		len(view.Rows), view.TotalConfigs, counts[schema.TopTier], counts[schema.HighTier], counts[schema.NormalTier]); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Normalized %d metrics in %v\n", len(view.Columns), duration); err != nil {
		return err
	}
	return nil
}

// writeScalingTable explains how each column was normalized.
func writeScalingTable(columns []schema.ColumnResult, fmtFloat func(float64) string, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Metric", "Direction", "Scaling", "Count", "Excluded", "Min", "Max", "Range"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	data := make([][]string, 0, len(columns))
	for _, c := range columns {
		data = append(data, []string{
			c.Metric,
			string(c.Direction) + " " + c.Direction.Symbol(),
			string(c.Scaling),
			strconv.Itoa(c.Count),
			strconv.Itoa(c.Excluded),
			fmtFloat(c.Min),
			fmtFloat(c.Max),
			fmtFloat(c.Range),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeScoresCSV writes one row per present score in long format.
func writeScoresCSV(w io.Writer, view *schema.View, fmtFloat func(float64) string) error {
	header := []string{"rank", "config_id", "tier", "metric", "direction", "raw", "score", "zone"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, r := range view.ScoreRows() {
			rec := []string{
				strconv.Itoa(r.Rank),
				r.ConfigID,
				string(r.Tier),
				r.Metric,
				string(r.Direction),
				strconv.FormatFloat(r.Raw, 'g', -1, 64),
				fmtFloat(r.Score),
				string(r.Zone),
			}
			if err := cw.Write(rec); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}
