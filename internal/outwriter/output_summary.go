package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/rankviz/internal/contract"
	"github.com/huangsam/rankviz/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteSummaryResults outputs dataset statistics, dispatching based on the output format configured.
func WriteSummaryResults(summary schema.DatasetSummary, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, summary)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSummaryCSV(w, summary, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is only supported for scores")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSummaryTables(w, summary, fmtFloat, duration)
		}, "Wrote table")
	}
}

// writeSummaryTables writes the overview, metric and behaviour tables.
func writeSummaryTables(w io.Writer, summary schema.DatasetSummary, fmtFloat func(float64) string, duration time.Duration) error {
	overview := tablewriter.NewWriter(w)
	overview.Header([]string{"Dataset", "Value"})
	overview.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})
	rows := [][]string{
		{"Configurations", strconv.Itoa(summary.TotalConfigs)},
		{"Metrics", strconv.Itoa(summary.TotalMetrics)},
		{"Best position", strconv.Itoa(summary.BestPosition)},
		{"Worst position", strconv.Itoa(summary.WorstPosition)},
		{"Services", fmt.Sprintf("%d (%d unique)", summary.TotalServices, summary.UniqueServices)},
		{"Behaviours", fmt.Sprintf("%d (%d unique)", summary.TotalBehaviours, len(summary.Behaviours))},
	}
	if err := overview.Bulk(rows); err != nil {
		return err
	}
	if err := overview.Render(); err != nil {
		return err
	}

	metrics := tablewriter.NewWriter(w)
	metrics.Header([]string{"Metric", "Unit", "Dir", "Count", "Mean", "Median", "Std", "Min", "Max", "P25", "P75", "IQR"})
	metrics.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})
	data := make([][]string, 0, len(summary.Columns))
	for _, c := range summary.Columns {
		data = append(data, []string{
			c.Metric, c.Unit, c.Direction.Symbol(), strconv.Itoa(c.Count),
			fmtFloat(c.Mean), fmtFloat(c.Median), fmtFloat(c.Std),
			fmtFloat(c.Min), fmtFloat(c.Max),
			fmtFloat(c.P25), fmtFloat(c.P75), fmtFloat(c.IQR),
		})
	}
	if err := metrics.Bulk(data); err != nil {
		return err
	}
	if err := metrics.Render(); err != nil {
		return err
	}

	if len(summary.Behaviours) > 0 {
		behaviours := tablewriter.NewWriter(w)
		behaviours.Header([]string{"Behaviour", "Avg Rank", "Rank Std", "Usage"})
		behaviours.Configure(func(cfg *tablewriter.Config) {
			cfg.Row.Alignment.Global = tw.AlignRight
		})
		data := make([][]string, 0, len(summary.Behaviours))
		for _, b := range summary.Behaviours {
			data = append(data, []string{b.BehaviourID, fmt.Sprintf("%.2f", b.AverageRank), fmt.Sprintf("%.2f", b.RankStd), strconv.Itoa(b.Count)})
		}
		if err := behaviours.Bulk(data); err != nil {
			return err
		}
		if err := behaviours.Render(); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "Summarized %d configurations in %v\n", summary.TotalConfigs, duration)
	return err
}

// writeSummaryCSV writes one row per metric with its descriptive statistics.
func writeSummaryCSV(w io.Writer, summary schema.DatasetSummary, fmtFloat func(float64) string) error {
	header := []string{"metric", "unit", "direction", "count", "mean", "median", "std", "min", "max", "range", "p25", "p75", "iqr"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, c := range summary.Columns {
			rec := []string{
				c.Metric, c.Unit, string(c.Direction), strconv.Itoa(c.Count),
				fmtFloat(c.Mean), fmtFloat(c.Median), fmtFloat(c.Std),
				fmtFloat(c.Min), fmtFloat(c.Max), fmtFloat(c.Range),
				fmtFloat(c.P25), fmtFloat(c.P75), fmtFloat(c.IQR),
			}
			if err := cw.Write(rec); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}
