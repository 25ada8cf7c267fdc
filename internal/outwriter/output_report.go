package outwriter

import (
	"fmt"
	"io"
	"strings"

	"github.com/huangsam/rankviz/internal/chart"
	"github.com/huangsam/rankviz/internal/contract"
	"github.com/huangsam/rankviz/schema"
)

// reportPrecision is fixed so reports stay comparable across runs.
const reportPrecision = 4

var (
	heavyRule = strings.Repeat("=", 50)
	lightRule = strings.Repeat("-", 30)
)

// reportDocument is the JSON shape of a report.
type reportDocument struct {
	Summary schema.DatasetSummary `json:"summary"`
	View    *schema.View          `json:"view"`
}

// WriteReportResults outputs the full statistical report. JSON bundles the
// summary with the view; every other mode writes the plain text report.
func WriteReportResults(ds *schema.Dataset, summary schema.DatasetSummary, view *schema.View, cfg *contract.Config) error {
	if cfg.Output == schema.JSONOut {
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, reportDocument{Summary: summary, View: view})
		}, "Wrote JSON")
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeTextReport(w, ds, summary)
	}, "Wrote report")
}

// WriteChartImage renders the view to the chart file derived from cfg.
// Nothing is created when the view cannot be charted.
func WriteChartImage(view *schema.View, cfg *contract.Config) error {
	ch, err := chart.Build(view, cfg.ChartWidth, cfg.ChartHeight)
	if err != nil {
		return err
	}
	return writeWithFile(cfg.ChartFile(), func(w io.Writer) error {
		return chart.Encode(ch, cfg.ChartFormat, w)
	}, "Wrote chart")
}

// reportBuilder accumulates report text; the first write error sticks.
type reportBuilder struct {
	w   io.Writer
	err error
}

func (b *reportBuilder) printf(format string, args ...any) {
	if b.err != nil {
		return
	}
	_, b.err = fmt.Fprintf(b.w, format, args...)
}

func writeTextReport(w io.Writer, ds *schema.Dataset, summary schema.DatasetSummary) error {
	b := &reportBuilder{w: w}
	writeStatistics(b, ds, summary)

	b.printf("\n\n%s\nDETAILED CONFIGURATION BREAKDOWN\n%s\n\n", heavyRule, heavyRule)
	for _, rec := range ds.Configs {
		b.printf("CONFIGURATION RANK #%d\n%s\n", rec.Rank, lightRule)
		b.printf("System Performance:\n")
		writeMetricLines(b, rec, summary.Columns)

		b.printf("\nBehavior Settings:\n")
		for _, s := range rec.Services {
			b.printf("  Service: %s\n", s.ServiceName)
			for _, cls := range s.Classes {
				b.printf("    Class: %s\n", schema.ShortClassName(cls.ClassName))
				for _, bh := range cls.Behaviours {
					b.printf("      %s: %s\n", bh.MethodName, bh.BehaviourID)
				}
			}
		}
		b.printf("\n%s\n\n", heavyRule)
	}
	return b.err
}

// writeStatistics writes the dataset overview, metric, best configuration and behaviour sections.
func writeStatistics(b *reportBuilder, ds *schema.Dataset, summary schema.DatasetSummary) {
	b.printf("COMPREHENSIVE STATISTICAL ANALYSIS\n%s\n\n", heavyRule)

	b.printf("DATASET OVERVIEW\n%s\n", strings.Repeat("-", 20))
	b.printf("Total Configurations Tested: %d\n", summary.TotalConfigs)
	b.printf("Services Analyzed: %d\n", summary.UniqueServices)
	b.printf("Unique Behaviors: %d\n", len(summary.Behaviours))
	b.printf("Metrics Tracked: %d\n\n", summary.TotalMetrics)

	b.printf("METRIC PERFORMANCE STATISTICS\n%s\n", strings.Repeat("-", 35))
	for _, c := range summary.Columns {
		b.printf("\n%s:\n", c.Metric)
		b.printf("  Mean: %.4f\n", c.Mean)
		b.printf("  Median: %.4f\n", c.Median)
		b.printf("  Std Deviation: %.4f\n", c.Std)
		b.printf("  Min: %.4f\n", c.Min)
		b.printf("  Max: %.4f\n", c.Max)
		b.printf("  Range: %.4f\n", c.Range)
		b.printf("  25th Percentile: %.4f\n", c.P25)
		b.printf("  75th Percentile: %.4f\n", c.P75)
		b.printf("  IQR: %.4f\n", c.IQR)
	}

	if len(ds.Configs) > 0 {
		best := ds.Configs[0]
		b.printf("\n\nBEST PERFORMING CONFIGURATION (Rank #%d)\n%s\n", best.Rank, strings.Repeat("-", 45))
		b.printf("System Metrics:\n")
		writeMetricLines(b, best, summary.Columns)

		b.printf("\nBehavior Configuration:\n")
		for _, s := range best.Services {
			b.printf("  %s:\n", s.ServiceName)
			for _, cls := range s.Classes {
				for _, bh := range cls.Behaviours {
					b.printf("    %s: %s\n", bh.MethodName, bh.BehaviourID)
				}
			}
		}
	}

	b.printf("\n\nBEHAVIOR IMPACT ANALYSIS\n%s\n", strings.Repeat("-", 28))
	for _, bs := range summary.Behaviours {
		b.printf("\n%s:\n", bs.BehaviourID)
		b.printf("  Average Rank: %.2f\n", bs.AverageRank)
		b.printf("  Rank Std Dev: %.2f\n", bs.RankStd)
		b.printf("  Usage Count: %d\n", bs.Count)
	}
}

// writeMetricLines prints the raw values of one configuration in axis order.
func writeMetricLines(b *reportBuilder, rec schema.ConfigurationRecord, columns []schema.ColumnStats) {
	for _, c := range columns {
		v, ok := rec.Value(c.Metric)
		if !ok {
			continue
		}
		unit := rec.Units[c.Metric]
		if unit == "" {
			unit = c.Unit
		}
		b.printf("  %s: %.*f %s\n", c.Metric, reportPrecision, v, unit)
	}
}
