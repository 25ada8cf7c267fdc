// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/huangsam/rankviz/internal/contract"
	"github.com/huangsam/rankviz/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteScores prints normalized scores using the configured output format.
func (ow *OutWriter) WriteScores(view *schema.View, cfg *contract.Config, duration time.Duration) error {
	return WriteScoreResults(view, cfg, duration)
}

// WriteMetrics prints the axis definitions using the configured output format.
func (ow *OutWriter) WriteMetrics(axis []schema.AxisInfo, cfg *contract.Config) error {
	return WriteMetricDefinitions(axis, cfg)
}

// WriteSummary prints dataset statistics using the configured output format.
func (ow *OutWriter) WriteSummary(summary schema.DatasetSummary, cfg *contract.Config, duration time.Duration) error {
	return WriteSummaryResults(summary, cfg, duration)
}

// WriteReport prints the statistical report and per-configuration breakdown.
func (ow *OutWriter) WriteReport(ds *schema.Dataset, summary schema.DatasetSummary, view *schema.View, cfg *contract.Config) error {
	return WriteReportResults(ds, summary, view, cfg)
}

// WriteChart renders the view as an image to the configured chart file.
func (ow *OutWriter) WriteChart(view *schema.View, cfg *contract.Config) error {
	return WriteChartImage(view, cfg)
}
