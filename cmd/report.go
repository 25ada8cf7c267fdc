package cmd

import (
	"github.com/huangsam/rankviz/core"
	"github.com/huangsam/rankviz/internal/contract"
	"github.com/spf13/cobra"
)

// reportCmd writes the full statistical report.
var reportCmd = &cobra.Command{
	Use:   "report <dataset>",
	Short: "Write a full statistical report with per-configuration detail.",
	Long: `Write the comprehensive analysis of a dataset as plain text.

The report covers the dataset overview, metric statistics, the best
configuration, behaviour impact and a breakdown of every configuration
with its services, classes and behaviours.

Examples:
  # Save the report next to the dataset
  rankviz report results.json --output-file report.txt

  # Bundle the summary and normalized view as JSON
  rankviz report results.json --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteReport(rootCtx, cfg, datasetLoader); err != nil {
			contract.LogFatal("Cannot write report", err)
		}
	},
}
