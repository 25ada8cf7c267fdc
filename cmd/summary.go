package cmd

import (
	"github.com/huangsam/rankviz/core"
	"github.com/huangsam/rankviz/internal/contract"
	"github.com/spf13/cobra"
)

// summaryCmd prints descriptive statistics of the raw metric values.
var summaryCmd = &cobra.Command{
	Use:   "summary <dataset>",
	Short: "Show descriptive statistics per metric and behaviour.",
	Long: `Summarize the raw values of every metric and the ranks of every behaviour.

For each metric: count, mean, median, sample standard deviation, min, max
and the interquartile range. For each behaviour: the average rank of the
configurations that chose it and how often it was chosen.

Examples:
  # Show the summary tables
  rankviz summary results.json

  # Export per-metric statistics
  rankviz summary results.json --output csv --output-file stats.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSummary(rootCtx, cfg, datasetLoader); err != nil {
			contract.LogFatal("Cannot summarize dataset", err)
		}
	},
}
