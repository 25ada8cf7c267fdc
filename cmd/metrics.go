package cmd

import (
	"github.com/huangsam/rankviz/core"
	"github.com/huangsam/rankviz/internal/contract"
	"github.com/spf13/cobra"
)

// metricsCmd lists the axes in the order they are displayed.
var metricsCmd = &cobra.Command{
	Use:   "metrics <dataset>",
	Short: "Show metric axes with their direction and unit.",
	Long: `List every metric of the dataset in display order.

Declared metrics are sorted by their order field. Metrics reported by a
configuration but never declared come last, are treated as higher-is-better,
and are listed by name.

Examples:
  # Show the axis order
  rankviz metrics results.json

  # Export the axis definitions
  rankviz metrics results.json --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteMetrics(rootCtx, cfg, datasetLoader); err != nil {
			contract.LogFatal("Cannot list metrics", err)
		}
	},
}
