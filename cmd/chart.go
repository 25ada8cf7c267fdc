package cmd

import (
	"github.com/huangsam/rankviz/core"
	"github.com/huangsam/rankviz/internal/contract"
	"github.com/spf13/cobra"
)

// chartCmd renders the parallel-coordinates chart as an image.
var chartCmd = &cobra.Command{
	Use:   "chart <dataset>",
	Short: "Render the parallel-coordinates chart to an image file.",
	Long: `Draw one line per configuration across every metric axis.

Top tier lines are drawn thickest and last, so they stay visible on top of
the rest. The image goes to --output-file, or rankviz.<format> by default.

Examples:
  # Render a PNG of the top 20 configurations
  rankviz chart results.json --limit 20

  # Render a large SVG
  rankviz chart results.json --chart-format svg --chart-width 2400 --output-file ranking.svg`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteChart(rootCtx, cfg, datasetLoader); err != nil {
			contract.LogFatal("Cannot render chart", err)
		}
	},
}
