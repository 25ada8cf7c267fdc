package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/huangsam/rankviz/core"
	"github.com/huangsam/rankviz/internal/contract"
	"github.com/spf13/cobra"
)

// scoresCmd prints the normalized score of every configuration and metric.
var scoresCmd = &cobra.Command{
	Use:   "scores <dataset>",
	Short: "Show normalized scores for every ranked configuration.",
	Long: `Normalize every metric of a ranked experiment to [0,1] where 1.0 is best.

Each metric column is scaled independently, honoring whether higher or lower
raw values are better, so that you can compare:
- Why the top configurations outperformed the rest
- Which metrics a configuration sacrificed for its rank
- Metrics where every configuration performed the same

Configurations keep their input order. Ranks 1-3 are top tier and ranks 4-10
are high tier.

Examples:
  # Show every configuration
  rankviz scores results.json

  # Show the top 10 with raw values and the scaling used per metric
  rankviz scores results.json --limit 10 --detail --explain

  # Re-render on every save of the dataset
  rankviz scores results.yaml --watch

  # Export long-format scores for a notebook
  rankviz scores results.json --output parquet --output-file scores.parquet`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if !cfg.Watch {
			if err := core.ExecuteScores(rootCtx, cfg, datasetLoader); err != nil {
				contract.LogFatal("Cannot normalize dataset", err)
			}
			return
		}
		ctx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := core.ExecuteWatch(ctx, cfg, datasetLoader, core.ExecuteScores); err != nil {
			contract.LogFatal("Cannot watch dataset", err)
		}
	},
}
