// Package cmd defines the command-line interface for rankviz.
package cmd

import (
	"github.com/huangsam/rankviz/internal/contract"
	"github.com/huangsam/rankviz/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().Bool("detail", false, "Print the raw value next to every score")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of configurations to display (0 = all)")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log per-metric normalization details to stderr")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of scoresCmd to Viper
	scoresCmd.Flags().Bool("explain", false, "Print how each metric column was normalized")
	scoresCmd.Flags().Bool("watch", false, "Re-render whenever the dataset file changes")
	scoresCmd.Flags().String("debounce", contract.DefaultDebounce.String(), "Quiet period before re-rendering in watch mode")
	if err := viper.BindPFlags(scoresCmd.Flags()); err != nil {
		contract.LogFatal("Error binding scores flags", err)
	}

	// Bind all flags of chartCmd to Viper
	chartCmd.Flags().String("chart-format", string(schema.PNGChart), "Image format: png or svg")
	chartCmd.Flags().Int("chart-width", contract.DefaultChartWidth, "Image width in pixels")
	chartCmd.Flags().Int("chart-height", contract.DefaultChartHeight, "Image height in pixels")
	if err := viper.BindPFlags(chartCmd.Flags()); err != nil {
		contract.LogFatal("Error binding chart flags", err)
	}
}
