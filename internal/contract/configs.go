package contract

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/huangsam/rankviz/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 0 // show every configuration
	MaxResultLimit     = 1000
	DefaultPrecision   = 3
	MaxPrecision       = 4
	DefaultChartWidth  = 1600
	DefaultChartHeight = 900
	MinChartSize       = 200
	DefaultDebounce    = 250 * time.Millisecond
)

// ErrDatasetRequired is returned when a data command runs without a dataset path.
var ErrDatasetRequired = errors.New("dataset path is required")

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// Config holds the runtime configuration for one rankviz invocation.
// This struct remains the "final, validated" config.
type Config struct {
	DatasetPath string
	ResultLimit int
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	Detail      bool
	Explain     bool
	Verbose     bool
	Width       int // Terminal width override (0 = auto-detect)

	ChartFormat schema.ChartFormat
	ChartWidth  int
	ChartHeight int

	Watch    bool
	Debounce time.Duration

	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	DatasetPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	OutputFile string `mapstructure:"output-file"`
	Limit      int    `mapstructure:"limit"`
	Precision  int    `mapstructure:"precision"`
	Output     string `mapstructure:"output"`
	Detail     bool   `mapstructure:"detail"`
	Width      int    `mapstructure:"width"`
	Color      string `mapstructure:"color"`
	Verbose    bool   `mapstructure:"verbose"`

	// --- Fields from scoresCmd.Flags() ---
	Explain  bool   `mapstructure:"explain"`
	Watch    bool   `mapstructure:"watch"`
	Debounce string `mapstructure:"debounce"`

	// --- Fields from chartCmd.Flags() ---
	ChartFormat string `mapstructure:"chart-format"`
	ChartWidth  int    `mapstructure:"chart-width"`
	ChartHeight int    `mapstructure:"chart-height"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ChartFile returns the chart destination, defaulting to rankviz.<format>.
func (c *Config) ChartFile() string {
	if c.OutputFile != "" {
		return c.OutputFile
	}
	return "rankviz." + string(c.ChartFormat)
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processChartInputs(cfg, input); err != nil {
		return err
	}
	if err := processWatchInputs(cfg, input); err != nil {
		return err
	}
	if err := resolveDatasetPath(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates the output related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.Detail = input.Detail
	cfg.Explain = input.Explain
	cfg.Verbose = input.Verbose

	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	cfg.Width = input.Width

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Limit < 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be between 0 and %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	if input.Precision < 1 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 1 and %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return errors.New("parquet output requires --output-file")
	}
	return nil
}

// processChartInputs validates the image settings used by the chart command.
func processChartInputs(cfg *Config, input *ConfigRawInput) error {
	format := strings.ToLower(input.ChartFormat)
	if format == "" {
		format = string(schema.PNGChart)
	}
	cfg.ChartFormat = schema.ChartFormat(format)
	if _, ok := schema.ValidChartFormats[cfg.ChartFormat]; !ok {
		return fmt.Errorf("invalid chart format '%s'. must be png, svg", input.ChartFormat)
	}

	cfg.ChartWidth, cfg.ChartHeight = input.ChartWidth, input.ChartHeight
	if cfg.ChartWidth == 0 {
		cfg.ChartWidth = DefaultChartWidth
	}
	if cfg.ChartHeight == 0 {
		cfg.ChartHeight = DefaultChartHeight
	}
	if cfg.ChartWidth < MinChartSize || cfg.ChartHeight < MinChartSize {
		return fmt.Errorf("chart size must be at least %dx%d (received %dx%d)",
			MinChartSize, MinChartSize, cfg.ChartWidth, cfg.ChartHeight)
	}
	return nil
}

// processWatchInputs parses the debounce duration for watch mode.
func processWatchInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.Watch = input.Watch
	cfg.Debounce = DefaultDebounce
	if input.Debounce == "" {
		return nil
	}
	d, err := time.ParseDuration(input.Debounce)
	if err != nil {
		return fmt.Errorf("invalid debounce '%s': %w", input.Debounce, err)
	}
	if d <= 0 {
		return fmt.Errorf("debounce must be positive (received %s)", input.Debounce)
	}
	cfg.Debounce = d
	return nil
}

// resolveDatasetPath turns the positional argument into an absolute file path.
// An empty argument is allowed here; data commands enforce it themselves.
func resolveDatasetPath(cfg *Config, input *ConfigRawInput) error {
	if input.DatasetPathStr == "" {
		cfg.DatasetPath = ""
		return nil
	}
	absPath, err := filepath.Abs(input.DatasetPathStr)
	if err != nil {
		return fmt.Errorf("failed to resolve dataset path '%s': %w", input.DatasetPathStr, err)
	}
	info, err := os.Stat(absPath)
	if err != nil {
		return fmt.Errorf("dataset not found: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("dataset path '%s' is a directory", input.DatasetPathStr)
	}
	cfg.DatasetPath = absPath
	return nil
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}
