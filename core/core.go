// Package core has core logic for loading, normalizing and presenting rankings.
package core

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/huangsam/rankviz/core/algo"
	"github.com/huangsam/rankviz/internal/contract"
	"github.com/huangsam/rankviz/internal/outwriter"
	"github.com/huangsam/rankviz/internal/watch"
	"github.com/huangsam/rankviz/schema"
)

// ExecutorFunc defines the function signature for executing different commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, loader contract.DatasetLoader) error

// loadDataset reads the configured dataset.
func loadDataset(ctx context.Context, cfg *contract.Config, loader contract.DatasetLoader) (*schema.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if cfg.DatasetPath == "" {
		return nil, contract.ErrDatasetRequired
	}
	ds, err := loader.LoadFile(cfg.DatasetPath)
	if err != nil {
		return nil, err
	}
	return ds, nil
}

// BuildView normalizes a dataset and lays it out for presentation.
func BuildView(ds *schema.Dataset, limit int, logger *slog.Logger) *schema.View {
	return NewViewBuilder(ds).
		WithLogger(logger).
		BuildCatalog().
		Normalize().
		Assemble(limit).
		GetView()
}

// ExecuteScores normalizes the dataset and writes the score table.
// It serves as the main entry point for the 'scores' command.
func ExecuteScores(ctx context.Context, cfg *contract.Config, loader contract.DatasetLoader) error {
	start := time.Now()
	ds, err := loadDataset(ctx, cfg, loader)
	if err != nil {
		return err
	}
	view := BuildView(ds, cfg.ResultLimit, contract.NewLogger(os.Stderr, cfg.Verbose))
	return outwriter.NewOutWriter().WriteScores(view, cfg, time.Since(start))
}

// ExecuteMetrics writes the axis order with directions and units.
func ExecuteMetrics(ctx context.Context, cfg *contract.Config, loader contract.DatasetLoader) error {
	ds, err := loadDataset(ctx, cfg, loader)
	if err != nil {
		return err
	}
	view := BuildView(ds, 0, contract.NewLogger(os.Stderr, cfg.Verbose))
	return outwriter.NewOutWriter().WriteMetrics(view.Axis, cfg)
}

// ExecuteSummary writes descriptive statistics for every metric.
func ExecuteSummary(ctx context.Context, cfg *contract.Config, loader contract.DatasetLoader) error {
	start := time.Now()
	ds, err := loadDataset(ctx, cfg, loader)
	if err != nil {
		return err
	}
	summary := algo.SummarizeDataset(ds, nil)
	return outwriter.NewOutWriter().WriteSummary(summary, cfg, time.Since(start))
}

// ExecuteReport writes the full statistical report with per-configuration detail.
func ExecuteReport(ctx context.Context, cfg *contract.Config, loader contract.DatasetLoader) error {
	ds, err := loadDataset(ctx, cfg, loader)
	if err != nil {
		return err
	}
	summary := algo.SummarizeDataset(ds, nil)
	view := BuildView(ds, cfg.ResultLimit, contract.NewLogger(os.Stderr, cfg.Verbose))
	return outwriter.NewOutWriter().WriteReport(ds, summary, view, cfg)
}

// ExecuteChart renders the parallel-coordinates chart to an image file.
func ExecuteChart(ctx context.Context, cfg *contract.Config, loader contract.DatasetLoader) error {
	ds, err := loadDataset(ctx, cfg, loader)
	if err != nil {
		return err
	}
	view := BuildView(ds, cfg.ResultLimit, contract.NewLogger(os.Stderr, cfg.Verbose))
	return outwriter.NewOutWriter().WriteChart(view, cfg)
}

// ExecuteWatch runs executor once and again after every change to the dataset
// file, until ctx is cancelled. Render errors are reported and do not stop watching.
func ExecuteWatch(ctx context.Context, cfg *contract.Config, loader contract.DatasetLoader, executor ExecutorFunc) error {
	if cfg.DatasetPath == "" {
		return contract.ErrDatasetRequired
	}
	render := func() {
		if err := executor(ctx, cfg, loader); err != nil {
			contract.LogWarn("Cannot render dataset", err)
		}
	}
	render()

	w, err := watch.New(cfg.DatasetPath, cfg.Debounce)
	if err != nil {
		return fmt.Errorf("failed to watch dataset: %w", err)
	}
	defer func() { _ = w.Close() }()

	_, _ = fmt.Fprintf(os.Stderr, "👀 Watching %s (Ctrl+C to stop)\n", cfg.DatasetPath)
	return w.Run(ctx, func(_ watch.Event) {
		render()
	})
}
