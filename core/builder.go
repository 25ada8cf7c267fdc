package core

import (
	"io"
	"log/slog"
	"math"

	"github.com/huangsam/rankviz/core/algo"
	"github.com/huangsam/rankviz/schema"
)

// ViewBuilder turns a loaded dataset into the display-ready view.
type ViewBuilder struct {
	ds      *schema.Dataset
	logger  *slog.Logger
	catalog *algo.Catalog
	columns []schema.ColumnResult
	scores  schema.ScoreMap
	view    *schema.View
}

// NewViewBuilder is the starting point for building a view.
func NewViewBuilder(ds *schema.Dataset) *ViewBuilder {
	if ds == nil {
		ds = &schema.Dataset{}
	}
	return &ViewBuilder{
		ds:     ds,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithLogger sets the logger that receives per-column diagnostics.
func (b *ViewBuilder) WithLogger(logger *slog.Logger) *ViewBuilder {
	if logger != nil {
		b.logger = logger
	}
	return b
}

// BuildCatalog indexes the declared metrics.
func (b *ViewBuilder) BuildCatalog() *ViewBuilder {
	b.catalog = algo.NewCatalog(b.ds.Metrics)
	return b
}

// Normalize scores every metric column over the full record set.
func (b *ViewBuilder) Normalize() *ViewBuilder {
	if b.catalog == nil {
		b.BuildCatalog()
	}
	b.columns = algo.NormalizeColumns(b.ds.Configs, b.catalog)
	b.scores = algo.ScoreMapOf(b.columns)
	for _, col := range b.columns {
		b.logger.Debug("normalized column",
			"metric", col.Metric,
			"direction", col.Direction,
			"scaling", col.Scaling,
			"min", col.Min,
			"max", col.Max,
			"range", col.Range,
			"count", col.Count,
			"excluded", col.Excluded,
		)
	}
	return b
}

// Assemble lays out axes and rows. A positive limit keeps only the first
// limit configurations; normalization has already seen all of them.
func (b *ViewBuilder) Assemble(limit int) *ViewBuilder {
	if b.scores == nil {
		b.Normalize()
	}

	names := b.catalog.OrderedNames(b.ds.MetricNames())
	axis := make([]schema.AxisInfo, len(names))
	for i, name := range names {
		_, declared := b.catalog.Definition(name)
		dir := b.catalog.DirectionOf(name)
		axis[i] = schema.AxisInfo{
			Name:      name,
			Label:     schema.AxisLabel(name, dir),
			Symbol:    dir.Symbol(),
			Unit:      b.unitOf(name),
			Order:     b.catalog.OrderOf(name),
			Direction: dir,
			Declared:  declared,
		}
	}

	configs := b.ds.Configs
	if limit > 0 && limit < len(configs) {
		configs = configs[:limit]
	}
	rows := make([]schema.RowView, 0, len(configs))
	for _, c := range configs {
		tier := algo.TierOf(c.Rank)
		row := schema.RowView{
			Rank:     c.Rank,
			ConfigID: c.ConfigID,
			Tier:     tier,
			Medal:    schema.MedalOf(c.Rank, tier),
			Scores:   make([]*float64, len(names)),
			Values:   make([]*float64, len(names)),
		}
		for i, name := range names {
			if s, ok := b.scores.Get(c.Rank, name); ok {
				row.Scores[i] = &s
			}
			if v, ok := c.Value(name); ok && !math.IsNaN(v) && !math.IsInf(v, 0) {
				row.Values[i] = &v
			}
		}
		rows = append(rows, row)
	}

	b.view = &schema.View{
		Axis:         axis,
		Rows:         rows,
		Columns:      b.columns,
		TotalConfigs: len(b.ds.Configs),
	}
	return b
}

// GetView returns the assembled view, assembling without a limit if needed.
func (b *ViewBuilder) GetView() *schema.View {
	if b.view == nil {
		b.Assemble(0)
	}
	return b.view
}

// Catalog returns the metric catalog, building it if needed.
func (b *ViewBuilder) Catalog() *algo.Catalog {
	if b.catalog == nil {
		b.BuildCatalog()
	}
	return b.catalog
}

// unitOf prefers the declared unit and falls back to the first reported one.
func (b *ViewBuilder) unitOf(name string) string {
	if u := b.catalog.UnitOf(name); u != "" {
		return u
	}
	for _, c := range b.ds.Configs {
		if u := c.Units[name]; u != "" {
			return u
		}
	}
	return ""
}
