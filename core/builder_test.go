package core

import (
	"math"
	"testing"

	"github.com/huangsam/rankviz/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDataset() *schema.Dataset {
	return &schema.Dataset{
		Metrics: []schema.MetricDefinition{
			{Name: "latency", Order: 2, Unit: "ms", Direction: schema.Lower},
			{Name: "throughput", Order: 1, Unit: "rps", Direction: schema.Higher},
		},
		Configs: []schema.ConfigurationRecord{
			{Rank: 1, ConfigID: "fast", MetricValues: map[string]float64{"latency": 10, "throughput": 300, "cpu": 0.5}, Units: map[string]string{"cpu": "cores"}},
			{Rank: 2, MetricValues: map[string]float64{"latency": 20, "throughput": 200}},
			{Rank: 3, MetricValues: map[string]float64{"latency": 30, "throughput": 100, "cpu": math.NaN()}},
			{Rank: 4, MetricValues: map[string]float64{"latency": 40}},
		},
	}
}

func TestViewBuilderAxisOrder(t *testing.T) {
	view := NewViewBuilder(testDataset()).Assemble(0).GetView()

	require.Len(t, view.Axis, 3)
	assert.Equal(t, "throughput", view.Axis[0].Name)
	assert.Equal(t, "latency", view.Axis[1].Name)
	assert.Equal(t, "cpu", view.Axis[2].Name)

	assert.Equal(t, "↓", view.Axis[1].Symbol)
	assert.True(t, view.Axis[1].Declared)
	assert.False(t, view.Axis[2].Declared)
	assert.Equal(t, schema.UnknownMetricOrder, view.Axis[2].Order)
	assert.Equal(t, "cores", view.Axis[2].Unit)
	assert.Equal(t, "ms", view.Axis[1].Unit)
}

func TestViewBuilderRows(t *testing.T) {
	view := NewViewBuilder(testDataset()).GetView()

	require.Len(t, view.Rows, 4)
	assert.Equal(t, 4, view.TotalConfigs)

	first := view.Rows[0]
	assert.Equal(t, "fast", first.ConfigID)
	assert.Equal(t, schema.TopTier, first.Tier)
	assert.Equal(t, "🥇", first.Medal)
	require.NotNil(t, first.Scores[0])
	assert.InDelta(t, 1.0, *first.Scores[0], 1e-9) // highest throughput
	assert.InDelta(t, 1.0, *first.Scores[1], 1e-9) // lowest latency

	third := view.Rows[2]
	assert.Nil(t, third.Scores[2], "NaN has no score")
	assert.Nil(t, third.Values[2], "NaN has no raw value")

	last := view.Rows[3]
	assert.Equal(t, schema.HighTier, last.Tier)
	assert.Nil(t, last.Scores[0])
	assert.InDelta(t, 0.0, *last.Scores[1], 1e-9)
	assert.InDelta(t, 40.0, *last.Values[1], 1e-9)
}

func TestViewBuilderLimitAfterNormalize(t *testing.T) {
	full := NewViewBuilder(testDataset()).GetView()
	limited := NewViewBuilder(testDataset()).Assemble(2).GetView()

	require.Len(t, limited.Rows, 2)
	assert.Equal(t, 4, limited.TotalConfigs)
	for i := range limited.Rows {
		assert.Equal(t, full.Rows[i].Scores, limited.Rows[i].Scores)
	}
}

func TestViewBuilderEmpty(t *testing.T) {
	view := NewViewBuilder(nil).GetView()
	assert.Empty(t, view.Axis)
	assert.Empty(t, view.Rows)
	assert.Zero(t, view.TotalConfigs)
}

func TestViewBuilderColumns(t *testing.T) {
	b := NewViewBuilder(testDataset())
	view := b.Normalize().GetView()

	require.Len(t, view.Columns, 3)
	cpu := view.Columns[2]
	assert.Equal(t, "cpu", cpu.Metric)
	assert.Equal(t, 1, cpu.Count)
	assert.Equal(t, 1, cpu.Excluded)
	assert.Equal(t, schema.DegenerateScaling, cpu.Scaling)
	assert.Equal(t, 2, b.Catalog().Len())
}
