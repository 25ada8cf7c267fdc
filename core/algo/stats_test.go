package algo

import (
	"math"
	"testing"

	"github.com/huangsam/rankviz/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnSummary(t *testing.T) {
	s := ColumnSummary("latency", "ms", schema.Lower, []float64{4, 1, math.NaN(), 3, 2, math.Inf(-1)})
	assert.Equal(t, "latency", s.Metric)
	assert.Equal(t, "ms", s.Unit)
	assert.Equal(t, schema.Lower, s.Direction)
	assert.Equal(t, 4, s.Count)
	assert.InDelta(t, 2.5, s.Mean, 1e-9)
	assert.InDelta(t, 2.5, s.Median, 1e-9)
	assert.InDelta(t, math.Sqrt(5.0/3.0), s.Std, 1e-9)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 4.0, s.Max)
	assert.Equal(t, 3.0, s.Range)
	assert.InDelta(t, 1.75, s.P25, 1e-9)
	assert.InDelta(t, 3.25, s.P75, 1e-9)
	assert.InDelta(t, 1.5, s.IQR, 1e-9)
}

func TestColumnSummaryEdgeCases(t *testing.T) {
	empty := ColumnSummary("m", "", schema.Higher, nil)
	assert.Zero(t, empty.Count)
	assert.Zero(t, empty.Mean)

	single := ColumnSummary("m", "", schema.Higher, []float64{7})
	assert.Equal(t, 1, single.Count)
	assert.Equal(t, 7.0, single.Median)
	assert.Zero(t, single.Std)
	assert.Zero(t, single.IQR)
}

func sampleDataset() *schema.Dataset {
	svc := func(name string, ids ...string) schema.ServiceConfig {
		var behaviours []schema.Behaviour
		for _, id := range ids {
			behaviours = append(behaviours, schema.Behaviour{MethodName: "handle", BehaviourID: id})
		}
		return schema.ServiceConfig{
			ServiceName: name,
			Classes:     []schema.ClassConfig{{ClassName: "com/shop/Cart", Behaviours: behaviours}},
		}
	}
	return &schema.Dataset{
		Metrics: []schema.MetricDefinition{
			{Name: "latency", Order: 1, Unit: "ms", Direction: schema.Lower},
			{Name: "throughput", Order: 0, Unit: "req/s", Direction: schema.Higher},
		},
		Configs: []schema.ConfigurationRecord{
			{Rank: 1, MetricValues: map[string]float64{"latency": 10, "throughput": 300}, Services: []schema.ServiceConfig{svc("cart", "cache"), svc("auth", "jwt")}},
			{Rank: 2, MetricValues: map[string]float64{"latency": 20, "throughput": 200}, Services: []schema.ServiceConfig{svc("cart", "cache")}},
			{Rank: 5, MetricValues: map[string]float64{"latency": 30, "cpu": 0.5}, Units: map[string]string{"cpu": "%"}, Services: []schema.ServiceConfig{svc("cart", "nocache")}},
		},
	}
}

func TestSummarizeDataset(t *testing.T) {
	ds := sampleDataset()
	summary := SummarizeDataset(ds, nil)

	assert.Equal(t, 3, summary.TotalConfigs)
	assert.Equal(t, 2, summary.TotalMetrics)
	assert.Equal(t, 1, summary.BestPosition)
	assert.Equal(t, 5, summary.WorstPosition)
	assert.Equal(t, 4, summary.TotalServices)
	assert.Equal(t, 4, summary.TotalBehaviours)
	assert.Equal(t, 2, summary.UniqueServices)

	require.Len(t, summary.Columns, 3)
	assert.Equal(t, "throughput", summary.Columns[0].Metric)
	assert.Equal(t, "latency", summary.Columns[1].Metric)
	assert.Equal(t, "ms", summary.Columns[1].Unit)
	assert.Equal(t, 3, summary.Columns[1].Count)
	assert.Equal(t, "cpu", summary.Columns[2].Metric)
	assert.Equal(t, "%", summary.Columns[2].Unit)
	assert.Equal(t, schema.Higher, summary.Columns[2].Direction)
}

func TestSummarizeEmptyDataset(t *testing.T) {
	summary := SummarizeDataset(&schema.Dataset{}, nil)
	assert.Zero(t, summary.TotalConfigs)
	assert.Zero(t, summary.BestPosition)
	assert.Zero(t, summary.WorstPosition)
	assert.Empty(t, summary.Columns)
	assert.Empty(t, summary.Behaviours)
}

func TestBehaviourImpact(t *testing.T) {
	impact := BehaviourImpact(sampleDataset().Configs)
	require.Len(t, impact, 3)

	assert.Equal(t, "jwt", impact[0].BehaviourID)
	assert.Equal(t, 1.0, impact[0].AverageRank)
	assert.Zero(t, impact[0].RankStd)

	assert.Equal(t, "cache", impact[1].BehaviourID)
	assert.InDelta(t, 1.5, impact[1].AverageRank, 1e-9)
	assert.InDelta(t, math.Sqrt(0.5), impact[1].RankStd, 1e-9)
	assert.Equal(t, 2, impact[1].Count)

	assert.Equal(t, "nocache", impact[2].BehaviourID)
	assert.Equal(t, 5.0, impact[2].AverageRank)
}

func TestBehaviourImpactOrderInvariant(t *testing.T) {
	configs := sampleDataset().Configs
	reversed := make([]schema.ConfigurationRecord, len(configs))
	for i, c := range configs {
		reversed[len(configs)-1-i] = c
	}
	assert.Equal(t, BehaviourImpact(configs), BehaviourImpact(reversed))
}
