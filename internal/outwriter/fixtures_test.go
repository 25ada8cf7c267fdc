package outwriter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/rankviz/internal/contract"
	"github.com/huangsam/rankviz/schema"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func sampleView() *schema.View {
	return &schema.View{
		Axis: []schema.AxisInfo{
			{Name: "latency", Label: "latency ↓", Symbol: "↓", Unit: "ms", Order: 1, Direction: schema.Lower, Declared: true},
			{Name: "throughput", Label: "throughput ↑", Symbol: "↑", Unit: "rps", Order: 2, Direction: schema.Higher, Declared: true},
		},
		Rows: []schema.RowView{
			{Rank: 1, ConfigID: "cfg-a", Tier: schema.TopTier, Medal: "🥇", Scores: []*float64{ptr(1), ptr(0.8)}, Values: []*float64{ptr(10), ptr(900)}},
			{Rank: 2, Tier: schema.TopTier, Medal: "🥈", Scores: []*float64{ptr(0), nil}, Values: []*float64{ptr(30), nil}},
		},
		Columns: []schema.ColumnResult{
			{Metric: "latency", Direction: schema.Lower, Scaling: schema.StandardScaling, Count: 2, Min: 10, Max: 30, Mean: 20, Range: 20},
			{Metric: "throughput", Direction: schema.Higher, Scaling: schema.DegenerateScaling, Count: 1, Min: 900, Max: 900, Mean: 900},
		},
		TotalConfigs: 5,
	}
}

func sampleDataset() *schema.Dataset {
	return &schema.Dataset{
		Metrics: []schema.MetricDefinition{
			{Name: "latency", Order: 1, Unit: "ms", Direction: schema.Lower},
			{Name: "throughput", Order: 2, Unit: "rps", Direction: schema.Higher},
		},
		Configs: []schema.ConfigurationRecord{
			{
				Rank:         1,
				MetricValues: map[string]float64{"latency": 10, "throughput": 900},
				Services: []schema.ServiceConfig{{
					ServiceName: "checkout",
					Classes: []schema.ClassConfig{{
						ClassName:  "com/shop/Cart",
						Behaviours: []schema.Behaviour{{MethodName: "add", BehaviourID: "cached"}},
					}},
				}},
			},
			{Rank: 2, MetricValues: map[string]float64{"latency": 30}, Units: map[string]string{"latency": "µs"}},
		},
	}
}

func sampleSummary() schema.DatasetSummary {
	return schema.DatasetSummary{
		TotalConfigs:    2,
		TotalMetrics:    2,
		BestPosition:    1,
		WorstPosition:   2,
		TotalServices:   1,
		TotalBehaviours: 1,
		UniqueServices:  1,
		Columns: []schema.ColumnStats{
			{Metric: "latency", Unit: "ms", Direction: schema.Lower, Count: 2, Mean: 20, Median: 20, Std: 14.1421, Min: 10, Max: 30, Range: 20, P25: 15, P75: 25, IQR: 10},
			{Metric: "throughput", Unit: "rps", Direction: schema.Higher, Count: 1, Mean: 900, Median: 900, Min: 900, Max: 900, P25: 900, P75: 900},
		},
		Behaviours: []schema.BehaviourStats{{BehaviourID: "cached", AverageRank: 1, Count: 1}},
	}
}

func testConfig(output schema.OutputMode) *contract.Config {
	return &contract.Config{
		Output:      output,
		Precision:   3,
		Width:       160,
		ChartFormat: schema.PNGChart,
		ChartWidth:  400,
		ChartHeight: 300,
	}
}

// withOutputFile points cfg at a temp file and returns a reader for its content.
func withOutputFile(t *testing.T, cfg *contract.Config, name string) func() string {
	t.Helper()
	cfg.OutputFile = filepath.Join(t.TempDir(), name)
	return func() string {
		data, err := os.ReadFile(cfg.OutputFile)
		require.NoError(t, err)
		return string(data)
	}
}
