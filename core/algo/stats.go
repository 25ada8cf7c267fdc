package algo

import (
	"math"
	"sort"

	"github.com/huangsam/rankviz/schema"
)

// ColumnSummary computes descriptive statistics over the finite values of one metric.
// Quantiles use linear interpolation and Std is the sample standard deviation,
// which is 0 for fewer than two values. An empty column yields zeros.
func ColumnSummary(metric, unit string, dir schema.Direction, values []float64) schema.ColumnStats {
	stats := schema.ColumnStats{Metric: metric, Unit: unit, Direction: dir}

	finite := make([]float64, 0, len(values))
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		finite = append(finite, v)
	}
	if len(finite) == 0 {
		return stats
	}
	sort.Float64s(finite)

	stats.Count = len(finite)
	stats.Mean = runningMean(finite)
	stats.Std = sampleStd(finite, stats.Mean)
	stats.Min = finite[0]
	stats.Max = finite[len(finite)-1]
	stats.Range = stats.Max - stats.Min
	stats.Median = quantile(finite, 0.5)
	stats.P25 = quantile(finite, 0.25)
	stats.P75 = quantile(finite, 0.75)
	stats.IQR = stats.P75 - stats.P25
	return stats
}

// SummarizeDataset builds the dataset overview with per-metric statistics in axis order.
func SummarizeDataset(ds *schema.Dataset, catalog *Catalog) schema.DatasetSummary {
	if catalog == nil {
		catalog = NewCatalog(ds.Metrics)
	}
	summary := schema.DatasetSummary{
		TotalConfigs: len(ds.Configs),
		TotalMetrics: catalog.Len(),
	}
	if len(ds.Configs) > 0 {
		summary.BestPosition = ds.Configs[0].Rank
		summary.WorstPosition = ds.Configs[len(ds.Configs)-1].Rank
	}

	services := make(map[string]struct{})
	for _, c := range ds.Configs {
		summary.TotalServices += len(c.Services)
		summary.TotalBehaviours += c.BehaviourCount()
		for _, s := range c.Services {
			services[s.ServiceName] = struct{}{}
		}
	}
	summary.UniqueServices = len(services)

	for _, name := range catalog.OrderedNames(ds.MetricNames()) {
		var values []float64
		unit := catalog.UnitOf(name)
		for _, c := range ds.Configs {
			v, ok := c.Value(name)
			if !ok {
				continue
			}
			values = append(values, v)
			if unit == "" {
				unit = c.Units[name]
			}
		}
		summary.Columns = append(summary.Columns, ColumnSummary(name, unit, catalog.DirectionOf(name), values))
	}

	summary.Behaviours = BehaviourImpact(ds.Configs)
	return summary
}

// BehaviourImpact relates each behaviour id to the ranks of the configurations
// that selected it. Results are sorted by average rank, then id.
func BehaviourImpact(configs []schema.ConfigurationRecord) []schema.BehaviourStats {
	ranks := make(map[string][]float64)
	for _, c := range configs {
		for _, s := range c.Services {
			for _, cls := range s.Classes {
				for _, b := range cls.Behaviours {
					if b.BehaviourID == "" {
						continue
					}
					ranks[b.BehaviourID] = append(ranks[b.BehaviourID], float64(c.Rank))
				}
			}
		}
	}

	out := make([]schema.BehaviourStats, 0, len(ranks))
	for id, rs := range ranks {
		sort.Float64s(rs)
		m := runningMean(rs)
		out = append(out, schema.BehaviourStats{
			BehaviourID: id,
			AverageRank: m,
			RankStd:     sampleStd(rs, m),
			Count:       len(rs),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AverageRank != out[j].AverageRank {
			return out[i].AverageRank < out[j].AverageRank
		}
		return out[i].BehaviourID < out[j].BehaviourID
	})
	return out
}

// runningMean divides before subtracting so that no intermediate overflows.
// Callers pass sorted values so the result does not depend on input order.
func runningMean(values []float64) float64 {
	var m float64
	for i, v := range values {
		n := float64(i + 1)
		m += v/n - m/n
	}
	return m
}

func sampleStd(values []float64, m float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}
	var ss float64
	for _, v := range values {
		d := v - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(n-1))
}

// quantile expects sorted input.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lower := int(math.Floor(pos))
	upper := int(math.Ceil(pos))
	if lower == upper {
		return sorted[lower]
	}
	frac := pos - float64(lower)
	return sorted[lower] + frac*(sorted[upper]-sorted[lower])
}
