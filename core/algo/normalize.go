// Package algo has the normalization, ranking and statistics math for rankviz.
package algo

import (
	"math"
	"sort"

	"github.com/huangsam/rankviz/schema"
)

// Tunables for the low-variance branch.
const (
	neutralScore       = 0.5
	lowVarianceSpread  = 0.4   // output stays within roughly [0.1, 0.9]
	relativeVarianceOK = 0.01  // range/|mean| below this is low variance
	absoluteVarianceOK = 0.001 // range below this is low variance when mean == 0
)

// Normalize maps every (rank, metric) pair with a finite raw value to a score
// in [0,1] where 1.0 is the best observed value for that metric. Columns are
// normalized independently. Missing and non-finite values produce no entry.
// It never fails: an empty input gives an empty map.
func Normalize(configs []schema.ConfigurationRecord, catalog *Catalog) schema.ScoreMap {
	return ScoreMapOf(NormalizeColumns(configs, catalog))
}

// ScoreMapOf flattens per-column scores into a single lookup keyed by (rank, metric).
func ScoreMapOf(columns []schema.ColumnResult) schema.ScoreMap {
	scores := make(schema.ScoreMap)
	for _, col := range columns {
		for rank, s := range col.Scores {
			scores[schema.ScoreKey{Rank: rank, Metric: col.Metric}] = s
		}
	}
	return scores
}

// NormalizeColumns normalizes each metric column and reports how it was done.
// Columns come back in the catalog's axis order. When two records share a rank,
// both feed the column statistics and the later one's score is kept.
func NormalizeColumns(configs []schema.ConfigurationRecord, catalog *Catalog) []schema.ColumnResult {
	if catalog == nil {
		catalog = NewCatalog(nil)
	}
	ds := schema.Dataset{Configs: configs}
	names := catalog.OrderedNames(ds.MetricNames())

	results := make([]schema.ColumnResult, 0, len(names))
	for _, name := range names {
		col, ok := normalizeColumn(configs, name, catalog.DirectionOf(name))
		if !ok {
			continue
		}
		results = append(results, col)
	}
	return results
}

type rankedValue struct {
	rank  int
	value float64
}

// normalizeColumn scores one metric. ok is false when no finite value exists.
func normalizeColumn(configs []schema.ConfigurationRecord, metric string, dir schema.Direction) (schema.ColumnResult, bool) {
	col := schema.ColumnResult{Metric: metric, Direction: dir}

	values := make([]rankedValue, 0, len(configs))
	for _, c := range configs {
		v, ok := c.Value(metric)
		if !ok {
			continue
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			col.Excluded++
			continue
		}
		values = append(values, rankedValue{rank: c.Rank, value: v})
	}
	if len(values) == 0 {
		return col, false
	}

	lo, hi := values[0].value, values[0].value
	raw := make([]float64, len(values))
	for i, rv := range values {
		lo = math.Min(lo, rv.value)
		hi = math.Max(hi, rv.value)
		raw[i] = rv.value
	}
	// Summing in value order keeps the mean independent of record order.
	sort.Float64s(raw)
	mean := runningMean(raw)
	spread := hi - lo

	col.Count = len(values)
	col.Min, col.Max, col.Mean, col.Range = lo, hi, mean, spread
	col.Scaling = scalingFor(mean, spread)
	col.Scores = make(map[int]float64, len(values))

	// Halve everything when the range itself overflows; ratios are unchanged.
	scale := 1.0
	if math.IsInf(spread, 0) {
		scale = 0.5
	}
	for _, rv := range values {
		col.Scores[rv.rank] = scoreValue(rv.value*scale, lo*scale, mean*scale, hi*scale-lo*scale, dir, col.Scaling)
	}
	return col, true
}

// scalingFor picks the normalization strategy from the column statistics.
func scalingFor(mean, spread float64) schema.ScalingMode {
	switch {
	case spread == 0:
		return schema.DegenerateScaling
	case mean != 0 && spread/math.Abs(mean) < relativeVarianceOK:
		return schema.LowVarianceScaling
	case mean == 0 && spread < absoluteVarianceOK:
		return schema.LowVarianceScaling
	default:
		return schema.StandardScaling
	}
}

// scoreValue normalizes a single raw value under the chosen scaling mode.
func scoreValue(v, lo, mean, spread float64, dir schema.Direction, mode schema.ScalingMode) float64 {
	var score float64
	switch mode {
	case schema.DegenerateScaling:
		return neutralScore
	case schema.LowVarianceScaling:
		deviation := (v - mean) / spread
		if dir == schema.Lower {
			score = neutralScore - lowVarianceSpread*deviation
		} else {
			score = neutralScore + lowVarianceSpread*deviation
		}
	default:
		score = (v - lo) / spread
		if dir == schema.Lower {
			score = 1 - score
		}
	}
	if math.IsNaN(score) {
		return neutralScore
	}
	return clamp01(score)
}

// clamp01 bounds a value to the closed interval [0,1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
