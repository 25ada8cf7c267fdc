// Package schema has models, enums and constants shared by all parts of rankviz.
package schema

// MetricDefinition declares one measurable quantity of the experiment.
type MetricDefinition struct {
	Name      string    `json:"name"`      // Unique identifier, stable across the dataset
	Order     int       `json:"order"`     // Display and processing sequence
	Unit      string    `json:"unit"`      // Descriptive only
	Direction Direction `json:"direction"` // Which way is better
}

// Behaviour is one method-level behaviour selected for a configuration.
type Behaviour struct {
	MethodName  string `json:"method_name"`
	BehaviourID string `json:"behaviour_id"`
}

// ClassConfig groups the behaviours chosen within one class.
type ClassConfig struct {
	ClassName  string      `json:"class_name"`
	Behaviours []Behaviour `json:"behaviours"`
}

// ServiceConfig groups the class configurations applied to one service.
type ServiceConfig struct {
	ServiceName string        `json:"service_name"`
	Classes     []ClassConfig `json:"classes"`
}

// ConfigurationRecord is one tested configuration with its raw metric values.
// Rank is 1-based and trusted as produced upstream.
type ConfigurationRecord struct {
	Rank         int                `json:"rank"`
	ConfigID     string             `json:"config_id,omitempty"`
	MetricValues map[string]float64 `json:"metric_values"`
	Units        map[string]string  `json:"units,omitempty"`
	Services     []ServiceConfig    `json:"services,omitempty"`
}

// Value returns the raw value of a metric and whether it was reported.
func (r ConfigurationRecord) Value(metric string) (float64, bool) {
	v, ok := r.MetricValues[metric]
	return v, ok
}

// BehaviourCount returns the number of class configurations across all services.
func (r ConfigurationRecord) BehaviourCount() int {
	total := 0
	for _, s := range r.Services {
		total += len(s.Classes)
	}
	return total
}

// Dataset is the immutable result of one data load.
type Dataset struct {
	Metrics []MetricDefinition    `json:"metrics"`
	Configs []ConfigurationRecord `json:"configs"`
}

// MetricNames returns every metric name reported by any configuration,
// in order of first appearance.
func (d *Dataset) MetricNames() []string {
	seen := make(map[string]struct{})
	names := make([]string, 0, len(d.Metrics))
	for _, def := range d.Metrics {
		if _, ok := seen[def.Name]; ok {
			continue
		}
		for _, c := range d.Configs {
			if _, ok := c.MetricValues[def.Name]; ok {
				seen[def.Name] = struct{}{}
				names = append(names, def.Name)
				break
			}
		}
	}
	for _, c := range d.Configs {
		for _, name := range sortedKeys(c.MetricValues) {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	return names
}

// ScoreKey addresses one normalized score.
type ScoreKey struct {
	Rank   int
	Metric string
}

// ScoreMap holds normalized scores in [0,1] where 1.0 is best.
type ScoreMap map[ScoreKey]float64

// Get returns the score for a configuration rank and metric.
func (m ScoreMap) Get(rank int, metric string) (float64, bool) {
	v, ok := m[ScoreKey{Rank: rank, Metric: metric}]
	return v, ok
}

// ColumnResult describes how one metric column was normalized.
type ColumnResult struct {
	Metric    string          `json:"metric"`
	Direction Direction       `json:"direction"`
	Scaling   ScalingMode     `json:"scaling"`
	Count     int             `json:"count"`    // Finite values used
	Excluded  int             `json:"excluded"` // Non-finite values skipped
	Min       float64         `json:"min"`
	Max       float64         `json:"max"`
	Mean      float64         `json:"mean"`
	Range     float64         `json:"range"`
	Scores    map[int]float64 `json:"scores"` // Keyed by rank
}
