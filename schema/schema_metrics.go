package schema

// ColumnStats is the descriptive summary of one metric's finite raw values.
type ColumnStats struct {
	Metric    string    `json:"metric"`
	Unit      string    `json:"unit,omitempty"`
	Direction Direction `json:"direction"`
	Count     int       `json:"count"`
	Mean      float64   `json:"mean"`
	Median    float64   `json:"median"`
	Std       float64   `json:"std"`
	Min       float64   `json:"min"`
	Max       float64   `json:"max"`
	Range     float64   `json:"range"`
	P25       float64   `json:"p25"`
	P75       float64   `json:"p75"`
	IQR       float64   `json:"iqr"`
}

// BehaviourStats aggregates the ranks of every configuration using a behaviour.
type BehaviourStats struct {
	BehaviourID string  `json:"behaviour_id"`
	AverageRank float64 `json:"average_rank"`
	RankStd     float64 `json:"rank_std"`
	Count       int     `json:"count"`
}

// DatasetSummary is the overview shown before any per-configuration detail.
// Best and worst positions are zero for an empty dataset.
type DatasetSummary struct {
	TotalConfigs    int              `json:"total_configs"`
	TotalMetrics    int              `json:"total_metrics"`
	BestPosition    int              `json:"best_position"`
	WorstPosition   int              `json:"worst_position"`
	TotalServices   int              `json:"total_services"`
	TotalBehaviours int              `json:"total_behaviours"`
	UniqueServices  int              `json:"unique_services"`
	Columns         []ColumnStats    `json:"columns"`
	Behaviours      []BehaviourStats `json:"behaviours"`
}
