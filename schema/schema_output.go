package schema

// AxisInfo describes one vertical axis of the parallel-coordinates display.
type AxisInfo struct {
	Name      string    `json:"name"`
	Label     string    `json:"label"`  // Shortened name with direction symbol
	Symbol    string    `json:"symbol"` // ↑ or ↓
	Unit      string    `json:"unit,omitempty"`
	Order     int       `json:"order"`
	Direction Direction `json:"direction"`
	Declared  bool      `json:"declared"`
}

// RowView is one configuration line, with values aligned to the axis order.
// A nil entry means the configuration has no score for that axis.
type RowView struct {
	Rank     int        `json:"rank"`
	ConfigID string     `json:"config_id,omitempty"`
	Tier     Tier       `json:"tier"`
	Medal    string     `json:"medal,omitempty"`
	Scores   []*float64 `json:"scores"`
	Values   []*float64 `json:"values"`
}

// View is everything the presentation layer needs for one dataset.
type View struct {
	Axis         []AxisInfo     `json:"axis"`
	Rows         []RowView      `json:"rows"`
	Columns      []ColumnResult `json:"columns"`
	TotalConfigs int            `json:"total_configs"`
}

// TierCounts returns how many of the shown rows fall into each tier.
func (v *View) TierCounts() map[Tier]int {
	counts := make(map[Tier]int, len(AllTiers))
	for _, r := range v.Rows {
		counts[r.Tier]++
	}
	return counts
}

// LineStyle is the emphasis applied to a configuration line.
type LineStyle struct {
	Width  float64
	Dot    float64
	Alpha  float64
	ZOrder int
}

// ScoreRow is the long-format record of a single normalized score, used by
// the CSV and Parquet exports.
type ScoreRow struct {
	Rank      int
	ConfigID  string
	Tier      Tier
	Metric    string
	Direction Direction
	Raw       float64
	Score     float64
	Zone      Zone
}

// ScoreRows flattens the view into one row per present score, rows first, then axis order.
func (v *View) ScoreRows() []ScoreRow {
	var out []ScoreRow
	for _, r := range v.Rows {
		for i, axis := range v.Axis {
			if r.Scores[i] == nil {
				continue
			}
			row := ScoreRow{
				Rank:      r.Rank,
				ConfigID:  r.ConfigID,
				Tier:      r.Tier,
				Metric:    axis.Name,
				Direction: axis.Direction,
				Score:     *r.Scores[i],
				Zone:      ZoneOf(*r.Scores[i]),
			}
			if r.Values[i] != nil {
				row.Raw = *r.Values[i]
			}
			out = append(out, row)
		}
	}
	return out
}
