package schema

// Custom string types for type safety.
type (
	// Direction represents whether larger or smaller raw values are better.
	Direction string

	// Tier represents the presentation band derived from a configuration rank.
	Tier string

	// Zone represents the performance band a normalized score falls into.
	Zone string

	// ScalingMode represents the normalization strategy applied to a metric column.
	ScalingMode string

	// OutputMode represents the format of the output.
	OutputMode string

	// ChartFormat represents the image encoding of an exported chart.
	ChartFormat string

	// DatasetFormat represents the encoding of a dataset file.
	DatasetFormat string
)

// All optimization directions supported.
const (
	Higher Direction = "higher" // default
	Lower  Direction = "lower"
)

// All presentation tiers supported.
const (
	TopTier    Tier = "top"
	HighTier   Tier = "high"
	NormalTier Tier = "normal"
)

// All performance zones supported.
const (
	ExcellenceZone  Zone = "excellence"
	NeutralZone     Zone = "neutral"
	ImprovementZone Zone = "needs-improvement"
)

// All scaling modes produced by normalization.
const (
	DegenerateScaling  ScalingMode = "degenerate"   // every value identical
	LowVarianceScaling ScalingMode = "low-variance" // mean-centered, compressed
	StandardScaling    ScalingMode = "standard"     // full min-max
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All chart formats supported.
const (
	PNGChart ChartFormat = "png" // default
	SVGChart ChartFormat = "svg"
)

// All dataset formats supported.
const (
	JSONDataset DatasetFormat = "json"
	YAMLDataset DatasetFormat = "yaml"
)

// Rank and score boundaries shared by the engine and the presentation layer.
const (
	// UnknownMetricOrder is the display order given to metrics without a definition.
	UnknownMetricOrder = 999

	TopTierMaxRank  = 3
	HighTierMaxRank = 10

	ExcellenceThreshold  = 0.75
	ImprovementThreshold = 0.25
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidChartFormats lists all valid chart formats.
var ValidChartFormats = map[ChartFormat]struct{}{
	PNGChart: {},
	SVGChart: {},
}

// AllTiers returns the tiers from most to least emphasized.
var AllTiers = []Tier{TopTier, HighTier, NormalTier}
