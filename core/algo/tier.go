package algo

import "github.com/huangsam/rankviz/schema"

// TierOf classifies a configuration by its rank position alone.
func TierOf(rank int) schema.Tier {
	switch {
	case rank <= schema.TopTierMaxRank:
		return schema.TopTier
	case rank <= schema.HighTierMaxRank:
		return schema.HighTier
	default:
		return schema.NormalTier
	}
}
