package domain

// Tier is the single-letter base rank derived from a popularity metric.
type Tier string

const (
	TierS Tier = "S"
	TierA Tier = "A"
	TierB Tier = "B"
	TierC Tier = "C"
	TierD Tier = "D"
)

// Modifier is the optional +/- suffix derived from a secondary
// magnitude metric.
type Modifier string

const (
	ModifierPlus  Modifier = "+"
	ModifierMinus Modifier = "-"
	ModifierNone  Modifier = ""
)

// RankResult is an immutable tier+modifier pair. The renderer only
// inspects the length of the display string (1 or 2 characters).
type RankResult struct {
	Tier     Tier     `json:"tier"`
	Modifier Modifier `json:"modifier"`
}

func (r RankResult) String() string {
	return string(r.Tier) + string(r.Modifier)
}

// UserRank is a user's percentile-derived rank. Lower percentile is better.
type UserRank struct {
	Level      RankResult `json:"level"`
	Percentile float64    `json:"percentile"`
}
