package domain

// SortKey identifies the key the contribution selector orders by.
// Stars is the documented stable key; unknown values fall back to it.
type SortKey string

const SortByStars SortKey = "stars"

// SelectionConfig is the caller-supplied contribution selection
// configuration. Read-only to the pipeline.
type SelectionConfig struct {
	Limit           int
	ExcludePatterns []string
	SortKey         SortKey
}

// LanguageWeights biases language ranking toward code volume
// (SizeWeight) or breadth of use (CountWeight). Each weight is in
// [0,1]; the pair is caller-validated and need not sum to 1.
type LanguageWeights struct {
	SizeWeight  float64
	CountWeight float64
}

// Named weighting presets. Convenience values over the same scoring
// function, not separate algorithms.
var (
	WeightsSizeOnly  = LanguageWeights{SizeWeight: 1.0, CountWeight: 0.0}
	WeightsBalanced  = LanguageWeights{SizeWeight: 0.7, CountWeight: 0.3}
	WeightsExpertise = LanguageWeights{SizeWeight: 0.5, CountWeight: 0.5}
	WeightsDiversity = LanguageWeights{SizeWeight: 0.4, CountWeight: 0.6}
)

// PresetWeights resolves a preset name. The second return reports
// whether the name was known.
func PresetWeights(name string) (LanguageWeights, bool) {
	switch name {
	case "size-only", "":
		return WeightsSizeOnly, true
	case "balanced":
		return WeightsBalanced, true
	case "expertise":
		return WeightsExpertise, true
	case "diversity":
		return WeightsDiversity, true
	}
	return WeightsSizeOnly, false
}
