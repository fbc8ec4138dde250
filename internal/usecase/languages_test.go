package usecase

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkroi/github-cards/internal/domain"
)

func sampleLanguages() []domain.LanguageUsage {
	return []domain.LanguageUsage{
		{Name: "Go", TotalBytes: 90000, RepoCount: 3},
		{Name: "Python", TotalBytes: 120000, RepoCount: 1},
		{Name: "Shell", TotalBytes: 4000, RepoCount: 6},
		{Name: "Rust", TotalBytes: 60000, RepoCount: 2},
	}
}

func TestRankLanguages(t *testing.T) {
	t.Run("size-only matches plain byte ordering", func(t *testing.T) {
		langs := sampleLanguages()
		byBytes := append([]domain.LanguageUsage(nil), langs...)
		sort.Slice(byBytes, func(i, j int) bool {
			return byBytes[i].TotalBytes > byBytes[j].TotalBytes
		})

		ranked := RankLanguages(langs, domain.WeightsSizeOnly, 0)
		require.Len(t, ranked, len(langs))
		for i := range ranked {
			assert.Equal(t, byBytes[i].Name, ranked[i].Name)
		}
	})

	t.Run("count weight pulls broadly-used languages up", func(t *testing.T) {
		ranked := RankLanguages(sampleLanguages(), domain.WeightsDiversity, 0)
		// Shell is used in 6 repos against Python's 1; under the
		// diversity weighting it must outrank Python.
		shellIdx, pythonIdx := -1, -1
		for i, l := range ranked {
			switch l.Name {
			case "Shell":
				shellIdx = i
			case "Python":
				pythonIdx = i
			}
		}
		require.NotEqual(t, -1, shellIdx)
		require.NotEqual(t, -1, pythonIdx)
		assert.Less(t, shellIdx, pythonIdx)
	})

	t.Run("truncates to the limit", func(t *testing.T) {
		ranked := RankLanguages(sampleLanguages(), domain.WeightsBalanced, 2)
		assert.Len(t, ranked, 2)
	})

	t.Run("limit beyond the set returns everything", func(t *testing.T) {
		ranked := RankLanguages(sampleLanguages(), domain.WeightsBalanced, 50)
		assert.Len(t, ranked, 4)
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		assert.Empty(t, RankLanguages(nil, domain.WeightsBalanced, 5))
	})

	t.Run("all-zero maxima score zero without dividing by zero", func(t *testing.T) {
		langs := []domain.LanguageUsage{
			{Name: "B"},
			{Name: "A"},
		}
		ranked := RankLanguages(langs, domain.WeightsExpertise, 0)
		require.Len(t, ranked, 2)
		for _, l := range ranked {
			assert.Zero(t, l.Score)
		}
		// Score and byte ties fall through to name ascending.
		assert.Equal(t, "A", ranked[0].Name)
		assert.Equal(t, "B", ranked[1].Name)
	})

	t.Run("score ties break by bytes descending", func(t *testing.T) {
		// Under count-only weighting both languages score on repo
		// count alone; equal counts tie and bytes must decide.
		langs := []domain.LanguageUsage{
			{Name: "Small", TotalBytes: 10, RepoCount: 2},
			{Name: "Large", TotalBytes: 99, RepoCount: 2},
		}
		ranked := RankLanguages(langs, domain.LanguageWeights{SizeWeight: 0, CountWeight: 1}, 0)
		require.Len(t, ranked, 2)
		assert.Equal(t, "Large", ranked[0].Name)
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		langs := sampleLanguages()
		RankLanguages(langs, domain.WeightsBalanced, 2)
		assert.Equal(t, sampleLanguages(), langs)
	})
}

func TestPresetWeights(t *testing.T) {
	testCases := []struct {
		name     string
		expected domain.LanguageWeights
		known    bool
	}{
		{name: "size-only", expected: domain.WeightsSizeOnly, known: true},
		{name: "balanced", expected: domain.WeightsBalanced, known: true},
		{name: "expertise", expected: domain.WeightsExpertise, known: true},
		{name: "diversity", expected: domain.WeightsDiversity, known: true},
		{name: "mystery", expected: domain.WeightsSizeOnly, known: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			weights, ok := domain.PresetWeights(tc.name)
			assert.Equal(t, tc.known, ok)
			assert.Equal(t, tc.expected, weights)
		})
	}
}
