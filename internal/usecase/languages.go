package usecase

import (
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/mkroi/github-cards/internal/domain"
)

// RankLanguages scores, orders, and truncates a language set.
//
// Each language scores sizeWeight*bytes/maxBytes +
// countWeight*count/maxCount, with the maxima taken over the whole
// set (a zero maximum makes that term 0 for every language). Ties
// break by total bytes descending, then by name ascending. A limit of
// zero or less keeps the whole list.
func RankLanguages(langs []domain.LanguageUsage, weights domain.LanguageWeights, limit int) []domain.LanguageUsage {
	if len(langs) == 0 {
		return nil
	}

	byteVals := make([]float64, len(langs))
	countVals := make([]float64, len(langs))
	for i, lang := range langs {
		byteVals[i] = float64(lang.TotalBytes)
		countVals[i] = float64(lang.RepoCount)
	}
	maxBytes, _ := stats.Max(byteVals)
	maxCount, _ := stats.Max(countVals)

	ranked := make([]domain.LanguageUsage, len(langs))
	copy(ranked, langs)
	for i := range ranked {
		var score float64
		if maxBytes > 0 {
			score += weights.SizeWeight * float64(ranked[i].TotalBytes) / maxBytes
		}
		if maxCount > 0 {
			score += weights.CountWeight * float64(ranked[i].RepoCount) / maxCount
		}
		ranked[i].Score = score
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		if ranked[i].TotalBytes != ranked[j].TotalBytes {
			return ranked[i].TotalBytes > ranked[j].TotalBytes
		}
		return ranked[i].Name < ranked[j].Name
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
