package usecase

import (
	"math"

	"github.com/mkroi/github-cards/internal/domain"
)

// Weights and medians for the user rank composite. Each activity
// dimension is squashed through a CDF against its median before
// weighting, so no single dimension can dominate the composite.
const (
	commitsWeight   = 2.0
	prsWeight       = 3.0
	issuesWeight    = 1.0
	reviewsWeight   = 1.0
	starsWeight     = 4.0
	followersWeight = 1.0

	commitsMedian        = 250.0
	allTimeCommitsMedian = 1000.0
	prsMedian            = 50.0
	issuesMedian         = 25.0
	reviewsMedian        = 2.0
	starsMedian          = 50.0
	followersMedian      = 10.0
)

// userRankThresholds maps percentiles to levels with an inclusive
// lower bound: a percentile exactly on a boundary takes the higher
// level. Lower percentile is better.
var userRankThresholds = []struct {
	percentile float64
	level      domain.RankResult
}{
	{1, domain.RankResult{Tier: domain.TierS}},
	{12.5, domain.RankResult{Tier: domain.TierA, Modifier: domain.ModifierPlus}},
	{25, domain.RankResult{Tier: domain.TierA}},
	{37.5, domain.RankResult{Tier: domain.TierA, Modifier: domain.ModifierMinus}},
	{50, domain.RankResult{Tier: domain.TierB, Modifier: domain.ModifierPlus}},
	{62.5, domain.RankResult{Tier: domain.TierB}},
	{75, domain.RankResult{Tier: domain.TierB, Modifier: domain.ModifierMinus}},
	{87.5, domain.RankResult{Tier: domain.TierC, Modifier: domain.ModifierPlus}},
	{100, domain.RankResult{Tier: domain.TierC}},
}

func exponentialCDF(x float64) float64 {
	return 1 - math.Pow(2, -x)
}

func logNormalCDF(x float64) float64 {
	return x / (1 + x)
}

// UserRank combines a user's activity counts into a percentile-derived
// level. allTimeCommits reports which commit total the caller put in
// Counts.Commits; it only shifts the commit median. Deterministic and
// total over non-negative input.
func UserRank(counts domain.ActivityCounts, allTimeCommits bool) domain.UserRank {
	commitMedian := commitsMedian
	if allTimeCommits {
		commitMedian = allTimeCommitsMedian
	}

	totalWeight := commitsWeight + prsWeight + issuesWeight + reviewsWeight + starsWeight + followersWeight

	score := commitsWeight*exponentialCDF(float64(counts.Commits)/commitMedian) +
		prsWeight*exponentialCDF(float64(counts.PullRequests)/prsMedian) +
		issuesWeight*exponentialCDF(float64(counts.Issues)/issuesMedian) +
		reviewsWeight*exponentialCDF(float64(counts.Reviews)/reviewsMedian) +
		starsWeight*logNormalCDF(float64(counts.Stars)/starsMedian) +
		followersWeight*logNormalCDF(float64(counts.Followers)/followersMedian)

	percentile := (1 - score/totalWeight) * 100

	level := userRankThresholds[len(userRankThresholds)-1].level
	for _, band := range userRankThresholds {
		if percentile <= band.percentile {
			level = band.level
			break
		}
	}
	return domain.UserRank{Level: level, Percentile: percentile}
}

// RepoRank scores a single repository from its star count and the
// total commit history of its default branch. Pure and total over
// non-negative input.
//
// A magnitude of 0 means the history was unknown or inaccessible and
// is treated as neutral rather than negative, so repositories whose
// default branch the fetch cannot see are not penalized.
func RepoRank(stars, totalRepoCommits int) domain.RankResult {
	tier := domain.TierD
	switch {
	case stars > 10000:
		tier = domain.TierS
	case stars > 1000:
		tier = domain.TierA
	case stars > 100:
		tier = domain.TierB
	case stars > 10:
		tier = domain.TierC
	}

	modifier := domain.ModifierNone
	switch {
	case totalRepoCommits > 5000:
		modifier = domain.ModifierPlus
	case totalRepoCommits > 0 && totalRepoCommits < 100:
		modifier = domain.ModifierMinus
	}

	return domain.RankResult{Tier: tier, Modifier: modifier}
}
