package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkroi/github-cards/internal/domain"
)

// TestRepoRank covers the star tier bands, the commit-magnitude
// modifier bands, and their boundaries.
func TestRepoRank(t *testing.T) {
	testCases := []struct {
		name     string
		stars    int
		commits  int
		expected string
	}{
		{name: "zero everything is lowest tier, neutral", stars: 0, commits: 0, expected: "D"},
		{name: "star boundary 10 stays D", stars: 10, commits: 200, expected: "D"},
		{name: "star boundary 11 reaches C", stars: 11, commits: 200, expected: "C"},
		{name: "star boundary 100 stays C", stars: 100, commits: 200, expected: "C"},
		{name: "star boundary 101 reaches B", stars: 101, commits: 200, expected: "B"},
		{name: "star boundary 1000 stays B", stars: 1000, commits: 200, expected: "B"},
		{name: "star boundary 1001 reaches A", stars: 1001, commits: 200, expected: "A"},
		{name: "star boundary 10000 stays A", stars: 10000, commits: 200, expected: "A"},
		{name: "star boundary 10001 reaches S", stars: 10001, commits: 200, expected: "S"},
		{name: "commit boundary 5000 is neutral", stars: 500, commits: 5000, expected: "B"},
		{name: "commit boundary 5001 earns plus", stars: 500, commits: 5001, expected: "B+"},
		{name: "commit boundary 99 earns minus", stars: 500, commits: 99, expected: "B-"},
		{name: "commit boundary 100 is neutral", stars: 500, commits: 100, expected: "B"},
		{name: "unknown magnitude is neutral, not minus", stars: 100, commits: 0, expected: "B"},
		{name: "large popular repo", stars: 14000, commits: 11000, expected: "S+"},
		{name: "small young repo", stars: 50, commits: 10, expected: "C-"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := RepoRank(tc.stars, tc.commits)
			assert.Equal(t, tc.expected, result.String())
		})
	}
}

func TestUserRank(t *testing.T) {
	t.Run("all-zero activity lands in the lowest band", func(t *testing.T) {
		rank := UserRank(domain.ActivityCounts{}, false)
		assert.Equal(t, "C", rank.Level.String())
		assert.InDelta(t, 100.0, rank.Percentile, 1e-9)
	})

	t.Run("moderate activity lands mid-table", func(t *testing.T) {
		counts := domain.ActivityCounts{
			Commits:      1000,
			PullRequests: 100,
			Issues:       50,
			Reviews:      10,
			Stars:        200,
			Followers:    50,
		}
		rank := UserRank(counts, false)
		assert.Equal(t, "A", rank.Level.String())
		assert.InDelta(t, 17.69, rank.Percentile, 0.1)
	})

	t.Run("deterministic for identical input", func(t *testing.T) {
		counts := domain.ActivityCounts{Commits: 321, PullRequests: 12, Stars: 77}
		first := UserRank(counts, false)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, UserRank(counts, false))
		}
	})

	t.Run("more activity never worsens the percentile", func(t *testing.T) {
		low := UserRank(domain.ActivityCounts{Commits: 10, Stars: 1}, false)
		high := UserRank(domain.ActivityCounts{Commits: 5000, PullRequests: 400, Issues: 100, Reviews: 50, Stars: 3000, Followers: 500}, false)
		assert.Less(t, high.Percentile, low.Percentile)
	})

	t.Run("all-time flag raises the commit median", func(t *testing.T) {
		counts := domain.ActivityCounts{Commits: 500}
		yearly := UserRank(counts, false)
		allTime := UserRank(counts, true)
		// The same commit count is worth less against the all-time median.
		assert.Greater(t, allTime.Percentile, yearly.Percentile)
	})
}
