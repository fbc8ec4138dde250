package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkroi/github-cards/internal/domain"
	"github.com/mkroi/github-cards/internal/gateway"
)

func TestNormalizeActivity(t *testing.T) {
	t.Run("missing keys default to zero", func(t *testing.T) {
		counts, err := NormalizeActivity(map[string]int{
			gateway.KeyCommits: 42,
			gateway.KeyStars:   7,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.ActivityCounts{Commits: 42, Stars: 7}, counts)
	})

	t.Run("empty map yields the zero value", func(t *testing.T) {
		counts, err := NormalizeActivity(map[string]int{})
		require.NoError(t, err)
		assert.Equal(t, domain.ActivityCounts{}, counts)
	})

	t.Run("unknown keys are ignored", func(t *testing.T) {
		counts, err := NormalizeActivity(map[string]int{"gists": 5})
		require.NoError(t, err)
		assert.Equal(t, domain.ActivityCounts{}, counts)
	})

	t.Run("negative value is a validation error", func(t *testing.T) {
		_, err := NormalizeActivity(map[string]int{gateway.KeyFollowers: -1})
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, gateway.KeyFollowers, verr.Field)
		assert.Equal(t, -1, verr.Value)
	})
}

func TestNormalizeContribution(t *testing.T) {
	raw := gateway.RawRepoActivity{
		FullName:         "acme/widgets",
		OwnerLogin:       "acme",
		IsPrivate:        false,
		Stars:            120,
		TotalRepoCommits: 4500,
		Commits:          12,
		PullRequests:     3,
	}

	t.Run("maps fields and derives ownership and visibility", func(t *testing.T) {
		c, err := NormalizeContribution(raw, "somebody")
		require.NoError(t, err)
		assert.Equal(t, "acme/widgets", c.FullName)
		assert.Equal(t, 120, c.Stars)
		assert.Equal(t, 4500, c.TotalRepoCommits)
		assert.False(t, c.OwnerIsUser)
		assert.True(t, c.IsPublic)
	})

	t.Run("ownership comparison ignores case", func(t *testing.T) {
		c, err := NormalizeContribution(raw, "ACME")
		require.NoError(t, err)
		assert.True(t, c.OwnerIsUser)
	})

	t.Run("private flag inverts to visibility", func(t *testing.T) {
		private := raw
		private.IsPrivate = true
		c, err := NormalizeContribution(private, "somebody")
		require.NoError(t, err)
		assert.False(t, c.IsPublic)
	})

	t.Run("negative stars are a validation error", func(t *testing.T) {
		bad := raw
		bad.Stars = -3
		_, err := NormalizeContribution(bad, "somebody")
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "stars", verr.Field)
	})
}

func TestMergeLanguages(t *testing.T) {
	raw := []gateway.RawLanguage{
		{RepoName: "widgets", Name: "Go", Color: "#00ADD8", Bytes: 1000},
		{RepoName: "gadgets", Name: "Go", Color: "#00ADD8", Bytes: 500},
		{RepoName: "widgets", Name: "Shell", Color: "", Bytes: 50},
		{RepoName: "scripts", Name: "Shell", Color: "#89e051", Bytes: 20},
	}

	t.Run("merges by name, summing bytes and counting repos", func(t *testing.T) {
		langs, err := MergeLanguages(raw, nil)
		require.NoError(t, err)
		require.Len(t, langs, 2)
		assert.Equal(t, domain.LanguageUsage{Name: "Go", Color: "#00ADD8", TotalBytes: 1500, RepoCount: 2}, langs[0])
		// A later edge fills a color the first occurrence lacked.
		assert.Equal(t, domain.LanguageUsage{Name: "Shell", Color: "#89e051", TotalBytes: 70, RepoCount: 2}, langs[1])
	})

	t.Run("excluded repositories contribute nothing", func(t *testing.T) {
		langs, err := MergeLanguages(raw, []string{"widgets"})
		require.NoError(t, err)
		require.Len(t, langs, 2)
		assert.Equal(t, 500, langs[0].TotalBytes)
		assert.Equal(t, 1, langs[0].RepoCount)
		assert.Equal(t, 20, langs[1].TotalBytes)
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		langs, err := MergeLanguages(nil, nil)
		require.NoError(t, err)
		assert.Empty(t, langs)
	})

	t.Run("negative bytes are a validation error", func(t *testing.T) {
		_, err := MergeLanguages([]gateway.RawLanguage{{Name: "Go", Bytes: -1}}, nil)
		var verr *domain.ValidationError
		assert.True(t, errors.As(err, &verr))
	})
}
