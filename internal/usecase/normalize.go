// Package usecase contains the business logic of the application.
package usecase

import (
	"sort"
	"strings"

	"github.com/mkroi/github-cards/internal/domain"
	"github.com/mkroi/github-cards/internal/gateway"
)

// NormalizeActivity coerces a raw activity count map into an
// ActivityCounts. A missing key defaults to 0; a negative value is a
// validation error, since upstream totals can never legitimately be
// negative.
func NormalizeActivity(raw map[string]int) (domain.ActivityCounts, error) {
	var counts domain.ActivityCounts
	fields := map[string]*int{
		gateway.KeyCommits:      &counts.Commits,
		gateway.KeyPullRequests: &counts.PullRequests,
		gateway.KeyMergedPRs:    &counts.MergedPullRequests,
		gateway.KeyIssues:       &counts.Issues,
		gateway.KeyReviews:      &counts.Reviews,
		gateway.KeyStars:        &counts.Stars,
		gateway.KeyFollowers:    &counts.Followers,
	}
	for key, dst := range fields {
		v, ok := raw[key]
		if !ok {
			continue
		}
		if v < 0 {
			return domain.ActivityCounts{}, &domain.ValidationError{Field: key, Value: v}
		}
		*dst = v
	}
	return counts, nil
}

// NormalizeContribution converts one raw repository record into a
// RepoContribution as seen by the given viewing user.
func NormalizeContribution(raw gateway.RawRepoActivity, viewer string) (domain.RepoContribution, error) {
	for _, f := range []struct {
		name  string
		value int
	}{
		{"stars", raw.Stars},
		{"total_repo_commits", raw.TotalRepoCommits},
		{"commits", raw.Commits},
		{"pull_requests", raw.PullRequests},
		{"issues", raw.Issues},
		{"reviews", raw.Reviews},
	} {
		if f.value < 0 {
			return domain.RepoContribution{}, &domain.ValidationError{Field: f.name, Value: f.value}
		}
	}
	return domain.RepoContribution{
		FullName:         raw.FullName,
		Stars:            raw.Stars,
		TotalRepoCommits: raw.TotalRepoCommits,
		OwnerIsUser:      strings.EqualFold(raw.OwnerLogin, viewer),
		IsPublic:         !raw.IsPrivate,
		Commits:          raw.Commits,
		PullRequests:     raw.PullRequests,
		Issues:           raw.Issues,
		Reviews:          raw.Reviews,
		AvatarURL:        raw.AvatarURL,
	}, nil
}

// MergeLanguages folds raw per-repository language edges into one
// LanguageUsage per distinct language name, summing bytes and counting
// repositories. Edges from repositories matching an exclude pattern
// are skipped. Results come back name-sorted; ranking order is the
// weighting engine's job.
func MergeLanguages(raw []gateway.RawLanguage, excludePatterns []string) ([]domain.LanguageUsage, error) {
	merged := make(map[string]*domain.LanguageUsage)
	for _, edge := range raw {
		if edge.Bytes < 0 {
			return nil, &domain.ValidationError{Field: "bytes", Value: edge.Bytes}
		}
		if matchesAny(edge.RepoName, excludePatterns) {
			continue
		}
		lang, ok := merged[edge.Name]
		if !ok {
			lang = &domain.LanguageUsage{Name: edge.Name, Color: edge.Color}
			merged[edge.Name] = lang
		}
		if lang.Color == "" {
			lang.Color = edge.Color
		}
		lang.TotalBytes += edge.Bytes
		lang.RepoCount++
	}

	names := make([]string, 0, len(merged))
	for name := range merged {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make([]domain.LanguageUsage, 0, len(merged))
	for _, name := range names {
		result = append(result, *merged[name])
	}
	return result, nil
}
