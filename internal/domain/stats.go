// Package domain contains the core data structures and domain logic for the application.
package domain

// ActivityCounts holds a user's aggregate GitHub activity totals.
// All fields are non-negative; absent upstream values default to 0.
type ActivityCounts struct {
	Commits            int `json:"commits"`
	PullRequests       int `json:"pull_requests"`
	MergedPullRequests int `json:"pull_requests_merged"`
	Issues             int `json:"issues"`
	Reviews            int `json:"reviews"`
	Stars              int `json:"stars"`
	Followers          int `json:"followers"`
}

// RepoContribution is one repository a user contributed to, as seen by
// the selection pipeline. Created fresh per invocation and never
// mutated after creation.
type RepoContribution struct {
	FullName         string `json:"full_name"`
	Stars            int    `json:"stars"`
	TotalRepoCommits int    `json:"total_repo_commits"`
	OwnerIsUser      bool   `json:"owner_is_user"`
	IsPublic         bool   `json:"is_public"`

	// Per-type contribution counts and the owner avatar, carried for
	// the rendering layer.
	Commits      int    `json:"commits"`
	PullRequests int    `json:"pull_requests"`
	Issues       int    `json:"issues"`
	Reviews      int    `json:"reviews"`
	AvatarURL    string `json:"avatar_url,omitempty"`
}

// LanguageUsage aggregates one language across all of a user's
// repositories. Uniqueness key is the language name.
type LanguageUsage struct {
	Name       string  `json:"name"`
	Color      string  `json:"color,omitempty"`
	TotalBytes int     `json:"total_bytes"`
	RepoCount  int     `json:"repo_count"`
	Score      float64 `json:"score,omitempty"`
}

// UserStats is the scored result for a single user.
type UserStats struct {
	Name   string         `json:"name"`
	Login  string         `json:"login"`
	Counts ActivityCounts `json:"counts"`
	Rank   UserRank       `json:"rank"`
}

// RankedContribution pairs a retained contribution with its repository rank.
type RankedContribution struct {
	RepoContribution
	Rank RankResult `json:"rank"`
}

// Profile bundles the three card payloads for a single user.
type Profile struct {
	Stats         UserStats            `json:"stats"`
	Languages     []LanguageUsage      `json:"languages"`
	Contributions []RankedContribution `json:"contributions"`
}
