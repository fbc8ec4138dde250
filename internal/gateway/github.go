// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST and GraphQL clients.
package gateway

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sort"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"
)

// Raw activity map keys produced by FetchUserActivity.
const (
	KeyCommits      = "commits"
	KeyPullRequests = "pull_requests"
	KeyMergedPRs    = "pull_requests_merged"
	KeyIssues       = "issues"
	KeyReviews      = "reviews"
	KeyStars        = "stars"
	KeyFollowers    = "followers"
)

// RawUserActivity is one user's fetched activity totals before
// normalization. Counts may be missing a key; a missing key means the
// upstream source reported nothing for it.
type RawUserActivity struct {
	Name   string
	Login  string
	Counts map[string]int
}

// RawRepoActivity is one repository record from a single contribution
// year. The same repository can appear in several records when the
// user touched it in more than one year or via more than one
// contribution type; deduplication is the selector's job.
type RawRepoActivity struct {
	FullName         string
	OwnerLogin       string
	AvatarURL        string
	IsPrivate        bool
	Stars            int
	TotalRepoCommits int
	Commits          int
	PullRequests     int
	Issues           int
	Reviews          int
}

// RawLanguage is one language edge of one repository.
type RawLanguage struct {
	RepoName string
	Name     string
	Color    string
	Bytes    int
}

// Fetcher defines the behavior of a gateway for fetching information from GitHub.
type Fetcher interface {
	FetchUserActivity(ctx context.Context, username string, allTimeCommits bool) (*RawUserActivity, error)
	FetchContributions(ctx context.Context, username string, maxYears int) ([]RawRepoActivity, error)
	FetchLanguages(ctx context.Context, username string) ([]RawLanguage, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	restClient    *github.Client
	graphqlClient *githubv4.Client
	logger        *log.Logger
}

// userStatsQuery fetches the aggregate activity totals for one user.
type userStatsQuery struct {
	User struct {
		Name                    githubv4.String
		Login                   githubv4.String
		ContributionsCollection struct {
			TotalCommitContributions            int
			TotalPullRequestReviewContributions int
		}
		PullRequests struct {
			TotalCount int
		} `graphql:"pullRequests(first: 1)"`
		MergedPullRequests struct {
			TotalCount int
		} `graphql:"mergedPullRequests: pullRequests(states: MERGED)"`
		OpenIssues struct {
			TotalCount int
		} `graphql:"openIssues: issues(states: OPEN)"`
		ClosedIssues struct {
			TotalCount int
		} `graphql:"closedIssues: issues(states: CLOSED)"`
		Followers struct {
			TotalCount int
		}
		Repositories struct {
			Nodes []struct {
				Stargazers struct {
					TotalCount int
				}
			}
			PageInfo struct {
				HasNextPage bool
				EndCursor   githubv4.String
			}
		} `graphql:"repositories(first: 100, after: $cursor, ownerAffiliations: OWNER, orderBy: {direction: DESC, field: STARGAZERS})"`
	} `graphql:"user(login: $login)"`
}

// contributionYearsQuery fetches the distinct years a user has any
// contribution in. Distinct active years are the documented proxy for
// contribution duration; monthly granularity would need a quadratic
// number of queries upstream.
type contributionYearsQuery struct {
	User struct {
		ContributionsCollection struct {
			ContributionYears []int
		}
	} `graphql:"user(login: $login)"`
}

// repoBucket is one repository entry of a contributionsCollection list.
type repoBucket struct {
	Repository struct {
		NameWithOwner string
		IsPrivate     bool
		Owner         struct {
			Login     string
			AvatarURL string `graphql:"avatarUrl"`
		}
		Stargazers struct {
			TotalCount int
		}
		Object struct {
			Commit struct {
				History struct {
					TotalCount int
				}
			} `graphql:"... on Commit"`
		} `graphql:"object(expression: \"HEAD\")"`
	}
	Contributions struct {
		TotalCount int
	}
}

// contributionsQuery fetches the four per-repository contribution
// lists for one year.
type contributionsQuery struct {
	User struct {
		ContributionsCollection struct {
			CommitContributionsByRepository            []repoBucket `graphql:"commitContributionsByRepository(maxRepositories: 100)"`
			PullRequestContributionsByRepository       []repoBucket `graphql:"pullRequestContributionsByRepository(maxRepositories: 100)"`
			IssueContributionsByRepository             []repoBucket `graphql:"issueContributionsByRepository(maxRepositories: 100)"`
			PullRequestReviewContributionsByRepository []repoBucket `graphql:"pullRequestReviewContributionsByRepository(maxRepositories: 100)"`
		} `graphql:"contributionsCollection(from: $from, to: $to)"`
	} `graphql:"user(login: $login)"`
}

// languagesQuery fetches per-repository language size edges across a
// user's owned, non-fork repositories.
type languagesQuery struct {
	User struct {
		Repositories struct {
			Nodes []struct {
				Name      string
				Languages struct {
					Edges []struct {
						Size int
						Node struct {
							Name  string
							Color string
						}
					}
				} `graphql:"languages(first: 10, orderBy: {field: SIZE, direction: DESC})"`
			}
		} `graphql:"repositories(ownerAffiliations: OWNER, isFork: false, first: 100)"`
	} `graphql:"user(login: $login)"`
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
func NewGitHubGateway(token string, logger *log.Logger) (Fetcher, error) {
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(1*time.Hour, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: ts,
		},
	}
	return &GitHubGateway{
		restClient:    github.NewClient(httpClient),
		graphqlClient: githubv4.NewClient(httpClient),
		logger:        logger,
	}, nil
}

// FetchUserActivity fetches a user's aggregate activity totals. The
// GraphQL totals are refined by REST search counts where the search
// index is more accurate (all-time commits, issues opened anywhere);
// REST failures keep the GraphQL value rather than failing the fetch.
func (g *GitHubGateway) FetchUserActivity(ctx context.Context, username string, allTimeCommits bool) (*RawUserActivity, error) {
	g.logger.Println("Fetching user activity totals...")
	variables := map[string]interface{}{
		"login":  githubv4.String(username),
		"cursor": (*githubv4.String)(nil),
	}

	var q userStatsQuery
	if err := g.graphqlClient.Query(ctx, &q, variables); err != nil {
		return nil, fmt.Errorf("failed to fetch user activity for %s: %w", username, err)
	}

	totalStars := 0
	for _, node := range q.User.Repositories.Nodes {
		totalStars += node.Stargazers.TotalCount
	}

	// Walk the remaining repository pages for the star total.
	hasNextPage := q.User.Repositories.PageInfo.HasNextPage
	cursor := q.User.Repositories.PageInfo.EndCursor
	for hasNextPage {
		g.logger.Println("  Fetching next page of repositories for star totals...")
		variables["cursor"] = githubv4.NewString(cursor)
		var page userStatsQuery
		if err := g.graphqlClient.Query(ctx, &page, variables); err != nil {
			return nil, fmt.Errorf("failed to fetch repository page for %s: %w", username, err)
		}
		for _, node := range page.User.Repositories.Nodes {
			totalStars += node.Stargazers.TotalCount
		}
		hasNextPage = page.User.Repositories.PageInfo.HasNextPage
		cursor = page.User.Repositories.PageInfo.EndCursor
	}

	counts := map[string]int{
		KeyCommits:      q.User.ContributionsCollection.TotalCommitContributions,
		KeyPullRequests: q.User.PullRequests.TotalCount,
		KeyMergedPRs:    q.User.MergedPullRequests.TotalCount,
		KeyIssues:       q.User.OpenIssues.TotalCount + q.User.ClosedIssues.TotalCount,
		KeyReviews:      q.User.ContributionsCollection.TotalPullRequestReviewContributions,
		KeyStars:        totalStars,
		KeyFollowers:    q.User.Followers.TotalCount,
	}

	if allTimeCommits {
		query := fmt.Sprintf("author:%s", username)
		opts := &github.SearchOptions{ListOptions: github.ListOptions{PerPage: 1}}
		result, _, err := g.restClient.Search.Commits(ctx, query, opts)
		if err != nil {
			g.logger.Printf("  All-time commit search failed, keeping GraphQL count: %v\n", err)
		} else {
			counts[KeyCommits] = result.GetTotal()
		}
	}

	// The search index counts issues the user opened in repositories
	// they do not own, which the per-user issue connections miss.
	issueQuery := fmt.Sprintf("author:%s type:issue", username)
	issueOpts := &github.SearchOptions{ListOptions: github.ListOptions{PerPage: 1}}
	issueResult, _, err := g.restClient.Search.Issues(ctx, issueQuery, issueOpts)
	if err != nil {
		g.logger.Printf("  Issue search failed, keeping GraphQL count: %v\n", err)
	} else {
		counts[KeyIssues] = issueResult.GetTotal()
	}

	g.logger.Println("Completed fetching user activity totals.")
	return &RawUserActivity{
		Name:   string(q.User.Name),
		Login:  string(q.User.Login),
		Counts: counts,
	}, nil
}

// FetchContributions collects the repositories a user contributed to
// over the most recent maxYears contribution years. The result is an
// over-fetch: the upstream source cannot sort by stars server-side, so
// more records than ultimately needed come back and the selector
// sorts and slices client-side.
func (g *GitHubGateway) FetchContributions(ctx context.Context, username string, maxYears int) ([]RawRepoActivity, error) {
	g.logger.Println("Fetching contribution years...")
	var yq contributionYearsQuery
	if err := g.graphqlClient.Query(ctx, &yq, map[string]interface{}{"login": githubv4.String(username)}); err != nil {
		return nil, fmt.Errorf("failed to fetch contribution years for %s: %w", username, err)
	}

	years := append([]int(nil), yq.User.ContributionsCollection.ContributionYears...)
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	if maxYears > 0 && len(years) > maxYears {
		years = years[:maxYears]
	}

	var records []RawRepoActivity
	for _, year := range years {
		g.logger.Printf("  Fetching contributions for %d...\n", year)
		variables := map[string]interface{}{
			"login": githubv4.String(username),
			"from":  githubv4.DateTime{Time: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)},
			"to":    githubv4.DateTime{Time: time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC)},
		}
		var cq contributionsQuery
		if err := g.graphqlClient.Query(ctx, &cq, variables); err != nil {
			return nil, fmt.Errorf("failed to fetch contributions for %s in %d: %w", username, year, err)
		}

		// Merge the four bucket lists into one record per repository
		// for this year. Cross-year duplicates are left in place.
		byRepo := make(map[string]*RawRepoActivity)
		collect := func(buckets []repoBucket, add func(r *RawRepoActivity, count int)) {
			for _, b := range buckets {
				count := b.Contributions.TotalCount
				if count == 0 {
					continue
				}
				name := b.Repository.NameWithOwner
				r, ok := byRepo[name]
				if !ok {
					r = &RawRepoActivity{
						FullName:         name,
						OwnerLogin:       b.Repository.Owner.Login,
						AvatarURL:        b.Repository.Owner.AvatarURL,
						IsPrivate:        b.Repository.IsPrivate,
						Stars:            b.Repository.Stargazers.TotalCount,
						TotalRepoCommits: b.Repository.Object.Commit.History.TotalCount,
					}
					byRepo[name] = r
				} else if r.TotalRepoCommits == 0 {
					// The HEAD history total may only resolve on some
					// bucket types; take it whenever it shows up.
					r.TotalRepoCommits = b.Repository.Object.Commit.History.TotalCount
				}
				add(r, count)
			}
		}
		col := cq.User.ContributionsCollection
		collect(col.CommitContributionsByRepository, func(r *RawRepoActivity, c int) { r.Commits += c })
		collect(col.PullRequestContributionsByRepository, func(r *RawRepoActivity, c int) { r.PullRequests += c })
		collect(col.IssueContributionsByRepository, func(r *RawRepoActivity, c int) { r.Issues += c })
		collect(col.PullRequestReviewContributionsByRepository, func(r *RawRepoActivity, c int) { r.Reviews += c })

		names := make([]string, 0, len(byRepo))
		for name := range byRepo {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			records = append(records, *byRepo[name])
		}
	}

	g.logger.Printf("Completed fetching contributions: %d raw records over %d years.\n", len(records), len(years))
	return records, nil
}

// FetchLanguages fetches per-repository language byte totals across a
// user's owned, non-fork repositories.
func (g *GitHubGateway) FetchLanguages(ctx context.Context, username string) ([]RawLanguage, error) {
	g.logger.Println("Fetching language data...")
	var q languagesQuery
	if err := g.graphqlClient.Query(ctx, &q, map[string]interface{}{"login": githubv4.String(username)}); err != nil {
		return nil, fmt.Errorf("failed to fetch languages for %s: %w", username, err)
	}

	var langs []RawLanguage
	for _, repo := range q.User.Repositories.Nodes {
		for _, edge := range repo.Languages.Edges {
			if edge.Node.Name == "" {
				continue
			}
			langs = append(langs, RawLanguage{
				RepoName: repo.Name,
				Name:     edge.Node.Name,
				Color:    edge.Node.Color,
				Bytes:    edge.Size,
			})
		}
	}
	g.logger.Printf("Completed fetching language data: %d language edges.\n", len(langs))
	return langs, nil
}
