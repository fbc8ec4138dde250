package usecase

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/mkroi/github-cards/internal/domain"
	"github.com/mkroi/github-cards/internal/gateway"
)

// contributionYears bounds how many recent contribution years the
// selector's candidate list is fetched over. Five years balances
// coverage against query cost.
const contributionYears = 5

// Service is the use case layer over the GitHub gateway. It turns raw
// fetched records into normalized, scored, and ordered results.
type Service struct {
	fetcher gateway.Fetcher
	logger  *log.Logger
}

// NewService creates a new Service instance.
func NewService(fetcher gateway.Fetcher, logger *log.Logger) *Service {
	return &Service{
		fetcher: fetcher,
		logger:  logger,
	}
}

// UserStats fetches and scores a user's aggregate activity.
func (s *Service) UserStats(ctx context.Context, username string, allTimeCommits bool) (*domain.UserStats, error) {
	s.logger.Println("Usecase: Computing user stats...")
	raw, err := s.fetcher.FetchUserActivity(ctx, username, allTimeCommits)
	if err != nil {
		return nil, err
	}

	counts, err := NormalizeActivity(raw.Counts)
	if err != nil {
		return nil, err
	}

	name := raw.Name
	if name == "" {
		name = raw.Login
	}
	return &domain.UserStats{
		Name:   name,
		Login:  raw.Login,
		Counts: counts,
		Rank:   UserRank(counts, allTimeCommits),
	}, nil
}

// TopLanguages fetches, merges, scores, and truncates a user's
// language usage.
func (s *Service) TopLanguages(ctx context.Context, username string, weights domain.LanguageWeights, limit int, excludePatterns []string) ([]domain.LanguageUsage, error) {
	s.logger.Println("Usecase: Computing top languages...")
	raw, err := s.fetcher.FetchLanguages(ctx, username)
	if err != nil {
		return nil, err
	}

	merged, err := MergeLanguages(raw, excludePatterns)
	if err != nil {
		return nil, err
	}
	return RankLanguages(merged, weights, limit), nil
}

// TopContributions fetches the over-fetched candidate list, runs the
// contribution selector, and annotates each retained repository with
// its rank.
func (s *Service) TopContributions(ctx context.Context, username string, cfg domain.SelectionConfig) ([]domain.RankedContribution, error) {
	s.logger.Println("Usecase: Computing top contributions...")
	raw, err := s.fetcher.FetchContributions(ctx, username, contributionYears)
	if err != nil {
		return nil, err
	}

	candidates := make([]domain.RepoContribution, 0, len(raw))
	for _, r := range raw {
		c, err := NormalizeContribution(r, username)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}

	selected := SelectContributions(candidates, cfg)
	ranked := make([]domain.RankedContribution, 0, len(selected))
	for _, c := range selected {
		ranked = append(ranked, domain.RankedContribution{
			RepoContribution: c,
			Rank:             RepoRank(c.Stars, c.TotalRepoCommits),
		})
	}
	s.logger.Printf("Usecase: Retained %d of %d contribution candidates.\n", len(ranked), len(candidates))
	return ranked, nil
}

// ProfileOptions configures a full profile computation.
type ProfileOptions struct {
	AllTimeCommits  bool
	LanguageWeights domain.LanguageWeights
	LanguageLimit   int
	Selection       domain.SelectionConfig
}

// Profile computes all three card payloads, fetching concurrently.
func (s *Service) Profile(ctx context.Context, username string, opts ProfileOptions) (*domain.Profile, error) {
	s.logger.Println("Usecase: Starting profile aggregation...")

	var (
		userStats     *domain.UserStats
		languages     []domain.LanguageUsage
		contributions []domain.RankedContribution
	)

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		var err error
		userStats, err = s.UserStats(egCtx, username, opts.AllTimeCommits)
		return err
	})

	eg.Go(func() error {
		var err error
		languages, err = s.TopLanguages(egCtx, username, opts.LanguageWeights, opts.LanguageLimit, opts.Selection.ExcludePatterns)
		return err
	})

	eg.Go(func() error {
		var err error
		contributions, err = s.TopContributions(egCtx, username, opts.Selection)
		return err
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	s.logger.Println("Usecase: Profile aggregation complete.")

	return &domain.Profile{
		Stats:         *userStats,
		Languages:     languages,
		Contributions: contributions,
	}, nil
}
