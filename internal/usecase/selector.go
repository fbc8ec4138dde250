package usecase

import (
	"sort"
	"strings"

	"github.com/mkroi/github-cards/internal/domain"
)

// SelectContributions filters, deduplicates, orders, and slices an
// over-fetched candidate list. The steps run in a fixed order:
// self-owned repositories go first, then private ones, then pattern
// exclusions; surviving duplicates collapse to the highest-star entry;
// the remainder is sorted by the configured key and cut to the limit.
// Fewer than limit survivors is not an error. Idempotent: running the
// selector on its own output returns it unchanged.
func SelectContributions(candidates []domain.RepoContribution, cfg domain.SelectionConfig) []domain.RepoContribution {
	best := make(map[string]domain.RepoContribution)
	for _, c := range candidates {
		if c.OwnerIsUser {
			continue
		}
		if !c.IsPublic {
			continue
		}
		if matchesAny(c.FullName, cfg.ExcludePatterns) {
			continue
		}
		if kept, ok := best[c.FullName]; ok && kept.Stars >= c.Stars {
			continue
		}
		best[c.FullName] = c
	}

	selected := make([]domain.RepoContribution, 0, len(best))
	for _, c := range best {
		selected = append(selected, c)
	}

	// Only the star key is documented; anything else falls back to it.
	sort.Slice(selected, func(i, j int) bool {
		if selected[i].Stars != selected[j].Stars {
			return selected[i].Stars > selected[j].Stars
		}
		return selected[i].FullName < selected[j].FullName
	})

	if cfg.Limit > 0 && len(selected) > cfg.Limit {
		selected = selected[:cfg.Limit]
	}
	return selected
}

// matchesAny reports whether name matches any exclusion pattern.
// Matching is case-sensitive: either an exact match or a *-wildcard
// match where * spans any characters, including the owner/name slash.
// filepath.Match is not usable here because its * stops at separators.
func matchesAny(name string, patterns []string) bool {
	for _, p := range patterns {
		if wildcardMatch(p, name) {
			return true
		}
	}
	return false
}

func wildcardMatch(pattern, s string) bool {
	if !strings.Contains(pattern, "*") {
		return pattern == s
	}
	parts := strings.Split(pattern, "*")

	if !strings.HasPrefix(s, parts[0]) {
		return false
	}
	s = s[len(parts[0]):]

	last := parts[len(parts)-1]
	for _, part := range parts[1 : len(parts)-1] {
		idx := strings.Index(s, part)
		if idx < 0 {
			return false
		}
		s = s[idx+len(part):]
	}
	return strings.HasSuffix(s, last)
}
