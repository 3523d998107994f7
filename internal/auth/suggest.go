package auth

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/soccercentral/roster-service/internal/domain/players"
)

const suggestionThreshold = 0.5

// Suggestions ranks roster names by Levenshtein similarity to the
// attempted login name and returns the closest ones, for the "player not
// found" message. Names below the similarity threshold are dropped.
func Suggestions(roster []players.Player, name string, limit int) []string {
	type scored struct {
		name  string
		score float64
	}

	seen := make(map[string]struct{}, len(roster))
	ranked := make([]scored, 0, len(roster))
	for _, p := range roster {
		candidate := p.FullName()
		if candidate == "" {
			candidate = p.BestName()
		}
		if candidate == "" {
			continue
		}
		key := strings.ToLower(candidate)
		if _, dup := seen[key]; dup {
			continue
		}

		distance := fuzzy.LevenshteinDistance(name, key)
		maxLen := max(len(name), len(key))
		if maxLen == 0 {
			continue
		}
		similarity := 1 - float64(distance)/float64(maxLen)
		if similarity < suggestionThreshold {
			continue
		}
		seen[key] = struct{}{}
		ranked = append(ranked, scored{name: candidate, score: similarity})
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	names := make([]string, 0, len(ranked))
	for _, s := range ranked {
		names = append(names, s.name)
	}
	return names
}
