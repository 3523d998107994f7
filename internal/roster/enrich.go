package roster

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/soccercentral/roster-service/internal/domain/players"
	"github.com/soccercentral/roster-service/internal/domain/teams"
	"github.com/soccercentral/roster-service/internal/logging"
)

// enrichWithTeamInfo attaches team metadata to every record. Enrichment
// never fails the load: any lookup error degrades to a placeholder team.
func (m *Manager) enrichWithTeamInfo(ctx context.Context, roster []players.Player) []players.Player {
	lookup := m.teamLookup(ctx, roster)

	enriched := make([]players.Player, len(roster))
	for i, p := range roster {
		enriched[i] = p
		info, ok := lookup[p.TeamID]
		if !ok || p.TeamID == "" {
			info = teams.Placeholder(p.TeamID)
		}
		enriched[i].TeamInfo = &info
	}
	return enriched
}

// teamLookup prefers one bulk fetch; when that fails it falls back to
// concurrent per-id fetches, each independently degrading to a
// placeholder.
func (m *Manager) teamLookup(ctx context.Context, roster []players.Player) map[string]teams.Team {
	all, err := m.provider.FetchTeams(ctx)
	if err == nil {
		lookup := make(map[string]teams.Team, len(all))
		for _, t := range all {
			lookup[t.ID] = t
		}
		return lookup
	}
	logging.Warn(m.logger, "bulk team fetch failed, falling back to per-team lookups", "error", err)

	ids := distinctTeamIDs(roster)
	results := make([]teams.Team, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			t, err := m.provider.FetchTeam(ctx, id)
			if err != nil {
				t = teams.Placeholder(id)
			}
			results[i] = t
			return nil
		})
	}
	_ = g.Wait() // per-id errors already degraded to placeholders

	lookup := make(map[string]teams.Team, len(results))
	for i, t := range results {
		lookup[ids[i]] = t
	}
	return lookup
}

func distinctTeamIDs(roster []players.Player) []string {
	seen := make(map[string]struct{}, len(roster))
	ids := make([]string, 0, len(roster))
	for _, p := range roster {
		if p.TeamID == "" {
			continue
		}
		if _, dup := seen[p.TeamID]; dup {
			continue
		}
		seen[p.TeamID] = struct{}{}
		ids = append(ids, p.TeamID)
	}
	return ids
}
