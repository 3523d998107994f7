package fixture

import (
	"context"
	"fmt"

	"github.com/soccercentral/roster-service/internal/domain/players"
	"github.com/soccercentral/roster-service/internal/domain/teams"
	"github.com/soccercentral/roster-service/internal/providers"
)

// Provider returns a static roster useful for local testing and bootstrapping.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// FetchPlayers returns a deterministic example roster.
func (p *Provider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	_ = ctx
	return []players.Player{
		{
			ID:          "fixture-p1",
			DisplayName: "Leo Messi",
			FirstName:   "Lionel",
			LastName:    "Messi",
			Position:    "FW",
			Nationality: "Argentina",
			TeamID:      "fixture-t1",
			Jersey:      "10",
		},
		{
			ID:          "fixture-p2",
			FirstName:   "Ana",
			LastName:    "Gomez",
			Position:    "MF",
			Nationality: "Mexico",
			TeamID:      "fixture-t2",
			Jersey:      "8",
		},
		{
			ID:        "fixture-p3",
			Name:      "Carlos Ruiz",
			Position:  "GK",
			TeamID:    "fixture-t1",
			Jersey:    "1",
			FirstName: "Carlos",
			LastName:  "Ruiz",
		},
	}, nil
}

// FetchTeams returns a deterministic set of teams.
func (p *Provider) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	_ = ctx
	return []teams.Team{
		{ID: "fixture-t1", Name: "Soccer Central First", BadgeURL: "https://example.com/badges/first.png"},
		{ID: "fixture-t2", Name: "Soccer Central Reserves", BadgeURL: "https://example.com/badges/reserves.png"},
	}, nil
}

// FetchTeam returns a single fixture team by id.
func (p *Provider) FetchTeam(ctx context.Context, id string) (teams.Team, error) {
	all, _ := p.FetchTeams(ctx)
	for _, t := range all {
		if t.ID == id {
			return t, nil
		}
	}
	return teams.Team{}, fmt.Errorf("fixture: unknown team %q", id)
}

// EstablishSession is a no-op for fixtures.
func (p *Provider) EstablishSession(ctx context.Context, session providers.Session) error {
	_ = ctx
	_ = session
	return nil
}
