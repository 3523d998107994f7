package testutil

import (
	"context"
	"sync/atomic"

	"github.com/soccercentral/roster-service/internal/domain/players"
	"github.com/soccercentral/roster-service/internal/domain/teams"
	"github.com/soccercentral/roster-service/internal/providers"
)

// StubProvider is a configurable test double for providers.DataProvider.
// It tracks call counts and can optionally close Notify on the first
// roster fetch.
type StubProvider struct {
	Players []players.Player
	Teams   []teams.Team
	Err     error
	TeamErr error

	PlayerCalls atomic.Int32
	TeamCalls   atomic.Int32
	Notify      chan struct{}
}

func (s *StubProvider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	_ = ctx
	s.PlayerCalls.Add(1)
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	return s.Players, s.Err
}

func (s *StubProvider) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	_ = ctx
	s.TeamCalls.Add(1)
	return s.Teams, s.TeamErr
}

func (s *StubProvider) FetchTeam(ctx context.Context, id string) (teams.Team, error) {
	_ = ctx
	s.TeamCalls.Add(1)
	if s.TeamErr != nil {
		return teams.Team{}, s.TeamErr
	}
	for _, t := range s.Teams {
		if t.ID == id {
			return t, nil
		}
	}
	return teams.Team{}, providers.ErrProviderUnavailable
}

// UnavailableProvider fails every call with ErrProviderUnavailable.
type UnavailableProvider struct{}

func (UnavailableProvider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	return nil, providers.ErrProviderUnavailable
}

func (UnavailableProvider) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	return nil, providers.ErrProviderUnavailable
}

func (UnavailableProvider) FetchTeam(ctx context.Context, id string) (teams.Team, error) {
	return teams.Team{}, providers.ErrProviderUnavailable
}

// StubSessions records EstablishSession calls for assertions.
type StubSessions struct {
	Calls    atomic.Int32
	LastUser string
	Err      error
}

func (s *StubSessions) EstablishSession(ctx context.Context, session providers.Session) error {
	_ = ctx
	s.Calls.Add(1)
	s.LastUser = session.UserID
	return s.Err
}
