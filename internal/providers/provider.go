package providers

import (
	"context"

	"github.com/soccercentral/roster-service/internal/domain/players"
	"github.com/soccercentral/roster-service/internal/domain/teams"
)

// RosterProvider defines how the upstream roster is fetched and normalized.
type RosterProvider interface {
	FetchPlayers(ctx context.Context) ([]players.Player, error)
}

// TeamProvider fetches normalized teams, in bulk or one id at a time. The
// per-id form exists for the enrichment fallback path when the bulk fetch
// fails.
type TeamProvider interface {
	FetchTeams(ctx context.Context) ([]teams.Team, error)
	FetchTeam(ctx context.Context, id string) (teams.Team, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	RosterProvider
	TeamProvider
}

// Session is the payload posted to the session-establishment endpoint.
type Session struct {
	UserID   string `json:"user_id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// SessionProvider establishes a backend session for an authenticated
// identity. Callers treat failures as best-effort.
type SessionProvider interface {
	EstablishSession(ctx context.Context, session Session) error
}
