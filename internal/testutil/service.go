package testutil

import (
	appplayers "github.com/soccercentral/roster-service/internal/app/players"
	appteams "github.com/soccercentral/roster-service/internal/app/teams"
	"github.com/soccercentral/roster-service/internal/domain/players"
	"github.com/soccercentral/roster-service/internal/domain/teams"
	"github.com/soccercentral/roster-service/internal/store"
)

// NewServiceWithPlayers builds a players service backed by an in-memory store preloaded with a roster.
func NewServiceWithPlayers(roster []players.Player) *appplayers.Service {
	ms := store.NewMemoryStore()
	if len(roster) > 0 {
		ms.SetPlayers(roster)
	}
	return appplayers.NewService(ms)
}

// NewServiceWithTeams builds a teams service backed by an in-memory store preloaded with teams.
func NewServiceWithTeams(items []teams.Team) *appteams.Service {
	ms := store.NewMemoryStore()
	if len(items) > 0 {
		ms.SetTeams(items)
	}
	return appteams.NewService(ms)
}
