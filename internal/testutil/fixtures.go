package testutil

import (
	"github.com/soccercentral/roster-service/internal/domain/players"
	"github.com/soccercentral/roster-service/internal/domain/teams"
)

// SamplePlayer returns a minimal player fixture with the provided id.
func SamplePlayer(id string) players.Player {
	return players.Player{
		ID:          id,
		DisplayName: "Leo Messi",
		FirstName:   "Leo",
		LastName:    "Messi",
		Position:    "Forward",
		Nationality: "Argentina",
		TeamID:      "team-1",
		Jersey:      "10",
	}
}

// SampleTeam returns a minimal team fixture with the provided id.
func SampleTeam(id string) teams.Team {
	return teams.Team{
		ID:       id,
		Name:     "Soccer Central U15",
		BadgeURL: "https://cdn.example.com/badges/" + id + ".png",
	}
}

// SampleRoster builds a small roster with distinct names for matcher tests.
func SampleRoster() []players.Player {
	return []players.Player{
		{ID: "p1", DisplayName: "Leo Messi", FirstName: "Leo", LastName: "Messi", TeamID: "team-1"},
		{ID: "p2", Name: "Ana Gomez", FirstName: "Ana", LastName: "Gomez", TeamID: "team-1"},
		{ID: "p3", FirstName: "Carlos", LastName: "Ruiz", TeamID: "team-2"},
	}
}
