package iterpro

import (
	"bytes"
	"encoding/json"

	"github.com/soccercentral/roster-service/internal/domain/players"
	"github.com/soccercentral/roster-service/internal/domain/teams"
)

// decodeRoster accepts both response shapes of the players endpoint: a
// bare array of player records, or an envelope with a users field.
func decodeRoster(data []byte) ([]playerPayload, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []playerPayload
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, err
		}
		return list, nil
	}

	var envelope rosterEnvelope
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, err
	}
	return envelope.Users, nil
}

func mapPlayer(p playerPayload) players.Player {
	return players.Player{
		ID:          p.ID,
		DisplayName: p.DisplayName,
		Name:        p.Name,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Position:    p.Position,
		Nationality: p.Nationality,
		TeamID:      p.TeamID,
		Jersey:      string(p.Jersey),
	}
}

func mapTeam(t teamPayload) teams.Team {
	return teams.Team{
		ID:       t.ID,
		Name:     t.Name,
		BadgeURL: firstNonEmpty(t.BadgeURL, t.LogoURL, t.CrestURL),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
