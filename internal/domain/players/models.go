package players

import (
	"strings"

	"github.com/soccercentral/roster-service/internal/domain/teams"
)

// Player represents the normalized player shape (iterpro-aligned). All
// identity fields are optional; only the id is guaranteed non-empty.
type Player struct {
	ID          string      `json:"id"`
	DisplayName string      `json:"displayName,omitempty"`
	Name        string      `json:"name,omitempty"`
	FirstName   string      `json:"firstName,omitempty"`
	LastName    string      `json:"lastName,omitempty"`
	Position    string      `json:"position,omitempty"`
	Nationality string      `json:"nationality,omitempty"`
	TeamID      string      `json:"teamId,omitempty"`
	Jersey      string      `json:"jersey,omitempty"`
	TeamInfo    *teams.Team `json:"teamInfo,omitempty"`
}

// BestName returns the first populated identity field, preferring
// displayName, then name, then firstName.
func (p Player) BestName() string {
	switch {
	case p.DisplayName != "":
		return p.DisplayName
	case p.Name != "":
		return p.Name
	default:
		return p.FirstName
	}
}

// FullName returns displayName when set, otherwise "firstName lastName"
// with missing parts dropped.
func (p Player) FullName() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}
