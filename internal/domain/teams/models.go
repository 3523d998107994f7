package teams

// Team represents the normalized team shape.
// Kept in its own package to keep domain models modular and reusable across providers/fixtures.
type Team struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	BadgeURL string `json:"badgeUrl,omitempty"`
}

// Placeholder builds the synthetic team substituted when a team id cannot
// be resolved. An empty id yields the "Unknown" team.
func Placeholder(teamID string) Team {
	if teamID == "" {
		return Team{Name: "Unknown"}
	}
	return Team{ID: teamID, Name: "Team " + lastFour(teamID)}
}

func lastFour(id string) string {
	if len(id) <= 4 {
		return id
	}
	return id[len(id)-4:]
}
