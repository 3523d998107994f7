package auth

import (
	"fmt"

	"github.com/soccercentral/roster-service/internal/domain/players"
)

const (
	// The single shared credential the roster app ships with.
	sharedPassword = "iterpro123"

	// RolePlayer is the fixed role attached to every authenticated identity.
	RolePlayer = "player"

	maxSuggestions = 3
)

// Identity is the enriched record produced on a successful login.
type Identity struct {
	PlayerID string `json:"playerId"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// Result is the structured outcome of an authentication attempt. Failures
// are values, never panics or propagated errors.
type Result struct {
	Success     bool        `json:"success"`
	Message     string      `json:"message"`
	User        *Identity   `json:"user,omitempty"`
	Suggestions []string    `json:"suggestions,omitempty"`
	Kind        FailureKind `json:"-"`
}

// Authenticate derives a login name from the email, resolves it against
// the roster and checks the shared password. Every outcome comes back as
// a Result; the Kind field carries the failure class for metrics.
func Authenticate(roster []players.Player, email, password string) Result {
	name, err := DeriveLoginName(email)
	if err != nil {
		return Result{Message: err.Error(), Kind: FailureInvalidFormat}
	}

	player, ok := FindPlayerByName(roster, name)
	if !ok {
		return Result{
			Message:     fmt.Sprintf("no player found for %q: the part before the @ must match a display, first or last name", name),
			Suggestions: Suggestions(roster, name, maxSuggestions),
			Kind:        FailurePlayerNotFound,
		}
	}

	if password != sharedPassword {
		return Result{Message: "incorrect password", Kind: FailureInvalidCredential}
	}

	return Result{
		Success: true,
		Message: "login successful",
		User: &Identity{
			PlayerID: player.ID,
			Username: player.BestName(),
			Role:     RolePlayer,
			Name:     player.FullName(),
			Email:    email,
		},
	}
}
