package players

import (
	"strings"

	"github.com/soccercentral/roster-service/internal/domain/players"
)

// Store defines the contract for persisting and retrieving players.
type Store interface {
	ListPlayers() []players.Player
	GetPlayer(id string) (players.Player, bool)
	SetPlayers([]players.Player)
}

// Service coordinates player operations using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Players returns the current roster.
func (s *Service) Players() []players.Player {
	return s.store.ListPlayers()
}

// PlayerByID returns a single player if present.
func (s *Service) PlayerByID(id string) (players.Player, bool) {
	return s.store.GetPlayer(id)
}

// Search filters the roster by a case-insensitive substring match over
// each player's known names. An empty term returns the full roster.
func (s *Service) Search(term string) []players.Player {
	roster := s.store.ListPlayers()
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return roster
	}

	matched := make([]players.Player, 0, len(roster))
	for _, p := range roster {
		if playerMatches(p, term) {
			matched = append(matched, p)
		}
	}
	return matched
}

// ReplacePlayers swaps the in-memory roster with a new snapshot.
func (s *Service) ReplacePlayers(items []players.Player) {
	s.store.SetPlayers(items)
}

func playerMatches(p players.Player, term string) bool {
	for _, name := range []string{p.DisplayName, p.Name, p.FirstName, p.LastName} {
		if strings.Contains(strings.ToLower(name), term) {
			return true
		}
	}
	return false
}
