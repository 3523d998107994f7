package store

import (
	"sync"

	"github.com/soccercentral/roster-service/internal/domain/players"
	"github.com/soccercentral/roster-service/internal/domain/teams"
)

// MemoryStore keeps a thread-safe snapshot of the roster and teams in
// memory. A fresh load replaces each snapshot wholesale, never patching
// in place.
type MemoryStore struct {
	mu      sync.RWMutex
	order   []string
	players map[string]players.Player
	teams   map[string]teams.Team
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		players: make(map[string]players.Player),
		teams:   make(map[string]teams.Team),
	}
}

// ListPlayers returns the roster in its original order.
func (s *MemoryStore) ListPlayers() []players.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]players.Player, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.players[id])
	}
	return result
}

// GetPlayer retrieves a player by ID.
func (s *MemoryStore) GetPlayer(id string) (players.Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.players[id]
	return p, ok
}

// SetPlayers replaces the existing roster with a new snapshot.
func (s *MemoryStore) SetPlayers(roster []players.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.order = make([]string, 0, len(roster))
	s.players = make(map[string]players.Player, len(roster))
	for _, p := range roster {
		if _, dup := s.players[p.ID]; !dup {
			s.order = append(s.order, p.ID)
		}
		s.players[p.ID] = p
	}
}

// ListTeams returns a copy of the current teams.
func (s *MemoryStore) ListTeams() []teams.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]teams.Team, 0, len(s.teams))
	for _, t := range s.teams {
		result = append(result, t)
	}
	return result
}

// GetTeam retrieves a team by ID.
func (s *MemoryStore) GetTeam(id string) (teams.Team, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.teams[id]
	return t, ok
}

// SetTeams replaces the existing teams with a new snapshot.
func (s *MemoryStore) SetTeams(items []teams.Team) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.teams = make(map[string]teams.Team, len(items))
	for _, t := range items {
		s.teams[t.ID] = t
	}
}
