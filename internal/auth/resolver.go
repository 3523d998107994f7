package auth

import (
	"regexp"
	"strings"

	"github.com/soccercentral/roster-service/internal/domain/players"
)

var (
	emailPattern    = regexp.MustCompile(`(?i)^([^@]+)@soccercentralsa\.com$`)
	nonAlnumPattern = regexp.MustCompile(`[^a-z0-9]`)
)

// DeriveLoginName extracts the candidate player name from a login email.
// Only name@soccercentralsa.com addresses are accepted; the local part is
// returned lower-cased and trimmed.
func DeriveLoginName(email string) (string, error) {
	m := emailPattern.FindStringSubmatch(email)
	if m == nil {
		return "", ErrInvalidFormat
	}
	return strings.TrimSpace(strings.ToLower(m[1])), nil
}

// matchStrategy tries to resolve name against the roster. Strategies are
// pure and evaluated in priority order with early return.
type matchStrategy func(roster []players.Player, name string) (players.Player, bool)

var strategies = []matchStrategy{
	matchExact(func(p players.Player) string { return p.DisplayName }),
	matchExact(func(p players.Player) string { return p.Name }),
	matchExact(func(p players.Player) string { return p.FirstName }),
	matchExact(func(p players.Player) string { return p.LastName }),
	matchPartial,
	matchCombined,
}

// FindPlayerByName resolves a lower-cased candidate name to a roster
// record. The first strategy that produces a match wins; later strategies
// are never consulted. A miss is reported as ok=false, not an error.
func FindPlayerByName(roster []players.Player, name string) (players.Player, bool) {
	for _, match := range strategies {
		if p, ok := match(roster, name); ok {
			return p, true
		}
	}
	return players.Player{}, false
}

func matchExact(field func(players.Player) string) matchStrategy {
	return func(roster []players.Player, name string) (players.Player, bool) {
		for _, p := range roster {
			if v := field(p); v != "" && strings.ToLower(v) == name {
				return p, true
			}
		}
		return players.Player{}, false
	}
}

// matchPartial scans every populated name field for a substring match in
// either direction, or equality once everything but lowercase letters and
// digits is stripped.
func matchPartial(roster []players.Player, name string) (players.Player, bool) {
	stripped := stripNonAlnum(name)
	for _, p := range roster {
		for _, field := range []string{p.DisplayName, p.Name, p.FirstName, p.LastName} {
			if field == "" {
				continue
			}
			lower := strings.ToLower(field)
			if strings.Contains(lower, name) || strings.Contains(name, lower) || stripNonAlnum(lower) == stripped {
				return p, true
			}
		}
	}
	return players.Player{}, false
}

// matchCombined tries "first last" and "last first" containment for
// records that carry both name parts.
func matchCombined(roster []players.Player, name string) (players.Player, bool) {
	for _, p := range roster {
		if p.FirstName == "" || p.LastName == "" {
			continue
		}
		full := strings.ToLower(p.FirstName + " " + p.LastName)
		reversed := strings.ToLower(p.LastName + " " + p.FirstName)
		if strings.Contains(full, name) || strings.Contains(reversed, name) ||
			strings.Contains(name, full) || strings.Contains(name, reversed) {
			return p, true
		}
	}
	return players.Player{}, false
}

func stripNonAlnum(s string) string {
	return nonAlnumPattern.ReplaceAllString(strings.ToLower(s), "")
}
