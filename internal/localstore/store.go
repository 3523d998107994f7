package localstore

// Store is a minimal persistent string key-value surface, the server-side
// analogue of the browser local storage the roster cache was designed
// around. No transactional guarantees; concurrent writers race with
// last-write-wins semantics.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string)
}

// Persisted keys. The timestamp key holds stringified epoch milliseconds.
const (
	KeyRosterPayload = "players"
	KeyRosterStamp   = "players_ts"
	KeySearchTerm    = "playerSearchTerm"
)
