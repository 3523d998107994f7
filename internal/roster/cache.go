package roster

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/soccercentral/roster-service/internal/domain/players"
	"github.com/soccercentral/roster-service/internal/localstore"
	"github.com/soccercentral/roster-service/internal/timeutil"
)

// A payload shorter than this cannot hold a single record; skips decoding
// obviously truncated writes.
const minPayloadLength = 4

var errEmptyRoster = errors.New("cached roster is empty")

// entry is the persisted (payload, timestamp) pair for the roster.
type entry struct {
	payload string
	stamp   string
}

func readEntry(store localstore.Store) entry {
	var e entry
	if store == nil {
		return e
	}
	e.payload, _ = store.Get(localstore.KeyRosterPayload)
	e.stamp, _ = store.Get(localstore.KeyRosterStamp)
	return e
}

// present reports whether the payload looks like it could hold data at
// all; sentinel values left behind by a broken writer count as absent.
func (e entry) present() bool {
	switch e.payload {
	case "", "undefined", "null":
		return false
	}
	return len(e.payload) >= minPayloadLength
}

// fresh reports whether the entry is inside the serve-proactively window.
// An unparseable timestamp makes the entry stale, never fresh.
func (e entry) fresh(now time.Time, ttl time.Duration) bool {
	if !e.present() {
		return false
	}
	written, err := timeutil.ParseMillis(e.stamp)
	if err != nil {
		return false
	}
	return now.Sub(written) < ttl
}

// decode unmarshals the payload, rejecting anything that is not a
// non-empty sequence of player records.
func (e entry) decode() ([]players.Player, error) {
	if !e.present() {
		return nil, errEmptyRoster
	}
	var roster []players.Player
	if err := json.Unmarshal([]byte(e.payload), &roster); err != nil {
		return nil, err
	}
	if len(roster) == 0 {
		return nil, errEmptyRoster
	}
	return roster, nil
}

func purgeEntry(store localstore.Store) {
	if store == nil {
		return
	}
	store.Remove(localstore.KeyRosterPayload)
	store.Remove(localstore.KeyRosterStamp)
}

func writeEntry(store localstore.Store, roster []players.Player, now time.Time) error {
	if store == nil {
		return nil
	}
	payload, err := json.Marshal(roster)
	if err != nil {
		return err
	}
	if err := store.Set(localstore.KeyRosterPayload, string(payload)); err != nil {
		return err
	}
	return store.Set(localstore.KeyRosterStamp, timeutil.FormatMillis(now))
}
