package roster

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/soccercentral/roster-service/internal/domain/players"
	"github.com/soccercentral/roster-service/internal/domain/teams"
	"github.com/soccercentral/roster-service/internal/localstore"
)

type stubProvider struct {
	roster    []players.Player
	rosterErr error

	teams    []teams.Team
	teamsErr error

	teamByID map[string]teams.Team
	teamErr  error

	playersCalls atomic.Int32
	teamCalls    atomic.Int32
}

func (s *stubProvider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	_ = ctx
	s.playersCalls.Add(1)
	return s.roster, s.rosterErr
}

func (s *stubProvider) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	_ = ctx
	return s.teams, s.teamsErr
}

func (s *stubProvider) FetchTeam(ctx context.Context, id string) (teams.Team, error) {
	_ = ctx
	s.teamCalls.Add(1)
	if s.teamErr != nil {
		return teams.Team{}, s.teamErr
	}
	if t, ok := s.teamByID[id]; ok {
		return t, nil
	}
	return teams.Team{}, errors.New("unknown team")
}

func fixedNow() time.Time {
	return time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
}

func newTestManager(provider *stubProvider, store localstore.Store) *Manager {
	m := NewManager(provider, store, nil, nil, 5*time.Minute)
	m.now = fixedNow
	return m
}

func TestLoadRosterServesFreshCacheWithoutFetch(t *testing.T) {
	store := localstore.NewMemStore()
	seedEntry(t, store, `[{"id":"p1","displayName":"Leo Messi","teamId":"t1"}]`, fixedNow().Add(-time.Minute))

	provider := &stubProvider{
		rosterErr: errors.New("must not be called"),
		teams:     []teams.Team{{ID: "t1", Name: "First Team"}},
	}
	m := newTestManager(provider, store)

	roster, err := m.LoadRoster(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider.playersCalls.Load() != 0 {
		t.Fatalf("expected no network fetch for fresh entry")
	}
	if len(roster) != 1 || roster[0].ID != "p1" {
		t.Fatalf("unexpected roster: %+v", roster)
	}
	if roster[0].TeamInfo == nil || roster[0].TeamInfo.Name != "First Team" {
		t.Fatalf("expected team enrichment on cache path, got %+v", roster[0].TeamInfo)
	}
}

func TestLoadRosterExpiredEntryFetchesAndRewrites(t *testing.T) {
	store := localstore.NewMemStore()
	seedEntry(t, store, `[{"id":"old"}]`, fixedNow().Add(-5*time.Minute-time.Second))

	provider := &stubProvider{
		roster: []players.Player{{ID: "new", TeamID: "t1"}},
		teams:  []teams.Team{{ID: "t1", Name: "First Team"}},
	}
	m := newTestManager(provider, store)

	roster, err := m.LoadRoster(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider.playersCalls.Load() != 1 {
		t.Fatalf("expected one fetch for expired entry")
	}
	if len(roster) != 1 || roster[0].ID != "new" {
		t.Fatalf("expected fetched roster, got %+v", roster)
	}

	// The entry was rewritten with the fetched roster at the current time.
	rewritten := readEntry(store)
	if !rewritten.fresh(fixedNow(), 5*time.Minute) {
		t.Fatalf("expected rewritten entry fresh, got %+v", rewritten)
	}
	decoded, err := rewritten.decode()
	if err != nil || decoded[0].ID != "new" {
		t.Fatalf("expected persisted roster, got %v err=%v", decoded, err)
	}
}

func TestLoadRosterStaleFallbackOnFetchFailure(t *testing.T) {
	store := localstore.NewMemStore()
	seedEntry(t, store, `[{"id":"stale","teamId":"t1"}]`, fixedNow().Add(-time.Hour))

	provider := &stubProvider{
		rosterErr: errors.New("upstream down"),
		teamsErr:  errors.New("teams down"),
		teamErr:   errors.New("team down"),
	}
	m := newTestManager(provider, store)

	roster, err := m.LoadRoster(context.Background())
	if err != nil {
		t.Fatalf("expected stale fallback, got error %v", err)
	}
	if len(roster) != 1 || roster[0].ID != "stale" {
		t.Fatalf("expected stale roster returned, got %+v", roster)
	}
	// Enrichment degraded to placeholders since every team path failed.
	if roster[0].TeamInfo == nil || roster[0].TeamInfo.Name != "Team t1" {
		t.Fatalf("expected placeholder team, got %+v", roster[0].TeamInfo)
	}
}

func TestLoadRosterCorruptEntryPurgedNeverServed(t *testing.T) {
	for _, payload := range []string{"undefined", `[{"id": broken`} {
		store := localstore.NewMemStore()
		seedEntry(t, store, payload, fixedNow().Add(-time.Minute))

		provider := &stubProvider{rosterErr: errors.New("upstream down")}
		m := newTestManager(provider, store)

		if _, err := m.LoadRoster(context.Background()); err == nil {
			t.Fatalf("expected failure when cache corrupt and upstream down (payload %q)", payload)
		}
		if provider.playersCalls.Load() != 1 {
			t.Fatalf("expected fetch attempted after corrupt entry (payload %q)", payload)
		}
		if _, ok := store.Get(localstore.KeyRosterPayload); ok {
			t.Fatalf("expected corrupt entry purged (payload %q)", payload)
		}
	}
}

func TestLoadRosterEmptyCachedSequenceTreatedAsMiss(t *testing.T) {
	store := localstore.NewMemStore()
	seedEntry(t, store, `[]`, fixedNow().Add(-time.Minute))

	provider := &stubProvider{roster: []players.Player{{ID: "p1"}}}
	m := newTestManager(provider, store)

	roster, err := m.LoadRoster(context.Background())
	if err != nil || len(roster) != 1 {
		t.Fatalf("expected fetch for empty cached sequence, got %v err=%v", roster, err)
	}
	if provider.playersCalls.Load() != 1 {
		t.Fatalf("expected one fetch")
	}
}

func TestLoadRosterPersistFailureIsNotFatal(t *testing.T) {
	provider := &stubProvider{roster: []players.Player{{ID: "p1"}}}
	m := newTestManager(provider, failingStore{})

	roster, err := m.LoadRoster(context.Background())
	if err != nil || len(roster) != 1 {
		t.Fatalf("expected roster despite persist failure, got %v err=%v", roster, err)
	}
}

func TestLoadRosterEmptyFetchNotPersisted(t *testing.T) {
	store := localstore.NewMemStore()
	provider := &stubProvider{}
	m := newTestManager(provider, store)

	roster, err := m.LoadRoster(context.Background())
	if err != nil || len(roster) != 0 {
		t.Fatalf("expected empty roster, got %v err=%v", roster, err)
	}
	if _, ok := store.Get(localstore.KeyRosterPayload); ok {
		t.Fatalf("expected empty result not persisted")
	}
}

func TestRefreshBypassesCacheRead(t *testing.T) {
	store := localstore.NewMemStore()
	seedEntry(t, store, `[{"id":"cached"}]`, fixedNow())

	provider := &stubProvider{roster: []players.Player{{ID: "fetched"}}}
	m := newTestManager(provider, store)

	roster, err := m.Refresh(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(roster) != 1 || roster[0].ID != "fetched" {
		t.Fatalf("expected fetched roster, got %+v", roster)
	}
	if provider.playersCalls.Load() != 1 {
		t.Fatalf("expected a fetch on refresh")
	}

	decoded, err := readEntry(store).decode()
	if err != nil || decoded[0].ID != "fetched" {
		t.Fatalf("expected cache rewritten by refresh, got %v err=%v", decoded, err)
	}
}

func TestRefreshPropagatesFetchFailure(t *testing.T) {
	provider := &stubProvider{rosterErr: errors.New("upstream down")}
	m := newTestManager(provider, localstore.NewMemStore())

	if _, err := m.Refresh(context.Background()); err == nil {
		t.Fatalf("expected refresh failure")
	}
}

type failingStore struct{}

func (failingStore) Get(key string) (string, bool) { return "", false }
func (failingStore) Set(key, value string) error   { return errors.New("disk full") }
func (failingStore) Remove(key string)             {}
